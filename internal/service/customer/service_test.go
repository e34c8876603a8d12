package customer

import (
	"context"
	"testing"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/customer"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	archiveErr error
	updated    bool
}

func (f *fakeRepo) ListCustomers(context.Context, auth.Session, string) ([]customer.Customer, error) {
	return []customer.Customer{{ID: "4", FullName: "Leo Santos", Amount: decimal.NewFromInt(1500), IsActive: true}}, nil
}

func (f *fakeRepo) UpdateCustomer(context.Context, auth.Session, string, customer.UpdateCustomerRequest) error {
	f.updated = true
	return nil
}

func (f *fakeRepo) ArchiveCustomer(context.Context, auth.Session, string) error {
	return f.archiveErr
}

type fakeNotifier struct {
	count int
}

func (f *fakeNotifier) Notify(context.Context, string, notification.Severity, string) {
	f.count++
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()
	sess := auth.Session{UserID: "1"}

	list, err := NewCustomerService(&fakeRepo{}, &fakeNotifier{}).List(ctx, sess, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Leo Santos", list[0].Name)

	repo := &fakeRepo{}
	err = NewCustomerService(repo, &fakeNotifier{}).Update(ctx, sess, "4", customer.UpdateCustomerRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.False(t, repo.updated)

	notifier := &fakeNotifier{}
	err = NewCustomerService(&fakeRepo{archiveErr: &upstream.RejectedError{StatusCode: 404}}, notifier).Archive(ctx, sess, "4")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.Equal(t, 1, notifier.count)
}
