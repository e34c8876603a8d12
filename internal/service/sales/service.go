package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type SalesServiceImpl struct {
	salesRepo sales.SalesRepository
	notifier  notification.Notifier
}

func NewSalesService(salesRepo sales.SalesRepository, notifier notification.Notifier) sales.SalesService {
	return &SalesServiceImpl{
		salesRepo: salesRepo,
		notifier:  notifier,
	}
}

// Overview implements sales.SalesService.
func (s *SalesServiceImpl) Overview(ctx context.Context, sess auth.Session) (sales.Overview, error) {
	var (
		memberships []sales.Membership
		products    []sales.ProductSale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		memberships, err = s.salesRepo.ListMemberships(gctx, sess)
		if err != nil {
			return fmt.Errorf("failed to list memberships: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.salesRepo.ListProductSales(gctx, sess)
		if err != nil {
			return fmt.Errorf("failed to list product sales: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to load sales")
		return sales.Overview{}, err
	}

	return BuildOverview(memberships, products), nil
}

// BuildOverview splits memberships into monthly and daily sales by line tag
// and totals every group.
func BuildOverview(memberships []sales.Membership, products []sales.ProductSale) sales.Overview {
	o := sales.Overview{
		Monthly:      []sales.Membership{},
		Daily:        []sales.Membership{},
		Products:     products,
		MonthlyTotal: decimal.Zero,
		DailyTotal:   decimal.Zero,
		ProductTotal: decimal.Zero,
	}
	if o.Products == nil {
		o.Products = []sales.ProductSale{}
	}

	for _, m := range memberships {
		if m.HasTag(sales.TagMonthly) {
			o.Monthly = append(o.Monthly, m)
			o.MonthlyTotal = o.MonthlyTotal.Add(m.TotalPrice)
		}
		if m.HasTag(sales.TagSession) {
			o.Daily = append(o.Daily, m)
			o.DailyTotal = o.DailyTotal.Add(m.TotalPrice)
		}
	}
	for _, p := range o.Products {
		o.ProductTotal = o.ProductTotal.Add(p.TotalAmount)
	}
	return o
}

// ArchiveMembership implements sales.SalesService.
func (s *SalesServiceImpl) ArchiveMembership(ctx context.Context, sess auth.Session, id string) error {
	if _, ok := validator.IsValidID(id); !ok {
		return sales.ErrTransactionNotFound
	}

	if err := s.salesRepo.ArchiveMembership(ctx, sess, id); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to archive transaction")
		if errors.Is(err, upstream.ErrNotFound) {
			return sales.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to archive transaction: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Transaction archived successfully")
	return nil
}
