package gymapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthGateway_Login(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		body := readBody(t, r)
		if body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		assert.Equal(t, float64(1), body["remember_me"])
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": map[string]interface{}{"id": 5, "name": "Maria", "email": "maria@gym.test"},
			"meta": map[string]interface{}{"access_token": token},
		})
	})
	gw := NewAuthGateway(client)

	creds, err := gw.Login(context.Background(), auth.LoginRequest{Email: "maria@gym.test", Password: "secret", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, "5", creds.User.ID)
	assert.Equal(t, "Maria", creds.User.Name)
	assert.Equal(t, token, creds.APIToken)
	assert.True(t, exp.Equal(creds.APITokenExpiresAt))

	_, err = gw.Login(context.Background(), auth.LoginRequest{Email: "maria@gym.test", Password: "wrong", RememberMe: true})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAttendanceRepository(t *testing.T) {
	var clockBody, markBody map[string]interface{}
	var markPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/show-attendance-list":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
				{"id": 1, "staff_id": 7, "date": "2024-03-04", "clock_in_time": "08:00:00", "clock_out_time": "17:00:00", "attendance": nil, "staff": map[string]string{"fullname": "Ana Cruz"}},
				{"id": 2, "staff_id": "8", "date": "2024-03-04T00:00:00.000000Z", "in": "09:00", "out": nil, "attendance": "Half Day"},
				{"id": 3, "staff_id": 9, "date": "not-a-date"},
			}})
		case "/api/admin/clock":
			clockBody = readBody(t, r)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Clocked in"})
		default:
			markPath = r.URL.Path
			markBody = readBody(t, r)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Saved"})
		}
	})
	repo := NewAttendanceRepository(client)
	ctx := context.Background()

	records, err := repo.ListAttendance(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "7", first.StaffID)
	assert.Equal(t, "Ana Cruz", first.StaffName)
	require.NotNil(t, first.ClockIn)
	require.NotNil(t, first.ClockOut)
	assert.Equal(t, 9*time.Hour, first.ClockOut.Sub(*first.ClockIn))
	assert.Equal(t, attendance.StatusUnlabeled, first.Attendance)

	second := records[1]
	assert.Equal(t, "8", second.StaffID)
	require.NotNil(t, second.ClockIn)
	assert.Nil(t, second.ClockOut)
	assert.Equal(t, attendance.StatusHalfDay, second.Attendance)

	at := time.Date(2024, 3, 5, 7, 58, 30, 0, time.UTC)
	require.NoError(t, repo.Clock(ctx, testSession, attendance.ClockCommand{StaffID: "7", Type: attendance.ClockIn, At: at}))
	assert.Equal(t, float64(7), clockBody["staff_id"])
	assert.Equal(t, "2024-03-05", clockBody["date"])
	assert.Equal(t, "in", clockBody["clock_type"])
	assert.Equal(t, "07:58:30", clockBody["time"])

	day := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Mark(ctx, testSession, attendance.MarkCommand{StaffID: "7", Date: day, Status: attendance.StatusLeave}))
	assert.Equal(t, "/api/admin/store-attendance/7", markPath)
	assert.Equal(t, "leave", markBody["attendance"])
	assert.Nil(t, markBody["in"])
	assert.Contains(t, markBody, "out")
}

func TestStaffRepository_ListStaff(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ana", r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
			{"id": 7, "fullname": "Ana Cruz", "email": "ana@gym.test", "gender": "Female", "contact_no": nil, "position": map[string]interface{}{"id": 2, "name": "Coach"}},
		}})
	})

	list, err := NewStaffRepository(client).ListStaff(context.Background(), testSession, " ana ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].ID)
	assert.Equal(t, "Coach", list[0].Position)
	assert.Empty(t, list[0].ContactNo)
}

func TestPayrollRepository(t *testing.T) {
	var created map[string]interface{}
	var archivedPath string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/show-staff-payroll":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{{
				"id": 3, "staff_id": 7, "staff": map[string]string{"fullname": "Ana Cruz"},
				"start_date": "2024-03-01", "end_date": "2024-03-15", "pay_date": "2024-03-16",
				"present_days": 10, "absents": "1", "half_days": 2, "whole_days": 9,
				"total_salary": "9500.00", "pagibig": 100, "final_salary": "9000.50",
			}}})
		case r.URL.Path == "/api/admin/store-staff-payroll/7":
			created = readBody(t, r)
			writeJSON(w, http.StatusCreated, map[string]interface{}{"data": map[string]interface{}{
				"id": 4, "staff_id": 7, "start_date": "2024-03-16", "end_date": "2024-03-31", "pay_date": "2024-04-01",
			}})
		default:
			archivedPath = r.URL.Path
			writeJSON(w, http.StatusOK, map[string]string{"message": "Archived"})
		}
	})
	repo := NewPayrollRepository(client)
	ctx := context.Background()

	list, err := repo.ListPayrolls(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, list, 1)
	p := list[0]
	assert.Equal(t, "Ana Cruz", p.StaffName)
	assert.Equal(t, 1, p.Absents)
	assert.True(t, decimal.RequireFromString("9000.50").Equal(p.FinalSalary))
	assert.True(t, decimal.NewFromInt(100).Equal(p.PagIBIG))
	assert.Equal(t, "EMP007", p.EmployeeNo())
	assert.Equal(t, time.March, p.PayDate.Month())

	got, err := repo.CreatePayroll(ctx, testSession, payroll.CreatePayrollRequest{
		StaffID: "7", StartDate: "2024-03-16", EndDate: "2024-03-31", PayDate: "2024-04-01",
		SalesCommission: decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "4", got.ID)
	assert.Equal(t, float64(7), created["staff_id"])
	assert.Equal(t, "250", created["sales_comission"])

	require.NoError(t, repo.ArchivePayroll(ctx, testSession, "4"))
	assert.Equal(t, "/api/admin/soft-delete-payroll/4", archivedPath)
}

func TestInventoryRepository_ListItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{
			{"id": 1, "item_code": "SUP-01", "name": "Whey", "type": "supplement", "quantity": "4", "price": "1250.50"},
			{"id": 2, "item_code": "EQ-01", "name": "Bench", "short_description": "Flat bench", "type": "equipment", "quantity": 2, "price": 8000},
		}})
	})

	items, err := NewInventoryRepository(client).ListItems(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, inventory.TypeSupplement, items[0].Type)
	assert.Equal(t, 4, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("5002").Equal(items[0].StockValue()))
	assert.Equal(t, "Flat bench", items[1].ShortDescription)
}

func TestSalesRepository(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/exercise-transaction/show":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{{
				"id": 1, "transaction_code": "TX-1", "total_price": "1500", "created_at": "2024-03-04T10:00:00.000000Z",
				"transactions": []map[string]string{{"exercise_name": "Boxing", "tag": "Monthly"}},
			}}})
		case "/api/admin/cart/show":
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": []map[string]interface{}{{
				"id": 9, "transaction_code": "C-9", "total_amount": 300, "created_at": "2024-03-04 11:30:00",
			}}})
		default:
			http.NotFound(w, r)
		}
	})
	repo := NewSalesRepository(client)
	ctx := context.Background()

	memberships, err := repo.ListMemberships(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.True(t, memberships[0].HasTag(sales.TagMonthly))
	assert.Equal(t, 10, memberships[0].CreatedAt.Hour())

	products, err := repo.ListProductSales(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 11, products[0].CreatedAt.Hour())
	assert.True(t, decimal.NewFromInt(300).Equal(products[0].TotalAmount))
}
