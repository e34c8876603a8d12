package response

import (
	"errors"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/customer"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/document"
	"github.com/gymrepublic/gym-console/internal/pkg/storage"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrSessionExpired):
		Unauthorized(w, "Session expired, please sign in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingSession):
		Unauthorized(w, "Invalid token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrActionInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrSnapshotChanged):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidClockType), errors.Is(err, attendance.ErrInvalidMarkStatus):
		BadRequest(w, err.Error(), nil)

	// Not found
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, sales.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, storage.ErrFileNotFound), errors.Is(err, storage.ErrInvalidPath):
		NotFound(w, "Document not found")

	case errors.Is(err, inventory.ErrInvalidItemType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, document.ErrUnsupportedFormat):
		BadRequest(w, "format must be one of pdf, csv, xlsx", nil)

	// Gym API errors
	case errors.Is(err, upstream.ErrRejected), errors.Is(err, upstream.ErrNotFound):
		var rejected *upstream.RejectedError
		if errors.As(err, &rejected) {
			message := rejected.Message
			if message == "" {
				message = "The gym API rejected the request"
			}
			UpstreamRejected(w, rejected.StatusCode, message)
			return
		}
		UpstreamRejected(w, http.StatusBadGateway, "The gym API rejected the request")
	case errors.Is(err, upstream.ErrUnavailable):
		BadGateway(w, "The gym API is unavailable, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
