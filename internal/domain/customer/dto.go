package customer

import (
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateCustomerRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Address   string `json:"address"`
	Gender    string `json:"gender"`
	ContactNo string `json:"contact_no"`
}

func (r *UpdateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstname",
			Message: "firstname is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastname",
			Message: "lastname is required",
		})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsEmpty(r.ContactNo) && len(r.ContactNo) > 20 {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_no",
			Message: "contact_no must not exceed 20 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Sex            string          `json:"sex"`
	Email          string          `json:"email"`
	Contact        string          `json:"contact"`
	Address        string          `json:"address"`
	ChosenServices string          `json:"chosen_services"`
	Instructor     string          `json:"instructor"`
	Plan           string          `json:"plan"`
	Amount         decimal.Decimal `json:"amount"`
	IsActive       bool            `json:"is_active"`
}

func ToCustomerResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.FullName,
		Sex:            c.Gender,
		Email:          c.Email,
		Contact:        c.ContactNo,
		Address:        c.Address,
		ChosenServices: c.ChosenServices,
		Instructor:     c.Instructor,
		Plan:           c.Plan,
		Amount:         c.Amount,
		IsActive:       c.IsActive,
	}
}
