package staff

import "github.com/gymrepublic/gym-console/internal/pkg/validator"

type UpdateStaffRequest struct {
	PositionID string `json:"position_id"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	ContactNo  string `json:"contact_no"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.PositionID) {
		if _, ok := validator.IsValidID(r.PositionID); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "position_id",
				Message: "position_id must be a positive integer",
			})
		}
	}
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
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if !validator.IsEmpty(r.Gender) && !validator.IsInSlice(r.Gender, []string{"male", "female", "Male", "Female"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Sex        string `json:"sex"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Position   string `json:"position"`
	JoinedDate string `json:"joined_date"`
}

type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToStaffResponse(s Staff) StaffResponse {
	phone := s.ContactNo
	if phone == "" {
		phone = "N/A"
	}
	return StaffResponse{
		ID:         s.ID,
		Name:       s.FullName,
		Email:      s.Email,
		Sex:        s.Gender,
		Phone:      phone,
		Address:    s.Address,
		Position:   s.Position,
		JoinedDate: s.JoinedDate,
	}
}
