package department

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

func (r CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidName(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required and must be 50 characters or less"})
	}
	if !validator.IsValidDailyHours(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "daily hours must be between 1 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHoursRequest struct {
	Hours         float64 `json:"hours"`
	EffectiveDate string  `json:"effective_date"`
}

func (r UpdateHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDailyHours(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "daily hours must be between 1 and 24"})
	}
	if r.EffectiveDate != "" {
		if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	Name         string         `json:"name"`
	Hours        float64        `json:"hours"`
	HoursHistory []HoursHistory `json:"hours_history"`
}

type HoursHistory struct {
	Hours         float64 `json:"hours"`
	EffectiveDate string  `json:"effective_date"`
}

func ToResponse(d Department) DepartmentResponse {
	resp := DepartmentResponse{
		Name:         d.Name,
		Hours:        d.Hours,
		HoursHistory: make([]HoursHistory, 0, len(d.HoursHistory)),
	}
	for _, p := range d.HoursHistory {
		resp.HoursHistory = append(resp.HoursHistory, HoursHistory{
			Hours:         p.Hours,
			EffectiveDate: p.EffectiveDate.Format("2006-01-02"),
		})
	}
	return resp
}
