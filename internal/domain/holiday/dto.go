package holiday

import (
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date string `json:"date"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{Date: h.DateKey()}
}
