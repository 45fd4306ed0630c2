package entry

import (
	"errors"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// UpsertEntryRequest creates or amends a single attendance entry.
type UpsertEntryRequest struct {
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	WorkType     WorkType `json:"work_type"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
	Hours        float64  `json:"hours,omitempty"`
}

func (r UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee name is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.WorkType == WorkTypeUnset {
		errs = append(errs, validator.ValidationError{Field: "work_type", Message: "work type is required"})
	}

	if err := r.Detail().Validate(); err != nil {
		var detailErrs validator.ValidationErrors
		if errors.As(err, &detailErrs) {
			errs = append(errs, detailErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Detail builds the normalized WorkDetail from the request.
func (r UpsertEntryRequest) Detail() WorkDetail {
	return WorkDetail{
		Type:      r.WorkType,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Hours:     r.Hours,
	}.Normalize()
}

// MassEntryRequest records the same CUSTOM_HOURS value for every active
// employee of a department on one date.
type MassEntryRequest struct {
	Department string  `json:"department"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
}

func (r MassEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsValidEntryHours(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MassEntryFailure reports one employee that could not be written in a mass
// entry pass. The rest of the batch is unaffected.
type MassEntryFailure struct {
	EmployeeName string `json:"employee_name"`
	Message      string `json:"message"`
}

// MassEntryResult summarizes a mass entry pass.
type MassEntryResult struct {
	BatchID  string             `json:"batch_id"`
	Created  int                `json:"created"`
	Failures []MassEntryFailure `json:"failures,omitempty"`
}

// EntryResponse is the wire form of an Entry.
type EntryResponse struct {
	EmployeeName string     `json:"employee_name"`
	Date         string     `json:"date"`
	Detail       WorkDetail `json:"detail"`
	Hours        float64    `json:"hours"`
	Pay          string     `json:"pay"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		EmployeeName: e.EmployeeName,
		Date:         e.DateKey(),
		Detail:       e.Detail,
		Hours:        e.Hours,
		Pay:          e.Pay.StringFixed(2),
	}
}
