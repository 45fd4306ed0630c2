package payment

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"

	MethodBank = "bank"
	MethodCash = "cash"
	MethodAll  = "all"
)

var Methods = []string{MethodBank, MethodCash, MethodAll}

// Status is the payment state of one employee for one month.
// The zero-ish default for a month with no record is {unpaid, ""}.
type Status struct {
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

// Default is the status implied by an absent record.
func Default() Status {
	return Status{Status: StatusUnpaid}
}

func (s Status) Validate() error {
	var errs validator.ValidationErrors

	if s.Status != StatusPaid && s.Status != StatusUnpaid {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be paid or unpaid"})
	}
	if s.Status == StatusPaid && !validator.IsInSlice(s.Method, Methods) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "method must be bank, cash or all"})
	}
	if s.Status == StatusUnpaid && s.Method != "" {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "method is only valid for paid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusPatch is a partial update to a Status. Nil fields are left alone.
type StatusPatch struct {
	Status *string `json:"status,omitempty"`
	Method *string `json:"method,omitempty"`
}

// Apply merges the patch; moving to unpaid drops the method.
func (s Status) Apply(p StatusPatch) Status {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Method != nil {
		s.Method = *p.Method
	}
	if s.Status != StatusPaid {
		s.Method = ""
	}
	return s
}

// Record is a persisted payment status, keyed by (employee, month).
type Record struct {
	ID           string
	EmployeeName string
	Month        string // YYYY-MM
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
