package employee

import (
	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// MinimumSalary is the floor for any salary value.
var MinimumSalary = decimal.NewFromInt(1000)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	StartDate  string          `json:"start_date"`
	Department string          `json:"department"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidName(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required and must be 50 characters or less"})
	}
	if r.BaseSalary.LessThan(MinimumSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "salary must be at least 1000"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransferDepartmentRequest struct {
	Department string `json:"department"`
}

func (r TransferDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkInactiveRequest struct {
	EndDate string `json:"end_date"`
}

func (r MarkInactiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	Salary        decimal.Decimal `json:"salary"`
	EffectiveDate string          `json:"effective_date"`
}

func (r UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary.LessThan(MinimumSalary) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be at least 1000"})
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

type UpdatePaymentRequest struct {
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

func (r UpdatePaymentRequest) ToStatus() payment.Status {
	return payment.Status{Status: r.Status, Method: r.Method}
}

type SalaryHistoryResponse struct {
	Salary        string `json:"salary"`
	EffectiveDate string `json:"effective_date"`
}

type PaymentStatusResponse struct {
	Month  string `json:"month"`
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

type EmployeeResponse struct {
	Name          string                  `json:"name"`
	BaseSalary    string                  `json:"base_salary"`
	StartDate     string                  `json:"start_date"`
	EndDate       string                  `json:"end_date,omitempty"`
	Department    string                  `json:"department"`
	SalaryHistory []SalaryHistoryResponse `json:"salary_history"`
	Entries       []entry.EntryResponse   `json:"entries"`
	PaymentStatus []PaymentStatusResponse `json:"payment_status"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		Name:          e.Name,
		BaseSalary:    e.BaseSalary.StringFixed(2),
		StartDate:     e.StartDate.Format("2006-01-02"),
		Department:    e.Department,
		SalaryHistory: make([]SalaryHistoryResponse, 0, len(e.SalaryHistory)),
		Entries:       make([]entry.EntryResponse, 0, len(e.Entries)),
		PaymentStatus: make([]PaymentStatusResponse, 0, len(e.Payments)),
	}
	if e.EndDate != nil {
		resp.EndDate = e.EndDate.Format("2006-01-02")
	}
	for _, p := range e.SalaryHistory {
		resp.SalaryHistory = append(resp.SalaryHistory, SalaryHistoryResponse{
			Salary:        p.Salary.StringFixed(2),
			EffectiveDate: p.EffectiveDate.Format("2006-01-02"),
		})
	}
	for _, en := range e.Entries {
		resp.Entries = append(resp.Entries, entry.ToResponse(en))
	}
	for _, rec := range e.Payments {
		resp.PaymentStatus = append(resp.PaymentStatus, PaymentStatusResponse{
			Month:  rec.Month,
			Status: rec.Status.Status,
			Method: rec.Status.Method,
		})
	}
	return resp
}
