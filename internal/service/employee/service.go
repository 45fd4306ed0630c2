package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// Service owns the employee lifecycle: creation, department transfer,
// soft inactivation, salary changes and payment status updates.
type Service struct {
	employees   employee.Repository
	departments department.Repository
	payments    payment.Repository
	now         func() time.Time
}

func NewService(employees employee.Repository, departments department.Repository, payments payment.Repository) *Service {
	return &Service{
		employees:   employees,
		departments: departments,
		payments:    payments,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	if startDate.After(s.today()) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "start_date", Message: "start date cannot be in the future"},
		}
	}

	exists, err := s.employees.ExistsByName(ctx, req.Name)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee name: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrNameExists
	}

	if _, err := s.departments.GetByName(ctx, req.Department); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
		StartDate:  startDate,
		Department: req.Department,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	return s.employees.GetByName(ctx, name)
}

// TransferDepartment overwrites the current assignment. The change is not
// retroactive: past months keep being evaluated against whatever department
// the employee is in at read time.
func (s *Service) TransferDepartment(ctx context.Context, name string, req employee.TransferDepartmentRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employees.GetByName(ctx, name)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.Department == req.Department {
		return employee.Employee{}, employee.ErrSameDepartment
	}

	if _, err := s.departments.GetByName(ctx, req.Department); err != nil {
		return employee.Employee{}, err
	}

	if err := s.employees.UpdateDepartment(ctx, name, req.Department); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to transfer employee: %w", err)
	}
	emp.Department = req.Department
	return emp, nil
}

// MarkInactive sets the end date once. Entries already persisted are left
// alone; the date only stops future generation.
func (s *Service) MarkInactive(ctx context.Context, name string, req employee.MarkInactiveRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employees.GetByName(ctx, name)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.EndDate != nil {
		return employee.Employee{}, employee.ErrAlreadyInactive
	}

	endDate, _ := validator.IsValidDate(req.EndDate)
	if endDate.Before(emp.StartDate) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "end_date", Message: "end date cannot be before the start date"},
		}
	}
	if endDate.After(s.today()) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "end_date", Message: "end date cannot be in the future"},
		}
	}

	if err := s.employees.SetEndDate(ctx, name, endDate); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to mark employee inactive: %w", err)
	}
	emp.EndDate = &endDate
	return emp, nil
}

// UpdateSalary appends a salary point and overwrites the current base
// salary. An omitted effective date means the change applies from today.
func (s *Service) UpdateSalary(ctx context.Context, name string, req employee.UpdateSalaryRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employees.GetByName(ctx, name)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.BaseSalary.Equal(req.Salary) {
		return employee.Employee{}, employee.ErrSameSalary
	}

	effective := s.today()
	if req.EffectiveDate != "" {
		effective, _ = validator.IsValidDate(req.EffectiveDate)
	}
	if effective.After(s.today()) {
		return employee.Employee{}, validator.ValidationErrors{
			{Field: "effective_date", Message: "effective date cannot be in the future"},
		}
	}
	for _, p := range emp.SalaryHistory {
		if p.EffectiveDate.Equal(effective) {
			return employee.Employee{}, employee.ErrDuplicateEffective
		}
	}

	point := employee.SalaryPoint{Salary: req.Salary, EffectiveDate: effective}
	if err := s.employees.AppendSalary(ctx, name, point); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update salary: %w", err)
	}
	emp.BaseSalary = req.Salary
	emp.SalaryHistory = append(emp.SalaryHistory, point)
	return emp, nil
}

// UpdatePaymentStatus writes the payment state for one month, creating the
// record lazily on first write.
func (s *Service) UpdatePaymentStatus(ctx context.Context, name, month string, req employee.UpdatePaymentRequest) (payment.Record, error) {
	if !validator.IsValidMonth(month) {
		return payment.Record{}, validator.ValidationErrors{
			{Field: "month", Message: "month must be YYYY-MM"},
		}
	}

	status := req.ToStatus()
	if err := status.Validate(); err != nil {
		return payment.Record{}, err
	}

	if _, err := s.employees.GetByName(ctx, name); err != nil {
		return payment.Record{}, err
	}

	rec, err := s.payments.Upsert(ctx, name, month, status)
	if err != nil {
		return payment.Record{}, fmt.Errorf("failed to update payment status: %w", err)
	}
	return rec, nil
}

// CommitPayment persists one cell of a payment tracking table. A name that
// no longer resolves to an employee fails that cell only.
func (s *Service) CommitPayment(ctx context.Context, employeeName, month string, status payment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	exists, err := s.employees.ExistsByName(ctx, employeeName)
	if err != nil {
		return fmt.Errorf("failed to check employee name: %w", err)
	}
	if !exists {
		return payment.ErrEmployeeNotFound
	}

	if _, err := s.payments.Upsert(ctx, employeeName, month, status); err != nil {
		return fmt.Errorf("failed to save payment status: %w", err)
	}
	return nil
}
