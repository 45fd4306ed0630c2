package master

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/holiday"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

// Service manages the master data other modules resolve against:
// departments with their hours history, and the holiday calendar.
type Service struct {
	departments department.Repository
	employees   employee.Repository
	holidays    holiday.Repository
	now         func() time.Time
}

func NewService(departments department.Repository, employees employee.Repository, holidays holiday.Repository) *Service {
	return &Service{
		departments: departments,
		employees:   employees,
		holidays:    holidays,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

func (s *Service) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *Service) GetDepartment(ctx context.Context, name string) (department.Department, error) {
	return s.departments.GetByName(ctx, name)
}

func (s *Service) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	exists, err := s.departments.ExistsByName(ctx, req.Name)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.Department{}, department.ErrDepartmentExists
	}

	created, err := s.departments.Create(ctx, department.Department{
		Name:  req.Name,
		Hours: req.Hours,
	})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

// DeleteDepartment removes an empty department. One with employees still
// assigned, active or not, is rejected.
func (s *Service) DeleteDepartment(ctx context.Context, name string) error {
	if _, err := s.departments.GetByName(ctx, name); err != nil {
		return err
	}

	names, err := s.employees.ListNamesByDepartment(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check department members: %w", err)
	}
	if len(names) > 0 {
		return department.ErrDepartmentInUse
	}

	if err := s.departments.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// UpdateHours appends an hours point and overwrites the current value. An
// omitted effective date means the change applies from today.
func (s *Service) UpdateHours(ctx context.Context, name string, req department.UpdateHoursRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	dept, err := s.departments.GetByName(ctx, name)
	if err != nil {
		return department.Department{}, err
	}
	if dept.Hours == req.Hours {
		return department.Department{}, department.ErrSameHours
	}

	effective := s.today()
	if req.EffectiveDate != "" {
		effective, _ = validator.IsValidDate(req.EffectiveDate)
	}
	if effective.After(s.today()) {
		return department.Department{}, validator.ValidationErrors{
			{Field: "effective_date", Message: "effective date cannot be in the future"},
		}
	}
	for _, p := range dept.HoursHistory {
		if p.EffectiveDate.Equal(effective) {
			return department.Department{}, department.ErrDuplicateEffective
		}
	}

	point := department.HoursPoint{Hours: req.Hours, EffectiveDate: effective}
	if err := s.departments.AppendHours(ctx, name, point); err != nil {
		return department.Department{}, fmt.Errorf("failed to update department hours: %w", err)
	}
	dept.Hours = req.Hours
	dept.HoursHistory = append(dept.HoursHistory, point)
	return dept, nil
}

func (s *Service) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// CreateHoliday marks a date as non-working. Dates past the evaluation
// horizon are rejected: a holiday only matters once generation reaches it.
func (s *Service) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	if date.After(s.today()) {
		return holiday.Holiday{}, validator.ValidationErrors{
			{Field: "date", Message: "date cannot be in the future"},
		}
	}

	created, err := s.holidays.Create(ctx, holiday.Holiday{Date: date})
	if err != nil {
		return holiday.Holiday{}, err
	}
	return created, nil
}
