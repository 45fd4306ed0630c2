package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

// Service writes attendance entries. Hours and pay are computed here, once,
// at write time: later salary or hours changes only affect entries written
// after them.
type Service struct {
	entries entry.Repository
	loader  roster.Loader
	now     func() time.Time
}

func NewService(entries entry.Repository, loader roster.Loader) *Service {
	return &Service{
		entries: entries,
		loader:  loader,
		now:     time.Now,
	}
}

func (s *Service) horizon() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// Upsert creates or replaces the entry for one employee and date.
func (s *Service) Upsert(ctx context.Context, req entry.UpsertEntryRequest) (entry.Entry, error) {
	if err := req.Validate(); err != nil {
		return entry.Entry{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to load roster: %w", err)
	}

	emp, ok := snap.Employee(req.EmployeeName)
	if !ok {
		return entry.Entry{}, entry.ErrEmployeeNotFound
	}
	if err := checkDate(snap, emp, date); err != nil {
		return entry.Entry{}, err
	}

	e, err := Build(snap, emp, date, req.Detail())
	if err != nil {
		return entry.Entry{}, err
	}

	saved, err := s.entries.Upsert(ctx, e)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}
	return saved, nil
}

// MassEntry writes the same CUSTOM_HOURS record for every employee of a
// department that is active on the date. Failures are per employee: the
// rest of the batch still commits.
func (s *Service) MassEntry(ctx context.Context, req entry.MassEntryRequest) (entry.MassEntryResult, error) {
	if err := req.Validate(); err != nil {
		return entry.MassEntryResult{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return entry.MassEntryResult{}, fmt.Errorf("failed to load roster: %w", err)
	}

	if _, ok := snap.Department(req.Department); !ok {
		return entry.MassEntryResult{}, entry.ErrDepartmentUnknown
	}
	if date.After(snap.Horizon) {
		return entry.MassEntryResult{}, entry.ErrFutureDate
	}
	if snap.IsHoliday(date) {
		return entry.MassEntryResult{}, entry.ErrEntryOnHoliday
	}

	detail := entry.WorkDetail{Type: entry.WorkTypeCustomHours, Hours: req.Hours}
	result := entry.MassEntryResult{BatchID: uuid.NewString()}

	for _, emp := range snap.Employees {
		if emp.Department != req.Department || !emp.ActiveOn(date) {
			continue
		}

		e, err := Build(snap, emp, date, detail)
		if err == nil {
			_, err = s.entries.Upsert(ctx, e)
		}
		if err != nil {
			slog.WarnContext(ctx, "mass entry failed for employee",
				slog.String("batch_id", result.BatchID),
				slog.String("employee", emp.Name),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, entry.MassEntryFailure{
				EmployeeName: emp.Name,
				Message:      err.Error(),
			})
			continue
		}
		result.Created++
	}

	return result, nil
}

// CommitCell persists one staged attendance cell. Checks mirror Upsert, but
// a failure here fails that cell only; the grid save continues.
func (s *Service) CommitCell(ctx context.Context, employeeName string, date time.Time, detail entry.WorkDetail) error {
	snap, err := s.loader.Load(ctx, s.horizon())
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	emp, ok := snap.Employee(employeeName)
	if !ok {
		return entry.ErrEmployeeNotFound
	}
	if err := checkDate(snap, emp, date); err != nil {
		return err
	}

	e, err := Build(snap, emp, date, detail.Normalize())
	if err != nil {
		return err
	}
	if _, err := s.entries.Upsert(ctx, e); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func checkDate(snap roster.Snapshot, emp employee.Employee, date time.Time) error {
	if date.After(snap.Horizon) {
		return entry.ErrFutureDate
	}
	if snap.IsHoliday(date) {
		return entry.ErrEntryOnHoliday
	}
	if !emp.ActiveOn(date) {
		return entry.ErrEmployeeInactive
	}
	return nil
}

// Build computes the store-side hours and pay for a detail on a date.
// Pay is the salary in force on the first of the month, split evenly over
// the month's working days and scaled by the fraction of the department's
// daily hours actually worked. Backfill uses the same math so generated
// placeholders are worth exactly one full day.
func Build(snap roster.Snapshot, emp employee.Employee, date time.Time, detail entry.WorkDetail) (entry.Entry, error) {
	dept, ok := snap.Department(emp.Department)
	if !ok {
		return entry.Entry{}, entry.ErrDepartmentUnknown
	}
	deptHours := timeline.HoursAsOf(dept, date)

	var hoursWorked float64
	switch detail.Type {
	case entry.WorkTypeFullDay:
		hoursWorked = deptHours
	case entry.WorkTypeHalfDay:
		hoursWorked = deptHours / 2
	case entry.WorkTypeCustom:
		hoursWorked = detail.Span()
	case entry.WorkTypeCustomHours:
		hoursWorked = detail.Hours
	case entry.WorkTypeLeave:
		hoursWorked = 0
	default:
		return entry.Entry{}, errors.New("cannot build an entry without a work type")
	}

	monthStart := timeline.Date(date.Year(), date.Month(), 1)
	cal := timeline.NewCalendar(snap)
	workingDays, err := cal.WorkingDaysInMonth(timeline.MonthKey(date))
	if err != nil {
		return entry.Entry{}, err
	}

	pay := decimal.Zero
	if workingDays > 0 && deptHours > 0 && hoursWorked > 0 {
		pay = timeline.SalaryAsOf(emp, monthStart).
			Div(decimal.NewFromInt(int64(workingDays))).
			Mul(decimal.NewFromFloat(hoursWorked)).
			Div(decimal.NewFromFloat(deptHours))
	}

	return entry.Entry{
		EmployeeName: emp.Name,
		Date:         date,
		Detail:       detail,
		Hours:        hoursWorked,
		Pay:          pay,
	}, nil
}
