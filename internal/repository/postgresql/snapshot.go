package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/holiday"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type snapshotLoader struct {
	departments department.Repository
	employees   employee.Repository
	holidays    holiday.Repository
}

// NewSnapshotLoader builds the roster.Loader the pure services resolve
// against. Every Load is a fresh read; snapshots are never cached.
func NewSnapshotLoader(db *database.DB) roster.Loader {
	return &snapshotLoader{
		departments: NewDepartmentRepository(db),
		employees:   NewEmployeeRepository(db),
		holidays:    NewHolidayRepository(db),
	}
}

// Load implements roster.Loader.
func (l *snapshotLoader) Load(ctx context.Context, horizon time.Time) (roster.Snapshot, error) {
	departments, err := l.departments.List(ctx)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to snapshot departments: %w", err)
	}

	employees, err := l.employees.List(ctx)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to snapshot employees: %w", err)
	}

	holidays, err := l.holidays.List(ctx)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to snapshot holidays: %w", err)
	}

	snap := roster.Snapshot{
		Employees:   employees,
		Departments: make(map[string]department.Department, len(departments)),
		Holidays:    make(map[string]struct{}, len(holidays)),
		Horizon:     horizon,
	}
	for _, d := range departments {
		snap.Departments[d.Name] = d
	}
	for _, h := range holidays {
		snap.Holidays[h.DateKey()] = struct{}{}
	}

	return snap, nil
}
