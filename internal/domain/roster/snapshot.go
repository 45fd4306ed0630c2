package roster

import (
	"context"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
)

// Snapshot is one consistent copy of everything the attendance engine
// computes over: employees with their histories, entries and payment
// records, departments with their hours histories, and the holiday set.
// Horizon is the moment the engine treats as "now"; no computation may
// project past it. A snapshot is never patched in place; after any
// mutating operation a fresh one is loaded wholesale.
type Snapshot struct {
	Employees   []employee.Employee
	Departments map[string]department.Department
	Holidays    map[string]struct{}
	Horizon     time.Time
}

// IsHoliday reports whether date is in the holiday set.
func (s Snapshot) IsHoliday(date time.Time) bool {
	_, ok := s.Holidays[date.Format("2006-01-02")]
	return ok
}

// Department looks up a department by name.
func (s Snapshot) Department(name string) (department.Department, bool) {
	d, ok := s.Departments[name]
	return d, ok
}

// Employee looks up an employee by name.
func (s Snapshot) Employee(name string) (employee.Employee, bool) {
	for _, e := range s.Employees {
		if e.Name == name {
			return e, true
		}
	}
	return employee.Employee{}, false
}

// EarliestStart returns the earliest start date across all employees.
func (s Snapshot) EarliestStart() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, e := range s.Employees {
		if !found || e.StartDate.Before(earliest) {
			earliest = e.StartDate
			found = true
		}
	}
	return earliest, found
}

// Loader produces a fresh snapshot from the store.
type Loader interface {
	Load(ctx context.Context, horizon time.Time) (Snapshot, error)
}
