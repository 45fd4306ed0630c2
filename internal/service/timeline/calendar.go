package timeline

import (
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
)

// DefaultRegularDays is the fixed working-day set: every weekday but Sunday.
var DefaultRegularDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  true,
}

// DayKind classifies one date for one employee.
type DayKind string

const (
	DayHoliday  DayKind = "holiday"
	DayInactive DayKind = "inactive"
	DayWorked   DayKind = "worked"
	DayUnset    DayKind = "unset"
)

// DayStatus is the derived classification; Detail is set for DayWorked.
type DayStatus struct {
	Kind   DayKind          `json:"kind"`
	Detail entry.WorkDetail `json:"detail,omitzero"`
}

// Calendar classifies dates against the regular-day set, the holiday set and
// the evaluation horizon. It is a pure view over one snapshot.
type Calendar struct {
	Regular  map[time.Weekday]bool
	Holidays map[string]struct{}
	Horizon  time.Time
}

// NewCalendar builds a calendar over a snapshot with the default regular days.
func NewCalendar(snap roster.Snapshot) Calendar {
	return Calendar{
		Regular:  DefaultRegularDays,
		Holidays: snap.Holidays,
		Horizon:  snap.Horizon,
	}
}

// IsWorkingDay reports whether date carries a work expectation for the
// employee: a regular weekday, not a holiday, inside the active window and
// not past the horizon.
func (c Calendar) IsWorkingDay(date time.Time, e employee.Employee) bool {
	if _, ok := c.Holidays[date.Format("2006-01-02")]; ok {
		return false
	}
	if !c.Regular[date.Weekday()] {
		return false
	}
	if !e.ActiveOn(date) {
		return false
	}
	if date.After(c.Horizon) {
		return false
	}
	return true
}

// DeriveStatus classifies date for the employee. Precedence: holiday, then
// inactive, then an explicit entry, then the FULL_DAY default on working
// days, then unset.
func (c Calendar) DeriveStatus(date time.Time, e employee.Employee, en *entry.Entry) DayStatus {
	if _, ok := c.Holidays[date.Format("2006-01-02")]; ok {
		return DayStatus{Kind: DayHoliday}
	}
	if !e.ActiveOn(date) {
		return DayStatus{Kind: DayInactive}
	}
	if en != nil {
		return DayStatus{Kind: DayWorked, Detail: en.Detail}
	}
	if c.IsWorkingDay(date, e) {
		return DayStatus{Kind: DayWorked, Detail: entry.WorkDetail{Type: entry.WorkTypeFullDay}}
	}
	return DayStatus{Kind: DayUnset}
}

// WorkingDaysInMonth counts the regular non-holiday days of the full
// calendar month. The count ignores the horizon and any active window: it
// is the denominator for per-day pay, which stays stable across the month.
func (c Calendar) WorkingDaysInMonth(month string) (int, error) {
	start, end, err := MonthBounds(month)
	if err != nil {
		return 0, err
	}
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if _, ok := c.Holidays[day.Format("2006-01-02")]; ok {
			continue
		}
		if c.Regular[day.Weekday()] {
			count++
		}
	}
	return count, nil
}

// MonthBounds returns the first and last day of a YYYY-MM month.
func MonthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// MonthKey formats t as a YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Date builds a UTC date-only time.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
