package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
)

func testCalendar(holidays []string, horizon time.Time) Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h] = struct{}{}
	}
	return NewCalendar(roster.Snapshot{Holidays: set, Horizon: horizon})
}

func testEmployee(start time.Time, end *time.Time) employee.Employee {
	return employee.Employee{Name: "Asha", StartDate: start, EndDate: end}
}

func TestIsWorkingDay_RegularWeek(t *testing.T) {
	cal := testCalendar(nil, date(2024, 12, 31))
	emp := testEmployee(date(2024, 1, 1), nil)

	// 2024-07-01 is a Monday; Saturday works, Sunday does not.
	assert.True(t, cal.IsWorkingDay(date(2024, 7, 1), emp))
	assert.True(t, cal.IsWorkingDay(date(2024, 7, 6), emp))
	assert.False(t, cal.IsWorkingDay(date(2024, 7, 7), emp))
}

func TestIsWorkingDay_HolidayOverridesEverything(t *testing.T) {
	cal := testCalendar([]string{"2024-07-01"}, date(2024, 12, 31))
	emp := testEmployee(date(2024, 1, 1), nil)

	assert.False(t, cal.IsWorkingDay(date(2024, 7, 1), emp))
}

func TestIsWorkingDay_ActiveWindow(t *testing.T) {
	end := date(2024, 7, 10)
	cal := testCalendar(nil, date(2024, 12, 31))
	emp := testEmployee(date(2024, 7, 3), &end)

	assert.False(t, cal.IsWorkingDay(date(2024, 7, 2), emp))
	assert.True(t, cal.IsWorkingDay(date(2024, 7, 3), emp))
	assert.True(t, cal.IsWorkingDay(date(2024, 7, 10), emp))
	assert.False(t, cal.IsWorkingDay(date(2024, 7, 11), emp))
}

func TestIsWorkingDay_HorizonClipsFuture(t *testing.T) {
	cal := testCalendar(nil, date(2024, 7, 5))
	emp := testEmployee(date(2024, 1, 1), nil)

	assert.True(t, cal.IsWorkingDay(date(2024, 7, 5), emp))
	assert.False(t, cal.IsWorkingDay(date(2024, 7, 6), emp))
}

func TestDeriveStatus(t *testing.T) {
	cal := testCalendar([]string{"2024-07-04"}, date(2024, 7, 31))
	emp := testEmployee(date(2024, 7, 1), nil)

	custom := &entry.Entry{
		Date:   date(2024, 7, 2),
		Detail: entry.WorkDetail{Type: entry.WorkTypeCustom, StartTime: "09:00", EndTime: "17:00"},
	}

	// Holiday wins even with an entry present.
	st := cal.DeriveStatus(date(2024, 7, 4), emp, custom)
	assert.Equal(t, DayHoliday, st.Kind)

	// Inactive before the start date.
	st = cal.DeriveStatus(date(2024, 6, 28), emp, nil)
	assert.Equal(t, DayInactive, st.Kind)

	// An entry supplies its own detail.
	st = cal.DeriveStatus(date(2024, 7, 2), emp, custom)
	assert.Equal(t, DayWorked, st.Kind)
	assert.Equal(t, entry.WorkTypeCustom, st.Detail.Type)

	// Working day without an entry defaults to FULL_DAY.
	st = cal.DeriveStatus(date(2024, 7, 2), emp, nil)
	assert.Equal(t, DayWorked, st.Kind)
	assert.Equal(t, entry.WorkTypeFullDay, st.Detail.Type)

	// Sunday without an entry carries no expectation.
	st = cal.DeriveStatus(date(2024, 7, 7), emp, nil)
	assert.Equal(t, DayUnset, st.Kind)
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), start)
	assert.Equal(t, date(2024, 2, 29), end)

	_, _, err = MonthBounds("2024-2")
	assert.Error(t, err)
}

func TestWorkingDaysInMonth(t *testing.T) {
	// July 2024 has four Sundays; the holiday removes one more day.
	cal := testCalendar([]string{"2024-07-04"}, date(2024, 7, 31))
	n, err := cal.WorkingDaysInMonth("2024-07")
	assert.NoError(t, err)
	assert.Equal(t, 26, n)

	// A holiday landing on a Sunday changes nothing.
	cal = testCalendar([]string{"2024-07-07"}, date(2024, 7, 31))
	n, err = cal.WorkingDaysInMonth("2024-07")
	assert.NoError(t, err)
	assert.Equal(t, 27, n)

	_, err = cal.WorkingDaysInMonth("July")
	assert.Error(t, err)
}
