package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonths_Enumeration(t *testing.T) {
	snap := roster.Snapshot{
		Employees: []employee.Employee{
			{Name: "Asha", StartDate: date(2024, 3, 15)},
			{Name: "Ravi", StartDate: date(2024, 5, 1)},
		},
		Horizon: date(2024, 7, 10),
	}

	months := Months(snap)

	// March through July inclusive, newest first.
	assert.Equal(t, []string{"2024-07", "2024-06", "2024-05", "2024-04", "2024-03"}, months)
}

func TestMonths_SpansYearBoundary(t *testing.T) {
	snap := roster.Snapshot{
		Employees: []employee.Employee{{Name: "Asha", StartDate: date(2023, 11, 20)}},
		Horizon:   date(2024, 2, 5),
	}

	months := Months(snap)
	assert.Equal(t, []string{"2024-02", "2024-01", "2023-12", "2023-11"}, months)
}

func TestMonths_NoEmployees(t *testing.T) {
	assert.Empty(t, Months(roster.Snapshot{Horizon: date(2024, 7, 1)}))
}

// July 2024 has 27 working days over a Mon-Sat week; with one holiday that
// leaves 26, matching a full month of FULL_DAY entries.
func fullMonthSnapshot(t *testing.T) roster.Snapshot {
	t.Helper()

	salary := decimal.NewFromInt(60000)
	perDay := salary.Div(decimal.NewFromInt(26))

	emp := employee.Employee{
		Name:       "Asha",
		BaseSalary: salary,
		StartDate:  date(2024, 1, 1),
		Department: "Packing",
	}

	cal := timeline.NewCalendar(roster.Snapshot{
		Holidays: map[string]struct{}{"2024-07-04": {}},
		Horizon:  date(2024, 7, 31),
	})
	working := 0
	for day := date(2024, 7, 1); !day.After(date(2024, 7, 31)); day = day.AddDate(0, 0, 1) {
		if !cal.IsWorkingDay(day, emp) {
			continue
		}
		working++
		emp.Entries = append(emp.Entries, entry.Entry{
			EmployeeName: "Asha",
			Date:         day,
			Detail:       entry.WorkDetail{Type: entry.WorkTypeFullDay},
			Hours:        12,
			Pay:          perDay,
		})
	}
	require.Equal(t, 26, working)

	return roster.Snapshot{
		Employees: []employee.Employee{emp},
		Departments: map[string]department.Department{
			"Packing": {Name: "Packing", Hours: 12},
		},
		Holidays: map[string]struct{}{"2024-07-04": {}},
		Horizon:  date(2024, 7, 31),
	}
}

func TestComputeMonthSummary_FullMonth(t *testing.T) {
	snap := fullMonthSnapshot(t)
	emp := snap.Employees[0]

	s, err := ComputeMonthSummary(snap, emp, "2024-07")
	require.NoError(t, err)

	assert.Equal(t, float64(26*12), s.TotalHours)
	assert.Equal(t, float64(26*12), s.ExpectedHours)
	assert.True(t, s.ExpectedPay.Equal(decimal.NewFromInt(60000)))

	// 26 equal shares of 60000 sum back to 60000 within rounding noise.
	diff := s.Variance.Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)), "variance %s", s.Variance)

	assert.Equal(t, payment.Default(), s.PaymentStatus)
}

func TestComputeMonthSummary_ExpectedPayAtMonthStart(t *testing.T) {
	snap := fullMonthSnapshot(t)
	emp := snap.Employees[0]

	// Raise effective mid-month: expected pay still uses the month-start rate.
	emp.SalaryHistory = append(emp.SalaryHistory, employee.SalaryPoint{
		Salary:        decimal.NewFromInt(90000),
		EffectiveDate: date(2024, 7, 15),
	})

	s, err := ComputeMonthSummary(snap, emp, "2024-07")
	require.NoError(t, err)
	assert.True(t, s.ExpectedPay.Equal(decimal.NewFromInt(60000)))

	s, err = ComputeMonthSummary(snap, emp, "2024-08")
	require.NoError(t, err)
	assert.True(t, s.ExpectedPay.Equal(decimal.NewFromInt(90000)))
}

func TestComputeMonthSummary_HoursHistoryPerDay(t *testing.T) {
	snap := fullMonthSnapshot(t)
	emp := snap.Employees[0]

	// Department drops to 10 hours from July 15: 11 working days before,
	// 15 from the 15th on (the 4th is a holiday, the 7th and 14th Sundays).
	dept := snap.Departments["Packing"]
	dept.Hours = 10
	dept.HoursHistory = []department.HoursPoint{
		{Hours: 12, EffectiveDate: date(2024, 1, 1)},
		{Hours: 10, EffectiveDate: date(2024, 7, 15)},
	}
	snap.Departments["Packing"] = dept

	s, err := ComputeMonthSummary(snap, emp, "2024-07")
	require.NoError(t, err)
	assert.Equal(t, float64(11*12+15*10), s.ExpectedHours)
}

func TestComputeMonthSummary_HorizonClipsExpectedHours(t *testing.T) {
	snap := fullMonthSnapshot(t)
	emp := snap.Employees[0]
	snap.Horizon = date(2024, 7, 10)

	s, err := ComputeMonthSummary(snap, emp, "2024-07")
	require.NoError(t, err)

	// Days 1..10 minus Sunday the 7th minus the holiday on the 4th.
	assert.Equal(t, float64(8*12), s.ExpectedHours)
}

func TestComputeMonthSummary_VarianceSign(t *testing.T) {
	snap := fullMonthSnapshot(t)
	emp := snap.Employees[0]

	// Drop half the entries: underpaid, variance negative.
	emp.Entries = emp.Entries[:13]
	s, err := ComputeMonthSummary(snap, emp, "2024-07")
	require.NoError(t, err)
	assert.True(t, s.Variance.IsNegative())
}

func TestMonthSummaries_SkipsNonOverlappingEmployees(t *testing.T) {
	snap := fullMonthSnapshot(t)
	snap.Employees = append(snap.Employees, employee.Employee{
		Name:      "Newcomer",
		StartDate: date(2024, 8, 1),
	})

	summaries, err := MonthSummaries(snap, "2024-07")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Asha", summaries[0].EmployeeName)
}
