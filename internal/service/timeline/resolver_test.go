package timeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveAsOf(t *testing.T) {
	history := []Point[int]{
		{Value: 500, EffectiveDate: date(2024, 1, 1)},
		{Value: 700, EffectiveDate: date(2024, 6, 1)},
	}

	assert.Equal(t, 500, ResolveAsOf(history, 400, date(2024, 3, 1)))
	assert.Equal(t, 400, ResolveAsOf(history, 400, date(2023, 12, 1)))
	assert.Equal(t, 700, ResolveAsOf(history, 400, date(2024, 12, 1)))

	// Exact effective date qualifies.
	assert.Equal(t, 700, ResolveAsOf(history, 400, date(2024, 6, 1)))
}

func TestResolveAsOf_EmptyHistory(t *testing.T) {
	assert.Equal(t, 42, ResolveAsOf(nil, 42, date(2024, 1, 1)))
}

func TestResolveAsOf_UnsortedHistory(t *testing.T) {
	history := []Point[int]{
		{Value: 700, EffectiveDate: date(2024, 6, 1)},
		{Value: 500, EffectiveDate: date(2024, 1, 1)},
	}
	assert.Equal(t, 500, ResolveAsOf(history, 400, date(2024, 3, 1)))
	assert.Equal(t, 700, ResolveAsOf(history, 400, date(2024, 7, 1)))
}

func TestResolveAsOf_DuplicateEffectiveDate_LastAppendedWins(t *testing.T) {
	history := []Point[int]{
		{Value: 500, EffectiveDate: date(2024, 1, 1)},
		{Value: 600, EffectiveDate: date(2024, 1, 1)},
	}
	assert.Equal(t, 600, ResolveAsOf(history, 400, date(2024, 2, 1)))
}

func TestSalaryAsOf(t *testing.T) {
	emp := employee.Employee{
		BaseSalary: decimal.NewFromInt(40000),
		SalaryHistory: []employee.SalaryPoint{
			{Salary: decimal.NewFromInt(50000), EffectiveDate: date(2024, 1, 1)},
			{Salary: decimal.NewFromInt(70000), EffectiveDate: date(2024, 6, 1)},
		},
	}

	assert.True(t, SalaryAsOf(emp, date(2023, 12, 1)).Equal(decimal.NewFromInt(40000)))
	assert.True(t, SalaryAsOf(emp, date(2024, 3, 1)).Equal(decimal.NewFromInt(50000)))
	assert.True(t, SalaryAsOf(emp, date(2024, 12, 1)).Equal(decimal.NewFromInt(70000)))
}

func TestHoursAsOf(t *testing.T) {
	dept := department.Department{
		Hours: 12,
		HoursHistory: []department.HoursPoint{
			{Hours: 10, EffectiveDate: date(2024, 4, 1)},
		},
	}

	assert.Equal(t, float64(12), HoursAsOf(dept, date(2024, 3, 31)))
	assert.Equal(t, float64(10), HoursAsOf(dept, date(2024, 4, 1)))
}
