package timeline

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
)

// Point is one effective-dated value in a history.
type Point[V any] struct {
	Value         V
	EffectiveDate time.Time
}

// ResolveAsOf returns the value of the point with the latest effective date
// not after query, or base when no point qualifies. When two points share an
// effective date the one appended last wins; the write path rejects
// duplicate effective dates, so this only matters for pre-existing data.
func ResolveAsOf[V any](history []Point[V], base V, query time.Time) V {
	best := -1
	for i, p := range history {
		if p.EffectiveDate.After(query) {
			continue
		}
		if best == -1 || !p.EffectiveDate.Before(history[best].EffectiveDate) {
			best = i
		}
	}
	if best == -1 {
		return base
	}
	return history[best].Value
}

// SalaryAsOf resolves the employee's monthly salary in force on query.
func SalaryAsOf(e employee.Employee, query time.Time) decimal.Decimal {
	points := make([]Point[decimal.Decimal], 0, len(e.SalaryHistory))
	for _, p := range e.SalaryHistory {
		points = append(points, Point[decimal.Decimal]{Value: p.Salary, EffectiveDate: p.EffectiveDate})
	}
	return ResolveAsOf(points, e.BaseSalary, query)
}

// HoursAsOf resolves the department's daily hours in force on query.
func HoursAsOf(d department.Department, query time.Time) float64 {
	points := make([]Point[float64], 0, len(d.HoursHistory))
	for _, p := range d.HoursHistory {
		points = append(points, Point[float64]{Value: p.Hours, EffectiveDate: p.EffectiveDate})
	}
	return ResolveAsOf(points, d.Hours, query)
}
