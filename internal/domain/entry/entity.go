package entry

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one employee's attendance record for one date.
// Hours and Pay are authoritative store-side values: computed once when the
// entry is written and never recomputed by readers.
type Entry struct {
	ID           string
	EmployeeName string
	Date         time.Time
	Detail       WorkDetail
	Hours        float64
	Pay          decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DateKey returns the entry date as a YYYY-MM-DD key.
func (e Entry) DateKey() string {
	return e.Date.Format("2006-01-02")
}

// MonthKey returns the YYYY-MM month the entry falls in.
func (e Entry) MonthKey() string {
	return e.Date.Format("2006-01")
}
