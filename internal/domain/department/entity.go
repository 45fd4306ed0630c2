package department

import "time"

// HoursPoint is one effective-dated change to a department's daily hours.
type HoursPoint struct {
	Hours         float64   `json:"hours"`
	EffectiveDate time.Time `json:"effective_date"`
}

// Department groups employees and carries the daily-hours expectation used
// for attendance math. Hours is the current value; HoursHistory holds every
// change with its effective date, newest appended last.
type Department struct {
	ID           string
	Name         string
	Hours        float64
	HoursHistory []HoursPoint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
