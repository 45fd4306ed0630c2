package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
)

// SalaryPoint is one effective-dated salary change, newest appended last.
type SalaryPoint struct {
	Salary        decimal.Decimal `json:"salary"`
	EffectiveDate time.Time       `json:"effective_date"`
}

// Employee is keyed by its unique name. EndDate is a soft inactivation:
// once set, no new entries are generated past it, but existing entries stay.
// Department is the current assignment only; it is overwritten on transfer
// and carries no history, unlike salary and department hours.
type Employee struct {
	ID            string
	Name          string
	BaseSalary    decimal.Decimal
	StartDate     time.Time
	EndDate       *time.Time
	Department    string
	SalaryHistory []SalaryPoint
	Entries       []entry.Entry
	Payments      []payment.Record
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveOn reports whether the employee's active window covers date.
func (e Employee) ActiveOn(date time.Time) bool {
	if date.Before(e.StartDate) {
		return false
	}
	if e.EndDate != nil && date.After(*e.EndDate) {
		return false
	}
	return true
}

// ActiveInRange reports whether the active window overlaps [from, to].
func (e Employee) ActiveInRange(from, to time.Time) bool {
	if e.StartDate.After(to) {
		return false
	}
	if e.EndDate != nil && e.EndDate.Before(from) {
		return false
	}
	return true
}

// EntryOn returns the entry for date, or nil.
func (e Employee) EntryOn(date time.Time) *entry.Entry {
	key := date.Format("2006-01-02")
	for i := range e.Entries {
		if e.Entries[i].DateKey() == key {
			return &e.Entries[i]
		}
	}
	return nil
}

// PaymentFor returns the payment status for a YYYY-MM month, defaulting to
// unpaid with no method when no record exists.
func (e Employee) PaymentFor(month string) payment.Status {
	for _, rec := range e.Payments {
		if rec.Month == month {
			return rec.Status
		}
	}
	return payment.Default()
}
