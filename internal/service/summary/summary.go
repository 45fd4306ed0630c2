package summary

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

// MonthSummary is one employee's expected-vs-actual picture for one month.
// TotalHours and TotalPay sum the persisted entries as stored; Variance is
// TotalPay minus ExpectedPay with its sign preserved, so positive means
// paid above expectation.
type MonthSummary struct {
	Month         string          `json:"month"`
	EmployeeName  string          `json:"employee_name"`
	Department    string          `json:"department"`
	TotalHours    float64         `json:"total_hours"`
	TotalPay      decimal.Decimal `json:"total_pay"`
	ExpectedHours float64         `json:"expected_hours"`
	ExpectedPay   decimal.Decimal `json:"expected_pay"`
	Variance      decimal.Decimal `json:"variance"`
	PaymentStatus payment.Status  `json:"payment_status"`
}

// Months enumerates every covered month, from the calendar month of the
// earliest start date through the horizon's month, newest first. Each month
// appears once regardless of who was active in it.
func Months(snap roster.Snapshot) []string {
	earliest, ok := snap.EarliestStart()
	if !ok {
		return nil
	}

	var months []string
	cursor := timeline.Date(earliest.Year(), earliest.Month(), 1)
	horizon := timeline.Date(snap.Horizon.Year(), snap.Horizon.Month(), 1)
	for !cursor.After(horizon) {
		months = append(months, timeline.MonthKey(cursor))
		cursor = cursor.AddDate(0, 1, 0)
	}

	// Descending chronological order.
	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}
	return months
}

// ComputeMonthSummary aggregates one employee's month. Expected hours walk
// the month's working days clipped to the horizon and the active window,
// resolving the department's hours per day; expected pay is the salary in
// force on the first of the month, evaluated once.
func ComputeMonthSummary(snap roster.Snapshot, emp employee.Employee, month string) (MonthSummary, error) {
	monthStart, monthEnd, err := timeline.MonthBounds(month)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("invalid month %q: %w", month, err)
	}

	s := MonthSummary{
		Month:         month,
		EmployeeName:  emp.Name,
		Department:    emp.Department,
		TotalPay:      decimal.Zero,
		ExpectedPay:   decimal.Zero,
		Variance:      decimal.Zero,
		PaymentStatus: emp.PaymentFor(month),
	}

	for _, en := range emp.Entries {
		if strings.HasPrefix(en.DateKey(), month) {
			s.TotalHours += en.Hours
			s.TotalPay = s.TotalPay.Add(en.Pay)
		}
	}

	cal := timeline.NewCalendar(snap)
	dept, hasDept := snap.Department(emp.Department)

	stop := monthEnd
	if snap.Horizon.Before(stop) {
		stop = snap.Horizon
	}
	for day := monthStart; !day.After(stop); day = day.AddDate(0, 0, 1) {
		if !cal.IsWorkingDay(day, emp) {
			continue
		}
		if hasDept {
			s.ExpectedHours += timeline.HoursAsOf(dept, day)
		}
	}

	s.ExpectedPay = timeline.SalaryAsOf(emp, monthStart)
	s.Variance = s.TotalPay.Sub(s.ExpectedPay)
	return s, nil
}

// MonthSummaries aggregates every employee whose active window overlaps the
// month, sorted is left to the caller.
func MonthSummaries(snap roster.Snapshot, month string) ([]MonthSummary, error) {
	monthStart, monthEnd, err := timeline.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	summaries := make([]MonthSummary, 0, len(snap.Employees))
	for _, emp := range snap.Employees {
		if !emp.ActiveInRange(monthStart, monthEnd) {
			continue
		}
		s, err := ComputeMonthSummary(snap, emp, month)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// EmployeeSummaries aggregates every covered month the employee overlaps,
// newest first.
func EmployeeSummaries(snap roster.Snapshot, emp employee.Employee) ([]MonthSummary, error) {
	var summaries []MonthSummary
	for _, month := range Months(snap) {
		monthStart, monthEnd, err := timeline.MonthBounds(month)
		if err != nil {
			return nil, err
		}
		if !emp.ActiveInRange(monthStart, monthEnd) {
			continue
		}
		s, err := ComputeMonthSummary(snap, emp, month)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
