package overlay

import (
	"context"
	"fmt"
	"strings"

	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/service/timeline"
)

// PaymentCommitter persists one staged payment-status cell.
type PaymentCommitter interface {
	CommitPayment(ctx context.Context, employeeName, month string, status payment.Status) error
}

// PaymentTableID names the monthly payment grid.
func PaymentTableID(month string) string {
	return "salary-" + month
}

// PaymentTableMonth extracts the month from a payment table id.
func PaymentTableMonth(tableID string) (string, bool) {
	month, ok := strings.CutPrefix(tableID, "salary-")
	return month, ok
}

// PaymentTracker overlays the monthly payment grid: cell keys are employee
// names, cell values are {status, method}. An employee who has left the
// working set between start and save is reported as a cell error and
// skipped; the rest of the pass continues.
type PaymentTracker struct {
	*Manager[payment.Status, payment.StatusPatch]
}

func NewPaymentTracker(committer PaymentCommitter, afterSave func(ctx context.Context)) *PaymentTracker {
	return &PaymentTracker{
		Manager: NewManager(Config[payment.Status, payment.StatusPatch]{
			Merge: payment.Status.Apply,
			Validate: func(s payment.Status) error {
				return s.Validate()
			},
			Commit: func(ctx context.Context, tableID, key string, s payment.Status) error {
				month, ok := PaymentTableMonth(tableID)
				if !ok {
					return fmt.Errorf("malformed payment table id %q", tableID)
				}
				return committer.CommitPayment(ctx, key, month, s)
			},
			AfterSave: afterSave,
		}),
	}
}

// BuildPaymentCells snapshots the payment status of every employee active
// in the month, defaulting to unpaid where no record exists.
func BuildPaymentCells(snap roster.Snapshot, month string) (map[string]payment.Status, error) {
	monthStart, monthEnd, err := timeline.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	cells := make(map[string]payment.Status)
	for _, emp := range snap.Employees {
		if !emp.ActiveInRange(monthStart, monthEnd) {
			continue
		}
		cells[emp.Name] = emp.PaymentFor(month)
	}
	return cells, nil
}

// StartMonth opens an edit buffer seeded from the snapshot.
func (t *PaymentTracker) StartMonth(snap roster.Snapshot, month string) error {
	cells, err := BuildPaymentCells(snap, month)
	if err != nil {
		return err
	}
	return t.Start(PaymentTableID(month), cells)
}
