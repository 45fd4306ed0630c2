package entry

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new entry; ErrEntryExists if one is already present
	// for (employee, date).
	Create(ctx context.Context, e Entry) (Entry, error)

	// Upsert inserts or replaces the entry for (employee, date).
	Upsert(ctx context.Context, e Entry) (Entry, error)

	GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*Entry, error)

	ListByEmployee(ctx context.Context, employeeName string) ([]Entry, error)
}
