package payment

import "context"

type Repository interface {
	// Upsert creates the record lazily on first write for (employee, month).
	Upsert(ctx context.Context, employeeName, month string, status Status) (Record, error)

	ListByEmployee(ctx context.Context, employeeName string) ([]Record, error)
}
