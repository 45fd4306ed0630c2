package postgresql

import (
	"context"
	"fmt"

	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.Repository {
	return &paymentRepositoryImpl{db: db}
}

// Upsert implements payment.Repository.
func (r *paymentRepositoryImpl) Upsert(ctx context.Context, employeeName, month string, status payment.Status) (payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_statuses (id, employee_name, month, status, method, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_name, month) DO UPDATE SET
			status = EXCLUDED.status,
			method = EXCLUDED.method,
			updated_at = NOW()
		RETURNING id, employee_name, month, status, method, created_at, updated_at
	`

	var rec payment.Record
	err := q.QueryRow(ctx, query, employeeName, month, status.Status, status.Method).Scan(
		&rec.ID,
		&rec.EmployeeName,
		&rec.Month,
		&rec.Status.Status,
		&rec.Status.Method,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, codeForeignKeyViolation) {
			return payment.Record{}, payment.ErrEmployeeNotFound
		}
		return payment.Record{}, fmt.Errorf("failed to upsert payment status: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements payment.Repository.
func (r *paymentRepositoryImpl) ListByEmployee(ctx context.Context, employeeName string) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, month, status, method, created_at, updated_at
		FROM payment_statuses
		WHERE employee_name = $1
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, employeeName)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment statuses: %w", err)
	}
	defer rows.Close()

	var records []payment.Record
	for rows.Next() {
		var rec payment.Record
		err := rows.Scan(
			&rec.ID,
			&rec.EmployeeName,
			&rec.Month,
			&rec.Status.Status,
			&rec.Status.Method,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment status: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
