package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) entry.Repository {
	return &entryRepositoryImpl{db: db}
}

// Create implements entry.Repository.
func (r *entryRepositoryImpl) Create(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries
			(id, employee_name, date, work_type, start_time, end_time, custom_hours, hours, pay, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	result := e
	err := q.QueryRow(ctx, query,
		e.EmployeeName, e.Date, string(e.Detail.Type),
		e.Detail.StartTime, e.Detail.EndTime, e.Detail.Hours,
		e.Hours, e.Pay,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return entry.Entry{}, entry.ErrEntryExists
		}
		if isPgError(err, codeForeignKeyViolation) {
			return entry.Entry{}, entry.ErrEmployeeNotFound
		}
		return entry.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return result, nil
}

// Upsert implements entry.Repository.
func (r *entryRepositoryImpl) Upsert(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries
			(id, employee_name, date, work_type, start_time, end_time, custom_hours, hours, pay, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_name, date) DO UPDATE SET
			work_type = EXCLUDED.work_type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			custom_hours = EXCLUDED.custom_hours,
			hours = EXCLUDED.hours,
			pay = EXCLUDED.pay,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	result := e
	err := q.QueryRow(ctx, query,
		e.EmployeeName, e.Date, string(e.Detail.Type),
		e.Detail.StartTime, e.Detail.EndTime, e.Detail.Hours,
		e.Hours, e.Pay,
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if isPgError(err, codeForeignKeyViolation) {
			return entry.Entry{}, entry.ErrEmployeeNotFound
		}
		return entry.Entry{}, fmt.Errorf("failed to upsert entry: %w", err)
	}

	return result, nil
}

// GetByEmployeeAndDate implements entry.Repository.
func (r *entryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, name string, date time.Time) (*entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, date, work_type, start_time, end_time, custom_hours, hours, pay, created_at, updated_at
		FROM attendance_entries
		WHERE employee_name = $1 AND date = $2
	`

	e, err := scanEntry(q.QueryRow(ctx, query, name, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &e, nil
}

// ListByEmployee implements entry.Repository.
func (r *entryRepositoryImpl) ListByEmployee(ctx context.Context, name string) ([]entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, date, work_type, start_time, end_time, custom_hours, hours, pay, created_at, updated_at
		FROM attendance_entries
		WHERE employee_name = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (entry.Entry, error) {
	var e entry.Entry
	var workType string
	err := row.Scan(
		&e.ID,
		&e.EmployeeName,
		&e.Date,
		&workType,
		&e.Detail.StartTime,
		&e.Detail.EndTime,
		&e.Detail.Hours,
		&e.Hours,
		&e.Pay,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return entry.Entry{}, err
	}
	e.Detail.Type = entry.WorkType(workType)
	return e, nil
}
