package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

// List implements department.Repository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hours, created_at, updated_at
		FROM departments
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Hours, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	history, err := r.loadHoursHistory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		departments[i].HoursHistory = history[departments[i].Name]
	}

	return departments, nil
}

// GetByName implements department.Repository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, hours, created_at, updated_at
		FROM departments
		WHERE name = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.Hours, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	history, err := r.loadHoursHistoryFor(ctx, name)
	if err != nil {
		return department.Department{}, err
	}
	d.HoursHistory = history

	return d, nil
}

// ExistsByName implements department.Repository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return exists, nil
}

// Create implements department.Repository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, hours, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, name, hours, created_at, updated_at
	`

	var result department.Department
	err := q.QueryRow(ctx, query, d.Name, d.Hours).Scan(
		&result.ID,
		&result.Name,
		&result.Hours,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return department.Department{}, department.ErrDepartmentExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return result, nil
}

// Delete implements department.Repository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, name string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM department_hours_history WHERE department_name = $1`, name); err != nil {
			return fmt.Errorf("failed to delete department hours history: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM departments WHERE name = $1`, name)
		if err != nil {
			if isPgError(err, codeForeignKeyViolation) {
				return department.ErrDepartmentInUse
			}
			return fmt.Errorf("failed to delete department: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return department.ErrDepartmentNotFound
		}
		return nil
	})
}

// AppendHours implements department.Repository.
func (r *departmentRepositoryImpl) AppendHours(ctx context.Context, name string, point department.HoursPoint) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE departments SET hours = $2, updated_at = NOW() WHERE name = $1`, name, point.Hours)
		if err != nil {
			return fmt.Errorf("failed to update department hours: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return department.ErrDepartmentNotFound
		}

		query := `
			INSERT INTO department_hours_history (id, department_name, hours, effective_date, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		`
		if _, err := tx.Exec(ctx, query, name, point.Hours, point.EffectiveDate); err != nil {
			if isPgError(err, codeUniqueViolation) {
				return department.ErrDuplicateEffective
			}
			return fmt.Errorf("failed to append hours history: %w", err)
		}
		return nil
	})
}

func (r *departmentRepositoryImpl) loadHoursHistory(ctx context.Context) (map[string][]department.HoursPoint, error) {
	q := GetQuerier(ctx, r.db)

	// created_at order preserves the append order even when effective
	// dates are retroactive.
	query := `
		SELECT department_name, hours, effective_date
		FROM department_hours_history
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load hours history: %w", err)
	}
	defer rows.Close()

	history := make(map[string][]department.HoursPoint)
	for rows.Next() {
		var name string
		var p department.HoursPoint
		if err := rows.Scan(&name, &p.Hours, &p.EffectiveDate); err != nil {
			return nil, fmt.Errorf("failed to scan hours history: %w", err)
		}
		history[name] = append(history[name], p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return history, nil
}

func (r *departmentRepositoryImpl) loadHoursHistoryFor(ctx context.Context, name string) ([]department.HoursPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT hours, effective_date
		FROM department_hours_history
		WHERE department_name = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load hours history: %w", err)
	}
	defer rows.Close()

	var history []department.HoursPoint
	for rows.Next() {
		var p department.HoursPoint
		if err := rows.Scan(&p.Hours, &p.EffectiveDate); err != nil {
			return nil, fmt.Errorf("failed to scan hours history: %w", err)
		}
		history = append(history, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return history, nil
}
