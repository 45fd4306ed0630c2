package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db       *database.DB
	entries  *entryRepositoryImpl
	payments *paymentRepositoryImpl
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{
		db:       db,
		entries:  &entryRepositoryImpl{db: db},
		payments: &paymentRepositoryImpl{db: db},
	}
}

// GetByName implements employee.Repository.
func (r *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, base_salary, start_date, end_date, department_name, created_at, updated_at
		FROM employees
		WHERE name = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&e.ID,
		&e.Name,
		&e.BaseSalary,
		&e.StartDate,
		&e.EndDate,
		&e.Department,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := r.attach(ctx, &e); err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, base_salary, start_date, end_date, department_name, created_at, updated_at
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.BaseSalary,
			&e.StartDate,
			&e.EndDate,
			&e.Department,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for i := range employees {
		if err := r.attach(ctx, &employees[i]); err != nil {
			return nil, err
		}
	}

	return employees, nil
}

// ExistsByName implements employee.Repository.
func (r *employeeRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

// ListNamesByDepartment implements employee.Repository.
func (r *employeeRepositoryImpl) ListNamesByDepartment(ctx context.Context, dept string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT name FROM employees WHERE department_name = $1 ORDER BY name ASC`, dept)
	if err != nil {
		return nil, fmt.Errorf("failed to list department members: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan employee name: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, base_salary, start_date, department_name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, base_salary, start_date, end_date, department_name, created_at, updated_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, e.Name, e.BaseSalary, e.StartDate, e.Department).Scan(
		&result.ID,
		&result.Name,
		&result.BaseSalary,
		&result.StartDate,
		&result.EndDate,
		&result.Department,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return employee.Employee{}, employee.ErrNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// UpdateDepartment implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateDepartment(ctx context.Context, name, dept string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET department_name = $2, updated_at = NOW() WHERE name = $1`, name, dept)
	if err != nil {
		return fmt.Errorf("failed to update employee department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetEndDate implements employee.Repository.
func (r *employeeRepositoryImpl) SetEndDate(ctx context.Context, name string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET end_date = $2, updated_at = NOW() WHERE name = $1`, name, endDate)
	if err != nil {
		return fmt.Errorf("failed to set employee end date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AppendSalary implements employee.Repository.
func (r *employeeRepositoryImpl) AppendSalary(ctx context.Context, name string, point employee.SalaryPoint) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE employees SET base_salary = $2, updated_at = NOW() WHERE name = $1`, name, point.Salary)
		if err != nil {
			return fmt.Errorf("failed to update employee salary: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		query := `
			INSERT INTO employee_salary_history (id, employee_name, salary, effective_date, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, NOW())
		`
		if _, err := tx.Exec(ctx, query, name, point.Salary, point.EffectiveDate); err != nil {
			if isPgError(err, codeUniqueViolation) {
				return employee.ErrDuplicateEffective
			}
			return fmt.Errorf("failed to append salary history: %w", err)
		}
		return nil
	})
}

// attach loads the employee's salary history, entries and payment records.
func (r *employeeRepositoryImpl) attach(ctx context.Context, e *employee.Employee) error {
	history, err := r.loadSalaryHistory(ctx, e.Name)
	if err != nil {
		return err
	}
	e.SalaryHistory = history

	entries, err := r.entries.ListByEmployee(ctx, e.Name)
	if err != nil {
		return err
	}
	e.Entries = entries

	payments, err := r.payments.ListByEmployee(ctx, e.Name)
	if err != nil {
		return err
	}
	e.Payments = payments

	return nil
}

func (r *employeeRepositoryImpl) loadSalaryHistory(ctx context.Context, name string) ([]employee.SalaryPoint, error) {
	q := GetQuerier(ctx, r.db)

	// created_at order preserves the append order even when effective
	// dates are retroactive.
	query := `
		SELECT salary, effective_date
		FROM employee_salary_history
		WHERE employee_name = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load salary history: %w", err)
	}
	defer rows.Close()

	var history []employee.SalaryPoint
	for rows.Next() {
		var p employee.SalaryPoint
		if err := rows.Scan(&p.Salary, &p.EffectiveDate); err != nil {
			return nil, fmt.Errorf("failed to scan salary history: %w", err)
		}
		history = append(history, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return history, nil
}
