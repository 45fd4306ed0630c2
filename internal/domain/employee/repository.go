package employee

import (
	"context"
	"time"
)

type Repository interface {
	GetByName(ctx context.Context, name string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListNamesByDepartment(ctx context.Context, department string) ([]string, error)
	Create(ctx context.Context, e Employee) (Employee, error)

	// UpdateDepartment overwrites the current assignment; no history is kept.
	UpdateDepartment(ctx context.Context, name, department string) error

	SetEndDate(ctx context.Context, name string, endDate time.Time) error

	// AppendSalary records a salary change: the point is appended to the
	// history and the current base salary is overwritten.
	AppendSalary(ctx context.Context, name string, point SalaryPoint) error
}
