package department

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, d Department) (Department, error)
	Delete(ctx context.Context, name string) error

	// AppendHours records an hours change: the point is appended to the
	// history and the current hours value is overwritten.
	AppendHours(ctx context.Context, name string, point HoursPoint) error
}
