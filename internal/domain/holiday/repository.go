package holiday

import "context"

type Repository interface {
	List(ctx context.Context) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
}
