package roles

import "context"

type Repository interface {
	List(ctx context.Context) ([]Role, error)
}
