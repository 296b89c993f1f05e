package division

import "context"

// Repository は部門エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, name string) (*Division, error)
	FindByID(ctx context.Context, id int64) (*Division, error)
	List(ctx context.Context) ([]*Division, error)
	DivisionExists(ctx context.Context, id int64) (bool, error)
}
