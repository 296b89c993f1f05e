package jobtitle

import "context"

// Repository は職位エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, title string) (*JobTitle, error)
	FindByID(ctx context.Context, id int64) (*JobTitle, error)
	List(ctx context.Context) ([]*JobTitle, error)
	JobTitleExists(ctx context.Context, id int64) (bool, error)
}
