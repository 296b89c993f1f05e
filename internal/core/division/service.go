package division

import (
	"context"
	"strings"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は部門に関するユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は部門ユースケースの公開インターフェースです。
type UseCase interface {
	CreateDivision(ctx context.Context, name string) (*Division, error)
	GetDivision(ctx context.Context, id int64) (*Division, error)
	ListDivisions(ctx context.Context) ([]*Division, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// CreateDivision は部門を新規登録します。
func (s *Service) CreateDivision(ctx context.Context, name string) (*Division, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}

	var created *Division
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, trimmed)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetDivision は ID で部門を取得します。
func (s *Service) GetDivision(ctx context.Context, id int64) (*Division, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var found *Division
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListDivisions は全部門を名前順で取得します。
func (s *Service) ListDivisions(ctx context.Context) ([]*Division, error) {
	var divisions []*Division
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		divisions = result
		return nil
	}); err != nil {
		return nil, err
	}

	return divisions, nil
}
