package jobtitle

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

// Service は職位に関するユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は職位ユースケースの公開インターフェースです。
type UseCase interface {
	CreateJobTitle(ctx context.Context, title string) (*JobTitle, error)
	GetJobTitle(ctx context.Context, id int64) (*JobTitle, error)
	ListJobTitles(ctx context.Context) ([]*JobTitle, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// CreateJobTitle は職位を新規登録します。
func (s *Service) CreateJobTitle(ctx context.Context, title string) (*JobTitle, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrInvalidTitle
	}

	var created *JobTitle
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

// GetJobTitle は ID で職位を取得します。
func (s *Service) GetJobTitle(ctx context.Context, id int64) (*JobTitle, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var found *JobTitle
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

// ListJobTitles は全職位を名称順で取得します。
func (s *Service) ListJobTitles(ctx context.Context) ([]*JobTitle, error) {
	var titles []*JobTitle
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		titles = result
		return nil
	}); err != nil {
		return nil, err
	}

	return titles, nil
}
