package report

import (
	"context"
	"time"
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

// Service は帳票に関する読み取り専用ユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は帳票ユースケースの公開インターフェースです。
type UseCase interface {
	PayHistory(ctx context.Context, employeeID int64, order Order) ([]*PayrollEntry, error)
	TotalPayByJobTitle(ctx context.Context, year int, month time.Month) ([]GroupTotal, error)
	TotalPayByDivision(ctx context.Context, year int, month time.Month) ([]GroupTotal, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// PayHistory は従業員の給与履歴を返します。並び順は呼び出し側が明示します。
func (s *Service) PayHistory(ctx context.Context, employeeID int64, order Order) ([]*PayrollEntry, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	switch order {
	case OrderAsc, OrderDesc:
	default:
		return nil, ErrInvalidOrder
	}

	var entries []*PayrollEntry
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.PayHistory(txCtx, employeeID, order)
		if err != nil {
			return err
		}
		entries = result
		return nil
	}); err != nil {
		return nil, err
	}

	return entries, nil
}

// TotalPayByJobTitle は指定年月の職位別支給合計を返します。
// 現在の職位を持たない従業員の支給は集計から除外されます。
func (s *Service) TotalPayByJobTitle(ctx context.Context, year int, month time.Month) ([]GroupTotal, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	var totals []GroupTotal
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.TotalPayByJobTitle(txCtx, year, month)
		if err != nil {
			return err
		}
		totals = result
		return nil
	}); err != nil {
		return nil, err
	}

	return totals, nil
}

// TotalPayByDivision は指定年月の部門別支給合計を返します。
// 現在の部門を持たない従業員の支給は集計から除外されます。
func (s *Service) TotalPayByDivision(ctx context.Context, year int, month time.Month) ([]GroupTotal, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	var totals []GroupTotal
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.TotalPayByDivision(txCtx, year, month)
		if err != nil {
			return err
		}
		totals = result
		return nil
	}); err != nil {
		return nil, err
	}

	return totals, nil
}

func validateMonth(year int, month time.Month) error {
	if year < 1 || month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}
