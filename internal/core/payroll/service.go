package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
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

// Policy は範囲指定昇給の適用方針です。
type Policy string

const (
	// PolicyInPlace は対象行の金額を直接乗算します。調整前の金額は残りません。
	PolicyInPlace Policy = "in_place"
	// PolicyNewPeriod は対象従業員ごとに翌期間の行を新規追加し、履歴を保全します。
	PolicyNewPeriod Policy = "new_period"
)

// ParsePolicy は設定値やフラグ値から Policy を解釈します。
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(raw) {
	case PolicyInPlace:
		return PolicyInPlace, nil
	case PolicyNewPeriod:
		return PolicyNewPeriod, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, raw)
	}
}

var hundred = decimal.NewFromInt(100)

// Service は給与明細と範囲指定昇給のユースケースをまとめます。
type Service struct {
	repo      Repository
	employees EmployeeDirectory
	tx        TransactionManager
}

// UseCase は給与ユースケースの公開インターフェースです。
type UseCase interface {
	AddRecord(ctx context.Context, in AddRecordInput) (*Record, error)
	IncreaseInRange(ctx context.Context, in IncreaseInput) (int, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, employees EmployeeDirectory, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, employees: employees, tx: tx}
}

// AddRecordInput は給与明細登録時の入力です。
type AddRecordInput struct {
	EmployeeID  int64
	Amount      decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// IncreaseInput は範囲指定昇給の入力です。
// 金額範囲 [Min, Max] は両端を含み、Percent は 3.2 なら +3.2% を表します。
type IncreaseInput struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Percent decimal.Decimal
	Policy  Policy
}

// AddRecord は給与明細を 1 件登録します。
func (s *Service) AddRecord(ctx context.Context, in AddRecordInput) (*Record, error) {
	if in.EmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}
	if in.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	start := normalizeDate(in.PeriodStart)
	end := normalizeDate(in.PeriodEnd)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	var created *Record
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		exists, err := s.employees.EmployeeExists(txCtx, in.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrEmployeeNotFound
		}

		result, err := s.repo.Create(txCtx, &Record{
			EmployeeID:  in.EmployeeID,
			Amount:      in.Amount,
			PeriodStart: start,
			PeriodEnd:   end,
		})
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

// IncreaseInRange は金額が範囲内の給与へ percent % の昇給を適用します。
// in_place 方針では更新した行数、new_period 方針では追加した行数
// (対象従業員 1 人につき 1 行) を返します。全体が 1 トランザクションです。
func (s *Service) IncreaseInRange(ctx context.Context, in IncreaseInput) (int, error) {
	if in.Min.IsNegative() || in.Min.Cmp(in.Max) >= 0 {
		return 0, ErrInvalidRange
	}
	if !in.Percent.IsPositive() {
		return 0, ErrInvalidPercent
	}

	var affected int
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		switch in.Policy {
		case PolicyInPlace:
			count, err := s.repo.IncreaseAmountsInRange(txCtx, in.Min, in.Max, in.Percent)
			if err != nil {
				return err
			}
			affected = int(count)
			return nil
		case PolicyNewPeriod:
			count, err := s.appendNextPeriods(txCtx, in)
			if err != nil {
				return err
			}
			affected = count
			return nil
		default:
			return fmt.Errorf("%w: %q", ErrInvalidPolicy, in.Policy)
		}
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// appendNextPeriods は範囲内の行を持つ従業員ごとに、期間開始日が最新の行を基準として
// 翌期間の行を追加します。新しい期間は直前期間の翌日から始まり、同じ日数にわたります。
func (s *Service) appendNextPeriods(ctx context.Context, in IncreaseInput) (int, error) {
	inRange, err := s.repo.FindByAmountRange(ctx, in.Min, in.Max)
	if err != nil {
		return 0, err
	}
	if len(inRange) == 0 {
		return 0, nil
	}

	latestByEmployee := make(map[int64]*Record)
	for _, record := range inRange {
		current, ok := latestByEmployee[record.EmployeeID]
		if !ok || record.PeriodStart.After(current.PeriodStart) {
			latestByEmployee[record.EmployeeID] = record
		}
	}

	employeeIDs := make([]int64, 0, len(latestByEmployee))
	for id := range latestByEmployee {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Slice(employeeIDs, func(i, j int) bool { return employeeIDs[i] < employeeIDs[j] })

	factor := decimal.NewFromInt(1).Add(in.Percent.Div(hundred))

	created := 0
	for _, employeeID := range employeeIDs {
		prior := latestByEmployee[employeeID]

		nextStart := prior.PeriodEnd.AddDate(0, 0, 1)
		nextEnd := nextStart.AddDate(0, 0, prior.PeriodDays()-1)

		if _, err := s.repo.Create(ctx, &Record{
			EmployeeID:  employeeID,
			Amount:      prior.Amount.Mul(factor),
			PeriodStart: nextStart,
			PeriodEnd:   nextEnd,
		}); err != nil {
			return 0, err
		}
		created++
	}

	return created, nil
}

func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
