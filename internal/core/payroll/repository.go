package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository は給与明細永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	// FindByAmountRange は金額が [min, max] に含まれる行を返します。両端を含みます。
	FindByAmountRange(ctx context.Context, min, max decimal.Decimal) ([]*Record, error)
	// IncreaseAmountsInRange は金額が [min, max] に含まれる行の金額を
	// (1 + percent/100) 倍へ直接更新し、更新行数を返します。
	IncreaseAmountsInRange(ctx context.Context, min, max, percent decimal.Decimal) (int64, error)
}

// EmployeeDirectory は従業員の存在確認を提供します。
type EmployeeDirectory interface {
	EmployeeExists(ctx context.Context, id int64) (bool, error)
}
