package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record は給与明細の 1 行です。支給期間は両端を含む日付範囲です。
// new_period 方針では挿入後に変更されず、in_place 方針でのみ Amount が直接更新されます。
type Record struct {
	ID          int64
	EmployeeID  int64
	Amount      decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// PeriodDays は支給期間の日数を返します。両端を含みます。
func (r *Record) PeriodDays() int {
	return int(r.PeriodEnd.Sub(r.PeriodStart).Hours()/24) + 1
}
