package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollEntry は帳票用の給与明細スナップショットです。
type PayrollEntry struct {
	ID          int64
	EmployeeID  int64
	Amount      decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GroupTotal はグループ名ごとの支給合計です。
type GroupTotal struct {
	Name  string
	Total decimal.Decimal
}

// Order は給与履歴の並び順です。
type Order string

const (
	// OrderAsc は期間開始日の昇順です。
	OrderAsc Order = "asc"
	// OrderDesc は期間開始日の降順です。
	OrderDesc Order = "desc"
)
