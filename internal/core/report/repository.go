package report

import (
	"context"
	"time"
)

// Repository は帳票クエリの抽象です。集計はデータベース側で行われます。
type Repository interface {
	// PayHistory は従業員の給与明細を期間開始日で並べて返します。
	PayHistory(ctx context.Context, employeeID int64, order Order) ([]*PayrollEntry, error)
	// TotalPayByJobTitle は期間終了日が指定年月に含まれる給与を、
	// 従業員の現在の職位ごとに合計します。結果は職位名の昇順です。
	TotalPayByJobTitle(ctx context.Context, year int, month time.Month) ([]GroupTotal, error)
	// TotalPayByDivision は期間終了日が指定年月に含まれる給与を、
	// 従業員の現在の部門ごとに合計します。結果は部門名の昇順です。
	TotalPayByDivision(ctx context.Context, year int, month time.Month) ([]GroupTotal, error)
}
