package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-records/internal/core/report"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

// ReportRepository は PostgreSQL 上で帳票集計を行う実装です。
type ReportRepository struct {
	pool pgdb.Queryer
}

// NewReportRepository は ReportRepository を生成します。
func NewReportRepository(pool pgdb.Queryer) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// PayHistory は従業員の給与明細を期間開始日順で取得します。
func (r *ReportRepository) PayHistory(ctx context.Context, employeeID int64, order report.Order) ([]*report.PayrollEntry, error) {
	// order はサービス層で列挙値として検証済みのためそのまま連結します。
	direction := "ASC"
	if order == report.OrderDesc {
		direction = "DESC"
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT payroll_id, employee_id, amount::text, pay_period_start, pay_period_end
          FROM payroll
         WHERE employee_id = $1
         ORDER BY pay_period_start `+direction+`
    `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*report.PayrollEntry, 0)
	for rows.Next() {
		var (
			entry      report.PayrollEntry
			amountText string
		)
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &amountText, &entry.PeriodStart, &entry.PeriodEnd); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			return nil, err
		}
		entry.Amount = amount
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// TotalPayByJobTitle は期間終了日が指定年月に含まれる支給を現在の職位ごとに合計します。
func (r *ReportRepository) TotalPayByJobTitle(ctx context.Context, year int, month time.Month) ([]report.GroupTotal, error) {
	start, end := monthWindow(year, month)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT j.title, SUM(p.amount)::text
          FROM payroll p
          JOIN employee_job_titles ej ON ej.employee_id = p.employee_id
          JOIN job_titles j ON j.job_title_id = ej.job_title_id
         WHERE p.pay_period_end >= $1 AND p.pay_period_end < $2
         GROUP BY j.title
         ORDER BY j.title
    `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroupTotals(rows)
}

// TotalPayByDivision は期間終了日が指定年月に含まれる支給を現在の部門ごとに合計します。
func (r *ReportRepository) TotalPayByDivision(ctx context.Context, year int, month time.Month) ([]report.GroupTotal, error) {
	start, end := monthWindow(year, month)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT d.name, SUM(p.amount)::text
          FROM payroll p
          JOIN employee_division ed ON ed.employee_id = p.employee_id
          JOIN division d ON d.division_id = ed.division_id
         WHERE p.pay_period_end >= $1 AND p.pay_period_end < $2
         GROUP BY d.name
         ORDER BY d.name
    `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroupTotals(rows)
}

func collectGroupTotals(rows pgx.Rows) ([]report.GroupTotal, error) {
	totals := make([]report.GroupTotal, 0)
	for rows.Next() {
		var (
			name      string
			totalText string
		)
		if err := rows.Scan(&name, &totalText); err != nil {
			return nil, err
		}
		total, err := decimal.NewFromString(totalText)
		if err != nil {
			return nil, err
		}
		totals = append(totals, report.GroupTotal{Name: name, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
