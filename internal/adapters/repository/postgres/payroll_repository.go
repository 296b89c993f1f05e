package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-records/internal/core/payroll"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

// PayrollRepository は PostgreSQL を利用した給与履歴の実装です。
// 金額は NUMERIC のまま文字列でやり取りし、浮動小数点の誤差を避けます。
type PayrollRepository struct {
	pool pgdb.Queryer
}

// NewPayrollRepository は PayrollRepository を生成します。
func NewPayrollRepository(pool pgdb.Queryer) *PayrollRepository {
	return &PayrollRepository{pool: pool}
}

// Create は給与レコードを 1 件追加し、採番された ID を設定して返します。
func (r *PayrollRepository) Create(ctx context.Context, rec *payroll.Record) (*payroll.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO payroll (employee_id, amount, pay_period_start, pay_period_end)
        VALUES ($1, $2::numeric, $3, $4)
        RETURNING payroll_id
    `, rec.EmployeeID, rec.Amount.String(), rec.PeriodStart, rec.PeriodEnd)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, err
	}

	created := *rec
	created.ID = id
	return &created, nil
}

// FindByAmountRange は金額が [min, max] に収まるレコードを取得します。
func (r *PayrollRepository) FindByAmountRange(ctx context.Context, min, max decimal.Decimal) ([]*payroll.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT payroll_id, employee_id, amount::text, pay_period_start, pay_period_end
          FROM payroll
         WHERE amount BETWEEN $1::numeric AND $2::numeric
         ORDER BY employee_id, pay_period_start
    `, min.String(), max.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*payroll.Record, 0)
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// IncreaseAmountsInRange は [min, max] の金額を一括で percent % 引き上げます。
func (r *PayrollRepository) IncreaseAmountsInRange(ctx context.Context, min, max, percent decimal.Decimal) (int64, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE payroll
           SET amount = amount * (1 + $1::numeric / 100)
         WHERE amount BETWEEN $2::numeric AND $3::numeric
    `, percent.String(), min.String(), max.String())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanPayrollRecord(row pgx.Row) (*payroll.Record, error) {
	var (
		id          int64
		employeeID  int64
		amountText  string
		periodStart time.Time
		periodEnd   time.Time
	)

	if err := row.Scan(&id, &employeeID, &amountText, &periodStart, &periodEnd); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, errors.New("payroll: malformed amount value: " + amountText)
	}

	return &payroll.Record{
		ID:          id,
		EmployeeID:  employeeID,
		Amount:      amount,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}, nil
}
