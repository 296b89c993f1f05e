package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
)

// AssignmentRepository は従業員と部門・職位の関連を差し替える実装です。
// 差し替えは DELETE してから INSERT する方式で、常に 1 件の関連に保ちます。
type AssignmentRepository struct {
	pool pgdb.Queryer
}

// NewAssignmentRepository は AssignmentRepository を生成します。
func NewAssignmentRepository(pool pgdb.Queryer) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// ReplaceDivision は従業員の所属部門を入れ替えます。
func (r *AssignmentRepository) ReplaceDivision(ctx context.Context, employeeID, divisionID int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	if _, err := exec.Exec(ctx, `DELETE FROM employee_division WHERE employee_id = $1`, employeeID); err != nil {
		return translateAssignmentPgError(err)
	}
	if _, err := exec.Exec(ctx, `
        INSERT INTO employee_division (employee_id, division_id)
        VALUES ($1, $2)
    `, employeeID, divisionID); err != nil {
		return translateAssignmentPgError(err)
	}
	return nil
}

// ReplaceJobTitle は従業員の職位を入れ替えます。
func (r *AssignmentRepository) ReplaceJobTitle(ctx context.Context, employeeID, jobTitleID int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	if _, err := exec.Exec(ctx, `DELETE FROM employee_job_titles WHERE employee_id = $1`, employeeID); err != nil {
		return translateAssignmentPgError(err)
	}
	if _, err := exec.Exec(ctx, `
        INSERT INTO employee_job_titles (employee_id, job_title_id)
        VALUES ($1, $2)
    `, employeeID, jobTitleID); err != nil {
		return translateAssignmentPgError(err)
	}
	return nil
}

func translateAssignmentPgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		switch pgErr.ConstraintName {
		case "employee_division_division_id_fkey":
			return employee.ErrDivisionNotFound
		case "employee_job_titles_job_title_id_fkey":
			return employee.ErrJobTitleNotFound
		}
	}

	return err
}
