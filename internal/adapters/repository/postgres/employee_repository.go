package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// selectEmployeeColumns は従業員と現在の所属を引き当てる共通の SELECT 句です。
const selectEmployeeColumns = `
        SELECT e.employee_id,
               e.first_name,
               e.last_name,
               e.ssn,
               e.email,
               ed.division_id,
               d.name,
               ej.job_title_id,
               j.title
          FROM employees e
          LEFT JOIN employee_division ed ON ed.employee_id = e.employee_id
          LEFT JOIN division d ON d.division_id = ed.division_id
          LEFT JOIN employee_job_titles ej ON ej.employee_id = e.employee_id
          LEFT JOIN job_titles j ON j.job_title_id = ej.job_title_id`

// likeEscaper は LIKE パターン内のメタ文字をリテラル扱いにします。
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EmployeeRepository は PostgreSQL を利用した従業員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は従業員を新規作成し、採番された ID を設定して返します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (first_name, last_name, ssn, email)
        VALUES ($1, $2, $3, $4)
        RETURNING employee_id
    `, e.FirstName, e.LastName, e.SSN, e.Email)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, translateEmployeePgError(err)
	}

	created := *e
	created.ID = id
	return &created, nil
}

// Update はスカラー項目を更新し、行が変更されたかどうかを返します。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE employees
           SET first_name = $1,
               last_name = $2,
               ssn = $3,
               email = $4
         WHERE employee_id = $5
    `, e.FirstName, e.LastName, e.SSN, e.Email, e.ID)
	if err != nil {
		return false, translateEmployeePgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete は従業員本体の行のみ削除します。所属行と給与行には触れません。
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return false, translateEmployeePgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByID は ID で従業員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, selectEmployeeColumns+`
         WHERE e.employee_id = $1
         LIMIT 1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindBySSN は SSN の完全一致で従業員を取得します。
func (r *EmployeeRepository) FindBySSN(ctx context.Context, ssn string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, selectEmployeeColumns+`
         WHERE e.ssn = $1
         LIMIT 1
    `, ssn)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// SearchByName は姓または名の部分一致検索を行います。% _ \ はリテラルとして扱われます。
func (r *EmployeeRepository) SearchByName(ctx context.Context, fragment string) ([]*employee.Employee, error) {
	pattern := "%" + likeEscaper.Replace(fragment) + "%"

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, selectEmployeeColumns+`
         WHERE e.first_name LIKE $1 ESCAPE '\' OR e.last_name LIKE $1 ESCAPE '\'
         ORDER BY e.last_name, e.first_name
    `, pattern)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListAll は全従業員を姓、名の順で取得します。
func (r *EmployeeRepository) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, selectEmployeeColumns+`
         ORDER BY e.last_name, e.first_name
    `)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// EmployeeExists は従業員の存在を確認します。
func (r *EmployeeRepository) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, translateEmployeePgError(err)
	}
	return exists, nil
}

func collectEmployees(rows pgx.Rows) ([]*employee.Employee, error) {
	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id           int64
		firstName    string
		lastName     string
		ssn          string
		email        string
		divisionID   sql.NullInt64
		divisionName sql.NullString
		jobTitleID   sql.NullInt64
		jobTitle     sql.NullString
	)

	if err := row.Scan(
		&id,
		&firstName,
		&lastName,
		&ssn,
		&email,
		&divisionID,
		&divisionName,
		&jobTitleID,
		&jobTitle,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	e := &employee.Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		SSN:       ssn,
		Email:     email,
	}

	if divisionID.Valid {
		v := divisionID.Int64
		e.DivisionID = &v
	}
	if divisionName.Valid {
		v := divisionName.String
		e.DivisionName = &v
	}
	if jobTitleID.Valid {
		v := jobTitleID.Int64
		e.JobTitleID = &v
	}
	if jobTitle.Valid {
		v := jobTitle.String
		e.JobTitleName = &v
	}

	return e, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrSSNAlreadyExists
		case checkViolationCode:
			return employee.ErrInvalidSSN
		}
	}

	return err
}
