package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/division"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
)

// DivisionRepository は PostgreSQL を利用した部門マスタの実装です。
type DivisionRepository struct {
	pool pgdb.Queryer
}

// NewDivisionRepository は DivisionRepository を生成します。
func NewDivisionRepository(pool pgdb.Queryer) *DivisionRepository {
	return &DivisionRepository{pool: pool}
}

// Create は部門を新規作成します。
func (r *DivisionRepository) Create(ctx context.Context, name string) (*division.Division, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO division (name)
        VALUES ($1)
        RETURNING division_id
    `, name)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, translateDivisionPgError(err)
	}

	return &division.Division{ID: id, Name: name}, nil
}

// FindByID は ID で部門を取得します。
func (r *DivisionRepository) FindByID(ctx context.Context, id int64) (*division.Division, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT division_id, name
          FROM division
         WHERE division_id = $1
         LIMIT 1
    `, id)

	var found division.Division
	if err := row.Scan(&found.ID, &found.Name); err != nil {
		return nil, translateDivisionPgError(err)
	}
	return &found, nil
}

// List は全部門を名前順で取得します。
func (r *DivisionRepository) List(ctx context.Context) ([]*division.Division, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT division_id, name
          FROM division
         ORDER BY name
    `)
	if err != nil {
		return nil, translateDivisionPgError(err)
	}
	defer rows.Close()

	divisions := make([]*division.Division, 0)
	for rows.Next() {
		var d division.Division
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, translateDivisionPgError(err)
		}
		divisions = append(divisions, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateDivisionPgError(err)
	}
	return divisions, nil
}

// DivisionExists は部門の存在を確認します。
func (r *DivisionRepository) DivisionExists(ctx context.Context, id int64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM division WHERE division_id = $1)`, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, translateDivisionPgError(err)
	}
	return exists, nil
}

func translateDivisionPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return division.ErrDivisionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return division.ErrNameAlreadyExists
	}

	return err
}
