package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/jobtitle"
	pgdb "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
)

// JobTitleRepository は PostgreSQL を利用した職位マスタの実装です。
type JobTitleRepository struct {
	pool pgdb.Queryer
}

// NewJobTitleRepository は JobTitleRepository を生成します。
func NewJobTitleRepository(pool pgdb.Queryer) *JobTitleRepository {
	return &JobTitleRepository{pool: pool}
}

// Create は職位を新規作成します。
func (r *JobTitleRepository) Create(ctx context.Context, title string) (*jobtitle.JobTitle, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO job_titles (title)
        VALUES ($1)
        RETURNING job_title_id
    `, title)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, translateJobTitlePgError(err)
	}

	return &jobtitle.JobTitle{ID: id, Title: title}, nil
}

// FindByID は ID で職位を取得します。
func (r *JobTitleRepository) FindByID(ctx context.Context, id int64) (*jobtitle.JobTitle, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT job_title_id, title
          FROM job_titles
         WHERE job_title_id = $1
         LIMIT 1
    `, id)

	var found jobtitle.JobTitle
	if err := row.Scan(&found.ID, &found.Title); err != nil {
		return nil, translateJobTitlePgError(err)
	}
	return &found, nil
}

// List は全職位をタイトル順で取得します。
func (r *JobTitleRepository) List(ctx context.Context) ([]*jobtitle.JobTitle, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT job_title_id, title
          FROM job_titles
         ORDER BY title
    `)
	if err != nil {
		return nil, translateJobTitlePgError(err)
	}
	defer rows.Close()

	titles := make([]*jobtitle.JobTitle, 0)
	for rows.Next() {
		var t jobtitle.JobTitle
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, translateJobTitlePgError(err)
		}
		titles = append(titles, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateJobTitlePgError(err)
	}
	return titles, nil
}

// JobTitleExists は職位の存在を確認します。
func (r *JobTitleRepository) JobTitleExists(ctx context.Context, id int64) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM job_titles WHERE job_title_id = $1)`, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, translateJobTitlePgError(err)
	}
	return exists, nil
}

func translateJobTitlePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return jobtitle.ErrJobTitleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return jobtitle.ErrTitleAlreadyExists
	}

	return err
}
