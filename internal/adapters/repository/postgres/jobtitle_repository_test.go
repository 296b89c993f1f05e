package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/jobtitle"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestJobTitleRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewJobTitleRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO job_titles (title)
        VALUES ($1)
        RETURNING job_title_id
    `)).
		WithArgs("Developer").
		WillReturnRows(pgxmock.NewRows([]string{"job_title_id"}).AddRow(int64(5)))

	created, err := repo.Create(context.Background(), "Developer")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 5 || created.Title != "Developer" {
		t.Fatalf("unexpected job title %+v", created)
	}
}

func TestJobTitleRepository_Create_DuplicateTitle(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewJobTitleRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO job_titles (title)
        VALUES ($1)
        RETURNING job_title_id
    `)).
		WithArgs("Developer").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), "Developer")
	if !errors.Is(err, jobtitle.ErrTitleAlreadyExists) {
		t.Fatalf("expected ErrTitleAlreadyExists, got %v", err)
	}
}

func TestJobTitleRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewJobTitleRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT job_title_id, title
          FROM job_titles
         WHERE job_title_id = $1
         LIMIT 1
    `)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 404)
	if !errors.Is(err, jobtitle.ErrJobTitleNotFound) {
		t.Fatalf("expected ErrJobTitleNotFound, got %v", err)
	}
}
