package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/division"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestDivisionRepository_Create_DuplicateName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDivisionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO division (name)
        VALUES ($1)
        RETURNING division_id
    `)).
		WithArgs("Engineering").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = repo.Create(context.Background(), "Engineering")
	if !errors.Is(err, division.ErrNameAlreadyExists) {
		t.Fatalf("expected ErrNameAlreadyExists, got %v", err)
	}
}

func TestDivisionRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDivisionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT division_id, name
          FROM division
         WHERE division_id = $1
         LIMIT 1
    `)).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 99)
	if !errors.Is(err, division.ErrDivisionNotFound) {
		t.Fatalf("expected ErrDivisionNotFound, got %v", err)
	}
}

func TestDivisionRepository_List(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDivisionRepository(mock)

	rows := pgxmock.NewRows([]string{"division_id", "name"}).
		AddRow(int64(2), "Engineering").
		AddRow(int64(1), "Sales")

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT division_id, name
          FROM division
         ORDER BY name
    `)).
		WillReturnRows(rows)

	divisions, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(divisions) != 2 || divisions[0].Name != "Engineering" {
		t.Fatalf("unexpected divisions %+v", divisions)
	}
}

func TestDivisionRepository_DivisionExists(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewDivisionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM division WHERE division_id = $1)`)).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.DivisionExists(context.Background(), 2)
	if err != nil {
		t.Fatalf("DivisionExists returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false")
	}
}
