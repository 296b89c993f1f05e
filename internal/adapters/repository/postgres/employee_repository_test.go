package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

var employeeColumns = []string{
	"employee_id", "first_name", "last_name", "ssn", "email",
	"division_id", "name", "job_title_id", "title",
}

func TestScanEmployee_Success(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 9 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*int64)) = 7
		*(dest[1].(*string)) = "Grace"
		*(dest[2].(*string)) = "Hopper"
		*(dest[3].(*string)) = "123456789"
		*(dest[4].(*string)) = "grace@example.com"
		*(dest[5].(*sql.NullInt64)) = sql.NullInt64{Int64: 2, Valid: true}
		*(dest[6].(*sql.NullString)) = sql.NullString{String: "Engineering", Valid: true}
		*(dest[7].(*sql.NullInt64)) = sql.NullInt64{}
		*(dest[8].(*sql.NullString)) = sql.NullString{}
		return nil
	}}

	e, err := scanEmployee(row)
	if err != nil {
		t.Fatalf("scanEmployee returned error: %v", err)
	}

	if e.ID != 7 || e.LastName != "Hopper" {
		t.Fatalf("unexpected employee %+v", e)
	}
	if e.DivisionID == nil || *e.DivisionID != 2 || e.DivisionName == nil || *e.DivisionName != "Engineering" {
		t.Fatalf("expected division fields populated, got %+v", e)
	}
	if e.JobTitleID != nil || e.JobTitleName != nil {
		t.Fatalf("expected job title fields nil, got %+v", e)
	}
}

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateEmployeePgError(uniqueErr), employee.ErrSSNAlreadyExists) {
		t.Fatalf("expected ssn exists mapping")
	}

	checkErr := &pgconn.PgError{Code: checkViolationCode}
	if !errors.Is(translateEmployeePgError(checkErr), employee.ErrInvalidSSN) {
		t.Fatalf("expected invalid ssn mapping")
	}

	otherErr := errors.New("random")
	if translateEmployeePgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_Create_ReturnsAssignedID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(`
        INSERT INTO employees (first_name, last_name, ssn, email)
        VALUES ($1, $2, $3, $4)
        RETURNING employee_id
    `)

	mock.ExpectQuery(query).
		WithArgs("Grace", "Hopper", "123456789", "grace@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"employee_id"}).AddRow(int64(42)))

	created, err := repo.Create(context.Background(), &employee.Employee{
		FirstName: "Grace",
		LastName:  "Hopper",
		SSN:       "123456789",
		Email:     "grace@example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Create_DuplicateSSN(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO employees (first_name, last_name, ssn, email)
        VALUES ($1, $2, $3, $4)
        RETURNING employee_id
    `)).
		WithArgs("Grace", "Hopper", "123456789", "grace@example.com").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_ssn_key"})

	_, err = repo.Create(context.Background(), &employee.Employee{
		FirstName: "Grace",
		LastName:  "Hopper",
		SSN:       "123456789",
		Email:     "grace@example.com",
	})
	if !errors.Is(err, employee.ErrSSNAlreadyExists) {
		t.Fatalf("expected ErrSSNAlreadyExists, got %v", err)
	}
}

func TestEmployeeRepository_Update_ReportsAffected(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(`
        UPDATE employees
           SET first_name = $1,
               last_name = $2,
               ssn = $3,
               email = $4
         WHERE employee_id = $5
    `)

	mock.ExpectExec(query).
		WithArgs("Grace", "Hopper", "123456789", "grace@example.com", int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.Update(context.Background(), &employee.Employee{
		ID:        42,
		FirstName: "Grace",
		LastName:  "Hopper",
		SSN:       "123456789",
		Email:     "grace@example.com",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !affected {
		t.Fatalf("expected affected=true")
	}
}

func TestEmployeeRepository_Delete_MissingRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE employee_id = $1`)).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := repo.Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if affected {
		t.Fatalf("expected affected=false for missing row")
	}
}

func TestEmployeeRepository_SearchByName_EscapesPattern(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(selectEmployeeColumns + `
         WHERE e.first_name LIKE $1 ESCAPE '\' OR e.last_name LIKE $1 ESCAPE '\'
         ORDER BY e.last_name, e.first_name
    `)

	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(1), "Ada", "O'Brien", "111222333", "ada@example.com",
			sql.NullInt64{Int64: 1, Valid: true}, sql.NullString{String: "Engineering", Valid: true},
			sql.NullInt64{Int64: 1, Valid: true}, sql.NullString{String: "Developer", Valid: true})

	// 検索文字列中の % はエスケープされてリテラル扱いになること。
	mock.ExpectQuery(query).
		WithArgs(`%100\%%`).
		WillReturnRows(rows)

	employees, err := repo.SearchByName(context.Background(), "100%")
	if err != nil {
		t.Fatalf("SearchByName returned error: %v", err)
	}
	if len(employees) != 1 || employees[0].FirstName != "Ada" {
		t.Fatalf("unexpected result %+v", employees)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_FindBySSN_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(selectEmployeeColumns + `
         WHERE e.ssn = $1
         LIMIT 1
    `)

	mock.ExpectQuery(query).
		WithArgs("123456789").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindBySSN(context.Background(), "123456789")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_EmployeeExists(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`)).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmployeeExists(context.Background(), 7)
	if err != nil {
		t.Fatalf("EmployeeExists returned error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists=true")
	}
}
