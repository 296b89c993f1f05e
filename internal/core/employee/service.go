package employee

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

var (
	ssnPattern   = regexp.MustCompile(`^\d{9}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Service は従業員のライフサイクルに関するユースケースをまとめます。
// 同一従業員への同時更新はデータベースの分離レベルに委ねており、
// アプリケーション側では楽観ロック等の競合検出を行いません。
type Service struct {
	repo        Repository
	assignments AssignmentRepository
	divisions   DivisionDirectory
	jobTitles   JobTitleDirectory
	tx          TransactionManager
}

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (bool, error)
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeBySSN(ctx context.Context, ssn string) (*Employee, error)
	SearchByName(ctx context.Context, fragment string) ([]*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, assignments AssignmentRepository, divisions DivisionDirectory, jobTitles JobTitleDirectory, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{
		repo:        repo,
		assignments: assignments,
		divisions:   divisions,
		jobTitles:   jobTitles,
		tx:          tx,
	}
}

// AddEmployeeInput は従業員登録時の入力です。
type AddEmployeeInput struct {
	FirstName  string
	LastName   string
	SSN        string
	Email      string
	DivisionID int64
	JobTitleID int64
}

// UpdateEmployeeInput は従業員更新時の入力です。スカラー項目と所属をまとめて置き換えます。
type UpdateEmployeeInput struct {
	ID         int64
	FirstName  string
	LastName   string
	SSN        string
	Email      string
	DivisionID int64
	JobTitleID int64
}

// AddEmployee は従業員を登録し、部門と職位の現在行を 1 件ずつ作成します。
// 従業員本体と 2 つの所属行は同一トランザクションで書き込まれ、途中で失敗した場合は何も残りません。
func (s *Service) AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error) {
	candidate, err := buildEmployee(in.FirstName, in.LastName, in.SSN, in.Email)
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureReferencesExist(txCtx, in.DivisionID, in.JobTitleID); err != nil {
			return err
		}

		inserted, err := s.repo.Create(txCtx, candidate)
		if err != nil {
			return err
		}
		if inserted.ID == 0 {
			return fmt.Errorf("employee: generated id missing after insert")
		}

		if err := s.assignments.ReplaceDivision(txCtx, inserted.ID, in.DivisionID); err != nil {
			return err
		}
		if err := s.assignments.ReplaceJobTitle(txCtx, inserted.ID, in.JobTitleID); err != nil {
			return err
		}

		// 表示用の所属名を引き当てた状態で返す。
		enriched, err := s.repo.FindByID(txCtx, inserted.ID)
		if err != nil {
			return err
		}
		created = enriched
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEmployee はスカラー項目を更新し、更新対象が存在した場合のみ所属を置き換えます。
// 全体が 1 トランザクションであり、失敗時は更新前の状態が保たれます。
// 戻り値はスカラー更新が行を変更したかどうかで、false の場合は所属の変更を試みません。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (bool, error) {
	if in.ID <= 0 {
		return false, ErrInvalidID
	}

	candidate, err := buildEmployee(in.FirstName, in.LastName, in.SSN, in.Email)
	if err != nil {
		return false, err
	}
	candidate.ID = in.ID

	updated := false
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		affected, err := s.repo.Update(txCtx, candidate)
		if err != nil {
			return err
		}
		if !affected {
			return nil
		}

		if err := s.ensureReferencesExist(txCtx, in.DivisionID, in.JobTitleID); err != nil {
			return err
		}
		if err := s.assignments.ReplaceDivision(txCtx, in.ID, in.DivisionID); err != nil {
			return err
		}
		if err := s.assignments.ReplaceJobTitle(txCtx, in.ID, in.JobTitleID); err != nil {
			return err
		}

		updated = true
		return nil
	}); err != nil {
		return false, err
	}

	return updated, nil
}

// DeleteEmployee は従業員本体の行のみ削除します。
// 所属行と給与行はカスケードされず、後始末は呼び出し側の責務です。
func (s *Service) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	deleted := false
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		affected, err := s.repo.Delete(txCtx, id)
		if err != nil {
			return err
		}
		deleted = affected
		return nil
	}); err != nil {
		return false, err
	}

	return deleted, nil
}

// GetEmployee は ID で従業員を取得します。
func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	var found *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// GetEmployeeBySSN は SSN の完全一致で従業員を取得します。
func (s *Service) GetEmployeeBySSN(ctx context.Context, ssn string) (*Employee, error) {
	trimmed := strings.TrimSpace(ssn)
	if !ssnPattern.MatchString(trimmed) {
		return nil, ErrInvalidSSN
	}

	var found *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindBySSN(txCtx, trimmed)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// SearchByName は姓または名の部分一致で従業員を検索します。
func (s *Service) SearchByName(ctx context.Context, fragment string) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.SearchByName(txCtx, fragment)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}

	return employees, nil
}

// ListEmployees は全従業員を姓、名の順で取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListAll(txCtx)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}

	return employees, nil
}

func (s *Service) ensureReferencesExist(ctx context.Context, divisionID, jobTitleID int64) error {
	exists, err := s.divisions.DivisionExists(ctx, divisionID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDivisionNotFound
	}

	exists, err = s.jobTitles.JobTitleExists(ctx, jobTitleID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrJobTitleNotFound
	}

	return nil
}

func buildEmployee(firstName, lastName, ssn, email string) (*Employee, error) {
	first := strings.TrimSpace(firstName)
	if first == "" {
		return nil, ErrInvalidFirstName
	}

	last := strings.TrimSpace(lastName)
	if last == "" {
		return nil, ErrInvalidLastName
	}

	trimmedSSN := strings.TrimSpace(ssn)
	if !ssnPattern.MatchString(trimmedSSN) {
		return nil, ErrInvalidSSN
	}

	trimmedEmail := strings.TrimSpace(email)
	if !emailPattern.MatchString(trimmedEmail) {
		return nil, ErrInvalidEmail
	}

	return &Employee{
		FirstName: first,
		LastName:  last,
		SSN:       trimmedSSN,
		Email:     trimmedEmail,
	}, nil
}
