package employee

import "context"

// Repository は従業員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindBySSN(ctx context.Context, ssn string) (*Employee, error)
	// SearchByName は姓または名の部分一致検索を行います。
	// fragment 内の % _ \ はリテラルとして扱われます。結果は姓、名の順で整列されます。
	SearchByName(ctx context.Context, fragment string) ([]*Employee, error)
	ListAll(ctx context.Context) ([]*Employee, error)
}

// AssignmentRepository は従業員と部門・職位の「現在の」対応行を管理します。
// Replace 系は既存行をすべて削除してから 1 行挿入します (replace current セマンティクス)。
type AssignmentRepository interface {
	ReplaceDivision(ctx context.Context, employeeID, divisionID int64) error
	ReplaceJobTitle(ctx context.Context, employeeID, jobTitleID int64) error
}

// DivisionDirectory は部門の存在確認を提供します。
type DivisionDirectory interface {
	DivisionExists(ctx context.Context, id int64) (bool, error)
}

// JobTitleDirectory は職位の存在確認を提供します。
type JobTitleDirectory interface {
	JobTitleExists(ctx context.Context, id int64) (bool, error)
}
