package employee

import "errors"

var (
	// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidID は ID が未指定または不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid employee id")
	// ErrInvalidFirstName は名が空の場合に返却されます。
	ErrInvalidFirstName = errors.New("invalid first name")
	// ErrInvalidLastName は姓が空の場合に返却されます。
	ErrInvalidLastName = errors.New("invalid last name")
	// ErrInvalidSSN は SSN が 9 桁の数字でない場合に返却されます。
	ErrInvalidSSN = errors.New("ssn must be exactly 9 digits")
	// ErrInvalidEmail はメールアドレスが書式に合わない場合に返却されます。
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrSSNAlreadyExists は SSN が重複した場合に返却されます。
	ErrSSNAlreadyExists = errors.New("ssn already exists")
	// ErrDivisionNotFound は指定された部門が存在しない場合に返却されます。
	ErrDivisionNotFound = errors.New("division does not exist")
	// ErrJobTitleNotFound は指定された職位が存在しない場合に返却されます。
	ErrJobTitleNotFound = errors.New("job title does not exist")
)
