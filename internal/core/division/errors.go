package division

import "errors"

var (
	// ErrDivisionNotFound は部門が存在しない場合に返却されます。
	ErrDivisionNotFound = errors.New("division not found")
	// ErrInvalidName は部門名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid division name")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid division id")
	// ErrNameAlreadyExists は部門名が重複した場合に返却されます。
	ErrNameAlreadyExists = errors.New("division name already exists")
)
