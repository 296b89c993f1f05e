package report

import "errors"

var (
	// ErrInvalidEmployeeID は従業員 ID が不正な場合に返却されます。
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	// ErrInvalidOrder は並び順の指定が不正な場合に返却されます。
	ErrInvalidOrder = errors.New("invalid order")
	// ErrInvalidMonth は対象年月が不正な場合に返却されます。
	ErrInvalidMonth = errors.New("invalid year or month")
)
