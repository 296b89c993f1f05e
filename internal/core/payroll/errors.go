package payroll

import "errors"

var (
	// ErrInvalidEmployeeID は従業員 ID が不正な場合に返却されます。
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	// ErrEmployeeNotFound は対象従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee does not exist")
	// ErrInvalidAmount は金額が負の場合に返却されます。
	ErrInvalidAmount = errors.New("amount must not be negative")
	// ErrInvalidPeriod は支給期間の開始が終了より後の場合、または未指定の場合に返却されます。
	ErrInvalidPeriod = errors.New("invalid pay period")
	// ErrInvalidRange は調整対象の金額範囲が不正な場合に返却されます。
	ErrInvalidRange = errors.New("invalid amount range")
	// ErrInvalidPercent は調整率が不正な場合に返却されます。
	ErrInvalidPercent = errors.New("invalid percent")
	// ErrInvalidPolicy は未知の調整方針が指定された場合に返却されます。
	ErrInvalidPolicy = errors.New("invalid adjustment policy")
)
