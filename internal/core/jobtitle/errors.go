package jobtitle

import "errors"

var (
	// ErrJobTitleNotFound は職位が存在しない場合に返却されます。
	ErrJobTitleNotFound = errors.New("job title not found")
	// ErrInvalidTitle は職位名が不正な場合に返却されます。
	ErrInvalidTitle = errors.New("invalid job title")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid job title id")
	// ErrTitleAlreadyExists は職位名が重複した場合に返却されます。
	ErrTitleAlreadyExists = errors.New("job title already exists")
)
