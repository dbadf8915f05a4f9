package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate  = errors.New("invalid civil date: expected YYYY-MM-DD")
	ErrInvalidTime  = errors.New("invalid time of day: expected HH:MM")
	ErrEmptyTitle   = errors.New("entry title must not be empty")
	ErrEmptyContent = errors.New("entry content must not be empty")
)
