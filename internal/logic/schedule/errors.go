package schedule

import "errors"

var (
	ErrInvalidEntry   = errors.New("invalid schedule entry")
	ErrDuplicateEntry = errors.New("duplicate schedule entry")
)
