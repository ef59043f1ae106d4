package instances

import "errors"

var (
	ErrInvalidInstance  = errors.New("invalid service instance")
	ErrInstanceExists   = errors.New("service instance already registered")
	ErrInstanceNotFound = errors.New("service instance not found")
)
