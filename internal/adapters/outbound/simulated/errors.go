package simulated

import "errors"

var ErrInvalidTarget = errors.New("invalid target instance count")

// UsageNotFoundError is returned because simulated instances report no usage.
type UsageNotFoundError struct{}

func (e *UsageNotFoundError) Error() string {
	return "usage not found"
}

func (e *UsageNotFoundError) IsNotFound() {}

var errUsageNotFound = &UsageNotFoundError{}
