package reconciler

import "errors"

var (
	ErrListInstances = errors.New("list instances")
	ErrGetUsage      = errors.New("get instance usage")
	ErrSyncInstance  = errors.New("sync instance")
)
