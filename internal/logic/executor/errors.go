package executor

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid scaling action")
	ErrQueueFull      = errors.New("scaling action queue is full")
	ErrClosed         = errors.New("executor is closed")
	ErrServiceBusy    = errors.New("service has a scaling action in flight")
	ErrActionNotFound = errors.New("scaling action not found")
	ErrOrchestrator   = errors.New("orchestrator scale")
)
