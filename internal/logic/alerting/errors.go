package alerting

import "errors"

var (
	ErrInvalidRule  = errors.New("invalid alert rule")
	ErrRuleNotFound = errors.New("alert rule not found")
	ErrRuleExists   = errors.New("alert rule already exists")
	ErrPersistRule  = errors.New("persist alert rule")
	ErrRestoreRules = errors.New("restore alert rules")
)
