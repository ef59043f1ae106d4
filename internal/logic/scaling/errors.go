package scaling

import "errors"

var (
	ErrInvalidPolicy   = errors.New("invalid scaling policy")
	ErrPolicyNotFound  = errors.New("scaling policy not found")
	ErrPolicyExists    = errors.New("scaling policy already exists")
	ErrPersistPolicy   = errors.New("persist scaling policy")
	ErrRestorePolicies = errors.New("restore scaling policies")
	ErrInvalidRequest  = errors.New("invalid scaling request")
	ErrActionInFlight  = errors.New("scaling action already in flight")
	ErrNoChange        = errors.New("instance count already at target")
	ErrDispatch        = errors.New("dispatch scaling action")
)
