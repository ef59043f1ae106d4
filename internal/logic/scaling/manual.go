package scaling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ScaleUp adds n instances to service, bounded by the service policy.
func (e *Evaluator) ScaleUp(ctx context.Context, service string, n int) (Action, error) {
	if n < 1 {
		return Action{}, fmt.Errorf("%w: scale up count must be at least 1", ErrInvalidRequest)
	}

	current := e.instances.GetServiceInstanceCount(service)
	_, hi := e.Bounds(service)

	// saturating add, n may be as large as the request allows
	return e.manual(ctx, service, DirectionScaleUp, current, current+min(n, max(hi-current, 0)))
}

// ScaleDown removes n instances from service, bounded by the service policy.
func (e *Evaluator) ScaleDown(ctx context.Context, service string, n int) (Action, error) {
	if n < 1 {
		return Action{}, fmt.Errorf("%w: scale down count must be at least 1", ErrInvalidRequest)
	}

	current := e.instances.GetServiceInstanceCount(service)

	return e.manual(ctx, service, DirectionScaleDown, current, max(current-n, 0))
}

// SetDesiredInstances moves service to n instances, bounded by the service policy.
func (e *Evaluator) SetDesiredInstances(ctx context.Context, service string, n int) (Action, error) {
	if n < 0 {
		return Action{}, fmt.Errorf("%w: desired instances must not be negative", ErrInvalidRequest)
	}

	return e.manual(ctx, service, "", e.instances.GetServiceInstanceCount(service), n)
}

// Bounds returns the instance range applied to manual changes of service: the first
// registered policy for the service, or the configured defaults.
func (e *Evaluator) Bounds(service string) (minInstances, maxInstances int) {
	if policies := e.registry.PoliciesForService(service); len(policies) > 0 {
		return policies[0].MinInstances, policies[0].MaxInstances
	}

	return e.opts.DefaultMinInstances, e.opts.DefaultMaxInstances
}

// manual dispatches an override. A non-empty want rejects targets that would move
// the service the other way once bounds are applied.
func (e *Evaluator) manual(
	ctx context.Context,
	service string,
	want Direction,
	current,
	requested int,
) (Action, error) {
	if service == "" {
		return Action{}, fmt.Errorf("%w: service is required", ErrInvalidRequest)
	}

	lo, hi := e.Bounds(service)
	target := min(max(requested, lo), hi)

	if target == current {
		return Action{}, fmt.Errorf("%w: %s has %d instances", ErrNoChange, service, current)
	}

	if e.dispatcher.InFlight(service) {
		return Action{}, fmt.Errorf("%w: %s", ErrActionInFlight, service)
	}

	direction := DirectionScaleUp
	if target < current {
		direction = DirectionScaleDown
	}

	if want != "" && direction != want {
		return Action{}, fmt.Errorf("%w: %s has %d instances, bounds [%d, %d] allow no %s",
			ErrNoChange, service, current, lo, hi, want)
	}

	now := e.now()
	action := Action{
		ID:               uuid.NewString(),
		Service:          service,
		Direction:        direction,
		CurrentInstances: current,
		TargetInstances:  target,
		Reason:           fmt.Sprintf("manual override to %d instances (requested %d)", target, requested),
		Timestamp:        now,
		Status:           ActionStatusPending,
	}

	// the override restarts the cooldown of every policy of the service
	for _, p := range e.registry.PoliciesForService(service) {
		e.setLastAction(p.ID, now)
	}

	if err := e.dispatcher.Execute(ctx, action); err != nil {
		return Action{}, fmt.Errorf("%w: %w", ErrDispatch, err)
	}

	e.logger.InfoContext(ctx, "manual scaling action dispatched",
		"action_id", action.ID,
		"service", service,
		"action", direction,
		"current", current,
		"target", target,
	)

	return action, nil
}
