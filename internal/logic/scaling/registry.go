package scaling

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry holds scaling policies in registration order.
type Registry struct {
	logger   *slog.Logger
	repo     PolicyRepository
	mu       sync.RWMutex
	policies map[string]Policy
	order    []string
}

// NewRegistry creates an empty policy registry. repo may be nil.
func NewRegistry(logger *slog.Logger, repo PolicyRepository) *Registry {
	return &Registry{
		logger:   logger.With("component", "policy-registry"),
		repo:     repo,
		policies: make(map[string]Policy),
	}
}

// Restore loads persisted policies in the order the repository returns them.
func (r *Registry) Restore(ctx context.Context) error {
	if r.repo == nil {
		return nil
	}

	policies, err := r.repo.ListPolicies(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestorePolicies, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range policies {
		p = p.withDefaults()
		if err := p.Validate(); err != nil {
			r.logger.WarnContext(ctx, "skipping persisted scaling policy", "policy_id", p.ID, "reason", err)

			continue
		}

		r.put(p)
	}

	r.logger.InfoContext(ctx, "scaling policies restored", "count", len(policies))

	return nil
}

// AddScalingPolicy validates and registers p. An empty ID is replaced by a generated one.
func (r *Registry) AddScalingPolicy(ctx context.Context, p Policy) (Policy, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[p.ID]; ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrPolicyExists, p.ID)
	}

	if err := r.persist(ctx, p); err != nil {
		return Policy{}, err
	}

	r.put(p)

	r.logger.InfoContext(ctx, "scaling policy added",
		"policy_id", p.ID,
		"service", p.TargetService,
		"strategy", p.Strategy,
		"min", p.MinInstances,
		"max", p.MaxInstances,
	)

	return p, nil
}

// UpdateScalingPolicy replaces an existing policy keeping its registration position.
func (r *Registry) UpdateScalingPolicy(ctx context.Context, p Policy) error {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrPolicyNotFound, p.ID)
	}

	if err := r.persist(ctx, p); err != nil {
		return err
	}

	r.put(p)

	r.logger.InfoContext(ctx, "scaling policy updated", "policy_id", p.ID, "service", p.TargetService)

	return nil
}

// RemoveScalingPolicy deletes the policy with id.
func (r *Registry) RemoveScalingPolicy(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[id]; !ok {
		return fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}

	if r.repo != nil {
		if err := r.repo.DeletePolicy(ctx, id); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistPolicy, err)
		}
	}

	delete(r.policies, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })

	r.logger.InfoContext(ctx, "scaling policy removed", "policy_id", id)

	return nil
}

// GetScalingPolicy returns the policy with id.
func (r *Registry) GetScalingPolicy(id string) (Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}

	return p, nil
}

// GetAllPolicies returns every policy in registration order.
func (r *Registry) GetAllPolicies() []Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Policy, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.policies[id])
	}

	return out
}

// PoliciesForService returns the policies targeting service in registration order.
func (r *Registry) PoliciesForService(service string) []Policy {
	all := r.GetAllPolicies()

	return slices.DeleteFunc(all, func(p Policy) bool { return p.TargetService != service })
}

// Services returns the distinct target services in registration order.
func (r *Registry) Services() []string {
	var out []string

	for _, p := range r.GetAllPolicies() {
		if !slices.Contains(out, p.TargetService) {
			out = append(out, p.TargetService)
		}
	}

	return out
}

func (r *Registry) persist(ctx context.Context, p Policy) error {
	if r.repo == nil {
		return nil
	}

	if err := r.repo.SavePolicy(ctx, p); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistPolicy, err)
	}

	return nil
}

// put must be called with mu held.
func (r *Registry) put(p Policy) {
	if _, ok := r.policies[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}

	r.policies[p.ID] = p
}
