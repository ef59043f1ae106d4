package alerting

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRepository persists rule changes through repo.
func WithRepository(repo RuleRepository) Option {
	return func(e *Engine) {
		e.repo = repo
	}
}

// WithClock replaces the time source used for cooldowns.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine evaluates every recorded point against the rules watching its metric.
type Engine struct {
	logger    *slog.Logger
	publisher Publisher
	repo      RuleRepository
	now       func() time.Time

	mu       sync.RWMutex
	rules    map[string]Rule
	order    []string
	byMetric map[string][]string

	firedMu   sync.Mutex
	lastFired map[string]time.Time
}

var _ metricstore.Observer = (*Engine)(nil)

// NewEngine creates an alert engine without rules.
func NewEngine(logger *slog.Logger, publisher Publisher, opts ...Option) *Engine {
	e := &Engine{
		logger:    logger.With("component", "alert-engine"),
		publisher: publisher,
		now:       time.Now,
		rules:     make(map[string]Rule),
		byMetric:  make(map[string][]string),
		lastFired: make(map[string]time.Time),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Restore loads persisted rules. Rules already present are replaced.
func (e *Engine) Restore(ctx context.Context) error {
	if e.repo == nil {
		return nil
	}

	rules, err := e.repo.ListAlertRules(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestoreRules, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range rules {
		if err := r.Validate(); err != nil {
			e.logger.WarnContext(ctx, "skipping persisted alert rule", "rule_id", r.ID, "reason", err)

			continue
		}

		e.put(r)
	}

	e.logger.InfoContext(ctx, "alert rules restored", "count", len(rules))

	return nil
}

// AddAlertRule validates and registers r. An empty ID is replaced by a generated one.
func (e *Engine) AddAlertRule(ctx context.Context, r Rule) (Rule, error) {
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.rules[r.ID]; ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrRuleExists, r.ID)
	}

	if err := e.persist(ctx, r); err != nil {
		return Rule{}, err
	}

	e.put(r)

	e.logger.InfoContext(ctx, "alert rule added",
		"rule_id", r.ID,
		"metric", r.Metric,
		"condition", r.Condition,
		"threshold", r.Threshold,
	)

	return r, nil
}

// UpdateAlertRule replaces an existing rule. The cooldown state of the rule is kept.
func (e *Engine) UpdateAlertRule(ctx context.Context, r Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.rules[r.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, r.ID)
	}

	if err := e.persist(ctx, r); err != nil {
		return err
	}

	e.put(r)

	e.logger.InfoContext(ctx, "alert rule updated", "rule_id", r.ID)

	return nil
}

// RemoveAlertRule deletes the rule with id.
func (e *Engine) RemoveAlertRule(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.rules[id]; !ok {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}

	if e.repo != nil {
		if err := e.repo.DeleteAlertRule(ctx, id); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistRule, err)
		}
	}

	e.drop(id)

	e.firedMu.Lock()
	delete(e.lastFired, id)
	e.firedMu.Unlock()

	e.logger.InfoContext(ctx, "alert rule removed", "rule_id", id)

	return nil
}

// GetAlertRule returns the rule with id.
func (e *Engine) GetAlertRule(id string) (Rule, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r, ok := e.rules[id]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}

	return r, nil
}

// ListAlertRules returns all rules in registration order.
func (e *Engine) ListAlertRules() []Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Rule, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.rules[id])
	}

	return out
}

// Observe checks p against every enabled rule watching p.Name.
func (e *Engine) Observe(ctx context.Context, p metricstore.Point) {
	e.mu.RLock()
	ids := e.byMetric[p.Name]
	matched := make([]Rule, 0, len(ids))

	for _, id := range ids {
		r := e.rules[id]
		if r.Enabled && r.Matches(p.Value) {
			matched = append(matched, r)
		}
	}
	e.mu.RUnlock()

	for _, r := range matched {
		e.fire(ctx, r, p)
	}
}

func (e *Engine) fire(ctx context.Context, r Rule, p metricstore.Point) {
	now := e.now()

	e.firedMu.Lock()
	last, ok := e.lastFired[r.ID]

	if ok && now.Sub(last) < r.Cooldown {
		e.firedMu.Unlock()

		return
	}

	e.lastFired[r.ID] = now
	e.firedMu.Unlock()

	metrics.RecordAlertFired(r.ID, string(r.Severity))

	e.logger.InfoContext(ctx, "alert fired",
		"rule_id", r.ID,
		"metric", p.Name,
		"value", p.Value,
		"condition", r.Condition,
		"threshold", r.Threshold,
		"severity", r.Severity,
	)

	if e.publisher == nil {
		return
	}

	e.publisher.Publish(events.AlertEvent{
		RuleID:    r.ID,
		RuleName:  r.Name,
		Metric:    p.Name,
		Value:     p.Value,
		Threshold: r.Threshold,
		Condition: string(r.Condition),
		Severity:  string(r.Severity),
		Timestamp: now,
		Tags:      p.Tags,
	})
}

func (e *Engine) persist(ctx context.Context, r Rule) error {
	if e.repo == nil {
		return nil
	}

	if err := e.repo.SaveAlertRule(ctx, r); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistRule, err)
	}

	return nil
}

// put must be called with mu held.
func (e *Engine) put(r Rule) {
	if old, ok := e.rules[r.ID]; ok {
		e.byMetric[old.Metric] = slices.DeleteFunc(e.byMetric[old.Metric], func(id string) bool { return id == r.ID })
	} else {
		e.order = append(e.order, r.ID)
	}

	e.rules[r.ID] = r
	e.byMetric[r.Metric] = append(e.byMetric[r.Metric], r.ID)
}

// drop must be called with mu held.
func (e *Engine) drop(id string) {
	r, ok := e.rules[id]
	if !ok {
		return
	}

	delete(e.rules, id)
	e.order = slices.DeleteFunc(e.order, func(v string) bool { return v == id })

	e.byMetric[r.Metric] = slices.DeleteFunc(e.byMetric[r.Metric], func(v string) bool { return v == id })
	if len(e.byMetric[r.Metric]) == 0 {
		delete(e.byMetric, r.Metric)
	}
}
