package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

// bootstrap restores persisted state and seeds the configured rules and policies.
// Persisted rules and policies win over the file and the built-in defaults.
func (a *App) bootstrap(ctx context.Context) error {
	if err := a.alerts.Restore(ctx); err != nil {
		return fmt.Errorf("restore alert rules: %w", err)
	}

	if err := a.policies.Restore(ctx); err != nil {
		return fmt.Errorf("restore scaling policies: %w", err)
	}

	rules := a.policyFile.AlertRules
	if !a.cfg.DisableDefaultAlertRules {
		rules = withDefaultRules(alerting.DefaultRules(), rules)
	}

	for _, r := range rules {
		_, err := a.alerts.AddAlertRule(ctx, r)
		if err != nil && !errors.Is(err, alerting.ErrRuleExists) {
			return fmt.Errorf("add alert rule %s: %w", r.ID, err)
		}
	}

	for _, p := range a.policyFile.Policies {
		_, err := a.policies.AddScalingPolicy(ctx, p)
		if err != nil && !errors.Is(err, scaling.ErrPolicyExists) {
			return fmt.Errorf("add scaling policy %s: %w", p.ID, err)
		}
	}

	if a.simulated != nil {
		for _, svc := range a.policies.Services() {
			minInstances, _ := a.evaluator.Bounds(svc)
			a.simulated.Seed(ctx, svc, minInstances)
		}
	}

	a.logger.InfoContext(ctx, "state bootstrapped",
		"alert_rules", len(a.alerts.ListAlertRules()),
		"policies", len(a.policies.GetAllPolicies()),
	)

	return nil
}

// withDefaultRules puts the built-in rules ahead of the file rules. A file rule
// replaces the built-in rule with the same id.
func withDefaultRules(defaults, file []alerting.Rule) []alerting.Rule {
	overridden := make(map[string]struct{}, len(file))
	for _, r := range file {
		overridden[r.ID] = struct{}{}
	}

	out := make([]alerting.Rule, 0, len(defaults)+len(file))

	for _, r := range defaults {
		if _, ok := overridden[r.ID]; !ok {
			out = append(out, r)
		}
	}

	return append(out, file...)
}
