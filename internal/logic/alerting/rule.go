package alerting

import (
	"fmt"
	"math"
	"time"
)

// Condition compares an observed value with a rule threshold.
type Condition string

const (
	ConditionGreater      Condition = "gt"
	ConditionGreaterEqual Condition = "gte"
	ConditionLess         Condition = "lt"
	ConditionLessEqual    Condition = "lte"
	ConditionEqual        Condition = "eq"
)

// Severity classifies fired alerts.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rule is a threshold condition over a metric with a cooldown between alerts.
type Rule struct {
	ID        string        `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Metric    string        `json:"metric" yaml:"metric"`
	Condition Condition     `json:"condition" yaml:"condition"`
	Threshold float64       `json:"threshold" yaml:"threshold"`
	Severity  Severity      `json:"severity" yaml:"severity"`
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Cooldown  time.Duration `json:"cooldown" yaml:"cooldown"`
}

// Matches reports whether value satisfies the rule condition.
func (r Rule) Matches(value float64) bool {
	return compare(value, r.Condition, r.Threshold)
}

// Validate checks the rule fields.
func (r Rule) Validate() error {
	if r.Metric == "" {
		return fmt.Errorf("%w: metric is required", ErrInvalidRule)
	}

	if !r.Condition.valid() {
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidRule, r.Condition)
	}

	switch r.Severity {
	case SeverityInfo, SeverityWarning, SeverityCritical:
	default:
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidRule, r.Severity)
	}

	if math.IsNaN(r.Threshold) || math.IsInf(r.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be finite", ErrInvalidRule)
	}

	if r.Cooldown < 0 {
		return fmt.Errorf("%w: cooldown must be non-negative", ErrInvalidRule)
	}

	return nil
}

func (c Condition) valid() bool {
	switch c {
	case ConditionGreater, ConditionGreaterEqual, ConditionLess, ConditionLessEqual, ConditionEqual:
		return true
	}

	return false
}

func compare(v float64, c Condition, threshold float64) bool {
	switch c {
	case ConditionGreater:
		return v > threshold
	case ConditionGreaterEqual:
		return v >= threshold
	case ConditionLess:
		return v < threshold
	case ConditionLessEqual:
		return v <= threshold
	case ConditionEqual:
		return v == threshold
	default:
		return false
	}
}

// DefaultRules returns the shipped business thresholds. They are ordinary rules and can be
// updated, disabled or removed like any other.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID: "default-response-time", Name: "High response time", Metric: "response_time",
			Condition: ConditionGreater, Threshold: 1000, Severity: SeverityWarning,
			Enabled: true, Cooldown: 5 * time.Minute,
		},
		{
			ID: "default-error-rate", Name: "High error rate", Metric: "error_rate",
			Condition: ConditionGreater, Threshold: 5, Severity: SeverityCritical,
			Enabled: true, Cooldown: 5 * time.Minute,
		},
		{
			ID: "default-memory-usage", Name: "High memory usage", Metric: "memory_usage",
			Condition: ConditionGreater, Threshold: 85, Severity: SeverityWarning,
			Enabled: true, Cooldown: 10 * time.Minute,
		},
		{
			ID: "default-cpu-usage", Name: "High CPU usage", Metric: "cpu_usage",
			Condition: ConditionGreater, Threshold: 80, Severity: SeverityWarning,
			Enabled: true, Cooldown: 10 * time.Minute,
		},
		{
			ID: "default-external-api-latency", Name: "Slow external API", Metric: "external_api_latency",
			Condition: ConditionGreater, Threshold: 2000, Severity: SeverityInfo,
			Enabled: true, Cooldown: 15 * time.Minute,
		},
	}
}
