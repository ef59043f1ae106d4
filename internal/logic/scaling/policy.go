package scaling

import (
	"fmt"
	"math"
	"time"
)

// Validate checks bounds and strategy parameters of p.
func (p Policy) Validate() error {
	if p.TargetService == "" {
		return fmt.Errorf("%w: target service is required", ErrInvalidPolicy)
	}

	if p.MinInstances < 1 {
		return fmt.Errorf("%w: min instances must be at least 1, got %d", ErrInvalidPolicy, p.MinInstances)
	}

	if p.MaxInstances < p.MinInstances {
		return fmt.Errorf("%w: max instances %d is below min instances %d",
			ErrInvalidPolicy, p.MaxInstances, p.MinInstances)
	}

	if p.ScaleUpMetric == "" || p.ScaleDownMetric == "" {
		return fmt.Errorf("%w: scale up and scale down metrics are required", ErrInvalidPolicy)
	}

	if !finite(p.ScaleUpThreshold) || !finite(p.ScaleDownThreshold) {
		return fmt.Errorf("%w: thresholds must be finite", ErrInvalidPolicy)
	}

	if p.ScaleUpMetric == p.ScaleDownMetric && p.ScaleDownThreshold >= p.ScaleUpThreshold {
		return fmt.Errorf("%w: scale down threshold %v must be below scale up threshold %v",
			ErrInvalidPolicy, p.ScaleDownThreshold, p.ScaleUpThreshold)
	}

	if p.ScaleUpCooldown < 0 || p.ScaleDownCooldown < 0 {
		return fmt.Errorf("%w: cooldowns must be non-negative", ErrInvalidPolicy)
	}

	if p.EvaluationPeriods < 1 {
		return fmt.Errorf("%w: evaluation periods must be at least 1", ErrInvalidPolicy)
	}

	if p.PeriodDuration <= 0 {
		return fmt.Errorf("%w: period duration must be positive", ErrInvalidPolicy)
	}

	switch p.Strategy {
	case StrategyLinear:
		if p.ScaleUpBy < 1 || p.ScaleDownBy < 1 {
			return fmt.Errorf("%w: linear steps must be at least 1", ErrInvalidPolicy)
		}
	case StrategyExponential:
	case StrategyTargetTracking:
		if !finite(p.TargetValue) || p.TargetValue <= 0 {
			return fmt.Errorf("%w: target value must be positive for target tracking", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidPolicy, p.Strategy)
	}

	return nil
}

// DefaultPeriodDuration is the evaluation period of a policy that sets none.
const DefaultPeriodDuration = time.Minute

// withDefaults fills optional fields left empty.
func (p Policy) withDefaults() Policy {
	if p.Strategy == "" {
		p.Strategy = StrategyLinear
	}

	if p.ScaleUpBy == 0 {
		p.ScaleUpBy = 1
	}

	if p.ScaleDownBy == 0 {
		p.ScaleDownBy = 1
	}

	if p.EvaluationPeriods == 0 {
		p.EvaluationPeriods = 1
	}

	if p.PeriodDuration == 0 {
		p.PeriodDuration = DefaultPeriodDuration
	}

	if p.ScaleDownMetric == "" {
		p.ScaleDownMetric = p.ScaleUpMetric
	}

	return p
}

// Target returns the clamped instance count for a scaling decision. observed is the
// window average of the deciding metric and is only used by target tracking.
func (p Policy) Target(direction Direction, current int, observed float64) int {
	var target int

	switch p.Strategy {
	case StrategyExponential:
		if direction == DirectionScaleUp {
			target = int(math.Round(float64(current) * exponentialUpFactor))
		} else {
			target = int(math.Round(float64(current) * exponentialDownFactor))
		}
	case StrategyTargetTracking:
		target = int(math.Ceil(float64(current) * observed / p.TargetValue))
		// never move against the triggered direction
		if direction == DirectionScaleUp {
			target = max(target, current)
		} else {
			target = min(target, current)
		}
	default:
		if direction == DirectionScaleUp {
			target = current + p.ScaleUpBy
		} else {
			target = current - p.ScaleDownBy
		}
	}

	return p.Clamp(target)
}

const (
	exponentialUpFactor   = 1.5
	exponentialDownFactor = 0.7
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
