package scaling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

func cpuPolicy() scaling.Policy {
	return scaling.Policy{
		ID:                 "api-cpu",
		TargetService:      "api",
		Enabled:            true,
		ScaleUpMetric:      "cpu_usage",
		ScaleUpThreshold:   70,
		ScaleUpBy:          1,
		ScaleDownMetric:    "cpu_usage",
		ScaleDownThreshold: 30,
		ScaleDownCooldown:  600_000 * time.Millisecond,
		ScaleDownBy:        1,
		MinInstances:       2,
		MaxInstances:       10,
		EvaluationPeriods:  2,
		PeriodDuration:     30 * time.Second,
		Strategy:           scaling.StrategyLinear,
	}
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveMutate func(p *scaling.Policy)
		wantErr    bool
	}{
		{name: "valid", giveMutate: func(*scaling.Policy) {}},
		{name: "missing service", giveMutate: func(p *scaling.Policy) { p.TargetService = "" }, wantErr: true},
		{name: "zero min", giveMutate: func(p *scaling.Policy) { p.MinInstances = 0 }, wantErr: true},
		{name: "min above max", giveMutate: func(p *scaling.Policy) { p.MinInstances = 11 }, wantErr: true},
		{name: "min equals max", giveMutate: func(p *scaling.Policy) { p.MinInstances, p.MaxInstances = 3, 3 }},
		{name: "overlapping thresholds", giveMutate: func(p *scaling.Policy) { p.ScaleDownThreshold = 70 }, wantErr: true},
		{name: "different metrics may overlap", giveMutate: func(p *scaling.Policy) {
			p.ScaleDownMetric = "rps"
			p.ScaleDownThreshold = 100
		}},
		{name: "negative cooldown", giveMutate: func(p *scaling.Policy) { p.ScaleUpCooldown = -time.Second }, wantErr: true},
		{name: "zero periods", giveMutate: func(p *scaling.Policy) { p.EvaluationPeriods = 0 }, wantErr: true},
		{name: "zero period duration", giveMutate: func(p *scaling.Policy) { p.PeriodDuration = 0 }, wantErr: true},
		{name: "zero linear step", giveMutate: func(p *scaling.Policy) { p.ScaleUpBy = 0 }, wantErr: true},
		{name: "unknown strategy", giveMutate: func(p *scaling.Policy) { p.Strategy = "predictive" }, wantErr: true},
		{name: "target tracking without target", giveMutate: func(p *scaling.Policy) {
			p.Strategy = scaling.StrategyTargetTracking
		}, wantErr: true},
		{name: "target tracking", giveMutate: func(p *scaling.Policy) {
			p.Strategy = scaling.StrategyTargetTracking
			p.TargetValue = 60
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := cpuPolicy()
			tt.giveMutate(&p)

			err := p.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, scaling.ErrInvalidPolicy)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPolicy_Target(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveStrategy  scaling.Strategy
		giveDirection scaling.Direction
		giveCurrent   int
		giveObserved  float64
		want          int
	}{
		{name: "linear up", giveStrategy: scaling.StrategyLinear, giveDirection: scaling.DirectionScaleUp, giveCurrent: 3, want: 5},
		{name: "linear up clamped", giveStrategy: scaling.StrategyLinear, giveDirection: scaling.DirectionScaleUp, giveCurrent: 9, want: 10},
		{name: "linear down", giveStrategy: scaling.StrategyLinear, giveDirection: scaling.DirectionScaleDown, giveCurrent: 6, want: 3},
		{name: "linear down clamped", giveStrategy: scaling.StrategyLinear, giveDirection: scaling.DirectionScaleDown, giveCurrent: 3, want: 2},
		{name: "exponential up", giveStrategy: scaling.StrategyExponential, giveDirection: scaling.DirectionScaleUp, giveCurrent: 3, want: 5},
		{name: "exponential up clamped", giveStrategy: scaling.StrategyExponential, giveDirection: scaling.DirectionScaleUp, giveCurrent: 8, want: 10},
		{name: "exponential down", giveStrategy: scaling.StrategyExponential, giveDirection: scaling.DirectionScaleDown, giveCurrent: 5, want: 4},
		{name: "exponential down clamped", giveStrategy: scaling.StrategyExponential, giveDirection: scaling.DirectionScaleDown, giveCurrent: 2, want: 2},
		{
			name: "target tracking up", giveStrategy: scaling.StrategyTargetTracking,
			giveDirection: scaling.DirectionScaleUp, giveCurrent: 4, giveObserved: 90, want: 6,
		},
		{
			name: "target tracking down", giveStrategy: scaling.StrategyTargetTracking,
			giveDirection: scaling.DirectionScaleDown, giveCurrent: 6, giveObserved: 20, want: 2,
		},
		{
			name: "target tracking never reverses", giveStrategy: scaling.StrategyTargetTracking,
			giveDirection: scaling.DirectionScaleUp, giveCurrent: 4, giveObserved: 30, want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := cpuPolicy()
			p.Strategy = tt.giveStrategy
			p.ScaleUpBy = 2
			p.ScaleDownBy = 3
			p.TargetValue = 60

			require.Equal(t, tt.want, p.Target(tt.giveDirection, tt.giveCurrent, tt.giveObserved))
		})
	}
}

func TestPolicy_CooldownAndWindow(t *testing.T) {
	t.Parallel()

	p := cpuPolicy()
	p.ScaleUpCooldown = time.Minute

	require.Equal(t, 10*time.Minute, p.Cooldown())
	require.Equal(t, time.Minute, p.Window())
}
