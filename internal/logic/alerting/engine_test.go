package alerting_test

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting/mocks"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, e)
}

func (p *recordingPublisher) alerts() []events.AlertEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]events.AlertEvent, 0, len(p.events))
	for _, e := range p.events {
		if a, ok := e.(events.AlertEvent); ok {
			out = append(out, a)
		}
	}

	return out
}

func cpuRule(cooldown time.Duration) alerting.Rule {
	return alerting.Rule{
		ID:        "cpu-high",
		Name:      "CPU high",
		Metric:    "cpu_usage",
		Condition: alerting.ConditionGreater,
		Threshold: 80,
		Severity:  alerting.SeverityWarning,
		Enabled:   true,
		Cooldown:  cooldown,
	}
}

func TestRule_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveCondition alerting.Condition
		giveValue     float64
		want          bool
	}{
		{name: "gt above", giveCondition: alerting.ConditionGreater, giveValue: 11, want: true},
		{name: "gt equal", giveCondition: alerting.ConditionGreater, giveValue: 10, want: false},
		{name: "gte equal", giveCondition: alerting.ConditionGreaterEqual, giveValue: 10, want: true},
		{name: "lt below", giveCondition: alerting.ConditionLess, giveValue: 9, want: true},
		{name: "lt equal", giveCondition: alerting.ConditionLess, giveValue: 10, want: false},
		{name: "lte equal", giveCondition: alerting.ConditionLessEqual, giveValue: 10, want: true},
		{name: "eq equal", giveCondition: alerting.ConditionEqual, giveValue: 10, want: true},
		{name: "eq different", giveCondition: alerting.ConditionEqual, giveValue: 10.5, want: false},
		{name: "unknown", giveCondition: "between", giveValue: 10, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := alerting.Rule{Condition: tt.giveCondition, Threshold: 10}
			require.Equal(t, tt.want, r.Matches(tt.giveValue))
		})
	}
}

func TestRule_Validate(t *testing.T) {
	t.Parallel()

	base := cpuRule(time.Minute)

	tests := []struct {
		name       string
		giveMutate func(r *alerting.Rule)
		wantErr    bool
	}{
		{name: "valid", giveMutate: func(*alerting.Rule) {}},
		{name: "missing metric", giveMutate: func(r *alerting.Rule) { r.Metric = "" }, wantErr: true},
		{name: "bad condition", giveMutate: func(r *alerting.Rule) { r.Condition = "ne" }, wantErr: true},
		{name: "bad severity", giveMutate: func(r *alerting.Rule) { r.Severity = "panic" }, wantErr: true},
		{name: "negative cooldown", giveMutate: func(r *alerting.Rule) { r.Cooldown = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := base
			tt.giveMutate(&r)

			err := r.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, alerting.ErrInvalidRule)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDefaultRules_AreValid(t *testing.T) {
	t.Parallel()

	for _, r := range alerting.DefaultRules() {
		require.NoError(t, r.Validate(), r.ID)
	}
}

func TestEngine_CooldownLimitsAlerts(t *testing.T) {
	t.Parallel()

	const cooldown = 10 * time.Second

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub := &recordingPublisher{}
	engine := alerting.NewEngine(slog.Default(), pub, alerting.WithClock(func() time.Time { return now }))

	_, err := engine.AddAlertRule(t.Context(), cpuRule(cooldown))
	require.NoError(t, err)

	start := now
	for now.Sub(start) < 2*cooldown {
		engine.Observe(t.Context(), metricstore.Point{Name: "cpu_usage", Value: 95, Timestamp: now})
		now = now.Add(500 * time.Millisecond)
	}

	got := pub.alerts()
	require.Len(t, got, 2)
	require.GreaterOrEqual(t, got[1].Timestamp.Sub(got[0].Timestamp), cooldown)
	require.Equal(t, "cpu-high", got[0].RuleID)
	require.Equal(t, "cpu_usage", got[0].Metric)
	require.InDelta(t, 95, got[0].Value, 0)
	require.InDelta(t, 80, got[0].Threshold, 0)
	require.Equal(t, "warning", got[0].Severity)
}

func TestEngine_IgnoresNonMatchingPoints(t *testing.T) {
	t.Parallel()

	pub := mocks.NewMockPublisher(t)
	engine := alerting.NewEngine(slog.Default(), pub)

	rule := cpuRule(0)
	_, err := engine.AddAlertRule(t.Context(), rule)
	require.NoError(t, err)

	disabled := cpuRule(0)
	disabled.ID = "cpu-disabled"
	disabled.Threshold = 10
	disabled.Enabled = false
	_, err = engine.AddAlertRule(t.Context(), disabled)
	require.NoError(t, err)

	engine.Observe(t.Context(), metricstore.Point{Name: "cpu_usage", Value: 50})
	engine.Observe(t.Context(), metricstore.Point{Name: "memory_usage", Value: 99})

	pub.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestEngine_FiresThroughMetricStore(t *testing.T) {
	t.Parallel()

	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().
		Publish(mock.MatchedBy(func(e events.Event) bool {
			a, ok := e.(events.AlertEvent)

			return ok && a.RuleID == "cpu-high" && a.Tags["service"] == "api"
		})).
		Once()

	engine := alerting.NewEngine(slog.Default(), pub)
	_, err := engine.AddAlertRule(t.Context(), cpuRule(time.Minute))
	require.NoError(t, err)

	store := metricstore.New(slog.Default(), metricstore.Options{})
	store.AddObserver(engine)

	store.Gauge(t.Context(), "cpu_usage", 97, metricstore.UnitPercent, map[string]string{"service": "api"})
	store.Gauge(t.Context(), "cpu_usage", 98, metricstore.UnitPercent, map[string]string{"service": "api"})
}

func TestEngine_RuleCRUD(t *testing.T) {
	t.Parallel()

	engine := alerting.NewEngine(slog.Default(), nil)

	created, err := engine.AddAlertRule(t.Context(), alerting.Rule{
		Name:      "latency",
		Metric:    "response_time",
		Condition: alerting.ConditionGreaterEqual,
		Threshold: 500,
		Severity:  alerting.SeverityCritical,
		Enabled:   true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = engine.AddAlertRule(t.Context(), created)
	require.ErrorIs(t, err, alerting.ErrRuleExists)

	_, err = engine.AddAlertRule(t.Context(), cpuRule(time.Minute))
	require.NoError(t, err)

	created.Metric = "p95_latency"
	require.NoError(t, engine.UpdateAlertRule(t.Context(), created))

	got, err := engine.GetAlertRule(created.ID)
	require.NoError(t, err)
	require.Equal(t, "p95_latency", got.Metric)

	list := engine.ListAlertRules()
	require.Len(t, list, 2)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "cpu-high", list[1].ID)

	require.NoError(t, engine.RemoveAlertRule(t.Context(), created.ID))
	require.ErrorIs(t, engine.RemoveAlertRule(t.Context(), created.ID), alerting.ErrRuleNotFound)
	require.ErrorIs(t, engine.UpdateAlertRule(t.Context(), created), alerting.ErrRuleNotFound)

	_, err = engine.GetAlertRule(created.ID)
	require.ErrorIs(t, err, alerting.ErrRuleNotFound)
}

func TestEngine_Persistence(t *testing.T) {
	t.Parallel()

	t.Run("add persists rule", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRuleRepository(t)
		repo.EXPECT().SaveAlertRule(mock.Anything, cpuRule(time.Minute)).Return(nil).Once()

		engine := alerting.NewEngine(slog.Default(), nil, alerting.WithRepository(repo))

		_, err := engine.AddAlertRule(t.Context(), cpuRule(time.Minute))
		require.NoError(t, err)
	})

	t.Run("save failure leaves rule unregistered", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRuleRepository(t)
		repo.EXPECT().SaveAlertRule(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		engine := alerting.NewEngine(slog.Default(), nil, alerting.WithRepository(repo))

		_, err := engine.AddAlertRule(t.Context(), cpuRule(time.Minute))
		require.ErrorIs(t, err, alerting.ErrPersistRule)
		require.Empty(t, engine.ListAlertRules())
	})

	t.Run("restore skips invalid rules", func(t *testing.T) {
		t.Parallel()

		invalid := cpuRule(time.Minute)
		invalid.ID = "broken"
		invalid.Condition = "??"

		repo := mocks.NewMockRuleRepository(t)
		repo.EXPECT().ListAlertRules(mock.Anything).Return([]alerting.Rule{cpuRule(time.Minute), invalid}, nil).Once()

		engine := alerting.NewEngine(slog.Default(), nil, alerting.WithRepository(repo))
		require.NoError(t, engine.Restore(t.Context()))

		list := engine.ListAlertRules()
		require.Len(t, list, 1)
		require.Equal(t, "cpu-high", list[0].ID)
	})

	t.Run("restore error", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRuleRepository(t)
		repo.EXPECT().ListAlertRules(mock.Anything).Return(nil, errors.New("locked")).Once()

		engine := alerting.NewEngine(slog.Default(), nil, alerting.WithRepository(repo))
		require.ErrorIs(t, engine.Restore(t.Context()), alerting.ErrRestoreRules)
	})

	t.Run("remove deletes from repository", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockRuleRepository(t)
		repo.EXPECT().SaveAlertRule(mock.Anything, mock.Anything).Return(nil).Once()
		repo.EXPECT().DeleteAlertRule(mock.Anything, "cpu-high").Return(nil).Once()

		engine := alerting.NewEngine(slog.Default(), nil, alerting.WithRepository(repo))

		_, err := engine.AddAlertRule(t.Context(), cpuRule(time.Minute))
		require.NoError(t, err)
		require.NoError(t, engine.RemoveAlertRule(t.Context(), "cpu-high"))
	})
}
