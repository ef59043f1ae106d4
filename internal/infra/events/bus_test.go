package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
)

func alert(metric string) events.AlertEvent {
	return events.AlertEvent{
		RuleID:    "rule-1",
		Metric:    metric,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestBus_PublishFiltersByType(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	alerts, cancelAlerts := bus.Subscribe(4, events.TypeAlert)
	defer cancelAlerts()

	failures, cancelFailures := bus.Subscribe(4, events.TypeScalingActionFailed)
	defer cancelFailures()

	all, cancelAll := bus.Subscribe(4)
	defer cancelAll()

	bus.Publish(alert("cpu_usage"))
	bus.Publish(events.ScalingActionEvent{Kind: events.TypeScalingActionFailed, ActionID: "a1"})

	require.Len(t, alerts, 1)
	require.Len(t, failures, 1)
	require.Len(t, all, 2)

	got := <-alerts
	require.Equal(t, events.TypeAlert, got.EventType())
	require.Equal(t, "cpu_usage", got.(events.AlertEvent).Metric)

	gotFailure := <-failures
	require.Equal(t, "a1", gotFailure.(events.ScalingActionEvent).ActionID)
}

func TestBus_PublishDropsWhenSubscriberFull(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(alert("a"))
	bus.Publish(alert("b"))
	bus.Publish(alert("c"))

	require.Len(t, ch, 1)
	require.Equal(t, uint64(2), bus.Dropped())
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	ch, cancel := bus.Subscribe(1)
	require.Equal(t, 1, bus.SubscriberCount())

	cancel()
	cancel()

	_, ok := <-ch
	require.False(t, ok)
	require.Equal(t, 0, bus.SubscriberCount())

	// publishing with no subscribers is a no-op
	bus.Publish(alert("x"))
}

func TestBus_Close(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()

	ch, _ := bus.Subscribe(1)
	bus.Close()
	bus.Close()

	_, ok := <-ch
	require.False(t, ok)

	late, _ := bus.Subscribe(1)

	_, ok = <-late
	require.False(t, ok)
}
