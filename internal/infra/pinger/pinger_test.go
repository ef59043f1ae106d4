package pinger

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	name  string
	err   atomic.Pointer[error]
	delay time.Duration
	calls atomic.Int32
}

func (f *fakePinger) Name() string { return f.name }

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if p := f.err.Load(); p != nil {
		return *p
	}

	return nil
}

func (f *fakePinger) fail(err error) { f.err.Store(&err) }

func (f *fakePinger) heal() { f.err.Store(nil) }

type optionalPinger struct {
	fakePinger
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
}

func (o *optionalPinger) PingerReadyCritical() bool     { return o.readyCritical }
func (o *optionalPinger) PingerCritical() bool          { return o.healthCritical }
func (o *optionalPinger) PingerTimeout() time.Duration { return o.timeout }

func TestService_Register(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), time.Second)

	require.ErrorIs(t, svc.Register(nil), ErrNilPinger)
	require.NoError(t, svc.Register(&fakePinger{name: "metric-store"}))
	require.ErrorIs(t, svc.Register(&fakePinger{name: "metric-store"}), ErrPingerAlreadyRegistered)

	_, err := svc.GetStats("scaling-loop")
	require.ErrorIs(t, err, ErrPingerNotFound)

	stats, err := svc.GetStats("metric-store")
	require.NoError(t, err)
	require.Zero(t, stats.TotalChecks)
	require.True(t, stats.IsHealthy)
	require.True(t, stats.IsReady)
}

func TestService_RunOnce(t *testing.T) {
	t.Parallel()

	store := &fakePinger{name: "metric-store"}
	loop := &fakePinger{name: "scaling-loop"}

	svc := New(slog.Default(), time.Second)
	require.NoError(t, svc.Register(store))
	require.NoError(t, svc.Register(loop))

	loop.fail(errors.New("stale evaluation"))
	svc.RunOnce(t.Context())
	svc.RunOnce(t.Context())

	all := svc.GetAllStats()
	require.Len(t, all, 2)

	require.True(t, all["metric-store"].IsHealthy)
	require.Equal(t, 2, all["metric-store"].TotalChecks)
	require.Zero(t, all["metric-store"].TotalFailures)
	require.Equal(t, 2, all["metric-store"].Latency.Count)

	got := all["scaling-loop"]
	require.False(t, got.IsHealthy)
	require.False(t, got.IsReady)
	require.EqualError(t, got.LastError, "stale evaluation")
	require.Equal(t, 2, got.ConsecutiveFailures)
	require.Equal(t, 2, got.TotalFailures)
	require.False(t, got.LastRun.IsZero())

	loop.heal()
	svc.RunOnce(t.Context())

	got, err := svc.GetStats("scaling-loop")
	require.NoError(t, err)
	require.True(t, got.IsHealthy)
	require.NoError(t, got.LastError)
	require.Zero(t, got.ConsecutiveFailures)
	require.Equal(t, 2, got.TotalFailures)
	require.Equal(t, 3, got.TotalChecks)
}

func TestService_Criticality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		giveReadyCritical bool
		giveCritical      bool
		wantReady         bool
		wantHealthy       bool
	}{
		{name: "critical for both", giveReadyCritical: true, giveCritical: true},
		{name: "readiness only", giveReadyCritical: true, wantHealthy: true},
		{name: "liveness only", giveCritical: true, wantReady: true},
		{name: "informational", wantReady: true, wantHealthy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &optionalPinger{
				fakePinger:     fakePinger{name: "webhook"},
				readyCritical:  tt.giveReadyCritical,
				healthCritical: tt.giveCritical,
			}
			p.fail(errors.New("unreachable"))

			svc := New(slog.Default(), time.Second)
			require.NoError(t, svc.Register(p))
			svc.RunOnce(t.Context())

			got, err := svc.GetStats("webhook")
			require.NoError(t, err)
			require.Equal(t, tt.wantReady, got.IsReady)
			require.Equal(t, tt.wantHealthy, got.IsHealthy)
		})
	}
}

func TestService_PingerTimeout(t *testing.T) {
	t.Parallel()

	p := &optionalPinger{
		fakePinger:     fakePinger{name: "k8s-adapter", delay: time.Second},
		readyCritical:  true,
		healthCritical: true,
		timeout:        20 * time.Millisecond,
	}

	svc := New(slog.Default(), time.Second)
	require.NoError(t, svc.Register(p))

	start := time.Now()
	svc.RunOnce(t.Context())
	require.Less(t, time.Since(start), 500*time.Millisecond)

	got, err := svc.GetStats("k8s-adapter")
	require.NoError(t, err)
	require.ErrorIs(t, got.LastError, context.DeadlineExceeded)
	require.False(t, got.IsReady)
}

func TestService_Lifecycle(t *testing.T) {
	t.Parallel()

	p := &fakePinger{name: "metric-store"}

	svc := New(slog.Default(), 20*time.Millisecond)
	require.NoError(t, svc.Register(p))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))

	select {
	case <-svc.Ready():
	case <-time.After(time.Second):
		t.Fatal("pinger service did not become ready")
	}

	require.GreaterOrEqual(t, p.calls.Load(), int32(1))
	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, svc.Shutdown(shutdownCtx))
	require.NoError(t, svc.Shutdown(shutdownCtx))
	require.Equal(t, "pinger-service", svc.Name())
}

func TestService_ShutdownTimeout(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), time.Second)
	require.NoError(t, svc.Shutdown(t.Context()), "never started")

	slow := &optionalPinger{
		fakePinger:     fakePinger{name: "state-db", delay: 5 * time.Second},
		readyCritical:  true,
		healthCritical: true,
		timeout:        10 * time.Second,
	}

	svc = New(slog.Default(), time.Second)
	require.NoError(t, svc.Register(slow))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))

	shutdownCtx, shutdownCancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer shutdownCancel()

	require.ErrorIs(t, svc.Shutdown(shutdownCtx), context.DeadlineExceeded)
}

func TestLatencyWindow(t *testing.T) {
	t.Parallel()

	w := newLatencyWindow(4)
	require.Equal(t, LatencySummary{}, w.summary())

	for _, ms := range []int{40, 10, 30} {
		w.add(time.Duration(ms) * time.Millisecond)
	}

	require.Equal(t, []time.Duration{40 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond}, w.snapshot())

	w.add(20 * time.Millisecond)
	w.add(50 * time.Millisecond)

	require.Equal(t, []time.Duration{
		50 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond,
	}, w.snapshot())

	require.Equal(t, LatencySummary{
		Count:  4,
		Median: 20 * time.Millisecond,
		P90:    50 * time.Millisecond,
		P99:    50 * time.Millisecond,
		Max:    50 * time.Millisecond,
	}, w.summary())
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	sorted := make([]time.Duration, 10)
	for i := range sorted {
		sorted[i] = time.Duration(i+1) * time.Millisecond
	}

	tests := []struct {
		name        string
		giveValues  []time.Duration
		givePercent float64
		want        time.Duration
	}{
		{name: "empty", givePercent: 50, want: 0},
		{name: "single", giveValues: []time.Duration{7}, givePercent: 99, want: 7},
		{name: "median", giveValues: sorted, givePercent: 50, want: 5 * time.Millisecond},
		{name: "p90", giveValues: sorted, givePercent: 90, want: 9 * time.Millisecond},
		{name: "p99", giveValues: sorted, givePercent: 99, want: 10 * time.Millisecond},
		{name: "zero clamps to first", giveValues: sorted, givePercent: 0, want: time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, percentile(tt.giveValues, tt.givePercent))
		})
	}
}
