package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/config"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/appstate"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
)

func TestAllChannelsClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		giveChannels    int
		giveCloseFirst  int
		giveCancelEarly bool
		wantClosed      bool
	}{
		{name: "no channels", wantClosed: true},
		{name: "all closed", giveChannels: 3, giveCloseFirst: 3, wantClosed: true},
		{name: "one still open", giveChannels: 3, giveCloseFirst: 2},
		{name: "context cancelled while waiting", giveChannels: 2, giveCancelEarly: true, wantClosed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			if tt.giveCancelEarly {
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveChannels)

			for i := range tt.giveChannels {
				ch := make(chan struct{})
				if i < tt.giveCloseFirst {
					close(ch)
				}

				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, slog.Default(), chans...)

			select {
			case <-out:
				require.True(t, tt.wantClosed, "out closed while a component was still starting")
			case <-time.After(100 * time.Millisecond):
				require.False(t, tt.wantClosed, "out not closed")
			}
		})
	}
}

const testPolicies = `
alert_rules:
  - id: queue-backlog
    name: Queue backlog
    metric: queue_depth
    condition: gt
    threshold: 500
    severity: critical
    enabled: true
    cooldown: 1m
policies:
  - id: api-cpu
    target_service: api
    enabled: true
    scale_up_metric: cpu_usage
    scale_up_threshold: 80
    scale_down_threshold: 20
    min_instances: 2
    max_instances: 6
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	policyFile := filepath.Join(dir, "policies.yaml")
	require.NoError(t, os.WriteFile(policyFile, []byte(testPolicies), 0o600))

	return &config.Config{
		HTTPPort:             "0",
		MetricsPort:          "0",
		TerminationFile:      filepath.Join(dir, "terminating"),
		PingerInterval:       time.Second,
		FlushInterval:        time.Second,
		BufferSize:           100,
		Retention:            time.Hour,
		MaxPointsPerMetric:   1000,
		EvaluationInterval:   time.Second,
		MaxConcurrentActions: 2,
		ActionRetention:      time.Minute,
		ShutdownGracePeriod:  time.Second,
		DefaultMinInstances:  1,
		DefaultMaxInstances:  10,
		Orchestrator:         config.OrchestratorSimulated,
		ReconcileInterval:    time.Second,
		ScheduleInterval:     time.Second,
		PolicyFile:           policyFile,
		StateDBPath:          filepath.Join(dir, "state.db"),
	}
}

func newTestApp(t *testing.T, cfg *config.Config, quit chan os.Signal) *App {
	t.Helper()

	logger := slog.Default()
	pingers := pinger.New(logger, cfg.PingerInterval)
	appState := appstate.New(logger, time.Now(), cfg.TerminationFile, quit, pingers)

	a, err := New(t.Context(), logger, cfg, appState, pingers)
	require.NoError(t, err)

	return a
}

func TestApp_Bootstrap(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	a := newTestApp(t, cfg, make(chan os.Signal, 1))

	require.NoError(t, a.bootstrap(t.Context()))

	rules := a.alerts.ListAlertRules()
	require.Len(t, rules, len(alerting.DefaultRules())+1)

	_, err := a.alerts.GetAlertRule("queue-backlog")
	require.NoError(t, err)

	require.Len(t, a.policies.GetAllPolicies(), 1)
	require.Equal(t, 2, a.simulated.Count("api"))

	// seeding again keeps what is already there
	require.NoError(t, a.bootstrap(t.Context()))
	require.Len(t, a.alerts.ListAlertRules(), len(rules))
	require.Equal(t, 2, a.simulated.Count("api"))

	require.NoError(t, a.appState.Shutdown(t.Context()))
}

const testOverridePolicies = `
alert_rules:
  - id: default-cpu-usage
    name: CPU saturated
    metric: cpu_usage
    condition: gte
    threshold: 95
    severity: critical
    enabled: true
    cooldown: 2m
`

func TestApp_BootstrapFileOverridesDefaultRule(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	require.NoError(t, os.WriteFile(cfg.PolicyFile, []byte(testOverridePolicies), 0o600))

	a := newTestApp(t, cfg, make(chan os.Signal, 1))
	require.NoError(t, a.bootstrap(t.Context()))

	require.Len(t, a.alerts.ListAlertRules(), len(alerting.DefaultRules()))

	got, err := a.alerts.GetAlertRule("default-cpu-usage")
	require.NoError(t, err)
	require.Equal(t, "CPU saturated", got.Name)
	require.Equal(t, alerting.ConditionGreaterEqual, got.Condition)
	require.InDelta(t, 95.0, got.Threshold, 0)
	require.Equal(t, alerting.SeverityCritical, got.Severity)
	require.Equal(t, 2*time.Minute, got.Cooldown)

	require.NoError(t, a.appState.Shutdown(t.Context()))
}

func TestWithDefaultRules(t *testing.T) {
	t.Parallel()

	defaults := []alerting.Rule{{ID: "cpu", Threshold: 80}, {ID: "memory", Threshold: 85}}

	tests := []struct {
		name     string
		giveFile []alerting.Rule
		wantIDs  []string
		wantCPU  float64
	}{
		{name: "no file rules", wantIDs: []string{"cpu", "memory"}, wantCPU: 80},
		{
			name:     "extra rule is appended",
			giveFile: []alerting.Rule{{ID: "queue"}},
			wantIDs:  []string{"cpu", "memory", "queue"},
			wantCPU:  80,
		},
		{
			name:     "same id replaces the default",
			giveFile: []alerting.Rule{{ID: "cpu", Threshold: 95}},
			wantIDs:  []string{"memory", "cpu"},
			wantCPU:  95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withDefaultRules(defaults, tt.giveFile)

			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)

				if r.ID == "cpu" {
					require.InDelta(t, tt.wantCPU, r.Threshold, 0)
				}
			}

			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApp_BootstrapRestoresState(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.DisableDefaultAlertRules = true

	first := newTestApp(t, cfg, make(chan os.Signal, 1))
	require.NoError(t, first.bootstrap(t.Context()))

	require.NoError(t, first.alerts.RemoveAlertRule(t.Context(), "queue-backlog"))

	policy, err := first.policies.GetScalingPolicy("api-cpu")
	require.NoError(t, err)

	policy.MaxInstances = 4
	require.NoError(t, first.policies.UpdateScalingPolicy(t.Context(), policy))

	require.NoError(t, first.appState.Shutdown(t.Context()))

	second := newTestApp(t, cfg, make(chan os.Signal, 1))
	require.NoError(t, second.bootstrap(t.Context()))

	// file rules come back, persisted policy edits win
	require.Len(t, second.alerts.ListAlertRules(), 1)

	got, err := second.policies.GetScalingPolicy("api-cpu")
	require.NoError(t, err)
	require.Equal(t, 4, got.MaxInstances)

	require.NoError(t, second.appState.Shutdown(t.Context()))
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	quit := make(chan os.Signal, 1)
	a := newTestApp(t, testConfig(t), quit)

	done := make(chan error, 1)

	go func() {
		done <- a.Run(t.Context())
	}()

	appState, ok := a.appState.(*appstate.AppState)
	require.True(t, ok)

	require.Eventually(t, func() bool {
		return appState.GetState() == appstate.StateRunning
	}, 5*time.Second, 10*time.Millisecond)

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("app did not stop")
	}

	require.Equal(t, appstate.StateTerminated, appState.GetState())
}
