package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/config"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr bool
	wantCfg *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.PingerInterval != 0 {
		require.Equal(t, want.PingerInterval, got.PingerInterval)
	}

	if want.FlushInterval != 0 {
		require.Equal(t, want.FlushInterval, got.FlushInterval)
	}

	if want.BufferSize != 0 {
		require.Equal(t, want.BufferSize, got.BufferSize)
	}

	if want.Retention != 0 {
		require.Equal(t, want.Retention, got.Retention)
	}

	if want.EvaluationInterval != 0 {
		require.Equal(t, want.EvaluationInterval, got.EvaluationInterval)
	}

	if want.MaxConcurrentActions != 0 {
		require.Equal(t, want.MaxConcurrentActions, got.MaxConcurrentActions)
	}

	if want.ShutdownGracePeriod != 0 {
		require.Equal(t, want.ShutdownGracePeriod, got.ShutdownGracePeriod)
	}

	if want.DefaultMaxInstances != 0 {
		require.Equal(t, want.DefaultMinInstances, got.DefaultMinInstances)
		require.Equal(t, want.DefaultMaxInstances, got.DefaultMaxInstances)
	}

	if want.Orchestrator != "" {
		require.Equal(t, want.Orchestrator, got.Orchestrator)
	}

	if want.KubeConfig != "" {
		require.Equal(t, want.KubeConfig, got.KubeConfig)
	}

	if want.KubeNamespace != "" {
		require.Equal(t, want.KubeNamespace, got.KubeNamespace)
	}

	require.Equal(t, want.DisableDefaultAlertRules, got.DisableDefaultAlertRules)
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			giveEnv: map[string]string{},
			wantCfg: &config.Config{
				LogLevel:             "info",
				LogFormat:            "json",
				HTTPPort:             "8080",
				MetricsPort:          "9090",
				PingerInterval:       10 * time.Second,
				FlushInterval:        10 * time.Second,
				BufferSize:           100,
				Retention:            time.Hour,
				EvaluationInterval:   30 * time.Second,
				MaxConcurrentActions: 5,
				ShutdownGracePeriod:  30 * time.Second,
				DefaultMinInstances:  1,
				DefaultMaxInstances:  10,
				Orchestrator:         config.OrchestratorSimulated,
				KubeNamespace:        "default",
			},
		},
		{
			name: "overrides with explicit units",
			giveEnv: map[string]string{
				"AUTOSCALER_HTTP_PORT":                   "9000",
				"AUTOSCALER_EVALUATION_INTERVAL":         "1m",
				"AUTOSCALER_FLUSH_INTERVAL":              "500ms",
				"AUTOSCALER_MAX_CONCURRENT_ACTIONS":      "2",
				"AUTOSCALER_ORCHESTRATOR":                "kubernetes",
				"AUTOSCALER_KUBE_NAMESPACE":              "apps",
				"AUTOSCALER_DISABLE_DEFAULT_ALERT_RULES": "true",
			},
			wantCfg: &config.Config{
				HTTPPort:                 "9000",
				EvaluationInterval:       time.Minute,
				FlushInterval:            500 * time.Millisecond,
				MaxConcurrentActions:     2,
				Orchestrator:             config.OrchestratorKubernetes,
				KubeNamespace:            "apps",
				DisableDefaultAlertRules: true,
			},
		},
		{
			name: "kubeconfig falls back to KUBECONFIG",
			giveEnv: map[string]string{
				"KUBECONFIG": "/home/user/.kube/config",
			},
			wantCfg: &config.Config{
				KubeConfig: "/home/user/.kube/config",
			},
		},
		{
			name: "own kubeconfig wins over fallback",
			giveEnv: map[string]string{
				"KUBECONFIG":            "/home/user/.kube/config",
				"AUTOSCALER_KUBECONFIG": "/etc/autoscaler/kubeconfig",
			},
			wantCfg: &config.Config{
				KubeConfig: "/etc/autoscaler/kubeconfig",
			},
		},
		{
			name: "default bounds",
			giveEnv: map[string]string{
				"AUTOSCALER_DEFAULT_MIN_INSTANCES": "2",
				"AUTOSCALER_DEFAULT_MAX_INSTANCES": "2",
			},
			wantCfg: &config.Config{
				DefaultMinInstances: 2,
				DefaultMaxInstances: 2,
			},
		},
		{
			name:    "invalid duration",
			giveEnv: map[string]string{"AUTOSCALER_EVALUATION_INTERVAL": "x"},
			wantErr: true,
		},
		{
			name:    "duration below minimum",
			giveEnv: map[string]string{"AUTOSCALER_EVALUATION_INTERVAL": "500ms"},
			wantErr: true,
		},
		{
			name:    "invalid integer",
			giveEnv: map[string]string{"AUTOSCALER_BUFFER_SIZE": "many"},
			wantErr: true,
		},
		{
			name:    "zero concurrent actions",
			giveEnv: map[string]string{"AUTOSCALER_MAX_CONCURRENT_ACTIONS": "0"},
			wantErr: true,
		},
		{
			name: "max below min",
			giveEnv: map[string]string{
				"AUTOSCALER_DEFAULT_MIN_INSTANCES": "5",
				"AUTOSCALER_DEFAULT_MAX_INSTANCES": "3",
			},
			wantErr: true,
		},
		{
			name:    "unknown orchestrator",
			giveEnv: map[string]string{"AUTOSCALER_ORCHESTRATOR": "nomad"},
			wantErr: true,
		},
		{
			name:    "invalid bool",
			giveEnv: map[string]string{"AUTOSCALER_DISABLE_DEFAULT_ALERT_RULES": "sometimes"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}

const testPolicyFile = `
alert_rules:
  - id: high-queue
    name: Queue backlog
    metric: queue_depth
    condition: gt
    threshold: 500
    severity: critical
    enabled: true
    cooldown: 2m
policies:
  - id: api-cpu
    target_service: api
    enabled: true
    scale_up_metric: cpu_usage
    scale_up_threshold: 75
    scale_up_cooldown: 1m
    scale_down_threshold: 25
    scale_down_cooldown: 5m
    min_instances: 2
    max_instances: 8
    evaluation_periods: 3
    period_duration: 30s
    strategy: target_tracking
    target_value: 60
    metric_tags:
      service: api
schedules:
  - name: api-business-hours
    service: api
    cron: "0 8 * * 1-5"
    tz: Europe/Berlin
    desired_instances: 4
`

func TestLoadPolicyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPolicyFile), 0o600))

	pf, err := config.LoadPolicyFile(path)
	require.NoError(t, err)

	require.Len(t, pf.AlertRules, 1)
	require.Equal(t, alerting.Rule{
		ID:        "high-queue",
		Name:      "Queue backlog",
		Metric:    "queue_depth",
		Condition: alerting.ConditionGreater,
		Threshold: 500,
		Severity:  alerting.SeverityCritical,
		Enabled:   true,
		Cooldown:  2 * time.Minute,
	}, pf.AlertRules[0])

	require.Len(t, pf.Policies, 1)
	policy := pf.Policies[0]
	require.Equal(t, scaling.StrategyTargetTracking, policy.Strategy)
	require.Equal(t, time.Minute, policy.ScaleUpCooldown)
	require.Equal(t, 30*time.Second, policy.PeriodDuration)
	require.Equal(t, 3, policy.EvaluationPeriods)
	require.InDelta(t, 60, policy.TargetValue, 0)
	require.Equal(t, map[string]string{"service": "api"}, policy.MetricTags)

	require.Len(t, pf.Schedules, 1)
	require.Equal(t, "Europe/Berlin", pf.Schedules[0].TZ)
	require.Equal(t, 4, pf.Schedules[0].DesiredInstances)
}

func TestDecodePolicyFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveDoc string
		wantErr bool
	}{
		{name: "empty document", giveDoc: ""},
		{name: "only schedules", giveDoc: "schedules: []\n"},
		{name: "unknown key", giveDoc: "rules: []\n", wantErr: true},
		{name: "bad duration", giveDoc: "alert_rules:\n  - id: x\n    cooldown: soon\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.DecodePolicyFile(strings.NewReader(tt.giveDoc))
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)

				return
			}

			require.NoError(t, err)
		})
	}

	_, err := config.LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
