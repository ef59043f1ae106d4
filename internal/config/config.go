package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	OrchestratorSimulated  = "simulated"
	OrchestratorKubernetes = "kubernetes"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel        string
	LogFormat       string
	HTTPPort        string
	MetricsPort     string
	TerminationFile string
	PingerInterval  time.Duration

	FlushInterval      time.Duration
	BufferSize         int
	Retention          time.Duration
	MaxPointsPerMetric int

	EvaluationInterval   time.Duration
	MaxConcurrentActions int
	ActionRetention      time.Duration
	ShutdownGracePeriod  time.Duration
	DefaultMinInstances  int
	DefaultMaxInstances  int

	Orchestrator          string
	SimulatedStartupDelay time.Duration
	KubeConfig            string
	KubeMaster            string
	KubeNamespace         string
	ReconcileInterval     time.Duration
	ScheduleInterval      time.Duration

	PolicyFile               string
	StateDBPath              string
	NotifyWebhookURL         string
	DisableDefaultAlertRules bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:         getEnvOrDefault(envKeyLogLevel, "info"),
		LogFormat:        getEnvOrDefault(envKeyLogFormat, "json"),
		HTTPPort:         getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:      getEnvOrDefault(envKeyMetricsPort, "9090"),
		TerminationFile:  getEnvOrDefault(envKeyTerminationFile, "/mnt/signal/terminating"),
		Orchestrator:     getEnvOrDefault(envKeyOrchestrator, OrchestratorSimulated),
		KubeConfig:       getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:       getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		KubeNamespace:    getEnvOrDefault(envKeyKubeNamespace, "default"),
		PolicyFile:       os.Getenv(envKeyPolicyFile),
		StateDBPath:      os.Getenv(envKeyStateDBPath),
		NotifyWebhookURL: os.Getenv(envKeyNotifyWebhookURL),
	}

	durations := []struct {
		key string
		def string
		min time.Duration
		dst *time.Duration
	}{
		{envKeyPingerInterval, "10s", envMinPingerInterval, &cfg.PingerInterval},
		{envKeyFlushInterval, "10s", envMinFlushInterval, &cfg.FlushInterval},
		{envKeyRetention, "1h", envMinRetention, &cfg.Retention},
		{envKeyEvaluationInterval, "30s", envMinEvaluationInterval, &cfg.EvaluationInterval},
		{envKeyActionRetention, "60s", envMinActionRetention, &cfg.ActionRetention},
		{envKeyShutdownGracePeriod, "30s", envMinShutdownGracePeriod, &cfg.ShutdownGracePeriod},
		{envKeySimulatedStartupDelay, "5s", envMinSimulatedStartupDelay, &cfg.SimulatedStartupDelay},
		{envKeyReconcileInterval, "30s", envMinReconcileInterval, &cfg.ReconcileInterval},
		{envKeyScheduleInterval, "30s", envMinScheduleInterval, &cfg.ScheduleInterval},
	}

	for _, d := range durations {
		value, err := parseDuration(d.key, getEnvOrDefault(d.key, d.def), d.min)
		if err != nil {
			return nil, err
		}

		*d.dst = value
	}

	ints := []struct {
		key string
		def string
		min int
		dst *int
	}{
		{envKeyBufferSize, "100", envMinBufferSize, &cfg.BufferSize},
		{envKeyMaxPointsPerMetric, "10000", envMinMaxPointsPerMetric, &cfg.MaxPointsPerMetric},
		{envKeyMaxConcurrentActions, "5", envMinMaxConcurrentActions, &cfg.MaxConcurrentActions},
		{envKeyDefaultMinInstances, "1", envMinDefaultMinInstances, &cfg.DefaultMinInstances},
		{envKeyDefaultMaxInstances, "10", envMinDefaultMinInstances, &cfg.DefaultMaxInstances},
	}

	for _, i := range ints {
		value, err := parseInt(i.key, getEnvOrDefault(i.key, i.def), i.min)
		if err != nil {
			return nil, err
		}

		*i.dst = value
	}

	disableDefaults, err := parseBool(envKeyDisableDefaultAlertRules, getEnvOrDefault(envKeyDisableDefaultAlertRules, "false"))
	if err != nil {
		return nil, err
	}

	cfg.DisableDefaultAlertRules = disableDefaults

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultMaxInstances < c.DefaultMinInstances {
		return fmt.Errorf("%w: %s (%d) must not be below %s (%d)", ErrInvalidConfig,
			envKeyDefaultMaxInstances, c.DefaultMaxInstances,
			envKeyDefaultMinInstances, c.DefaultMinInstances,
		)
	}

	switch c.Orchestrator {
	case OrchestratorSimulated, OrchestratorKubernetes:
	default:
		return fmt.Errorf("%w: %s must be %q or %q, got %q", ErrInvalidConfig,
			envKeyOrchestrator, OrchestratorSimulated, OrchestratorKubernetes, c.Orchestrator,
		)
	}

	return nil
}

func parseDuration(key, value string, minValue time.Duration) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %s, got %s", ErrInvalidConfig, key, minValue, d)
	}

	return d, nil
}

func parseInt(key, value string, minValue int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if n < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, key, minValue, n)
	}

	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	return b, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}
