package config

import "time"

// Env key constants. All autoscaler configuration env vars use the AUTOSCALER_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Log level: debug, info, warn, error.
const envKeyLogLevel = "AUTOSCALER_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "AUTOSCALER_LOG_FORMAT"

// Port for the API and health/readiness HTTP server.
const envKeyHTTPPort = "AUTOSCALER_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "AUTOSCALER_METRICS_PORT"

// File whose presence at startup means the pod is being terminated.
const envKeyTerminationFile = "AUTOSCALER_TERMINATION_FILE"

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "AUTOSCALER_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Metric store periodic flush interval.
const (
	envKeyFlushInterval = "AUTOSCALER_FLUSH_INTERVAL"
	envMinFlushInterval = 100 * time.Millisecond
)

// Buffered points per metric that trigger an immediate flush.
const (
	envKeyBufferSize = "AUTOSCALER_BUFFER_SIZE"
	envMinBufferSize = 1
)

// How long recorded points are kept.
const (
	envKeyRetention = "AUTOSCALER_RETENTION"
	envMinRetention = time.Minute
)

// Upper bound of retained points per metric.
const (
	envKeyMaxPointsPerMetric = "AUTOSCALER_MAX_POINTS_PER_METRIC"
	envMinMaxPointsPerMetric = 1
)

// Scaling policy evaluation interval.
const (
	envKeyEvaluationInterval = "AUTOSCALER_EVALUATION_INTERVAL"
	envMinEvaluationInterval = time.Second
)

// Scaling actions executed at the same time.
const (
	envKeyMaxConcurrentActions = "AUTOSCALER_MAX_CONCURRENT_ACTIONS"
	envMinMaxConcurrentActions = 1
)

// How long finished scaling actions stay queryable.
const (
	envKeyActionRetention = "AUTOSCALER_ACTION_RETENTION"
	envMinActionRetention = time.Second
)

// Time in-flight scaling actions get to finish on shutdown.
const (
	envKeyShutdownGracePeriod = "AUTOSCALER_SHUTDOWN_GRACE_PERIOD"
	envMinShutdownGracePeriod = time.Second
)

// Bounds for manual scaling of services without a policy.
const (
	envKeyDefaultMinInstances = "AUTOSCALER_DEFAULT_MIN_INSTANCES"
	envKeyDefaultMaxInstances = "AUTOSCALER_DEFAULT_MAX_INSTANCES"
	envMinDefaultMinInstances = 1
)

// Orchestrator backend: simulated or kubernetes.
const envKeyOrchestrator = "AUTOSCALER_ORCHESTRATOR"

// Startup delay before a simulated instance reports ready.
const (
	envKeySimulatedStartupDelay = "AUTOSCALER_SIMULATED_STARTUP_DELAY"
	envMinSimulatedStartupDelay = 0
)

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "AUTOSCALER_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "AUTOSCALER_KUBE_MASTER"

// Namespace of the scaled Deployments.
const envKeyKubeNamespace = "AUTOSCALER_KUBE_NAMESPACE"

// Instance reconciliation interval.
const (
	envKeyReconcileInterval = "AUTOSCALER_RECONCILE_INTERVAL"
	envMinReconcileInterval = time.Second
)

// How often scheduled capacity entries are checked.
const (
	envKeyScheduleInterval = "AUTOSCALER_SCHEDULE_INTERVAL"
	envMinScheduleInterval = time.Second
)

// YAML file with alert rules, scaling policies and scheduled capacity.
const envKeyPolicyFile = "AUTOSCALER_POLICY_FILE"

// SQLite file for alert rules and scaling policies; empty keeps state in memory.
const envKeyStateDBPath = "AUTOSCALER_STATE_DB_PATH"

// Webhook receiving alert and scaling action notifications; empty disables it.
const envKeyNotifyWebhookURL = "AUTOSCALER_NOTIFY_WEBHOOK_URL"

// Skip the built-in alert rules.
const envKeyDisableDefaultAlertRules = "AUTOSCALER_DISABLE_DEFAULT_ALERT_RULES"

// Standard k8s env keys used as fallback when AUTOSCALER_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
