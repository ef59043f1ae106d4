package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autoscaler"

var (
	pointsRecordedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metric_points_recorded_total",
			Help:      "Total number of telemetry points accepted by the metric store.",
		},
	)

	pointsDroppedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metric_points_dropped_total",
			Help:      "Total number of telemetry points dropped by the metric store.",
		},
		[]string{"reason"},
	)

	flushesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metric_store_flushes_total",
			Help:      "Total number of metric buffer flushes by trigger.",
		},
		[]string{"trigger"},
	)

	alertsFiredTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_fired_total",
			Help:      "Total number of alerts fired per rule.",
		},
		[]string{"rule", "severity"},
	)

	evaluationErrorsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_evaluation_errors_total",
			Help:      "Total number of scaling policy evaluations that failed.",
		},
		[]string{"policy"},
	)

	scalingActionsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scaling_actions_total",
			Help:      "Total number of scaling actions by terminal status.",
		},
		[]string{"service", "action", "status"},
	)

	scalingActionDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scaling_action_duration_seconds",
			Help:      "Time spent executing scaling actions against the orchestrator.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "action"},
	)

	serviceInstances = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_instances",
			Help:      "Number of starting or running instances per service.",
		},
		[]string{"service"},
	)

	eventsDroppedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Total number of events not delivered because a subscriber was full.",
		},
		[]string{"type"},
	)

	notificationsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of webhook notifications by outcome.",
		},
		[]string{"type", "status"},
	)

	componentUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_up",
			Help:      "Whether the last health check of a component succeeded (1) or failed (0).",
		},
		[]string{"component"},
	)

	componentCheckDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "component_check_duration_seconds",
			Help:      "Duration of component health checks.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"component", "result"},
	)

	appState = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "app_state",
			Help:      "Lifecycle state of the process; the current state is 1, the others 0.",
		},
		[]string{"state"},
	)

	scheduledScalingTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduled_scaling_total",
			Help:      "Total number of scheduled capacity entries run by outcome.",
		},
		[]string{"schedule", "status"},
	)
)

// RecordPointRecorded counts a point accepted by the metric store.
func RecordPointRecorded() {
	pointsRecordedTotal.Inc()
}

// RecordPointDropped counts a point rejected by the metric store.
func RecordPointDropped(reason string) {
	pointsDroppedTotal.WithLabelValues(reason).Inc()
}

// RecordFlush counts a buffer flush; trigger is "size", "timer" or "manual".
func RecordFlush(trigger string) {
	flushesTotal.WithLabelValues(trigger).Inc()
}

// RecordAlertFired counts an alert fired by a rule.
func RecordAlertFired(rule, severity string) {
	alertsFiredTotal.WithLabelValues(rule, severity).Inc()
}

// RecordEvaluationError counts a failed policy evaluation.
func RecordEvaluationError(policy string) {
	evaluationErrorsTotal.WithLabelValues(policy).Inc()
}

// RecordScalingAction counts a scaling action reaching a terminal status and observes
// its execution time.
func RecordScalingAction(service, action, status string, seconds float64) {
	scalingActionsTotal.WithLabelValues(service, action, status).Inc()
	scalingActionDuration.WithLabelValues(service, action).Observe(seconds)
}

// SetServiceInstances sets the capacity gauge for a service.
func SetServiceInstances(service string, count int) {
	serviceInstances.WithLabelValues(service).Set(float64(count))
}

// RecordEventDropped counts an event the bus could not deliver.
func RecordEventDropped(eventType string) {
	eventsDroppedTotal.WithLabelValues(eventType).Inc()
}

// RecordNotification counts a webhook delivery; status is "sent" or "failed".
func RecordNotification(eventType, status string) {
	notificationsTotal.WithLabelValues(eventType, status).Inc()
}

// RecordScheduledScaling counts a scheduled capacity run.
func RecordScheduledScaling(schedule, status string) {
	scheduledScalingTotal.WithLabelValues(schedule, status).Inc()
}

// RecordComponentCheck observes a component health check and updates its up gauge.
func RecordComponentCheck(component string, seconds float64, ok bool) {
	result, up := "ok", 1.0
	if !ok {
		result, up = "failed", 0
	}

	componentCheckDuration.WithLabelValues(component, result).Observe(seconds)
	componentUp.WithLabelValues(component).Set(up)
}

// SetAppState marks current as the active lifecycle state among all.
func SetAppState(current string, all []string) {
	for _, st := range all {
		v := 0.0
		if st == current {
			v = 1
		}

		appState.WithLabelValues(st).Set(v)
	}
}
