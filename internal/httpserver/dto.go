package httpserver

import (
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/schedule"
)

// Durations travel as milliseconds.

type recordMetricRequest struct {
	Name      string            `json:"name"`
	Value     *float64          `json:"value"`
	Unit      string            `json:"unit"`
	Tags      map[string]string `json:"tags"`
	Timestamp *time.Time        `json:"timestamp"`
}

type metricPointsResponse struct {
	Name   string              `json:"name"`
	Points []metricstore.Point `json:"points"`
}

type aggregateResponse struct {
	Name        string                  `json:"name"`
	Aggregation metricstore.Aggregation `json:"aggregation"`
	Value       float64                 `json:"value"`
	Count       int                     `json:"count"`
}

type alertRuleRequest struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Metric     string             `json:"metric"`
	Condition  alerting.Condition `json:"condition"`
	Threshold  float64            `json:"threshold"`
	Severity   alerting.Severity  `json:"severity"`
	Enabled    *bool              `json:"enabled"`
	CooldownMS int64              `json:"cooldown_ms"`
}

func (req alertRuleRequest) toRule() alerting.Rule {
	return alerting.Rule{
		ID:        req.ID,
		Name:      req.Name,
		Metric:    req.Metric,
		Condition: req.Condition,
		Threshold: req.Threshold,
		Severity:  req.Severity,
		Enabled:   req.Enabled == nil || *req.Enabled,
		Cooldown:  time.Duration(req.CooldownMS) * time.Millisecond,
	}
}

type alertRuleResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Metric     string             `json:"metric"`
	Condition  alerting.Condition `json:"condition"`
	Threshold  float64            `json:"threshold"`
	Severity   alerting.Severity  `json:"severity"`
	Enabled    bool               `json:"enabled"`
	CooldownMS int64              `json:"cooldown_ms"`
}

func toAlertRuleResponse(r alerting.Rule) alertRuleResponse {
	return alertRuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Metric:     r.Metric,
		Condition:  r.Condition,
		Threshold:  r.Threshold,
		Severity:   r.Severity,
		Enabled:    r.Enabled,
		CooldownMS: r.Cooldown.Milliseconds(),
	}
}

type policyRequest struct {
	ID                  string            `json:"id"`
	TargetService       string            `json:"target_service"`
	Enabled             *bool             `json:"enabled"`
	ScaleUpMetric       string            `json:"scale_up_metric"`
	ScaleUpThreshold    float64           `json:"scale_up_threshold"`
	ScaleUpCooldownMS   int64             `json:"scale_up_cooldown_ms"`
	ScaleUpBy           int               `json:"scale_up_by"`
	ScaleDownMetric     string            `json:"scale_down_metric"`
	ScaleDownThreshold  float64           `json:"scale_down_threshold"`
	ScaleDownCooldownMS int64             `json:"scale_down_cooldown_ms"`
	ScaleDownBy         int               `json:"scale_down_by"`
	MinInstances        int               `json:"min_instances"`
	MaxInstances        int               `json:"max_instances"`
	EvaluationPeriods   int               `json:"evaluation_periods"`
	PeriodDurationMS    int64             `json:"period_duration_ms"`
	Strategy            scaling.Strategy  `json:"strategy"`
	TargetValue         float64           `json:"target_value"`
	MetricTags          map[string]string `json:"metric_tags"`
}

func (req policyRequest) toPolicy() scaling.Policy {
	return scaling.Policy{
		ID:                 req.ID,
		TargetService:      req.TargetService,
		Enabled:            req.Enabled == nil || *req.Enabled,
		ScaleUpMetric:      req.ScaleUpMetric,
		ScaleUpThreshold:   req.ScaleUpThreshold,
		ScaleUpCooldown:    time.Duration(req.ScaleUpCooldownMS) * time.Millisecond,
		ScaleUpBy:          req.ScaleUpBy,
		ScaleDownMetric:    req.ScaleDownMetric,
		ScaleDownThreshold: req.ScaleDownThreshold,
		ScaleDownCooldown:  time.Duration(req.ScaleDownCooldownMS) * time.Millisecond,
		ScaleDownBy:        req.ScaleDownBy,
		MinInstances:       req.MinInstances,
		MaxInstances:       req.MaxInstances,
		EvaluationPeriods:  req.EvaluationPeriods,
		PeriodDuration:     time.Duration(req.PeriodDurationMS) * time.Millisecond,
		Strategy:           req.Strategy,
		TargetValue:        req.TargetValue,
		MetricTags:         req.MetricTags,
	}
}

type policyResponse struct {
	ID                  string            `json:"id"`
	TargetService       string            `json:"target_service"`
	Enabled             bool              `json:"enabled"`
	ScaleUpMetric       string            `json:"scale_up_metric"`
	ScaleUpThreshold    float64           `json:"scale_up_threshold"`
	ScaleUpCooldownMS   int64             `json:"scale_up_cooldown_ms"`
	ScaleUpBy           int               `json:"scale_up_by"`
	ScaleDownMetric     string            `json:"scale_down_metric"`
	ScaleDownThreshold  float64           `json:"scale_down_threshold"`
	ScaleDownCooldownMS int64             `json:"scale_down_cooldown_ms"`
	ScaleDownBy         int               `json:"scale_down_by"`
	MinInstances        int               `json:"min_instances"`
	MaxInstances        int               `json:"max_instances"`
	EvaluationPeriods   int               `json:"evaluation_periods"`
	PeriodDurationMS    int64             `json:"period_duration_ms"`
	Strategy            scaling.Strategy  `json:"strategy"`
	TargetValue         float64           `json:"target_value,omitempty"`
	MetricTags          map[string]string `json:"metric_tags,omitempty"`
	CustomConditions    bool              `json:"custom_conditions,omitempty"`
}

func toPolicyResponse(p scaling.Policy) policyResponse {
	return policyResponse{
		ID:                  p.ID,
		TargetService:       p.TargetService,
		Enabled:             p.Enabled,
		ScaleUpMetric:       p.ScaleUpMetric,
		ScaleUpThreshold:    p.ScaleUpThreshold,
		ScaleUpCooldownMS:   p.ScaleUpCooldown.Milliseconds(),
		ScaleUpBy:           p.ScaleUpBy,
		ScaleDownMetric:     p.ScaleDownMetric,
		ScaleDownThreshold:  p.ScaleDownThreshold,
		ScaleDownCooldownMS: p.ScaleDownCooldown.Milliseconds(),
		ScaleDownBy:         p.ScaleDownBy,
		MinInstances:        p.MinInstances,
		MaxInstances:        p.MaxInstances,
		EvaluationPeriods:   p.EvaluationPeriods,
		PeriodDurationMS:    p.PeriodDuration.Milliseconds(),
		Strategy:            p.Strategy,
		TargetValue:         p.TargetValue,
		MetricTags:          p.MetricTags,
		CustomConditions:    p.CustomConditions != nil,
	}
}

type scaleRequest struct {
	Count *int `json:"count"`
}

type serviceInstancesResponse struct {
	Service      string               `json:"service"`
	Count        int                  `json:"count"`
	Healthy      int                  `json:"healthy"`
	MinInstances int                  `json:"min_instances"`
	MaxInstances int                  `json:"max_instances"`
	Instances    []instances.Instance `json:"instances"`
}

type servicesResponse struct {
	Services []string `json:"services"`
}

type actionsResponse struct {
	Actions []scaling.Action `json:"actions"`
}

type schedulesResponse struct {
	Schedules []schedule.Status `json:"schedules"`
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}
