package instances

import (
	"context"
	"time"
)

// Status is the lifecycle state of a service instance.
type Status string

const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
	StatusStopped  Status = "stopped"
)

// CountsTowardCapacity reports whether instances in s are part of the service capacity.
func (s Status) CountsTowardCapacity() bool {
	return s == StatusStarting || s == StatusRunning
}

func (s Status) valid() bool {
	switch s {
	case StatusStarting, StatusRunning, StatusStopping, StatusStopped:
		return true
	}

	return false
}

// Health is the last reported health of an instance.
type Health string

const (
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
	HealthUnknown   Health = "unknown"
)

func (h Health) valid() bool {
	switch h {
	case HealthHealthy, HealthUnhealthy, HealthUnknown:
		return true
	}

	return false
}

// ResourceUsage is the last reported usage of an instance. CPU and Memory are
// percentages of the instance allocation.
type ResourceUsage struct {
	CPU         float64 `json:"cpu"`
	Memory      float64 `json:"memory"`
	Connections int     `json:"connections"`
}

// Instance is one unit of capacity of a service.
type Instance struct {
	ID            string        `json:"id"`
	Service       string        `json:"service"`
	Status        Status        `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	HealthStatus  Health        `json:"health_status"`
	ResourceUsage ResourceUsage `json:"resource_usage"`
}

// MetricRecorder receives health and usage samples so they take part in scaling decisions.
type MetricRecorder interface {
	Gauge(ctx context.Context, name string, value float64, unit string, tags map[string]string)
}
