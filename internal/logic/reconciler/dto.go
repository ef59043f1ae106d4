package reconciler

import "k8s.io/apimachinery/pkg/api/resource"

// ObservedInstance is an instance as reported by the orchestrator.
type ObservedInstance struct {
	ID          string
	Ready       bool
	Terminating bool
	CPULimit    *resource.Quantity
	MemoryLimit *resource.Quantity
}

// InstanceUsage is the resource usage reported for an instance.
type InstanceUsage struct {
	CPU         *resource.Quantity
	Memory      *resource.Quantity
	Connections int
}
