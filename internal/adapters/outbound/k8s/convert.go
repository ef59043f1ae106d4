package k8s

import (
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
)

func toObservedInstance(pod *corev1.Pod) reconciler.ObservedInstance {
	return reconciler.ObservedInstance{
		ID:          pod.Name,
		Ready:       podReady(pod),
		Terminating: pod.DeletionTimestamp != nil || pod.Status.Phase == corev1.PodSucceeded || pod.Status.Phase == corev1.PodFailed,
		CPULimit:    sumLimits(pod, corev1.ResourceCPU),
		MemoryLimit: sumLimits(pod, corev1.ResourceMemory),
	}
}

func podReady(pod *corev1.Pod) bool {
	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.PodReady {
			return cond.Status == corev1.ConditionTrue
		}
	}

	return false
}

// sumLimits returns nil when any container has no limit for name.
func sumLimits(pod *corev1.Pod, name corev1.ResourceName) *resource.Quantity {
	if len(pod.Spec.Containers) == 0 {
		return nil
	}

	total := resource.NewQuantity(0, resource.DecimalSI)

	for i := range pod.Spec.Containers {
		limit, ok := pod.Spec.Containers[i].Resources.Limits[name]
		if !ok {
			return nil
		}

		total.Add(limit)
	}

	return total
}

func toInstanceUsage(
	ctx context.Context,
	logger *slog.Logger,
	podMetrics *metricsv1beta1.PodMetrics,
) *reconciler.InstanceUsage {
	cpuUsage := resource.NewQuantity(0, resource.DecimalSI)
	memoryUsage := resource.NewQuantity(0, resource.BinarySI)

	for i := range podMetrics.Containers {
		container := podMetrics.Containers[i]

		if cpu := container.Usage.Cpu(); cpu != nil {
			cpuUsage.Add(*cpu)
		}

		containerMemoryUsage := container.Usage.Memory()
		if containerMemoryUsage == nil {
			logger.WarnContext(ctx, "container memory usage is nil, skipping",
				"pod", podMetrics.Name,
				"container", container.Name,
			)

			continue
		}

		memoryUsage.Add(*containerMemoryUsage)
		logger.DebugContext(ctx, "container metrics",
			"pod", podMetrics.Name,
			"container", container.Name,
			"cpu", container.Usage.Cpu().String(),
			"memory", containerMemoryUsage.String(),
		)
	}

	return &reconciler.InstanceUsage{
		CPU:    cpuUsage,
		Memory: memoryUsage,
	}
}
