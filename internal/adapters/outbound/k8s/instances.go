package k8s

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
)

func (a *Adapter) ListInstancesQuery(
	ctx context.Context,
	service string,
) ([]reconciler.ObservedInstance, error) {
	deployment, err := a.getDeployment(ctx, service)
	if err != nil {
		return nil, err
	}

	selector, err := metav1.LabelSelectorAsSelector(deployment.Spec.Selector)
	if err != nil {
		return nil, fmt.Errorf("deployment selector: %w", err)
	}

	podList, err := a.clientset.CoreV1().Pods(a.namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: selector.String(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	out := make([]reconciler.ObservedInstance, 0, len(podList.Items))
	for i := range podList.Items {
		out = append(out, toObservedInstance(&podList.Items[i]))
	}

	return out, nil
}

func (a *Adapter) GetInstanceUsageQuery(
	ctx context.Context,
	_ string,
	id string,
) (*reconciler.InstanceUsage, error) {
	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(a.namespace).Get(
		ctx,
		id,
		metav1.GetOptions{},
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("get pod metrics: %w", errPodNotFound)
		} else if apierrors.IsTooManyRequests(err) {
			return nil, fmt.Errorf("get pod metrics: %w", errTooManyRequests)
		}

		return nil, fmt.Errorf("get pod metrics: %w", err)
	}

	return toInstanceUsage(ctx, a.logger, podMetrics), nil
}

func (a *Adapter) getDeployment(ctx context.Context, name string) (*appsv1.Deployment, error) {
	deployment, err := a.clientset.AppsV1().Deployments(a.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("get deployment %s: %w", name, errDeploymentNotFound)
		}

		return nil, fmt.Errorf("get deployment %s: %w", name, err)
	}

	return deployment, nil
}
