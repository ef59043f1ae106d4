package k8s

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
)

var errReplicasOutOfRange = errors.New("replicas out of range")

// Scale marks the pods in req.Remove for deletion first and sets the Deployment
// scale subresource to req.Target. New pods are picked up by the reconciler once they exist,
// so Started is always empty.
func (a *Adapter) Scale(ctx context.Context, req executor.ScaleRequest) (executor.ScaleResult, error) {
	if req.Target < 0 || req.Target > math.MaxInt32 {
		return executor.ScaleResult{}, fmt.Errorf("%w: %d", errReplicasOutOfRange, req.Target)
	}

	logger := a.logger.With("service", req.Service)

	stopped := make([]string, 0, len(req.Remove))

	for _, id := range req.Remove {
		err := a.SetAnnotationCommand(ctx, id, PodDeletionCostAnnotation, removalDeletionCost)
		if err != nil {
			var target *PodNotFoundError
			if errors.As(err, &target) {
				logger.DebugContext(ctx, "pod selected for removal is already gone", "pod", id)

				continue
			}

			return executor.ScaleResult{}, err
		}

		stopped = append(stopped, id)
	}

	replicas := int32(req.Target) //nolint:gosec // range checked above

	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		deployments := a.clientset.AppsV1().Deployments(a.namespace)

		scale, err := deployments.GetScale(ctx, req.Service, metav1.GetOptions{})
		if err != nil {
			if apierrors.IsNotFound(err) {
				return fmt.Errorf("get deployment %s scale: %w", req.Service, errDeploymentNotFound)
			}

			return fmt.Errorf("get deployment %s scale: %w", req.Service, err)
		}

		scale.Spec.Replicas = replicas

		_, err = deployments.UpdateScale(ctx, req.Service, scale, metav1.UpdateOptions{})

		return err
	})
	if err != nil {
		return executor.ScaleResult{}, fmt.Errorf("update deployment scale: %w", err)
	}

	logger.InfoContext(ctx, "deployment scaled",
		"from", req.Current,
		"to", req.Target,
		"marked", len(stopped),
	)

	return executor.ScaleResult{Stopped: stopped}, nil
}

// SetAnnotationCommand sets an annotation on a pod. An empty value removes it.
func (a *Adapter) SetAnnotationCommand(
	ctx context.Context,
	name string,
	key,
	value string,
) error {
	annotations := map[string]any{key: value}
	if value == "" {
		annotations[key] = nil
	}

	patch := map[string]any{
		"metadata": map[string]any{
			"annotations": annotations,
		},
	}

	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal annotation patch: %w", err)
	}

	_, err = a.clientset.CoreV1().Pods(a.namespace).Patch(
		ctx,
		name,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("patch pod annotation: %w", errPodNotFound)
		}

		return fmt.Errorf("patch pod annotation: %w", err)
	}

	return nil
}
