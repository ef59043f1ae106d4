package k8s

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
)

// Adapter maps services onto Deployments of one namespace. A service name is the
// Deployment name and its instances are the pods matched by the Deployment selector.
type Adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
	namespace        string
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
	namespace string,
) *Adapter {
	return &Adapter{
		logger:           logger.With("component", "k8s-adapter", "namespace", namespace),
		clientset:        clientset,
		metricsClientset: metricsClientset,
		namespace:        namespace,
	}
}

var (
	_ executor.Orchestrator = (*Adapter)(nil)
	_ reconciler.Repository = (*Adapter)(nil)
)

// Name returns the name of the component
func (a *Adapter) Name() string {
	return "k8s-adapter"
}

// Ping checks that the API server answers.
func (a *Adapter) Ping(_ context.Context) error {
	if _, err := a.clientset.Discovery().ServerVersion(); err != nil {
		return fmt.Errorf("k8s server version: %w", err)
	}

	return nil
}
