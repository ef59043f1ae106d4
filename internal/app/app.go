package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/telemetry-autoscaler/internal/adapters/outbound/k8s"
	"github.com/skillcoder/telemetry-autoscaler/internal/adapters/outbound/simulated"
	"github.com/skillcoder/telemetry-autoscaler/internal/adapters/outbound/sqlite"
	"github.com/skillcoder/telemetry-autoscaler/internal/adapters/outbound/webhook"
	"github.com/skillcoder/telemetry-autoscaler/internal/config"
	"github.com/skillcoder/telemetry-autoscaler/internal/httpserver"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/cronparser"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/executor"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/metricstore"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/reconciler"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/schedule"
)

// shutdownMargin is added to the executor grace period for the remaining components.
const shutdownMargin = 5 * time.Second

type App struct {
	logger     *slog.Logger
	cfg        *config.Config
	appState   appstater
	pingers    pingerService
	policyFile *config.PolicyFile

	bus       *events.Bus
	store     *metricstore.Store
	alerts    *alerting.Engine
	policies  *scaling.Registry
	evaluator *scaling.Evaluator
	simulated *simulated.Orchestrator

	components []component
}

// New creates a new application instance with all dependencies wired.
func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers pingerService,
) (*App, error) {
	a := &App{
		logger:     logger,
		cfg:        cfg,
		appState:   appState,
		pingers:    pingers,
		policyFile: &config.PolicyFile{},
	}

	if cfg.PolicyFile != "" {
		pf, err := config.LoadPolicyFile(cfg.PolicyFile)
		if err != nil {
			return nil, fmt.Errorf("load policy file: %w", err)
		}

		a.policyFile = pf
	}

	var (
		ruleRepo   alerting.RuleRepository
		policyRepo scaling.PolicyRepository
	)

	if cfg.StateDBPath != "" {
		db, err := sqlite.Open(ctx, cfg.StateDBPath)
		if err != nil {
			return nil, fmt.Errorf("open state database: %w", err)
		}

		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("migrate state database: %w", err)
		}

		state := sqlite.NewStore(logger, db)
		ruleRepo, policyRepo = state, state

		if err := a.register(state); err != nil {
			return nil, err
		}
	}

	a.bus = events.NewBus()
	if err := a.appState.RegisterShutdowner(busCloser{bus: a.bus}); err != nil {
		return nil, fmt.Errorf("register shutdowner: %w", err)
	}

	orch, err := a.newOrchestrator(logger)
	if err != nil {
		return nil, err
	}

	a.store = metricstore.New(logger, metricstore.Options{
		BufferSize:         cfg.BufferSize,
		FlushInterval:      cfg.FlushInterval,
		Retention:          cfg.Retention,
		MaxPointsPerMetric: cfg.MaxPointsPerMetric,
	})

	alertOpts := []alerting.Option{}
	if ruleRepo != nil {
		alertOpts = append(alertOpts, alerting.WithRepository(ruleRepo))
	}

	a.alerts = alerting.NewEngine(logger, a.bus, alertOpts...)
	a.store.AddObserver(a.alerts)

	a.policies = scaling.NewRegistry(logger, policyRepo)
	registry := instances.NewRegistry(logger, a.store)

	exec := executor.New(logger, orch, registry, a.bus, executor.Options{
		MaxConcurrentActions: cfg.MaxConcurrentActions,
		ActionRetention:      cfg.ActionRetention,
		ShutdownGracePeriod:  cfg.ShutdownGracePeriod,
	})

	a.evaluator = scaling.NewEvaluator(logger, a.policies, a.store, registry, exec, scaling.EvaluatorOptions{
		Interval:            cfg.EvaluationInterval,
		DefaultMinInstances: cfg.DefaultMinInstances,
		DefaultMaxInstances: cfg.DefaultMaxInstances,
	})

	recon := reconciler.New(logger, orch, registry, a.policies, cfg.ReconcileInterval)

	scheduler, err := schedule.New(logger, cronparser.New(), a.evaluator, a.policyFile.Schedules, cfg.ScheduleInterval)
	if err != nil {
		return nil, fmt.Errorf("new capacity scheduler: %w", err)
	}

	api := httpserver.NewAPI(logger, httpserver.APIDeps{
		Metrics:    a.store,
		AlertRules: a.alerts,
		Policies:   a.policies,
		Scaler:     a.evaluator,
		Instances:  registry,
		Actions:    exec,
		Schedules:  scheduler,
	})

	components := []component{httpserver.NewMetricsServer(logger, cfg.MetricsPort)}

	if cfg.NotifyWebhookURL != "" {
		components = append(components, webhook.New(logger, a.bus, webhook.Options{URL: cfg.NotifyWebhookURL}))
	}

	components = append(components,
		a.store,
		exec,
		recon,
		a.evaluator,
		scheduler,
		httpserver.New(logger, appState, cfg.HTTPPort, api),
	)

	for _, c := range components {
		if err := a.register(c); err != nil {
			return nil, err
		}
	}

	a.components = components

	if err := a.appState.RegisterShutdowner(a.pingers); err != nil {
		return nil, fmt.Errorf("register shutdowner: %w", err)
	}

	return a, nil
}

func (a *App) newOrchestrator(logger *slog.Logger) (orchestrator, error) {
	if a.cfg.Orchestrator == config.OrchestratorSimulated {
		a.simulated = simulated.New(logger, a.cfg.SimulatedStartupDelay)

		return a.simulated, nil
	}

	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		a.cfg.KubeMaster,
		a.cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	adapter := k8s.New(logger, clientset, metricsClientset, a.cfg.KubeNamespace)

	if err := a.appState.RegisterPinger(adapter); err != nil {
		return nil, fmt.Errorf("register pinger: %w", err)
	}

	return adapter, nil
}

type namedPinger interface {
	Name() string
	Ping(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func (a *App) register(c namedPinger) error {
	if err := a.appState.RegisterPinger(c); err != nil {
		return fmt.Errorf("register pinger: %w", err)
	}

	if err := a.appState.RegisterShutdowner(c); err != nil {
		return fmt.Errorf("register shutdowner: %w", err)
	}

	return nil
}

// Run starts the application and blocks until a termination signal arrives or
// the context is cancelled.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	if err := a.bootstrap(ctx); err != nil {
		return a.stop(ctx, cancel, fmt.Errorf("bootstrap: %w", err))
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components)+1)

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			return a.stop(ctx, cancel, fmt.Errorf("start %s: %w", c.Name(), err))
		}

		readyChans = append(readyChans, c.Ready())
	}

	if err := a.pingers.Start(ctx); err != nil {
		return a.stop(ctx, cancel, fmt.Errorf("start %s: %w", a.pingers.Name(), err))
	}

	readyChans = append(readyChans, a.pingers.Ready())

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "received termination signal during startup", "signal", sig.String())

		return a.stop(ctx, cancel, nil)
	}

	if err := ctx.Err(); err != nil {
		return a.stop(ctx, cancel, nil)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return a.stop(ctx, cancel, fmt.Errorf("set running: %w", err))
	}

	a.logger.InfoContext(ctx, "autoscaler is running",
		"orchestrator", a.cfg.Orchestrator,
		"policies", len(a.policies.GetAllPolicies()),
		"alert_rules", len(a.alerts.ListAlertRules()),
	)

	select {
	case sig := <-a.appState.Quit():
		a.logger.InfoContext(ctx, "received termination signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "context done, terminating")
	}

	return a.stop(ctx, cancel, nil)
}

// stop cancels the component loops and shuts every registered component down.
func (a *App) stop(ctx context.Context, cancel context.CancelFunc, cause error) error {
	if err := a.appState.SetTerminating(ctx); err != nil {
		a.logger.ErrorContext(ctx, "failed to set terminating state", "reason", err)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.WithoutCancel(ctx),
		a.cfg.ShutdownGracePeriod+shutdownMargin,
	)
	defer shutdownCancel()

	err := a.appState.Shutdown(shutdownCtx)
	if err != nil {
		err = fmt.Errorf("shutdown: %w", err)
	}

	return errors.Join(cause, err)
}

type busCloser struct {
	bus *events.Bus
}

func (b busCloser) Name() string {
	return "event-bus"
}

func (b busCloser) Shutdown(context.Context) error {
	b.bus.Close()

	return nil
}

// allChannelsClose returns a channel that is closed once every input channel is
// closed or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.WarnContext(ctx, "stopped waiting for components to become ready",
					"pending", len(chans)-i,
					"reason", ctx.Err(),
				)

				return
			}
		}
	}()

	return out
}
