package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown"
)

// State is the lifecycle phase of the autoscaler process.
type State string

const (
	StateInit        State = "init"
	StateStarting    State = "starting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateTerminated  State = "terminated"
)

// States lists every lifecycle phase in order.
var States = []State{StateInit, StateStarting, StateRunning, StateTerminating, StateTerminated}

// transitions lists the states reachable from each state. Terminated is final.
var transitions = map[State][]State{
	StateInit:        {StateStarting, StateTerminating},
	StateStarting:    {StateRunning, StateTerminating},
	StateRunning:     {StateTerminating},
	StateTerminating: {StateTerminating, StateTerminated},
}

// AppState tracks the process lifecycle, owns the shutdown order and exposes
// component health collected by the pinger service.
type AppState struct {
	logger              *slog.Logger
	terminationFilePath string
	quit                <-chan os.Signal
	pinger              pingerServer
	now                 func() time.Time
	kill                func(pid int, sig syscall.Signal) error

	mu          sync.RWMutex
	state       State
	enteredAt   map[State]time.Time
	shutdowners []shutdown.Shutdowner
}

// New creates the lifecycle tracker. appStart is reported as the start time.
func New(
	logger *slog.Logger,
	appStart time.Time,
	terminationFilePath string,
	quit <-chan os.Signal,
	pinger pingerServer,
) *AppState {
	metrics.SetAppState(string(StateInit), stateNames())

	return &AppState{
		logger:              logger.With("component", "appstate"),
		terminationFilePath: terminationFilePath,
		quit:                quit,
		pinger:              pinger,
		now:                 time.Now,
		kill:                syscall.Kill,
		state:               StateInit,
		enteredAt:           map[State]time.Time{StateInit: appStart},
	}
}

func (s *AppState) RegisterPinger(p pinger.Pinger) error {
	return s.pinger.Register(p)
}

// RegisterShutdowner appends sd to the shutdown list. Shutdowners run in reverse
// registration order, so dependencies must be registered before their users.
func (s *AppState) RegisterShutdowner(sd shutdown.Shutdowner) error {
	if sd == nil {
		return fmt.Errorf("register shutdowner: %w", ErrNilShutdowner)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminating || s.state == StateTerminated {
		return fmt.Errorf("register shutdowner %s: %w", sd.Name(), ErrAlreadyTerminated)
	}

	s.shutdowners = append(s.shutdowners, sd)

	return nil
}

func (s *AppState) GetAllStats() map[string]*pinger.Statistics {
	return s.pinger.GetAllStats()
}

// SetStarting moves Init to Starting.
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transition(StateStarting)
}

// SetRunning moves Starting to Running. If the termination flag file already
// exists the process signals itself so the normal shutdown path runs.
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	err := s.transition(StateRunning)
	s.mu.Unlock()

	s.terminateIfFlagged(ctx)

	return err
}

// SetTerminating moves any live state to Terminating.
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transition(StateTerminating)
}

// transition must be called with mu held.
func (s *AppState) transition(to State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set %s: %w", to, ErrAlreadyTerminated)
	}

	if !slices.Contains(transitions[s.state], to) {
		return fmt.Errorf("set %s from %s: %w", to, s.state, ErrInvalidStateTransition)
	}

	if s.state != to {
		s.logger.Info("state changed", "from", string(s.state), "to", string(to))
	}

	s.state = to
	s.enteredAt[to] = s.now()
	metrics.SetAppState(string(to), stateNames())

	return nil
}

func (s *AppState) terminateIfFlagged(ctx context.Context) {
	if !shutdown.CheckTerminationFile(ctx, s.logger, s.terminationFilePath) {
		return
	}

	pid := os.Getpid()
	s.logger.InfoContext(ctx, "termination file found after initialization, sending SIGTERM", "pid", pid)

	if err := s.kill(pid, syscall.SIGTERM); err != nil {
		s.logger.ErrorContext(ctx, "failed to send SIGTERM", "reason", err, "pid", pid)
	}
}

func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// EnteredAt reports when the process last entered state.
func (s *AppState) EnteredAt(state State) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.enteredAt[state]

	return at, ok
}

func (s *AppState) GetStartTime() time.Time {
	at, _ := s.EnteredAt(StateInit)

	return at
}

func (s *AppState) GetUptime() time.Duration {
	return s.now().Sub(s.GetStartTime())
}

// IsHealthy reports whether the process is running. Component health is folded
// in by the HTTP handlers.
func (s *AppState) IsHealthy() bool {
	return s.GetState() == StateRunning
}

// IsReady reports whether the process finished startup and is not terminating.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, started := s.enteredAt[StateRunning]

	return s.state == StateRunning && started
}

// Quit receives the termination signal.
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown runs every registered shutdowner in reverse order and marks the
// process terminated. Calling it again after success is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateTerminated {
		s.mu.Unlock()

		return nil
	}

	if err := s.transition(StateTerminating); err != nil {
		s.mu.Unlock()

		return fmt.Errorf("shutdown: %w", err)
	}

	shutdowners := slices.Clone(s.shutdowners)
	s.mu.Unlock()

	if err := shutdown.GracefulShutdown(ctx, s.logger, shutdowners); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transition(StateTerminated)
}

func stateNames() []string {
	names := make([]string, len(States))
	for i, st := range States {
		names[i] = string(st)
	}

	return names
}
