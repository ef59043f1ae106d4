package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

const (
	resultApplied   = "applied"
	resultUnchanged = "unchanged"
	resultBusy      = "busy"
	resultFailed    = "failed"
)

type entryState struct {
	entry      Entry
	next       time.Time
	lastRun    time.Time
	lastResult string
}

// Service applies scheduled capacity entries when their cron expression fires.
type Service struct {
	logger     *slog.Logger
	parser     CronParser
	scaler     Scaler
	interval   time.Duration
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool

	mu          sync.RWMutex
	entries     []*entryState
	lastTickEnd time.Time
}

// New validates entries and creates the scheduler. interval is how often due
// entries are checked.
func New(
	logger *slog.Logger,
	parser CronParser,
	scaler Scaler,
	entries []Entry,
	interval time.Duration,
) (*Service, error) {
	seen := make(map[string]struct{}, len(entries))
	states := make([]*entryState, 0, len(entries))

	for _, e := range entries {
		if err := e.validate(parser); err != nil {
			return nil, err
		}

		if _, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Name)
		}

		seen[e.Name] = struct{}{}
		states = append(states, &entryState{entry: e})
	}

	return &Service{
		logger:   logger.With("component", "capacity-scheduler"),
		parser:   parser,
		scaler:   scaler,
		interval: interval,
		now:      time.Now,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
		entries:  states,
	}, nil
}

// SetClock replaces the time source. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Name returns the name of the component
func (s *Service) Name() string {
	return "capacity-scheduler"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "scheduler is shutting down, skipping start")

		return nil
	}

	s.started.Store(true)

	go s.RunCommand(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		s.mu.RLock()
		age := time.Since(s.lastTickEnd)
		s.mu.RUnlock()

		if age > 2*s.interval {
			return fmt.Errorf("last schedule check was too long ago: %s", age.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("scheduler is not ready")
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "scheduler is already shutting down, skipping shutdown")

		return nil
	}

	if !s.started.Load() {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down scheduler")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before scheduler loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "scheduler loop exited")
	}

	return nil
}

// RunCommand checks for due entries in a loop with the configured interval.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("scheduler", "RunCommand")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	close(s.ready)

	for {
		applied := s.RunDueCommand(ctx)
		if applied > 0 {
			logger.DebugContext(ctx, "scheduled capacity applied", "count", applied)
		}

		s.mu.Lock()
		s.lastTickEnd = time.Now()
		s.mu.Unlock()

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating scheduler loop")

			return
		}
	}
}

// RunDueCommand applies every entry whose next run is not after now and returns how many
// changed capacity. The first call only computes next runs. An entry whose service has
// an action in flight stays due and is retried on the next call.
func (s *Service) RunDueCommand(ctx context.Context) int {
	now := s.now()
	applied := 0

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.entries {
		logger := s.logger.With("schedule", st.entry.Name, "service", st.entry.Service)

		if st.next.IsZero() {
			s.advance(ctx, logger, st, now)

			continue
		}

		if now.Before(st.next) {
			continue
		}

		result := s.apply(ctx, logger, st.entry)

		st.lastRun = now
		st.lastResult = result
		metrics.RecordScheduledScaling(st.entry.Name, result)

		switch result {
		case resultApplied:
			applied++
		case resultBusy:
			continue
		}

		s.advance(ctx, logger, st, now)
	}

	return applied
}

func (s *Service) apply(ctx context.Context, logger *slog.Logger, e Entry) string {
	action, err := s.scaler.SetDesiredInstances(ctx, e.Service, e.DesiredInstances)

	switch {
	case err == nil:
		logger.InfoContext(ctx, "scheduled capacity applied",
			"action", action.ID,
			"from", action.CurrentInstances,
			"to", action.TargetInstances,
		)

		return resultApplied
	case errors.Is(err, scaling.ErrNoChange):
		logger.DebugContext(ctx, "scheduled capacity already in place")

		return resultUnchanged
	case errors.Is(err, scaling.ErrActionInFlight):
		logger.WarnContext(ctx, "service busy, retrying scheduled capacity")

		return resultBusy
	default:
		logger.ErrorContext(ctx, "scheduled capacity failed", "reason", err)

		return resultFailed
	}
}

func (s *Service) advance(ctx context.Context, logger *slog.Logger, st *entryState, now time.Time) {
	next, err := s.parser.NextAfter(st.entry.Cron, st.entry.TZ, now)
	if err != nil {
		logger.ErrorContext(ctx, "compute next run", "reason", err)

		return
	}

	st.next = next
}

// Entries returns the configured entries with their next run, in configuration order.
func (s *Service) Entries() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, 0, len(s.entries))
	for _, st := range s.entries {
		out = append(out, Status{
			Entry:      st.entry,
			NextRun:    st.next,
			LastRun:    st.lastRun,
			LastResult: st.lastResult,
		})
	}

	return out
}
