package appstate_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/appstate"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/pinger"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/shutdown/mocks"
)

func newAppState(t *testing.T, start time.Time) *appstate.AppState {
	t.Helper()

	logger := slog.Default()

	return appstate.New(logger, start, "", make(chan os.Signal, 1), pinger.New(logger, time.Second))
}

func TestAppState_Transitions(t *testing.T) {
	t.Parallel()

	type step func(*appstate.AppState) error

	var (
		starting    step = func(s *appstate.AppState) error { return s.SetStarting(t.Context()) }
		running     step = func(s *appstate.AppState) error { return s.SetRunning(t.Context()) }
		terminating step = func(s *appstate.AppState) error { return s.SetTerminating(t.Context()) }
		shutdownAll step = func(s *appstate.AppState) error { return s.Shutdown(t.Context()) }
	)

	tests := []struct {
		name      string
		giveSteps []step
		giveLast  step
		wantErr   error
		wantState appstate.State
	}{
		{name: "init to starting", giveLast: starting, wantState: appstate.StateStarting},
		{name: "starting to running", giveSteps: []step{starting}, giveLast: running, wantState: appstate.StateRunning},
		{name: "running to terminating", giveSteps: []step{starting, running}, giveLast: terminating, wantState: appstate.StateTerminating},
		{name: "terminating is repeatable", giveSteps: []step{starting, terminating}, giveLast: terminating, wantState: appstate.StateTerminating},
		{name: "startup failure terminates from init", giveLast: terminating, wantState: appstate.StateTerminating},
		{name: "init to running", giveLast: running, wantErr: appstate.ErrInvalidStateTransition, wantState: appstate.StateInit},
		{name: "running to starting", giveSteps: []step{starting, running}, giveLast: starting, wantErr: appstate.ErrInvalidStateTransition, wantState: appstate.StateRunning},
		{name: "terminated is final", giveSteps: []step{starting, running, shutdownAll}, giveLast: starting, wantErr: appstate.ErrAlreadyTerminated, wantState: appstate.StateTerminated},
		{name: "shutdown is idempotent", giveSteps: []step{starting, running, shutdownAll}, giveLast: shutdownAll, wantState: appstate.StateTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newAppState(t, time.Now())

			for _, st := range tt.giveSteps {
				require.NoError(t, st(s))
			}

			err := tt.giveLast(s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.wantState, s.GetState())
		})
	}
}

func TestAppState_Readiness(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-time.Minute)
	s := newAppState(t, start)

	require.Equal(t, start, s.GetStartTime())
	require.GreaterOrEqual(t, s.GetUptime(), time.Minute)
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(t.Context()))
	require.False(t, s.IsReady())

	_, ok := s.EnteredAt(appstate.StateRunning)
	require.False(t, ok)

	require.NoError(t, s.SetRunning(t.Context()))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())

	at, ok := s.EnteredAt(appstate.StateRunning)
	require.True(t, ok)
	require.False(t, at.Before(start))

	require.NoError(t, s.SetTerminating(t.Context()))
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	s := newAppState(t, time.Now())

	var order []string

	for _, name := range []string{"state-db", "metric-store", "http-server"} {
		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return(name)
		m.EXPECT().Shutdown(mock.Anything).RunAndReturn(func(context.Context) error {
			order = append(order, name)

			return nil
		}).Once()

		require.NoError(t, s.RegisterShutdowner(m))
	}

	require.ErrorIs(t, s.RegisterShutdowner(nil), appstate.ErrNilShutdowner)

	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))
	require.NoError(t, s.Shutdown(t.Context()))

	require.Equal(t, []string{"http-server", "metric-store", "state-db"}, order)
	require.Equal(t, appstate.StateTerminated, s.GetState())

	late := mocks.NewMockShutdowner(t)
	late.EXPECT().Name().Return("late")
	require.ErrorIs(t, s.RegisterShutdowner(late), appstate.ErrAlreadyTerminated)

	require.NoError(t, s.Shutdown(t.Context()))
}

func TestAppState_ShutdownError(t *testing.T) {
	t.Parallel()

	s := newAppState(t, time.Now())

	m := mocks.NewMockShutdowner(t)
	m.EXPECT().Name().Return("executor")
	m.EXPECT().Shutdown(mock.Anything).Return(os.ErrDeadlineExceeded).Once()

	require.NoError(t, s.RegisterShutdowner(m))
	require.NoError(t, s.SetStarting(t.Context()))

	err := s.Shutdown(t.Context())
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.Equal(t, appstate.StateTerminating, s.GetState())
}
