package scaling_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling/mocks"
)

func TestRegistry_CRUD(t *testing.T) {
	t.Parallel()

	registry := scaling.NewRegistry(slog.Default(), nil)

	first, err := registry.AddScalingPolicy(t.Context(), cpuPolicy())
	require.NoError(t, err)
	require.Equal(t, "api-cpu", first.ID)

	_, err = registry.AddScalingPolicy(t.Context(), cpuPolicy())
	require.ErrorIs(t, err, scaling.ErrPolicyExists)

	worker := cpuPolicy()
	worker.ID = ""
	worker.TargetService = "worker"
	worker.Strategy = ""
	worker.ScaleUpBy = 0
	worker.PeriodDuration = 0

	second, err := registry.AddScalingPolicy(t.Context(), worker)
	require.NoError(t, err)
	require.NotEmpty(t, second.ID)
	require.Equal(t, scaling.StrategyLinear, second.Strategy)
	require.Equal(t, 1, second.ScaleUpBy)
	require.Equal(t, scaling.DefaultPeriodDuration, second.PeriodDuration)

	rps := cpuPolicy()
	rps.ID = "api-rps"
	rps.ScaleUpMetric = "rps"
	rps.ScaleDownMetric = "rps"
	rps.ScaleUpThreshold = 1000
	rps.ScaleDownThreshold = 100

	_, err = registry.AddScalingPolicy(t.Context(), rps)
	require.NoError(t, err)

	all := registry.GetAllPolicies()
	require.Len(t, all, 3)
	require.Equal(t, []string{"api-cpu", second.ID, "api-rps"}, []string{all[0].ID, all[1].ID, all[2].ID})
	require.Equal(t, []string{"api", "worker"}, registry.Services())
	require.Len(t, registry.PoliciesForService("api"), 2)

	first.MaxInstances = 20
	require.NoError(t, registry.UpdateScalingPolicy(t.Context(), first))

	got, err := registry.GetScalingPolicy("api-cpu")
	require.NoError(t, err)
	require.Equal(t, 20, got.MaxInstances)
	require.Equal(t, "api-cpu", registry.GetAllPolicies()[0].ID)

	first.MinInstances = 0
	require.ErrorIs(t, registry.UpdateScalingPolicy(t.Context(), first), scaling.ErrInvalidPolicy)

	require.NoError(t, registry.RemoveScalingPolicy(t.Context(), "api-cpu"))
	require.ErrorIs(t, registry.RemoveScalingPolicy(t.Context(), "api-cpu"), scaling.ErrPolicyNotFound)

	_, err = registry.GetScalingPolicy("api-cpu")
	require.ErrorIs(t, err, scaling.ErrPolicyNotFound)

	missing := cpuPolicy()
	missing.ID = "missing"
	require.ErrorIs(t, registry.UpdateScalingPolicy(t.Context(), missing), scaling.ErrPolicyNotFound)
}

func TestRegistry_RejectsInvalidBoundsAtAdd(t *testing.T) {
	t.Parallel()

	registry := scaling.NewRegistry(slog.Default(), nil)

	p := cpuPolicy()
	p.MinInstances = 5
	p.MaxInstances = 3

	_, err := registry.AddScalingPolicy(t.Context(), p)
	require.ErrorIs(t, err, scaling.ErrInvalidPolicy)
	require.Empty(t, registry.GetAllPolicies())
}

func TestRegistry_Persistence(t *testing.T) {
	t.Parallel()

	t.Run("write through", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPolicyRepository(t)
		repo.EXPECT().SavePolicy(mock.Anything, mock.MatchedBy(func(p scaling.Policy) bool {
			return p.ID == "api-cpu"
		})).Return(nil).Twice()
		repo.EXPECT().DeletePolicy(mock.Anything, "api-cpu").Return(nil).Once()

		registry := scaling.NewRegistry(slog.Default(), repo)

		p, err := registry.AddScalingPolicy(t.Context(), cpuPolicy())
		require.NoError(t, err)
		require.NoError(t, registry.UpdateScalingPolicy(t.Context(), p))
		require.NoError(t, registry.RemoveScalingPolicy(t.Context(), p.ID))
	})

	t.Run("save error", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPolicyRepository(t)
		repo.EXPECT().SavePolicy(mock.Anything, mock.Anything).Return(errors.New("readonly")).Once()

		registry := scaling.NewRegistry(slog.Default(), repo)

		_, err := registry.AddScalingPolicy(t.Context(), cpuPolicy())
		require.ErrorIs(t, err, scaling.ErrPersistPolicy)
		require.Empty(t, registry.GetAllPolicies())
	})

	t.Run("restore", func(t *testing.T) {
		t.Parallel()

		invalid := cpuPolicy()
		invalid.ID = "invalid"
		invalid.MaxInstances = 0

		repo := mocks.NewMockPolicyRepository(t)
		repo.EXPECT().ListPolicies(mock.Anything).Return([]scaling.Policy{cpuPolicy(), invalid}, nil).Once()

		registry := scaling.NewRegistry(slog.Default(), repo)
		require.NoError(t, registry.Restore(t.Context()))

		all := registry.GetAllPolicies()
		require.Len(t, all, 1)
		require.Equal(t, "api-cpu", all[0].ID)
	})

	t.Run("restore error", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPolicyRepository(t)
		repo.EXPECT().ListPolicies(mock.Anything).Return(nil, errors.New("corrupt")).Once()

		registry := scaling.NewRegistry(slog.Default(), repo)
		require.ErrorIs(t, registry.Restore(t.Context()), scaling.ErrRestorePolicies)
	})
}
