package metricstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func values(points []Point) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.Value)
	}

	return out
}

func TestPointRing(t *testing.T) {
	t.Parallel()

	t.Run("add below capacity keeps order", func(t *testing.T) {
		t.Parallel()

		r := newPointRing(3)
		require.False(t, r.add(Point{Value: 1}))
		require.False(t, r.add(Point{Value: 2}))

		require.Equal(t, []float64{1, 2}, values(r.all()))
	})

	t.Run("add over capacity evicts oldest", func(t *testing.T) {
		t.Parallel()

		r := newPointRing(3)
		for i := 1; i <= 3; i++ {
			r.add(Point{Value: float64(i)})
		}

		require.True(t, r.add(Point{Value: 4}))
		require.True(t, r.add(Point{Value: 5}))
		require.Equal(t, []float64{3, 4, 5}, values(r.all()))
		require.Equal(t, 3, r.len())
	})

	t.Run("retain compacts and keeps accepting", func(t *testing.T) {
		t.Parallel()

		r := newPointRing(4)
		for i := 1; i <= 6; i++ {
			r.add(Point{Value: float64(i)})
		}

		removed := r.retain(func(p Point) bool { return int(p.Value)%2 == 0 })
		require.Equal(t, 2, removed)
		require.Equal(t, []float64{4, 6}, values(r.all()))

		r.add(Point{Value: 7})
		r.add(Point{Value: 8})
		r.add(Point{Value: 9})
		require.Equal(t, []float64{6, 7, 8, 9}, values(r.all()))
	})

	t.Run("empty ring", func(t *testing.T) {
		t.Parallel()

		r := newPointRing(2)
		require.Nil(t, r.all())
		require.Equal(t, 0, r.retain(func(Point) bool { return false }))
	})
}
