package opt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sphere function: f(x) = sum(x_i^2), minimum at origin
func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42)

	result, err := optimizer.Minimize(sphere, Bounds{Lower: -10, Upper: 10, Dim: 3})
	require.NoError(t, err)
	require.Len(t, result.Position, 3)

	assert.Less(t, result.Cost, 0.1, "should converge close to zero")
	for i, v := range result.Position {
		assert.LessOrEqual(t, math.Abs(v), 1.0, "parameter %d should be near 0", i)
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	bounds := Bounds{Lower: -5, Upper: 5, Dim: 2}

	r1, err := NewMayfly(50, 20, 123).Minimize(sphere, bounds)
	require.NoError(t, err)
	r2, err := NewMayfly(50, 20, 123).Minimize(sphere, bounds)
	require.NoError(t, err)

	assert.Equal(t, r1.Cost, r2.Cost, "same seed must give the same cost")
}

func TestMayflyAdapterRejectsBadConfig(t *testing.T) {
	_, err := NewMayfly(50, 10, 1).Minimize(sphere, Bounds{Lower: 0, Upper: 1, Dim: 2})
	assert.Error(t, err, "population below minimum")

	_, err = NewMayfly(0, 20, 1).Minimize(sphere, Bounds{Lower: 0, Upper: 1, Dim: 2})
	assert.Error(t, err, "zero iterations")

	_, err = NewMayfly(50, 20, 1).Minimize(sphere, Bounds{Lower: 0, Upper: 1})
	assert.Error(t, err, "zero dimension")
}
