package ahp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCheckConsistency_SmallMatricesAreAlwaysConsistent(t *testing.T) {
	smallRequest := func(m *mat.Dense, weights []float64) func(t *testing.T) {
		return func(t *testing.T) {
			cons := CheckConsistency(m, weights, DefaultConsistencyThreshold)
			assert.Zero(t, cons.Ratio)
			assert.True(t, cons.Acceptable)
		}
	}

	t.Run("n_equals_1", smallRequest(mat.NewDense(1, 1, []float64{1}), []float64{1}))
	t.Run("n_equals_2", smallRequest(mat.NewDense(2, 2, []float64{
		1, 7,
		1.0 / 7, 1,
	}), []float64{0.875, 0.125}))
}

func TestCheckConsistency_PerfectlyConsistentMatrix(t *testing.T) {
	weights := []float64{0.6, 0.25, 0.1, 0.05}
	m := consistentMatrix(weights)

	cons := CheckConsistency(m, weights, DefaultConsistencyThreshold)

	assert.InDelta(t, 4.0, cons.LambdaMax, 1e-9)
	assert.InDelta(t, 0.0, cons.Ratio, 1e-9)
	assert.True(t, cons.Acceptable)
}

func TestCheckConsistency_InconsistentMatrixIsFlagged(t *testing.T) {
	// Strongly intransitive judgments: A>B, B>C, but C>A.
	m := mat.NewDense(3, 3, []float64{
		1, 5, 1.0 / 5,
		1.0 / 5, 1, 5,
		5, 1.0 / 5, 1,
	})

	weights, err := CalculateWeights(m, WeightMethodGeometricMean)
	require.NoError(t, err)

	cons := CheckConsistency(m, weights, DefaultConsistencyThreshold)

	assert.Greater(t, cons.Ratio, DefaultConsistencyThreshold)
	assert.False(t, cons.Acceptable)
}

func TestRandomIndexFor(t *testing.T) {
	riRequest := func(n int, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, randomIndexFor(n), 1e-9)
		}
	}

	t.Run("n_3", riRequest(3, 0.58))
	t.Run("n_10", riRequest(10, 1.49))
	t.Run("above_table_falls_back_to_n_10", riRequest(14, 1.49))
}
