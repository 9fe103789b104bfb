package ahp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// WeightMethod selects how a priority vector is derived from a comparison
// matrix. All methods agree on a perfectly consistent matrix; they differ
// in cost and in how they absorb inconsistency.
type WeightMethod string

const (
	// WeightMethodGeometricMean is the default: n-th root of each row
	// product, normalized.
	WeightMethodGeometricMean WeightMethod = "geometric_mean"
	// WeightMethodEigenvector uses the principal eigenvector. Highest
	// fidelity under inconsistent judgments, most expensive.
	WeightMethodEigenvector WeightMethod = "eigenvector"
	// WeightMethodColumnSum normalizes each column and averages rows.
	// Cheapest approximation.
	WeightMethodColumnSum WeightMethod = "column_sum"
)

// ParseWeightMethod maps a config string to a WeightMethod.
func ParseWeightMethod(s string) (WeightMethod, error) {
	switch WeightMethod(s) {
	case WeightMethodGeometricMean, WeightMethodEigenvector, WeightMethodColumnSum:
		return WeightMethod(s), nil
	case "":
		return WeightMethodGeometricMean, nil
	default:
		return "", fmt.Errorf("unknown weight method %q", s)
	}
}

// CalculateWeights derives a normalized priority vector from a reciprocal
// comparison matrix. The result is non-negative and sums to 1.
func CalculateWeights(m *mat.Dense, method WeightMethod) ([]float64, error) {
	n, c := m.Dims()
	if n != c {
		return nil, &ValidationError{Reason: "comparison matrix is not square"}
	}

	if n == 0 {
		return nil, &ValidationError{Reason: "comparison matrix is empty"}
	}

	switch method {
	case WeightMethodGeometricMean, "":
		return geometricMeanWeights(m), nil
	case WeightMethodEigenvector:
		return eigenvectorWeights(m)
	case WeightMethodColumnSum:
		return columnSumWeights(m), nil
	default:
		return nil, fmt.Errorf("unknown weight method %q", method)
	}
}

func geometricMeanWeights(m *mat.Dense) []float64 {
	n, _ := m.Dims()
	weights := make([]float64, n)

	var sum float64
	for i := 0; i < n; i++ {
		// Geometric mean in log space to stay stable for larger N.
		var logSum float64
		for j := 0; j < n; j++ {
			logSum += math.Log(m.At(i, j))
		}
		weights[i] = math.Exp(logSum / float64(n))
		sum += weights[i]
	}

	return normalize(weights, sum)
}

func eigenvectorWeights(m *mat.Dense) ([]float64, error) {
	n, _ := m.Dims()
	if n == 1 {
		return []float64{1}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenRight); !ok {
		return nil, fmt.Errorf("eigen decomposition failed for %dx%d comparison matrix", n, n)
	}

	values := eig.Values(nil)
	principal := 0
	for i, v := range values {
		if real(v) > real(values[principal]) {
			principal = i
		}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	weights := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		weights[i] = real(vectors.At(i, principal))
		sum += weights[i]
	}

	weights = normalize(weights, sum)

	// The eigensolver may return the vector with flipped sign.
	for i, w := range weights {
		if w < 0 {
			weights[i] = -w
		}
	}

	return weights, nil
}

func columnSumWeights(m *mat.Dense) []float64 {
	n, _ := m.Dims()

	colSums := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			colSums[j] += m.At(i, j)
		}
	}

	weights := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		var rowMean float64
		for j := 0; j < n; j++ {
			if colSums[j] > 0 {
				rowMean += m.At(i, j) / colSums[j]
			}
		}
		weights[i] = rowMean / float64(n)
		sum += weights[i]
	}

	return normalize(weights, sum)
}

func normalize(weights []float64, sum float64) []float64 {
	if sum == 0 {
		equal := 1 / float64(len(weights))
		for i := range weights {
			weights[i] = equal
		}
		return weights
	}

	for i := range weights {
		weights[i] /= sum
	}

	return weights
}
