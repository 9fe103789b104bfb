package ahp

import "gonum.org/v1/gonum/mat"

// DefaultConsistencyThreshold is Saaty's CR acceptance bound.
const DefaultConsistencyThreshold = 0.10

// randomIndex holds Saaty's random consistency index by matrix size.
// Sizes above the table fall back to the last entry.
var randomIndex = []float64{
	0,    // n=1
	0,    // n=2
	0.58, // n=3
	0.90, // n=4
	1.12, // n=5
	1.24, // n=6
	1.32, // n=7
	1.41, // n=8
	1.45, // n=9
	1.49, // n=10
}

// Consistency is the consistency measurement of one comparison matrix and
// its derived weight vector. It is recomputed on demand and never treated
// as authoritative state.
type Consistency struct {
	LambdaMax  float64
	Index      float64
	Ratio      float64
	Acceptable bool
}

// CheckConsistency computes λmax, CI and CR for a comparison matrix and
// its weight vector. Matrices smaller than 3x3 cannot be inconsistent and
// get CR exactly 0. An unacceptable ratio is a warning for the caller, not
// an error: ranking proceeds with the weights as computed.
func CheckConsistency(m *mat.Dense, weights []float64, threshold float64) Consistency {
	n, _ := m.Dims()

	if threshold <= 0 {
		threshold = DefaultConsistencyThreshold
	}

	if n < 3 {
		return Consistency{LambdaMax: float64(n), Acceptable: true}
	}

	lambdaMax := estimateLambdaMax(m, weights)
	ci := (lambdaMax - float64(n)) / (float64(n) - 1)
	cr := ci / randomIndexFor(n)

	return Consistency{
		LambdaMax:  lambdaMax,
		Index:      ci,
		Ratio:      cr,
		Acceptable: cr < threshold,
	}
}

// estimateLambdaMax approximates the dominant eigenvalue as the mean of
// (Mw)_i / w_i. Near-zero weights contribute n, the value a perfectly
// consistent row would produce.
func estimateLambdaMax(m *mat.Dense, weights []float64) float64 {
	n, _ := m.Dims()

	var sum float64
	for i := 0; i < n; i++ {
		var row float64
		for j := 0; j < n; j++ {
			row += m.At(i, j) * weights[j]
		}

		if weights[i] > 1e-10 {
			sum += row / weights[i]
		} else {
			sum += float64(n)
		}
	}

	return sum / float64(n)
}

func randomIndexFor(n int) float64 {
	if n <= 0 {
		return randomIndex[len(randomIndex)-1]
	}

	if n > len(randomIndex) {
		return randomIndex[len(randomIndex)-1]
	}

	return randomIndex[n-1]
}
