package ahp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Saaty scale bounds for a single pairwise judgment.
const (
	SaatyMin = 1.0 / 9.0
	SaatyMax = 9.0
)

// Judgment is one directed pairwise comparison between two sibling
// criteria: Value > 1 means First matters more than Second. The reciprocal
// direction is implied and never needs to be supplied.
type Judgment struct {
	First  string
	Second string
	Value  float64
}

// BuildMatrix turns a sparse judgment set over an ordered list of sibling
// criteria into a complete reciprocal comparison matrix. Every cell starts
// at 1 (equal importance), so unsupplied pairs need no special casing.
// If both directions of a pair are supplied, the later judgment wins; this
// is a deliberate last-write-wins policy, not an error.
func BuildMatrix(criteria []string, judgments []Judgment) (*mat.Dense, error) {
	n := len(criteria)
	if n == 0 {
		return nil, &ValidationError{Reason: "comparison set is empty"}
	}

	index := make(map[string]int, n)
	for i, name := range criteria {
		index[name] = i
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, 1)
		}
	}

	for _, judgment := range judgments {
		i, ok := index[judgment.First]
		if !ok {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("unknown criterion %q in judgment", judgment.First),
			}
		}

		j, ok := index[judgment.Second]
		if !ok {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("unknown criterion %q in judgment", judgment.Second),
			}
		}

		if i == j {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("criterion %q compared against itself", judgment.First),
			}
		}

		if judgment.Value <= 0 {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("judgment (%s, %s) must be positive, got %v",
					judgment.First, judgment.Second, judgment.Value),
			}
		}

		if judgment.Value < SaatyMin || judgment.Value > SaatyMax {
			return nil, &ValidationError{
				Reason: fmt.Sprintf("judgment (%s, %s) must be within [1/9, 9], got %v",
					judgment.First, judgment.Second, judgment.Value),
			}
		}

		m.Set(i, j, judgment.Value)
		m.Set(j, i, 1/judgment.Value)
	}

	return m, nil
}

// IsReciprocal reports whether m satisfies the reciprocal matrix
// invariants: unit diagonal and M[j][i] == 1/M[i][j] within tol.
func IsReciprocal(m *mat.Dense, tol float64) bool {
	n, c := m.Dims()
	if n != c {
		return false
	}

	for i := 0; i < n; i++ {
		if diff := m.At(i, i) - 1; diff > tol || diff < -tol {
			return false
		}

		for j := i + 1; j < n; j++ {
			product := m.At(i, j) * m.At(j, i)
			if diff := product - 1; diff > tol || diff < -tol {
				return false
			}
		}
	}

	return true
}
