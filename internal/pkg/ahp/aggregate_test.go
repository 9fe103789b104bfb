package ahp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedSum_Closure(t *testing.T) {
	sumRequest := func(scores, weights map[string]float64, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, weightedSum(scores, weights), 1e-9)
		}
	}

	t.Run("normalized_weights", sumRequest(
		map[string]float64{"a": 1, "b": 0.5},
		map[string]float64{"a": 0.6, "b": 0.4},
		0.8,
	))
	t.Run("unnormalized_weights_are_rescaled", sumRequest(
		map[string]float64{"a": 1, "b": 0.5},
		map[string]float64{"a": 3, "b": 2},
		(3*1+2*0.5)/5,
	))
	t.Run("empty_inputs", sumRequest(nil, nil, 0))
}

func TestWeightedProduct_Closure(t *testing.T) {
	productRequest := func(scores, weights map[string]float64, policy ZeroFloorPolicy, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, weightedProduct(scores, weights, policy), 1e-9)
		}
	}

	t.Run("uniform_scores", productRequest(
		map[string]float64{"a": 0.8, "b": 0.8},
		map[string]float64{"a": 0.5, "b": 0.5},
		ZeroFloorClamp,
		0.8,
	))
	t.Run("zero_score_vetoes_branch", productRequest(
		map[string]float64{"a": 0, "b": 1},
		map[string]float64{"a": 0.5, "b": 0.5},
		ZeroFloorVeto,
		0,
	))
	t.Run("zero_score_floored", productRequest(
		map[string]float64{"a": 0, "b": 1},
		map[string]float64{"a": 0.5, "b": 0.5},
		ZeroFloorClamp,
		math.Sqrt(0.001),
	))
}

func TestAggregateHierarchy_WeightedSum(t *testing.T) {
	leafScores := map[string]float64{
		"Temperature": 0.8, "Lighting": 0.8, "Noise": 0.8, "Humidity": 0.8,
		"CO2": 0.75, "AirQuality": 0.75, "VOC": 0.75,
		"SeatingCapacity": 0.8, "Equipment": 0.8, "AVFacilities": 0.8,
	}

	groupWeights := map[string]map[string]float64{
		GroupComfort:   {"Temperature": 0.4, "Lighting": 0.2, "Noise": 0.2, "Humidity": 0.2},
		GroupHealth:    {"CO2": 0.5, "AirQuality": 0.3, "VOC": 0.2},
		GroupUsability: {"SeatingCapacity": 0.5, "Equipment": 0.3, "AVFacilities": 0.2},
	}
	topWeights := map[string]float64{
		GroupComfort: 0.4, GroupHealth: 0.35, GroupUsability: 0.25,
	}

	overall, groupScores := AggregateHierarchy(
		leafScores, groupWeights, topWeights, AggregationWeightedSum, ZeroFloorClamp)

	assert.InDelta(t, 0.8, groupScores[GroupComfort], 1e-9)
	assert.InDelta(t, 0.75, groupScores[GroupHealth], 1e-9)
	assert.InDelta(t, 0.8, groupScores[GroupUsability], 1e-9)
	assert.InDelta(t, 0.4*0.8+0.35*0.75+0.25*0.8, overall, 1e-9)
}

func TestAggregateHierarchy_BlendedMode(t *testing.T) {
	leafScores := map[string]float64{"Temperature": 0.9, "CO2": 0.6, "SeatingCapacity": 0.8}
	groupWeights := map[string]map[string]float64{
		GroupComfort:   {"Temperature": 1},
		GroupHealth:    {"CO2": 1},
		GroupUsability: {"SeatingCapacity": 1},
	}
	topWeights := map[string]float64{
		GroupComfort: 1.0 / 3, GroupHealth: 1.0 / 3, GroupUsability: 1.0 / 3,
	}

	sumOnly, _ := AggregateHierarchy(
		leafScores, groupWeights, topWeights, AggregationWeightedSum, ZeroFloorClamp)
	blended, _ := AggregateHierarchy(
		leafScores, groupWeights, topWeights, AggregationBlended, ZeroFloorClamp)

	// The geometric term never exceeds the arithmetic one, so blending can
	// only pull the score down.
	assert.LessOrEqual(t, blended, sumOnly)
	assert.Greater(t, blended, 0.0)
}

func TestParseAggregationModeAndPolicy(t *testing.T) {
	mode, err := ParseAggregationMode("")
	assert.NoError(t, err)
	assert.Equal(t, AggregationWeightedSum, mode)

	mode, err = ParseAggregationMode("blended")
	assert.NoError(t, err)
	assert.Equal(t, AggregationBlended, mode)

	_, err = ParseAggregationMode("max")
	assert.Error(t, err)

	policy, err := ParseZeroFloorPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, ZeroFloorClamp, policy)

	policy, err = ParseZeroFloorPolicy("veto")
	assert.NoError(t, err)
	assert.Equal(t, ZeroFloorVeto, policy)

	_, err = ParseZeroFloorPolicy("ignore")
	assert.Error(t, err)
}
