package ahp

import (
	"fmt"
	"math"
)

// AggregationMode selects how leaf scores combine into group and overall
// scores.
type AggregationMode string

const (
	// AggregationWeightedSum is the plain compensatory weighted sum.
	AggregationWeightedSum AggregationMode = "weighted_sum"
	// AggregationBlended mixes the weighted sum with a weighted product
	// so that one very poor criterion drags the total down more than a
	// purely compensatory sum would allow.
	AggregationBlended AggregationMode = "blended"
)

// ZeroFloorPolicy decides what a zero leaf score does to the weighted
// product term.
type ZeroFloorPolicy string

const (
	// ZeroFloorClamp floors zero scores at productFloor so a single
	// missing reading cannot collapse a whole branch to zero.
	ZeroFloorClamp ZeroFloorPolicy = "floor"
	// ZeroFloorVeto lets a zero leaf zero out its branch, making one
	// catastrophic criterion dominate.
	ZeroFloorVeto ZeroFloorPolicy = "veto"
)

const (
	// blendSumShare is the weighted-sum share in blended aggregation.
	blendSumShare = 0.7
	// productFloor replaces zero scores under ZeroFloorClamp.
	productFloor = 0.001
)

// ParseAggregationMode maps a config string to an AggregationMode.
func ParseAggregationMode(s string) (AggregationMode, error) {
	switch AggregationMode(s) {
	case AggregationWeightedSum, AggregationBlended:
		return AggregationMode(s), nil
	case "":
		return AggregationWeightedSum, nil
	default:
		return "", fmt.Errorf("unknown aggregation mode %q", s)
	}
}

// ParseZeroFloorPolicy maps a config string to a ZeroFloorPolicy.
func ParseZeroFloorPolicy(s string) (ZeroFloorPolicy, error) {
	switch ZeroFloorPolicy(s) {
	case ZeroFloorClamp, ZeroFloorVeto:
		return ZeroFloorPolicy(s), nil
	case "":
		return ZeroFloorClamp, nil
	default:
		return "", fmt.Errorf("unknown zero floor policy %q", s)
	}
}

// AggregateHierarchy folds per-leaf scores bottom-up through the criteria
// tree: each group's sub-score is the aggregate of its leaf scores under
// that group's locally-normalized weights, and the overall score is the
// aggregate of the group sub-scores under the top-level weights.
func AggregateHierarchy(
	leafScores map[string]float64,
	groupWeights map[string]map[string]float64,
	topWeights map[string]float64,
	mode AggregationMode,
	policy ZeroFloorPolicy,
) (float64, map[string]float64) {
	groupScores := make(map[string]float64, len(Groups))

	for _, group := range Groups {
		weights, ok := groupWeights[group]
		if !ok {
			continue
		}

		scores := make(map[string]float64, len(weights))
		for leaf := range weights {
			scores[leaf] = leafScores[leaf]
		}

		groupScores[group] = aggregate(scores, weights, mode, policy)
	}

	overall := aggregate(groupScores, topWeights, mode, policy)

	return overall, groupScores
}

func aggregate(
	scores map[string]float64,
	weights map[string]float64,
	mode AggregationMode,
	policy ZeroFloorPolicy,
) float64 {
	if mode == AggregationBlended {
		return blendSumShare*weightedSum(scores, weights) +
			(1-blendSumShare)*weightedProduct(scores, weights, policy)
	}

	return weightedSum(scores, weights)
}

// weightedSum computes sum(w_i * s_i), renormalizing when the supplied
// weights do not already sum to 1.
func weightedSum(scores, weights map[string]float64) float64 {
	if len(scores) == 0 || len(weights) == 0 {
		return 0
	}

	var total, weightSum float64
	for name, score := range scores {
		w := weights[name]
		total += w * score
		weightSum += w
	}

	if weightSum > 0 && math.Abs(weightSum-1) > 1e-9 {
		total /= weightSum
	}

	return total
}

// weightedProduct computes prod(s_i ^ w_i), renormalizing the exponents
// when the weights do not sum to 1.
func weightedProduct(scores, weights map[string]float64, policy ZeroFloorPolicy) float64 {
	if len(scores) == 0 || len(weights) == 0 {
		return 0
	}

	product := 1.0
	var weightSum float64

	for name, score := range scores {
		w := weights[name]
		if w == 0 {
			continue
		}

		if score <= 0 {
			if policy == ZeroFloorVeto {
				return 0
			}
			score = productFloor
		}

		product *= math.Pow(score, w)
		weightSum += w
	}

	if weightSum > 0 && math.Abs(weightSum-1) > 1e-9 {
		product = math.Pow(product, 1/weightSum)
	}

	return product
}
