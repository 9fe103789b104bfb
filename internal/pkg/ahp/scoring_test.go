package ahp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestScoreCriterion_Closure(t *testing.T) {
	preferred := Range{Min: 19, Max: 22}
	absolute := Range{Min: 15, Max: 30}

	scoreRequest := func(value *float64, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			got := ScoreCriterion(value, preferred, absolute)
			assert.InDelta(t, want, got, 1e-9)
		}
	}

	t.Run("missing_reading_scores_zero", scoreRequest(nil, 0))
	t.Run("inside_preferred_range", scoreRequest(ptr(20.5), 1))
	t.Run("on_preferred_boundary", scoreRequest(ptr(22), 1))
	t.Run("outside_absolute_range", scoreRequest(ptr(33), 0))
	t.Run("below_absolute_range", scoreRequest(ptr(10), 0))
	// 23°C is 1 above the preferred max with 8 degrees of decay band.
	t.Run("above_preferred", scoreRequest(ptr(23), 1-(1.0/8.0)*0.7))
	// The absolute boundary keeps the capped residual score.
	t.Run("at_absolute_boundary", scoreRequest(ptr(30), 0.3))

	t.Run("strictly_between_zero_and_one", func(t *testing.T) {
		got := ScoreCriterion(ptr(23), preferred, absolute)
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 1.0)
	})
}

func TestScoreCriterion_MonotonicDecay(t *testing.T) {
	preferred := Range{Min: 19, Max: 22}
	absolute := Range{Min: 15, Max: 30}

	previous := 1.0
	for v := 22.0; v <= 31.0; v += 0.5 {
		got := ScoreCriterion(ptr(v), preferred, absolute)
		assert.LessOrEqual(t, got, previous, "score must not increase at %v", v)
		previous = got
	}

	previous = 1.0
	for v := 19.0; v >= 14.0; v -= 0.5 {
		got := ScoreCriterion(ptr(v), preferred, absolute)
		assert.LessOrEqual(t, got, previous, "score must not increase at %v", v)
		previous = got
	}
}

func TestScoreCriterion_DegenerateRange(t *testing.T) {
	// Preferred min touches the absolute min: no decay band below, so any
	// deviation under the preferred range collapses to the minimum.
	got := ScoreCriterion(ptr(14.999), Range{Min: 15, Max: 22}, Range{Min: 15, Max: 30})
	assert.Zero(t, got)

	// Identical preferred and absolute ranges still score 1 inside.
	got = ScoreCriterion(ptr(20), Range{Min: 15, Max: 30}, Range{Min: 15, Max: 30})
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestScoreSeatingCapacity_Closure(t *testing.T) {
	seatingRequest := func(capacity, required int, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, ScoreSeatingCapacity(capacity, required), 1e-9)
		}
	}

	t.Run("no_requirement_with_seats", seatingRequest(30, 0, 1))
	t.Run("no_requirement_no_seats", seatingRequest(0, 0, 0.5))
	t.Run("far_too_small", seatingRequest(10, 40, 0))
	t.Run("exactly_enough", seatingRequest(40, 40, 1))
	t.Run("comfortable_margin", seatingRequest(55, 40, 1))
	t.Run("oversized_penalty", seatingRequest(100, 40, 0.9))
}

func TestScoreEquipment_Closure(t *testing.T) {
	equipmentRequest := func(computers, required int, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, ScoreEquipment(computers, required), 1e-9)
		}
	}

	t.Run("nothing_required", equipmentRequest(0, 0, 1))
	t.Run("required_but_absent", equipmentRequest(0, 5, 0))
	t.Run("partially_covered", equipmentRequest(3, 6, 0.5))
	t.Run("fully_covered", equipmentRequest(10, 5, 1))
}

func TestScoreAVFacilities_Closure(t *testing.T) {
	avRequest := func(hasProjector, required bool, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, ScoreAVFacilities(hasProjector, required), 1e-9)
		}
	}

	t.Run("required_and_present", avRequest(true, true, 1))
	t.Run("required_and_missing", avRequest(false, true, 0))
	t.Run("unrequested_bonus", avRequest(true, false, 1))
	t.Run("absent_and_unrequested", avRequest(false, false, 0.8))
}
