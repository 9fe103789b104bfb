package ahp

import "math"

// decayCap limits the linear penalty inside the plausible band: a value
// sitting exactly on the absolute boundary still scores 0.3, so nearly
// acceptable rooms keep competing instead of being eliminated. Hard
// exclusion is the filter's job, not the scorer's.
const decayCap = 0.7

// minDecayWidth guards degenerate ranges where the preferred bound touches
// the absolute bound. Such a configuration means any deviation immediately
// scores the minimum.
const minDecayWidth = 1e-9

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// ScoreCriterion maps a raw reading to a desirability score in [0, 1]
// given the requester's preferred range and the criterion's absolute
// plausible range.
//
//   - missing reading (nil) scores 0
//   - readings outside the absolute range score 0
//   - readings inside the preferred range score 1
//   - in between, the score decays linearly with distance from the
//     preferred bound, down to 1 - decayCap at the absolute bound
func ScoreCriterion(value *float64, preferred, absolute Range) float64 {
	if value == nil {
		return 0
	}

	v := *value
	if v < absolute.Min || v > absolute.Max {
		return 0
	}

	if v >= preferred.Min && v <= preferred.Max {
		return 1
	}

	var distance, width float64
	if v < preferred.Min {
		distance = preferred.Min - v
		width = preferred.Min - absolute.Min
	} else {
		distance = v - preferred.Max
		width = absolute.Max - preferred.Max
	}

	if width < minDecayWidth {
		width = minDecayWidth
	}

	return math.Max(0, 1-(distance/width)*decayCap)
}

// ScoreSeatingCapacity scores a room's seating relative to the requested
// headcount. Rooms well under the requirement are useless, slightly small
// rooms degrade quickly, and oversized rooms lose a little for wasted
// space.
func ScoreSeatingCapacity(capacity, required int) float64 {
	if required <= 0 {
		if capacity > 0 {
			return 1
		}
		return 0.5
	}

	ratio := float64(capacity) / float64(required)

	switch {
	case ratio < 0.5:
		return 0
	case ratio < 0.8:
		return math.Max(0, 0.5+(ratio-0.5)*(0.5/0.3))
	case ratio <= 1.5:
		return 1
	default:
		return math.Max(0.5, 1-(ratio-1.5)*0.1)
	}
}

// ScoreEquipment scores available computers against the requested count.
func ScoreEquipment(computers, required int) float64 {
	if required <= 0 {
		return 1
	}

	if computers <= 0 {
		return 0
	}

	ratio := float64(computers) / float64(required)
	if ratio >= 1 {
		return 1
	}

	return ratio
}

// ScoreAVFacilities scores projector availability. A projector nobody
// asked for is still a small plus over a bare room.
func ScoreAVFacilities(hasProjector, required bool) float64 {
	switch {
	case required && !hasProjector:
		return 0
	case hasProjector:
		return 1
	default:
		return 0.8
	}
}
