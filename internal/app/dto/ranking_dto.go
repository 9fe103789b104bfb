package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
	"github.com/roomsense/room-ranking-service/internal/pkg/exception"
)

// PairwiseJudgment is one Saaty-scale comparison between two sibling
// criteria: value > 1 means first matters more than second. The reciprocal
// direction is implied.
type PairwiseJudgment struct {
	First  string  `json:"first" validate:"required"`
	Second string  `json:"second" validate:"required"`
	Value  float64 `json:"value" validate:"required"`
}

// PreferredRange is a requester's desired band for one sensor criterion.
type PreferredRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FacilityRequirements are hard constraints: rooms failing any supplied
// rule are removed before scoring. Absent fields impose nothing.
type FacilityRequirements struct {
	Videoprojector    *bool `json:"videoprojector,omitempty"`
	MinSeating        *int  `json:"min_seating,omitempty" validate:"omitempty,gte=1"`
	Computers         *bool `json:"computers,omitempty"`
	Whiteboard        *bool `json:"whiteboard,omitempty"`
	MinTrainingRobots *int  `json:"min_training_robots,omitempty" validate:"omitempty,gte=0"`
}

// RankingRequest is the body of the ranking endpoint. Everything is
// optional: an empty request ranks all rooms under equal weights and
// default preferred ranges.
type RankingRequest struct {
	// Judgments holds sparse pairwise comparisons per comparison set,
	// keyed by "goal" or a group name (Comfort, Health, Usability).
	Judgments map[string][]PairwiseJudgment `json:"judgments,omitempty"`
	// Preferences holds per-leaf preferred ranges keyed by criterion name.
	Preferences  map[string]PreferredRange `json:"preferences,omitempty"`
	Requirements *FacilityRequirements     `json:"requirements,omitempty"`
	// Aggregation overrides the configured mode for this request.
	Aggregation string `json:"aggregation,omitempty" validate:"omitempty,oneof=weighted_sum blended"`
	// RequestedTime plus DurationMinutes enable the availability blend.
	RequestedTime      *time.Time `json:"requested_time,omitempty"`
	DurationMinutes    *int       `json:"duration_minutes,omitempty" validate:"omitempty,min=15,max=480"`
	AvailabilityWeight int        `json:"availability_weight,omitempty" validate:"omitempty,min=1,max=9"`
}

func (r *RankingRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *RankingRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	for set, judgments := range r.Judgments {
		if set != ahp.GoalKey && !ahp.IsGroup(set) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("unknown comparison set %q", set),
			}
		}

		for _, j := range judgments {
			if j.Value < ahp.SaatyMin || j.Value > ahp.SaatyMax {
				return exception.ApplicationError{
					StatusCode: http.StatusBadRequest,
					Message: fmt.Sprintf("judgment (%s, %s) must be within [1/9, 9]",
						j.First, j.Second),
				}
			}
		}
	}

	for name, preferred := range r.Preferences {
		leaf, ok := ahp.LeafByName(name)
		if !ok || leaf.Source != ahp.SourceSensor {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("unknown preference criterion %q", name),
			}
		}

		if preferred.Min > preferred.Max {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("preferred range for %q has min greater than max", name),
			}
		}
	}

	if r.RequestedTime != nil && r.DurationMinutes == nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "duration_minutes is required when requested_time is set",
		}
	}

	return nil
}

// ConsistencyResult reports how contradictory one comparison set was.
type ConsistencyResult struct {
	LambdaMax        float64 `json:"lambda_max"`
	ConsistencyIndex float64 `json:"consistency_index"`
	ConsistencyRatio float64 `json:"consistency_ratio"`
	Acceptable       bool    `json:"acceptable"`
}

// RankedRoom is one room's position in the response.
type RankedRoom struct {
	RoomID            string             `json:"room_id"`
	RoomName          string             `json:"room_name"`
	Rank              int                `json:"rank"`
	OverallScore      float64            `json:"overall_score"`
	GroupScores       map[string]float64 `json:"group_scores"`
	CriteriaScores    map[string]float64 `json:"criteria_scores"`
	CurrentConditions map[string]float64 `json:"current_conditions,omitempty"`
	Facilities        ahp.Facilities     `json:"facilities"`
	IsAvailable       *bool              `json:"is_available,omitempty"`
}

// RankingMetadata describes how the ranking was produced.
type RankingMetadata struct {
	TotalRoomsEvaluated int    `json:"total_rooms_evaluated"`
	RoomsFilteredOut    int    `json:"rooms_filtered_out"`
	EvaluationTimeMs    int    `json:"evaluation_time_ms"`
	WeightMethod        string `json:"weight_method"`
	Consistent          bool   `json:"consistent"`
}

// RankingResponse is the ranking endpoint payload: rooms best-first plus
// the consistency results behind the weights.
type RankingResponse struct {
	RankedRooms []RankedRoom                 `json:"ranked_rooms"`
	Consistency map[string]ConsistencyResult `json:"consistency"`
	Metadata    RankingMetadata              `json:"metadata"`
}
