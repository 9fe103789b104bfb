//go:build unit

package dto

import (
	"testing"
	"time"

	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
)

func TestRankingRequest_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req RankingRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	ptrInt := func(i int) *int { return &i }

	t.Run("empty_request_is_valid", validateRequest(RankingRequest{}, false))

	t.Run("valid_full_request", validateRequest(RankingRequest{
		Judgments: map[string][]PairwiseJudgment{
			ahp.GoalKey: {{First: "Comfort", Second: "Health", Value: 3}},
			"Comfort":   {{First: "Temperature", Second: "Noise", Value: 2}},
		},
		Preferences: map[string]PreferredRange{
			"Temperature": {Min: 19, Max: 22},
		},
		Requirements: &FacilityRequirements{MinSeating: ptrInt(30)},
		Aggregation:  "blended",
	}, false))

	t.Run("unknown_comparison_set", validateRequest(RankingRequest{
		Judgments: map[string][]PairwiseJudgment{
			"Price": {{First: "a", Second: "b", Value: 2}},
		},
	}, true))

	t.Run("judgment_above_saaty_scale", validateRequest(RankingRequest{
		Judgments: map[string][]PairwiseJudgment{
			ahp.GoalKey: {{First: "Comfort", Second: "Health", Value: 11}},
		},
	}, true))

	t.Run("inverted_preferred_range", validateRequest(RankingRequest{
		Preferences: map[string]PreferredRange{
			"Temperature": {Min: 25, Max: 19},
		},
	}, true))

	t.Run("unknown_preference_criterion", validateRequest(RankingRequest{
		Preferences: map[string]PreferredRange{
			"WiFi": {Min: 0, Max: 1},
		},
	}, true))

	t.Run("range_on_facility_criterion", validateRequest(RankingRequest{
		Preferences: map[string]PreferredRange{
			"Equipment": {Min: 0, Max: 1},
		},
	}, true))

	t.Run("invalid_aggregation_mode", validateRequest(RankingRequest{
		Aggregation: "max",
	}, true))

	t.Run("requested_time_without_duration", validateRequest(RankingRequest{
		RequestedTime: func() *time.Time { ts := time.Now(); return &ts }(),
	}, true))

	t.Run("min_seating_below_one", validateRequest(RankingRequest{
		Requirements: &FacilityRequirements{MinSeating: ptrInt(0)},
	}, true))
}

func TestReadingRequest_SensorTypes(t *testing.T) {
	_ = InitValidator()

	sensorRequest := func(sensorType string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			req := ReadingRequest{RoomID: "room-1", SensorType: sensorType, Value: 1}
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("temperature", sensorRequest("temperature", false))
	t.Run("co2", sensorRequest("co2", false))
	t.Run("air_quality", sensorRequest("air_quality", false))
	t.Run("unknown", sensorRequest("pressure", true))
}
