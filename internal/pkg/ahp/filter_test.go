package ahp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func seatingRooms() []Room {
	capacities := []int{62, 45, 30, 20, 15}
	rooms := make([]Room, len(capacities))
	for i, c := range capacities {
		rooms[i] = Room{
			ID:         string(rune('A' + i)),
			Facilities: Facilities{SeatingCapacity: c},
		}
	}
	return rooms
}

func TestFilterRooms_Closure(t *testing.T) {
	filterRequest := func(rooms []Room, req *Requirements, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterRooms(rooms, req)
			gotIDs := make([]string, len(got))
			for i, r := range got {
				gotIDs[i] = r.ID
			}

			if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
				t.Fatalf("FilterRooms result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	rooms := []Room{
		{ID: "lab", Facilities: Facilities{SeatingCapacity: 24, Computers: 12, Projector: true, TrainingRobots: 4}},
		{ID: "lecture", Facilities: Facilities{SeatingCapacity: 80, Projector: true, Whiteboard: true}},
		{ID: "meeting", Facilities: Facilities{SeatingCapacity: 8, Whiteboard: true}},
	}

	t.Run("nil_requirements_keep_everything", filterRequest(rooms, nil,
		[]string{"lab", "lecture", "meeting"}))
	t.Run("min_seating", filterRequest(rooms, &Requirements{MinSeating: intPtr(20)},
		[]string{"lab", "lecture"}))
	t.Run("projector_required", filterRequest(rooms, &Requirements{Projector: boolPtr(true)},
		[]string{"lab", "lecture"}))
	t.Run("projector_false_imposes_nothing", filterRequest(rooms, &Requirements{Projector: boolPtr(false)},
		[]string{"lab", "lecture", "meeting"}))
	t.Run("computers_required", filterRequest(rooms, &Requirements{Computers: boolPtr(true)},
		[]string{"lab"}))
	t.Run("robots_required", filterRequest(rooms, &Requirements{MinTrainingRobots: intPtr(2)},
		[]string{"lab"}))
	t.Run("conjunctive_rules", filterRequest(rooms, &Requirements{
		MinSeating: intPtr(20),
		Whiteboard: boolPtr(true),
	}, []string{"lecture"}))
	t.Run("nothing_qualifies", filterRequest(rooms, &Requirements{MinSeating: intPtr(500)},
		[]string{}))

	// Reference scenario: min_seating=50 against {62,45,30,20,15} keeps
	// exactly the 62-seat room.
	t.Run("min_seating_50_single_survivor", filterRequest(seatingRooms(),
		&Requirements{MinSeating: intPtr(50)}, []string{"A"}))
}

func TestFilterRooms_Monotonic(t *testing.T) {
	rooms := seatingRooms()

	previous := len(rooms)
	for minSeats := 0; minSeats <= 70; minSeats += 10 {
		got := FilterRooms(rooms, &Requirements{MinSeating: intPtr(minSeats)})
		assert.LessOrEqual(t, len(got), previous,
			"stricter requirement must never grow the survivor set (min_seats=%d)", minSeats)
		previous = len(got)
	}
}
