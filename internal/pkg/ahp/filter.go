package ahp

// Facilities is a room's fixed equipment record.
type Facilities struct {
	SeatingCapacity int  `json:"seating_capacity"`
	Computers       int  `json:"computers"`
	TrainingRobots  int  `json:"robots_for_training"`
	Projector       bool `json:"videoprojector"`
	Whiteboard      bool `json:"whiteboard"`
}

// Room is one ranking candidate: an identifier, the most recent raw
// reading per sensor type (partial; missing leaves degrade to score 0),
// and its facility record.
type Room struct {
	ID         string
	Name       string
	Readings   map[string]float64
	Facilities Facilities
}

// Requirements are the requester's hard constraints. Nil fields impose no
// constraint; every supplied rule must pass for a room to survive.
type Requirements struct {
	MinSeating        *int
	MinTrainingRobots *int
	Projector         *bool
	Computers         *bool
	Whiteboard        *bool
}

// RequiredSeats returns the minimum seating, 0 when unconstrained.
func (r *Requirements) RequiredSeats() int {
	if r == nil || r.MinSeating == nil {
		return 0
	}
	return *r.MinSeating
}

// RequiredComputers returns 1 when computers are required, 0 otherwise.
func (r *Requirements) RequiredComputers() int {
	if r == nil || r.Computers == nil || !*r.Computers {
		return 0
	}
	return 1
}

// ProjectorRequired reports whether a projector is a hard requirement.
func (r *Requirements) ProjectorRequired() bool {
	return r != nil && r.Projector != nil && *r.Projector
}

// FilterRooms removes candidates that fail any supplied requirement.
// Filtering happens before any scoring: a room that fails a hard
// constraint never competes, while a room that merely scores poorly still
// appears in the ranking.
func FilterRooms(rooms []Room, req *Requirements) []Room {
	if req == nil {
		return rooms
	}

	survivors := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		if req.MinSeating != nil && room.Facilities.SeatingCapacity < *req.MinSeating {
			continue
		}

		if req.MinTrainingRobots != nil && room.Facilities.TrainingRobots < *req.MinTrainingRobots {
			continue
		}

		if req.Projector != nil && *req.Projector && !room.Facilities.Projector {
			continue
		}

		if req.Computers != nil && *req.Computers && room.Facilities.Computers == 0 {
			continue
		}

		if req.Whiteboard != nil && *req.Whiteboard && !room.Facilities.Whiteboard {
			continue
		}

		survivors = append(survivors, room)
	}

	return survivors
}
