package ahp

import (
	"fmt"
	"sort"
)

// Config tunes the engine. Zero values select the defaults: geometric
// mean weights, weighted-sum aggregation, clamped zero scores, CR < 0.10.
type Config struct {
	WeightMethod         WeightMethod
	Aggregation          AggregationMode
	ZeroFloor            ZeroFloorPolicy
	ConsistencyThreshold float64
}

// Engine runs the full ranking pipeline. It holds no per-request state,
// so a single instance serves concurrent requests without coordination.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine, filling unset config fields with defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.WeightMethod == "" {
		cfg.WeightMethod = WeightMethodGeometricMean
	}

	if cfg.Aggregation == "" {
		cfg.Aggregation = AggregationWeightedSum
	}

	if cfg.ZeroFloor == "" {
		cfg.ZeroFloor = ZeroFloorClamp
	}

	if cfg.ConsistencyThreshold <= 0 {
		cfg.ConsistencyThreshold = DefaultConsistencyThreshold
	}

	return &Engine{cfg: cfg}
}

// WeightMethod reports the priority derivation method the engine runs.
func (e *Engine) WeightMethod() WeightMethod {
	return e.cfg.WeightMethod
}

// Preferences is one requester's complete preference profile, immutable
// for the duration of a ranking call.
type Preferences struct {
	// Ranges holds per-leaf preferred ranges; leaves without an entry use
	// the criterion's default range.
	Ranges map[string]Range
	// Judgments holds sparse pairwise judgments per comparison set, keyed
	// by GoalKey or a group name. Unsupplied pairs default to equal
	// importance.
	Judgments map[string][]Judgment
	// Requirements are the hard constraints applied before scoring.
	Requirements *Requirements
	// Aggregation optionally overrides the engine's configured mode for
	// this request.
	Aggregation AggregationMode
}

// RankedRoom is one candidate's position in a ranking result.
type RankedRoom struct {
	ID          string
	Name        string
	Overall     float64
	GroupScores map[string]float64
	LeafScores  map[string]float64
	Rank        int
}

// Result is a complete ranking: ordered rooms plus the consistency
// measurement of every comparison set used to produce it.
type Result struct {
	Rooms       []RankedRoom
	Consistency map[string]Consistency
	Consistent  bool
}

// Filter applies the hard constraints and returns the surviving rooms.
// An empty survivor set is reported as ErrNoCandidates so callers can
// distinguish "nothing qualifies" from "nothing exists".
func (e *Engine) Filter(rooms []Room, req *Requirements) ([]Room, error) {
	survivors := FilterRooms(rooms, req)
	if len(survivors) == 0 {
		return nil, ErrNoCandidates
	}

	return survivors, nil
}

// Rank scores and orders the given rooms against the preference profile:
// one comparison matrix, weight vector and consistency check per sibling
// group, then per-leaf desirability scores and hierarchical aggregation
// per room, then a stable descending sort. Rooms with equal scores keep
// their input order.
func (e *Engine) Rank(rooms []Room, prefs Preferences) (Result, error) {
	if err := validatePreferences(prefs); err != nil {
		return Result{}, err
	}

	mode := e.cfg.Aggregation
	if prefs.Aggregation != "" {
		mode = prefs.Aggregation
	}

	topWeights, groupWeights, consistency, err := e.deriveWeights(prefs.Judgments)
	if err != nil {
		return Result{}, err
	}

	consistent := true
	for _, c := range consistency {
		if !c.Acceptable {
			consistent = false
		}
	}

	ranked := make([]RankedRoom, 0, len(rooms))
	for _, room := range rooms {
		leafScores := e.scoreRoom(room, prefs)
		overall, groupScores := AggregateHierarchy(
			leafScores, groupWeights, topWeights, mode, e.cfg.ZeroFloor)

		ranked = append(ranked, RankedRoom{
			ID:          room.ID,
			Name:        room.Name,
			Overall:     overall,
			GroupScores: groupScores,
			LeafScores:  leafScores,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Overall > ranked[j].Overall
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return Result{
		Rooms:       ranked,
		Consistency: consistency,
		Consistent:  consistent,
	}, nil
}

// deriveWeights builds one comparison matrix per sibling group, derives
// its priority vector and measures its consistency. The top-level weights
// come back keyed by group name; group weights keyed group → leaf.
func (e *Engine) deriveWeights(
	judgments map[string][]Judgment,
) (map[string]float64, map[string]map[string]float64, map[string]Consistency, error) {
	consistency := make(map[string]Consistency, len(Groups)+1)

	topVector, topCons, err := e.comparisonWeights(Groups, judgments[GoalKey])
	if err != nil {
		return nil, nil, nil, err
	}
	consistency[GoalKey] = topCons

	topWeights := make(map[string]float64, len(Groups))
	for i, group := range Groups {
		topWeights[group] = topVector[i]
	}

	groupWeights := make(map[string]map[string]float64, len(Groups))
	for _, group := range Groups {
		names := GroupLeaves(group)

		vector, cons, err := e.comparisonWeights(names, judgments[group])
		if err != nil {
			return nil, nil, nil, err
		}
		consistency[group] = cons

		weights := make(map[string]float64, len(names))
		for i, name := range names {
			weights[name] = vector[i]
		}
		groupWeights[group] = weights
	}

	return topWeights, groupWeights, consistency, nil
}

func (e *Engine) comparisonWeights(
	criteria []string,
	judgments []Judgment,
) ([]float64, Consistency, error) {
	matrix, err := BuildMatrix(criteria, judgments)
	if err != nil {
		return nil, Consistency{}, err
	}

	weights, err := CalculateWeights(matrix, e.cfg.WeightMethod)
	if err != nil {
		return nil, Consistency{}, err
	}

	return weights, CheckConsistency(matrix, weights, e.cfg.ConsistencyThreshold), nil
}

// scoreRoom maps every leaf criterion to a desirability score for one
// room. Sensor leaves use the range mapper; usability leaves derive from
// the facility record against the hard requirements.
func (e *Engine) scoreRoom(room Room, prefs Preferences) map[string]float64 {
	scores := make(map[string]float64, len(leaves))

	for _, leaf := range leaves {
		switch leaf.Source {
		case SourceSensor:
			var value *float64
			if v, ok := room.Readings[leaf.SensorType]; ok {
				value = &v
			}

			preferred := Range{Min: leaf.DefaultMin, Max: leaf.DefaultMax}
			if r, ok := prefs.Ranges[leaf.Name]; ok {
				preferred = r
			}

			scores[leaf.Name] = ScoreCriterion(value, preferred,
				Range{Min: leaf.AbsMin, Max: leaf.AbsMax})

		case SourceFacility:
			scores[leaf.Name] = scoreFacilityLeaf(leaf.Name, room.Facilities, prefs.Requirements)
		}
	}

	return scores
}

func scoreFacilityLeaf(name string, facilities Facilities, req *Requirements) float64 {
	switch name {
	case "SeatingCapacity":
		return ScoreSeatingCapacity(facilities.SeatingCapacity, req.RequiredSeats())
	case "Equipment":
		return ScoreEquipment(facilities.Computers, req.RequiredComputers())
	case "AVFacilities":
		return ScoreAVFacilities(facilities.Projector, req.ProjectorRequired())
	default:
		return 0
	}
}

func validatePreferences(prefs Preferences) error {
	for name, r := range prefs.Ranges {
		leaf, ok := LeafByName(name)
		if !ok {
			return &ValidationError{Reason: fmt.Sprintf("unknown criterion %q in preferred ranges", name)}
		}

		if leaf.Source != SourceSensor {
			return &ValidationError{Reason: fmt.Sprintf("criterion %q does not take a preferred range", name)}
		}

		if r.Min > r.Max {
			return &ValidationError{Reason: fmt.Sprintf("preferred range for %q has min > max", name)}
		}
	}

	for key := range prefs.Judgments {
		if key != GoalKey && !IsGroup(key) {
			return &ValidationError{Reason: fmt.Sprintf("unknown comparison set %q in judgments", key)}
		}
	}

	return nil
}
