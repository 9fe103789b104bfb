package ahp

// The decision hierarchy is fixed at build time: one goal, three criteria
// groups, and a set of leaf criteria under each group. Requests only tune
// judgments and preferred ranges; the tree itself is never user-mutable.

const (
	GroupComfort   = "Comfort"
	GroupHealth    = "Health"
	GroupUsability = "Usability"

	// GoalKey addresses the top-level comparison set (the three groups)
	// in judgment maps and consistency results.
	GoalKey = "goal"
)

// Polarity declares how a sensor leaf is scored against its preferred range.
type Polarity string

const (
	// CenteredOptimal scores best inside a band and decays on both sides.
	CenteredOptimal Polarity = "centered_optimal"
	// LowerIsBetter scores best near zero; only the upper bound decays.
	LowerIsBetter Polarity = "lower_is_better"
)

// Source declares where a leaf's raw value comes from.
type Source string

const (
	SourceSensor   Source = "sensor"
	SourceFacility Source = "facility"
)

// Leaf is one terminal criterion of the hierarchy.
type Leaf struct {
	Name     string
	Group    string
	Polarity Polarity
	Source   Source
	Unit     string

	// Absolute plausible bounds for the raw value. Readings outside this
	// band score zero regardless of the preferred range.
	AbsMin float64
	AbsMax float64

	// Default preferred range, applied when the request supplies none.
	// Bounds follow EN 16798-1 category II and related indoor standards.
	DefaultMin float64
	DefaultMax float64

	// SensorType is the telemetry key this leaf reads from, empty for
	// facility-derived leaves.
	SensorType string
}

// Groups lists the top-level criteria in comparison order.
var Groups = []string{GroupComfort, GroupHealth, GroupUsability}

var leaves = []Leaf{
	{Name: "Temperature", Group: GroupComfort, Polarity: CenteredOptimal, Source: SourceSensor,
		Unit: "°C", AbsMin: 15, AbsMax: 30, DefaultMin: 20, DefaultMax: 24, SensorType: "temperature"},
	{Name: "Lighting", Group: GroupComfort, Polarity: CenteredOptimal, Source: SourceSensor,
		Unit: "lux", AbsMin: 100, AbsMax: 1000, DefaultMin: 300, DefaultMax: 500, SensorType: "light"},
	{Name: "Noise", Group: GroupComfort, Polarity: LowerIsBetter, Source: SourceSensor,
		Unit: "dBA", AbsMin: 0, AbsMax: 100, DefaultMin: 0, DefaultMax: 35, SensorType: "noise"},
	{Name: "Humidity", Group: GroupComfort, Polarity: CenteredOptimal, Source: SourceSensor,
		Unit: "%RH", AbsMin: 20, AbsMax: 80, DefaultMin: 40, DefaultMax: 60, SensorType: "humidity"},

	{Name: "CO2", Group: GroupHealth, Polarity: LowerIsBetter, Source: SourceSensor,
		Unit: "ppm", AbsMin: 0, AbsMax: 2000, DefaultMin: 0, DefaultMax: 600, SensorType: "co2"},
	{Name: "AirQuality", Group: GroupHealth, Polarity: LowerIsBetter, Source: SourceSensor,
		Unit: "AQI", AbsMin: 0, AbsMax: 300, DefaultMin: 0, DefaultMax: 50, SensorType: "air_quality"},
	{Name: "VOC", Group: GroupHealth, Polarity: LowerIsBetter, Source: SourceSensor,
		Unit: "ppb", AbsMin: 0, AbsMax: 1000, DefaultMin: 0, DefaultMax: 200, SensorType: "voc"},

	{Name: "SeatingCapacity", Group: GroupUsability, Source: SourceFacility, Unit: "seats"},
	{Name: "Equipment", Group: GroupUsability, Source: SourceFacility, Unit: "computers"},
	{Name: "AVFacilities", Group: GroupUsability, Source: SourceFacility, Unit: "bool"},
}

var (
	leavesByName  = make(map[string]Leaf, len(leaves))
	leavesByGroup = make(map[string][]string, len(Groups))
)

func init() {
	for _, leaf := range leaves {
		leavesByName[leaf.Name] = leaf
		leavesByGroup[leaf.Group] = append(leavesByGroup[leaf.Group], leaf.Name)
	}
}

// Leaves returns all leaf criteria in hierarchy order.
func Leaves() []Leaf {
	out := make([]Leaf, len(leaves))
	copy(out, leaves)
	return out
}

// LeafByName looks up a leaf criterion.
func LeafByName(name string) (Leaf, bool) {
	leaf, ok := leavesByName[name]
	return leaf, ok
}

// GroupLeaves returns the leaf names under one group, in comparison order.
func GroupLeaves(group string) []string {
	names := leavesByGroup[group]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// IsGroup reports whether name is one of the top-level criteria groups.
func IsGroup(name string) bool {
	_, ok := leavesByGroup[name]
	return ok
}
