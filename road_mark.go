package opendrive

// RoadMark paints the border of its lane from SOffset until the next
// record. Color defaults to "standard"; the SumoRoadMarkColor workaround
// controls whether the writer may omit that default.
type RoadMark struct {
	SOffset    Length
	Type       RoadMarkType
	Weight     *RoadMarkWeight
	Color      RoadMarkColor
	Material   *string
	Width      *Length
	LaneChange LaneChange
	Height     *Length

	Sway       []Sway
	TypeDetail *RoadMarkTypeDetail
	Explicit   *RoadMarkExplicit

	Additional AdditionalData
}

// Sway moves the road mark laterally against the nominal lane border,
// sway(ds) = a + b*ds + c*ds^2 + d*ds^3 from DS on.
type Sway struct {
	DS Length
	A  float64
	B  float64
	C  float64
	D  float64
}

// RoadMarkTypeDetail (element "type") breaks the mark into individual
// lines, e.g. for complex lane separations.
type RoadMarkTypeDetail struct {
	Name  string
	Width Length

	Line []RoadMarkLine

	Additional AdditionalData
}

// RoadMarkLine is one painted line of a detailed road mark definition.
type RoadMarkLine struct {
	Length  Length
	Space   Length
	TOffset Length
	SOffset Length
	Rule    *RoadMarkRule
	Width   *Length
	Color   *RoadMarkColor
}

// RoadMarkExplicit describes irregular markings line by line.
type RoadMarkExplicit struct {
	Line []RoadMarkExplicitLine

	Additional AdditionalData
}

type RoadMarkExplicitLine struct {
	Length  Length
	TOffset Length
	SOffset Length
	Rule    *RoadMarkRule
	Width   *Length
}

type RoadMarkType uint8

const (
	ROAD_MARK_NONE = RoadMarkType(iota + 1)
	ROAD_MARK_SOLID
	ROAD_MARK_BROKEN
	ROAD_MARK_SOLID_SOLID
	ROAD_MARK_SOLID_BROKEN
	ROAD_MARK_BROKEN_SOLID
	ROAD_MARK_BROKEN_BROKEN
	ROAD_MARK_BOTTS_DOTS
	ROAD_MARK_GRASS
	ROAD_MARK_CURB
	ROAD_MARK_CUSTOM
	ROAD_MARK_EDGE
)

func (iotaIdx RoadMarkType) String() string {
	return [...]string{"none", "solid", "broken", "solid solid", "solid broken", "broken solid", "broken broken", "botts dots", "grass", "curb", "custom", "edge"}[iotaIdx-1]
}

var roadMarkTypeByName = map[string]RoadMarkType{
	"none":          ROAD_MARK_NONE,
	"solid":         ROAD_MARK_SOLID,
	"broken":        ROAD_MARK_BROKEN,
	"solid solid":   ROAD_MARK_SOLID_SOLID,
	"solid broken":  ROAD_MARK_SOLID_BROKEN,
	"broken solid":  ROAD_MARK_BROKEN_SOLID,
	"broken broken": ROAD_MARK_BROKEN_BROKEN,
	"botts dots":    ROAD_MARK_BOTTS_DOTS,
	"grass":         ROAD_MARK_GRASS,
	"curb":          ROAD_MARK_CURB,
	"custom":        ROAD_MARK_CUSTOM,
	"edge":          ROAD_MARK_EDGE,
}

type RoadMarkWeight uint8

const (
	ROAD_MARK_WEIGHT_STANDARD = RoadMarkWeight(iota + 1)
	ROAD_MARK_WEIGHT_BOLD
)

func (iotaIdx RoadMarkWeight) String() string {
	return [...]string{"standard", "bold"}[iotaIdx-1]
}

var roadMarkWeightByName = map[string]RoadMarkWeight{
	"standard": ROAD_MARK_WEIGHT_STANDARD,
	"bold":     ROAD_MARK_WEIGHT_BOLD,
}

type RoadMarkColor uint8

const (
	ROAD_MARK_COLOR_STANDARD = RoadMarkColor(iota + 1)
	ROAD_MARK_COLOR_BLUE
	ROAD_MARK_COLOR_GREEN
	ROAD_MARK_COLOR_RED
	ROAD_MARK_COLOR_WHITE
	ROAD_MARK_COLOR_YELLOW
	ROAD_MARK_COLOR_ORANGE
	ROAD_MARK_COLOR_VIOLET
)

func (iotaIdx RoadMarkColor) String() string {
	return [...]string{"standard", "blue", "green", "red", "white", "yellow", "orange", "violet"}[iotaIdx-1]
}

var roadMarkColorByName = map[string]RoadMarkColor{
	"standard": ROAD_MARK_COLOR_STANDARD,
	"blue":     ROAD_MARK_COLOR_BLUE,
	"green":    ROAD_MARK_COLOR_GREEN,
	"red":      ROAD_MARK_COLOR_RED,
	"white":    ROAD_MARK_COLOR_WHITE,
	"yellow":   ROAD_MARK_COLOR_YELLOW,
	"orange":   ROAD_MARK_COLOR_ORANGE,
	"violet":   ROAD_MARK_COLOR_VIOLET,
}

type LaneChange uint8

const (
	LANE_CHANGE_INCREASE = LaneChange(iota + 1)
	LANE_CHANGE_DECREASE
	LANE_CHANGE_BOTH
	LANE_CHANGE_NONE
)

func (iotaIdx LaneChange) String() string {
	return [...]string{"increase", "decrease", "both", "none"}[iotaIdx-1]
}

var laneChangeByName = map[string]LaneChange{
	"increase": LANE_CHANGE_INCREASE,
	"decrease": LANE_CHANGE_DECREASE,
	"both":     LANE_CHANGE_BOTH,
	"none":     LANE_CHANGE_NONE,
}

type RoadMarkRule uint8

const (
	ROAD_MARK_RULE_NO_PASSING = RoadMarkRule(iota + 1)
	ROAD_MARK_RULE_CAUTION
	ROAD_MARK_RULE_NONE
)

func (iotaIdx RoadMarkRule) String() string {
	return [...]string{"no passing", "caution", "none"}[iotaIdx-1]
}

var roadMarkRuleByName = map[string]RoadMarkRule{
	"no passing": ROAD_MARK_RULE_NO_PASSING,
	"caution":    ROAD_MARK_RULE_CAUTION,
	"none":       ROAD_MARK_RULE_NONE,
}
