package opendrive

// Lanes gathers the lateral lane layout of a road: an optional polynomial
// offset of the lane reference and at least one lane section.
type Lanes struct {
	LaneOffset  []LaneOffset
	LaneSection []LaneSection

	Additional AdditionalData
}

// LaneOffset shifts the center lane away from the road reference line,
// off(ds) = a + b*ds + c*ds^2 + d*ds^3 from S until the next record.
type LaneOffset struct {
	S Length
	A float64
	B float64
	C float64
	D float64
}

// LaneSection fixes the lane layout over an interval of the road starting
// at S. The center side is mandatory; ids are unique per side and grow
// outward from the center.
type LaneSection struct {
	S          Length
	SingleSide bool

	Left   *LaneSide
	Center LaneSide
	Right  *LaneSide

	Additional AdditionalData
}

// LaneSide is the lane list of one side of a section. A present side
// holds at least one lane.
type LaneSide struct {
	Lane []Lane
}

// LaneByID returns the lane with the given id, nil when absent.
func (side *LaneSide) LaneByID(id int) *Lane {
	for i := range side.Lane {
		if side.Lane[i].ID == id {
			return &side.Lane[i]
		}
	}
	return nil
}

// Lane is a single lane of a section. Width and Border are alternative
// descriptions of the lane extent; the standard forbids mixing them.
type Lane struct {
	ID    int
	Type  LaneType
	Level bool

	Link     *LaneLink
	Width    []LaneWidth
	Border   []LaneBorder
	RoadMark []RoadMark
	Material []LaneMaterial
	Speed    []LaneSpeed
	Access   []LaneAccess
	Height   []LaneHeight
	Rule     []LaneRule

	Additional AdditionalData
}

// LaneLink connects the lane to its continuation in the neighbor sections
// or roads.
type LaneLink struct {
	Predecessor []LaneLinkTarget
	Successor   []LaneLinkTarget
}

type LaneLinkTarget struct {
	ID int
}

// LaneWidth describes the lane width relative to the inner lane border,
// w(ds) = a + b*ds + c*ds^2 + d*ds^3 from SOffset until the next record.
type LaneWidth struct {
	SOffset Length
	A       float64
	B       float64
	C       float64
	D       float64
}

// WidthAt returns the width at the given distance behind the record start.
func (width *LaneWidth) WidthAt(ds float64) Length {
	return Length(PolyAt(width.A, width.B, width.C, width.D, ds))
}

// LaneBorder describes the outer lane border as a polynomial of the
// distance behind SOffset, alternative to LaneWidth.
type LaneBorder struct {
	SOffset Length
	A       float64
	B       float64
	C       float64
	D       float64
}

// LaneMaterial overrides the road surface within the lane.
type LaneMaterial struct {
	SOffset   Length
	Surface   *string
	Friction  float64
	Roughness *float64
}

// LaneSpeed limits the speed on the lane from SOffset on.
type LaneSpeed struct {
	SOffset Length
	Max     float64
	Unit    SpeedUnit
}

// LaneAccess restricts the lane usage to certain traffic groups.
type LaneAccess struct {
	SOffset     Length
	Rule        *AccessRule
	Restriction AccessRestriction
}

// LaneHeight lifts the lane surface off the road plane.
type LaneHeight struct {
	SOffset Length
	Inner   Length
	Outer   Length
}

// LaneRule is a free-text traffic rule ("no stopping at any time" etc).
type LaneRule struct {
	SOffset Length
	Value   string
}

type LaneType uint8

const (
	LANE_SHOULDER = LaneType(iota + 1)
	LANE_BORDER
	LANE_DRIVING
	LANE_STOP
	LANE_NONE
	LANE_RESTRICTED
	LANE_PARKING
	LANE_MEDIAN
	LANE_BIKING
	LANE_SIDEWALK
	LANE_CURB
	LANE_EXIT
	LANE_ENTRY
	LANE_ON_RAMP
	LANE_OFF_RAMP
	LANE_CONNECTING_RAMP
	LANE_BIDIRECTIONAL
	LANE_SPECIAL1
	LANE_SPECIAL2
	LANE_SPECIAL3
	LANE_ROAD_WORKS
	LANE_TRAM
	LANE_RAIL
	LANE_BUS
	LANE_TAXI
	LANE_HOV
	LANE_MWY_ENTRY
	LANE_MWY_EXIT
)

func (iotaIdx LaneType) String() string {
	return [...]string{"shoulder", "border", "driving", "stop", "none", "restricted", "parking", "median", "biking", "sidewalk", "curb", "exit", "entry", "onRamp", "offRamp", "connectingRamp", "bidirectional", "special1", "special2", "special3", "roadWorks", "tram", "rail", "bus", "taxi", "HOV", "mwyEntry", "mwyExit"}[iotaIdx-1]
}

var laneTypeByName = map[string]LaneType{
	"shoulder":       LANE_SHOULDER,
	"border":         LANE_BORDER,
	"driving":        LANE_DRIVING,
	"stop":           LANE_STOP,
	"none":           LANE_NONE,
	"restricted":     LANE_RESTRICTED,
	"parking":        LANE_PARKING,
	"median":         LANE_MEDIAN,
	"biking":         LANE_BIKING,
	"sidewalk":       LANE_SIDEWALK,
	"curb":           LANE_CURB,
	"exit":           LANE_EXIT,
	"entry":          LANE_ENTRY,
	"onRamp":         LANE_ON_RAMP,
	"offRamp":        LANE_OFF_RAMP,
	"connectingRamp": LANE_CONNECTING_RAMP,
	"bidirectional":  LANE_BIDIRECTIONAL,
	"special1":       LANE_SPECIAL1,
	"special2":       LANE_SPECIAL2,
	"special3":       LANE_SPECIAL3,
	"roadWorks":      LANE_ROAD_WORKS,
	"tram":           LANE_TRAM,
	"rail":           LANE_RAIL,
	"bus":            LANE_BUS,
	"taxi":           LANE_TAXI,
	"HOV":            LANE_HOV,
	"mwyEntry":       LANE_MWY_ENTRY,
	"mwyExit":        LANE_MWY_EXIT,
}

type AccessRule uint8

const (
	ACCESS_ALLOW = AccessRule(iota + 1)
	ACCESS_DENY
)

func (iotaIdx AccessRule) String() string {
	return [...]string{"allow", "deny"}[iotaIdx-1]
}

var accessRuleByName = map[string]AccessRule{
	"allow": ACCESS_ALLOW,
	"deny":  ACCESS_DENY,
}

type AccessRestriction uint8

const (
	RESTRICTION_SIMULATOR = AccessRestriction(iota + 1)
	RESTRICTION_AUTONOMOUS_TRAFFIC
	RESTRICTION_PEDESTRIAN
	RESTRICTION_PASSENGER_CAR
	RESTRICTION_BUS
	RESTRICTION_DELIVERY
	RESTRICTION_EMERGENCY
	RESTRICTION_TAXI
	RESTRICTION_THROUGH_TRAFFIC
	RESTRICTION_TRUCK
	RESTRICTION_BICYCLE
	RESTRICTION_MOTORCYCLE
	RESTRICTION_NONE
	RESTRICTION_TRUCKS
)

func (iotaIdx AccessRestriction) String() string {
	return [...]string{"simulator", "autonomousTraffic", "pedestrian", "passengerCar", "bus", "delivery", "emergency", "taxi", "throughTraffic", "truck", "bicycle", "motorcycle", "none", "trucks"}[iotaIdx-1]
}

var accessRestrictionByName = map[string]AccessRestriction{
	"simulator":         RESTRICTION_SIMULATOR,
	"autonomousTraffic": RESTRICTION_AUTONOMOUS_TRAFFIC,
	"pedestrian":        RESTRICTION_PEDESTRIAN,
	"passengerCar":      RESTRICTION_PASSENGER_CAR,
	"bus":               RESTRICTION_BUS,
	"delivery":          RESTRICTION_DELIVERY,
	"emergency":         RESTRICTION_EMERGENCY,
	"taxi":              RESTRICTION_TAXI,
	"throughTraffic":    RESTRICTION_THROUGH_TRAFFIC,
	"truck":             RESTRICTION_TRUCK,
	"bicycle":           RESTRICTION_BICYCLE,
	"motorcycle":        RESTRICTION_MOTORCYCLE,
	"none":              RESTRICTION_NONE,
	"trucks":            RESTRICTION_TRUCKS,
}
