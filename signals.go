package opendrive

// Signals collects the traffic signs and lights of a road.
type Signals struct {
	Signal          []Signal
	SignalReference []SignalReference

	Additional AdditionalData
}

// Signal is one sign or light placed relative to the road reference line.
// Type and Subtype follow the country specific signal catalogs; "-1"
// stands for unknown.
type Signal struct {
	S               Length
	T               Length
	ID              string
	Name            *string
	Dynamic         bool
	Orientation     Orientation
	ZOffset         Length
	Country         *CountryCode
	CountryRevision *string
	Type            string
	Subtype         string
	Value           *float64
	Unit            *Unit
	Height          *Length
	Width           *Length
	Text            *string
	HOffset         *Angle
	Pitch           *Angle
	Roll            *Angle

	Validity         []LaneValidity
	Dependency       []SignalDependency
	Reference        []SignalReferenceLink
	PositionRoad     *SignalPositionRoad
	PositionInertial *SignalPositionInertial

	Additional AdditionalData
}

// SignalReference re-uses a signal defined elsewhere, e.g. for the
// opposite driving direction.
type SignalReference struct {
	S           Length
	T           Length
	ID          string
	Orientation Orientation

	Validity []LaneValidity

	Additional AdditionalData
}

// LaneValidity restricts a signal or object to the lane id interval
// [FromLane, ToLane].
type LaneValidity struct {
	FromLane int
	ToLane   int
}

// SignalDependency makes the signal state depend on a controlling signal.
type SignalDependency struct {
	ID   string
	Type *string
}

// SignalReferenceLink (element "reference") ties the signal to another
// object or signal, e.g. a stop line.
type SignalReferenceLink struct {
	ElementType SignalLinkType
	ElementID   string
	Type        *string
}

// SignalPositionRoad pins the physical position onto another road.
type SignalPositionRoad struct {
	RoadID  string
	S       Length
	T       Length
	ZOffset Length
	HOffset Angle
	Pitch   *Angle
	Roll    *Angle
}

// SignalPositionInertial pins the physical position in inertial
// coordinates.
type SignalPositionInertial struct {
	X     Length
	Y     Length
	Z     Length
	Hdg   Angle
	Pitch *Angle
	Roll  *Angle
}

// Controller groups signals switching together, referenced from junctions.
type Controller struct {
	ID       string
	Name     *string
	Sequence *uint64

	Control []Control

	Additional AdditionalData
}

// Control is one signal governed by a controller.
type Control struct {
	SignalID string
	Type     *string
}

type Orientation uint8

const (
	ORIENTATION_PLUS = Orientation(iota + 1)
	ORIENTATION_MINUS
	ORIENTATION_NONE
)

func (iotaIdx Orientation) String() string {
	return [...]string{"+", "-", "none"}[iotaIdx-1]
}

var orientationByName = map[string]Orientation{
	"+":    ORIENTATION_PLUS,
	"-":    ORIENTATION_MINUS,
	"none": ORIENTATION_NONE,
}

type SignalLinkType uint8

const (
	SIGNAL_LINK_OBJECT = SignalLinkType(iota + 1)
	SIGNAL_LINK_SIGNAL
)

func (iotaIdx SignalLinkType) String() string {
	return [...]string{"object", "signal"}[iotaIdx-1]
}

var signalLinkTypeByName = map[string]SignalLinkType{
	"object": SIGNAL_LINK_OBJECT,
	"signal": SIGNAL_LINK_SIGNAL,
}
