package opendrive

// Junction groups the roads connecting incoming roads across an
// intersection. Virtual junctions exist on a main road only and carry the
// sStart/sEnd/mainRoad/orientation attributes.
type Junction struct {
	Name        *string
	ID          string
	Type        JunctionType
	MainRoad    *string
	Orientation *Orientation
	SStart      *Length
	SEnd        *Length

	Connection []Connection
	Priority   []JunctionPriority
	Controller []JunctionControllerRef

	Additional AdditionalData
}

// Connection maps the lanes of an incoming road onto a connecting road.
type Connection struct {
	ID             string
	Type           ConnectionType
	IncomingRoad   *string
	ConnectingRoad *string
	LinkedRoad     *string
	ContactPoint   *ContactPoint

	Predecessor *ConnectionLink
	Successor   *ConnectionLink
	LaneLink    []JunctionLaneLink

	Additional AdditionalData
}

// ConnectionLink targets the linked road of a virtual connection.
type ConnectionLink struct {
	ElementType ElementType
	ElementID   string
	ElementS    *Length
	ElementDir  *ElementDir
}

// JunctionLaneLink maps one incoming lane id onto a connecting lane id.
type JunctionLaneLink struct {
	From int
	To   int
}

// JunctionPriority raises one connecting road over another. Roads are
// referenced by id.
type JunctionPriority struct {
	High *string
	Low  *string
}

// JunctionControllerRef points at a signal controller acting on the
// junction.
type JunctionControllerRef struct {
	ID       string
	Type     *string
	Sequence *uint64
}

// JunctionGroup marks junctions that form one logical crossing, e.g. a
// roundabout.
type JunctionGroup struct {
	Name *string
	ID   string
	Type JunctionGroupType

	JunctionReference []JunctionReference

	Additional AdditionalData
}

// JunctionReference is one junction id inside a group.
type JunctionReference struct {
	Junction string
}

type JunctionType uint8

const (
	JUNCTION_DEFAULT = JunctionType(iota + 1)
	JUNCTION_VIRTUAL
	JUNCTION_DIRECT
)

func (iotaIdx JunctionType) String() string {
	return [...]string{"default", "virtual", "direct"}[iotaIdx-1]
}

var junctionTypeByName = map[string]JunctionType{
	"default": JUNCTION_DEFAULT,
	"virtual": JUNCTION_VIRTUAL,
	"direct":  JUNCTION_DIRECT,
}

type ConnectionType uint8

const (
	CONNECTION_DEFAULT = ConnectionType(iota + 1)
	CONNECTION_VIRTUAL
)

func (iotaIdx ConnectionType) String() string {
	return [...]string{"default", "virtual"}[iotaIdx-1]
}

var connectionTypeByName = map[string]ConnectionType{
	"default": CONNECTION_DEFAULT,
	"virtual": CONNECTION_VIRTUAL,
}

type JunctionGroupType uint8

const (
	JUNCTION_GROUP_ROUNDABOUT = JunctionGroupType(iota + 1)
	JUNCTION_GROUP_UNKNOWN
)

func (iotaIdx JunctionGroupType) String() string {
	return [...]string{"roundabout", "unknown"}[iotaIdx-1]
}

var junctionGroupTypeByName = map[string]JunctionGroupType{
	"roundabout": JUNCTION_GROUP_ROUNDABOUT,
	"unknown":    JUNCTION_GROUP_UNKNOWN,
}
