package opendrive

// Objects collects everything placed along a road that is not a signal:
// obstacles, street furniture, tunnels, bridges.
type Objects struct {
	Object          []Object
	ObjectReference []ObjectReference
	Tunnel          []Tunnel
	Bridge          []Bridge

	Additional AdditionalData
}

// Object is a single item along the road, positioned in the s/t frame of
// the reference line with an own local u/v bounding box.
type Object struct {
	ID          string
	Name        *string
	S           Length
	T           Length
	ZOffset     Length
	Type        *ObjectType
	Subtype     *string
	Dynamic     bool
	Orientation *Orientation
	Hdg         *Angle
	Pitch       *Angle
	Roll        *Angle
	Height      *Length
	ObjLength   *Length
	Width       *Length
	Radius      *Length
	ValidLength *Length
	PerpToRoad  bool

	Repeat       []ObjectRepeat
	Material     []ObjectMaterial
	Validity     []LaneValidity
	ParkingSpace *ParkingSpace

	Additional AdditionalData
}

// ObjectRepeat clones the object along the road, interpolating its
// placement between the Start and End values.
type ObjectRepeat struct {
	S            Length
	Length       Length
	Distance     Length
	TStart       Length
	TEnd         Length
	HeightStart  Length
	HeightEnd    Length
	ZOffsetStart Length
	ZOffsetEnd   Length
	WidthStart   *Length
	WidthEnd     *Length
	LengthStart  *Length
	LengthEnd    *Length
	RadiusStart  *Length
	RadiusEnd    *Length
}

// ObjectMaterial overrides the surface properties of the object.
type ObjectMaterial struct {
	Surface   *string
	Friction  *float64
	Roughness *float64
}

// ParkingSpace details an object of type parkingSpace.
type ParkingSpace struct {
	Access       ParkingAccess
	Restrictions *string
}

// ObjectReference places an object defined on another road.
type ObjectReference struct {
	S           Length
	T           Length
	ID          string
	ZOffset     *Length
	ValidLength *Length
	Orientation Orientation

	Validity []LaneValidity

	Additional AdditionalData
}

// Tunnel covers an s interval of the road.
type Tunnel struct {
	S        Length
	Length   Length
	Name     *string
	ID       string
	Type     TunnelType
	Lighting *float64
	Daylight *float64

	Validity []LaneValidity

	Additional AdditionalData
}

// Bridge covers an s interval of the road.
type Bridge struct {
	S      Length
	Length Length
	Name   *string
	ID     string
	Type   BridgeType

	Validity []LaneValidity

	Additional AdditionalData
}

type ObjectType uint8

const (
	OBJECT_NONE = ObjectType(iota + 1)
	OBJECT_OBSTACLE
	OBJECT_CAR
	OBJECT_POLE
	OBJECT_TREE
	OBJECT_VEGETATION
	OBJECT_BARRIER
	OBJECT_BUILDING
	OBJECT_PARKING_SPACE
	OBJECT_PATCH
	OBJECT_RAILING
	OBJECT_TRAFFIC_ISLAND
	OBJECT_CROSSWALK
	OBJECT_STREET_LAMP
	OBJECT_GANTRY
	OBJECT_SOUND_BARRIER
	OBJECT_VAN
	OBJECT_BUS
	OBJECT_TRAILER
	OBJECT_BIKE
	OBJECT_MOTORBIKE
	OBJECT_TRAM
	OBJECT_TRAIN
	OBJECT_PEDESTRIAN
	OBJECT_WIND
	OBJECT_ROAD_MARK
)

func (iotaIdx ObjectType) String() string {
	return [...]string{"none", "obstacle", "car", "pole", "tree", "vegetation", "barrier", "building", "parkingSpace", "patch", "railing", "trafficIsland", "crosswalk", "streetLamp", "gantry", "soundBarrier", "van", "bus", "trailer", "bike", "motorbike", "tram", "train", "pedestrian", "wind", "roadMark"}[iotaIdx-1]
}

var objectTypeByName = map[string]ObjectType{
	"none":          OBJECT_NONE,
	"obstacle":      OBJECT_OBSTACLE,
	"car":           OBJECT_CAR,
	"pole":          OBJECT_POLE,
	"tree":          OBJECT_TREE,
	"vegetation":    OBJECT_VEGETATION,
	"barrier":       OBJECT_BARRIER,
	"building":      OBJECT_BUILDING,
	"parkingSpace":  OBJECT_PARKING_SPACE,
	"patch":         OBJECT_PATCH,
	"railing":       OBJECT_RAILING,
	"trafficIsland": OBJECT_TRAFFIC_ISLAND,
	"crosswalk":     OBJECT_CROSSWALK,
	"streetLamp":    OBJECT_STREET_LAMP,
	"gantry":        OBJECT_GANTRY,
	"soundBarrier":  OBJECT_SOUND_BARRIER,
	"van":           OBJECT_VAN,
	"bus":           OBJECT_BUS,
	"trailer":       OBJECT_TRAILER,
	"bike":          OBJECT_BIKE,
	"motorbike":     OBJECT_MOTORBIKE,
	"tram":          OBJECT_TRAM,
	"train":         OBJECT_TRAIN,
	"pedestrian":    OBJECT_PEDESTRIAN,
	"wind":          OBJECT_WIND,
	"roadMark":      OBJECT_ROAD_MARK,
}

type TunnelType uint8

const (
	TUNNEL_STANDARD = TunnelType(iota + 1)
	TUNNEL_UNDERPASS
)

func (iotaIdx TunnelType) String() string {
	return [...]string{"standard", "underpass"}[iotaIdx-1]
}

var tunnelTypeByName = map[string]TunnelType{
	"standard":  TUNNEL_STANDARD,
	"underpass": TUNNEL_UNDERPASS,
}

type BridgeType uint8

const (
	BRIDGE_CONCRETE = BridgeType(iota + 1)
	BRIDGE_STEEL
	BRIDGE_BRICK
	BRIDGE_WOOD
)

func (iotaIdx BridgeType) String() string {
	return [...]string{"concrete", "steel", "brick", "wood"}[iotaIdx-1]
}

var bridgeTypeByName = map[string]BridgeType{
	"concrete": BRIDGE_CONCRETE,
	"steel":    BRIDGE_STEEL,
	"brick":    BRIDGE_BRICK,
	"wood":     BRIDGE_WOOD,
}

type ParkingAccess uint8

const (
	PARKING_ALL = ParkingAccess(iota + 1)
	PARKING_CAR
	PARKING_WOMEN
	PARKING_HANDICAPPED
	PARKING_BUS
	PARKING_TRUCK
	PARKING_ELECTRIC
	PARKING_RESIDENTS
)

func (iotaIdx ParkingAccess) String() string {
	return [...]string{"all", "car", "women", "handicapped", "bus", "truck", "electric", "residents"}[iotaIdx-1]
}

var parkingAccessByName = map[string]ParkingAccess{
	"all":         PARKING_ALL,
	"car":         PARKING_CAR,
	"women":       PARKING_WOMEN,
	"handicapped": PARKING_HANDICAPPED,
	"bus":         PARKING_BUS,
	"truck":       PARKING_TRUCK,
	"electric":    PARKING_ELECTRIC,
	"residents":   PARKING_RESIDENTS,
}
