package opendrive

// Station is a transit stop served by one or more platforms.
type Station struct {
	ID   string
	Name string
	Type *StationType

	Platform []Platform

	Additional AdditionalData
}

// Platform is one boarding edge of a station, assembled from road
// segments.
type Platform struct {
	ID   string
	Name *string

	Segment []PlatformSegment

	Additional AdditionalData
}

// PlatformSegment maps a part of a road onto the platform edge.
type PlatformSegment struct {
	RoadID string
	SStart Length
	SEnd   Length
	Side   SegmentSide
}

type StationType uint8

const (
	STATION_SMALL = StationType(iota + 1)
	STATION_MEDIUM
	STATION_LARGE
)

func (iotaIdx StationType) String() string {
	return [...]string{"small", "medium", "large"}[iotaIdx-1]
}

var stationTypeByName = map[string]StationType{
	"small":  STATION_SMALL,
	"medium": STATION_MEDIUM,
	"large":  STATION_LARGE,
}

type SegmentSide uint8

const (
	SEGMENT_SIDE_LEFT = SegmentSide(iota + 1)
	SEGMENT_SIDE_RIGHT
)

func (iotaIdx SegmentSide) String() string {
	return [...]string{"left", "right"}[iotaIdx-1]
}

var segmentSideByName = map[string]SegmentSide{
	"left":  SEGMENT_SIDE_LEFT,
	"right": SEGMENT_SIDE_RIGHT,
}
