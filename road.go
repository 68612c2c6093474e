package opendrive

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Road is one road of the network: identity, a reference line, profiles
// and the lane layout. Roads reference junctions by id only.
type Road struct {
	Name     *string
	Length   Length
	ID       string
	Junction string
	Rule     TrafficRule

	Link             *RoadLink
	Type             []RoadTypeRecord
	PlanView         PlanView
	ElevationProfile *ElevationProfile
	LateralProfile   *LateralProfile
	Lanes            Lanes
	Objects          *Objects
	Signals          *Signals

	Additional AdditionalData
}

// InJunction reports whether the road belongs to a junction. Standalone
// roads carry the junction id "-1".
func (road *Road) InJunction() bool {
	return road.Junction != "" && road.Junction != "-1"
}

// ReferenceLine samples the plan view every step meters into a line
// string, always including the very end of the road.
func (road *Road) ReferenceLine(step Length) (orb.LineString, error) {
	if step <= 0 {
		return nil, errors.Errorf("Sampling step must be positive, got %v", step.Meters())
	}
	line := orb.LineString{}
	for i := range road.PlanView.Geometry {
		geometry := &road.PlanView.Geometry[i]
		for s := 0.0; s < geometry.Length.Meters(); s += step.Meters() {
			pt, _, err := geometry.Evaluate(Length(s))
			if err != nil {
				return nil, err
			}
			line = append(line, pt)
		}
	}
	if last := len(road.PlanView.Geometry); last > 0 {
		pt, _, err := road.PlanView.Geometry[last-1].EndPosition()
		if err != nil {
			return nil, err
		}
		line = append(line, pt)
	}
	return line, nil
}

// RoadLink connects the road ends to neighbor roads or junctions.
type RoadLink struct {
	Predecessor *RoadLinkTarget
	Successor   *RoadLinkTarget

	Additional AdditionalData
}

// RoadLinkTarget points at the linked element. ElementS/ElementDir are
// used instead of ContactPoint when the target is reached mid-element
// (virtual junctions).
type RoadLinkTarget struct {
	ElementID    string
	ElementType  *ElementType
	ContactPoint *ContactPoint
	ElementS     *Length
	ElementDir   *ElementDir
}

// RoadTypeRecord assigns a road category from its S coordinate until the
// next record.
type RoadTypeRecord struct {
	S       Length
	Type    RoadTypeKind
	Country *CountryCode

	Speed *RoadSpeed

	Additional AdditionalData
}

// RoadSpeed is the speed limit of a road type record.
type RoadSpeed struct {
	Max  MaxSpeed
	Unit SpeedUnit
}

// CountryCode is an ISO 3166-1 alpha-2/alpha-3 country identifier, kept
// verbatim.
type CountryCode string

type TrafficRule uint8

const (
	TRAFFIC_RULE_RHT = TrafficRule(iota + 1)
	TRAFFIC_RULE_LHT
)

func (iotaIdx TrafficRule) String() string {
	return [...]string{"RHT", "LHT"}[iotaIdx-1]
}

var trafficRuleByName = map[string]TrafficRule{
	"RHT": TRAFFIC_RULE_RHT,
	"LHT": TRAFFIC_RULE_LHT,
}

type ElementType uint8

const (
	ELEMENT_ROAD = ElementType(iota + 1)
	ELEMENT_JUNCTION
)

func (iotaIdx ElementType) String() string {
	return [...]string{"road", "junction"}[iotaIdx-1]
}

var elementTypeByName = map[string]ElementType{
	"road":     ELEMENT_ROAD,
	"junction": ELEMENT_JUNCTION,
}

type ElementDir uint8

const (
	ELEMENT_DIR_PLUS = ElementDir(iota + 1)
	ELEMENT_DIR_MINUS
)

func (iotaIdx ElementDir) String() string {
	return [...]string{"+", "-"}[iotaIdx-1]
}

var elementDirByName = map[string]ElementDir{
	"+": ELEMENT_DIR_PLUS,
	"-": ELEMENT_DIR_MINUS,
}

type ContactPoint uint8

const (
	CONTACT_POINT_START = ContactPoint(iota + 1)
	CONTACT_POINT_END
)

func (iotaIdx ContactPoint) String() string {
	return [...]string{"start", "end"}[iotaIdx-1]
}

var contactPointByName = map[string]ContactPoint{
	"start": CONTACT_POINT_START,
	"end":   CONTACT_POINT_END,
}

type RoadTypeKind uint8

const (
	ROAD_TYPE_UNKNOWN = RoadTypeKind(iota + 1)
	ROAD_TYPE_RURAL
	ROAD_TYPE_MOTORWAY
	ROAD_TYPE_TOWN
	ROAD_TYPE_LOW_SPEED
	ROAD_TYPE_PEDESTRIAN
	ROAD_TYPE_BICYCLE
	ROAD_TYPE_TOWN_EXPRESSWAY
	ROAD_TYPE_TOWN_COLLECTOR
	ROAD_TYPE_TOWN_ARTERIAL
	ROAD_TYPE_TOWN_PRIVATE
	ROAD_TYPE_TOWN_LOCAL
	ROAD_TYPE_TOWN_PLAY_STREET
)

func (iotaIdx RoadTypeKind) String() string {
	return [...]string{"unknown", "rural", "motorway", "town", "lowSpeed", "pedestrian", "bicycle", "townExpressway", "townCollector", "townArterial", "townPrivate", "townLocal", "townPlayStreet"}[iotaIdx-1]
}

var roadTypeKindByName = map[string]RoadTypeKind{
	"unknown":        ROAD_TYPE_UNKNOWN,
	"rural":          ROAD_TYPE_RURAL,
	"motorway":       ROAD_TYPE_MOTORWAY,
	"town":           ROAD_TYPE_TOWN,
	"lowSpeed":       ROAD_TYPE_LOW_SPEED,
	"pedestrian":     ROAD_TYPE_PEDESTRIAN,
	"bicycle":        ROAD_TYPE_BICYCLE,
	"townExpressway": ROAD_TYPE_TOWN_EXPRESSWAY,
	"townCollector":  ROAD_TYPE_TOWN_COLLECTOR,
	"townArterial":   ROAD_TYPE_TOWN_ARTERIAL,
	"townPrivate":    ROAD_TYPE_TOWN_PRIVATE,
	"townLocal":      ROAD_TYPE_TOWN_LOCAL,
	"townPlayStreet": ROAD_TYPE_TOWN_PLAY_STREET,
}
