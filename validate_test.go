package opendrive

import (
	"testing"
)

func validationRoad() Road {
	return Road{
		Length:   Length(10),
		ID:       "1",
		Junction: "-1",
		Rule:     TRAFFIC_RULE_RHT,
		PlanView: PlanView{Geometry: []Geometry{{
			Length: Length(10),
			Line:   &Line{},
		}}},
		Lanes: Lanes{LaneSection: []LaneSection{{
			Center: LaneSide{Lane: []Lane{{ID: 0, Type: LANE_NONE}}},
		}}},
	}
}

func validationSection(s float64) LaneSection {
	return LaneSection{
		S:      Length(s),
		Center: LaneSide{Lane: []Lane{{ID: 0, Type: LANE_NONE}}},
	}
}

func TestValidateCleanDocument(t *testing.T) {
	doc := &Document{
		Header: Header{RevMajor: 1, RevMinor: 7},
		Roads:  []Road{validationRoad()},
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Document must validate, but got %v", err)
	}
}

func TestValidateGeometryGap(t *testing.T) {
	road := validationRoad()
	road.Length = Length(20)
	road.PlanView.Geometry = []Geometry{
		{S: 0, Length: 10, Line: &Line{}},
		{S: 11, X: 10, Length: 10, Line: &Line{}},
	}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Gap in the s chain must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	expected := "segment starts at s=11, previous one ends at s=10"
	if serr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, serr.Reason)
	}
	if serr.Path != "OpenDRIVE/road[0]/planView/geometry[1]" {
		t.Errorf("Error path must point at the second segment, but got %s", serr.Path)
	}
}

func TestValidatePositionJump(t *testing.T) {
	road := validationRoad()
	road.Length = Length(20)
	road.PlanView.Geometry = []Geometry{
		{S: 0, Length: 10, Line: &Line{}},
		{S: 10, X: 15, Length: 10, Line: &Line{}},
	}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Detached segment must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	expected := "segment starts -5/0 away from the end of the previous one"
	if serr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, serr.Reason)
	}
}

func TestValidateHeadingJump(t *testing.T) {
	road := validationRoad()
	road.Length = Length(20)
	road.PlanView.Geometry = []Geometry{
		{S: 0, Length: 10, Line: &Line{}},
		{S: 10, X: 10, Hdg: Angle(1.5), Length: 10, Line: &Line{}},
	}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Twisted segment must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	expected := "segment heading deviates 1.5 from the end of the previous one"
	if serr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, serr.Reason)
	}
}

func TestValidateFirstSegmentOffset(t *testing.T) {
	road := validationRoad()
	road.PlanView.Geometry[0].S = Length(5)
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Shifted first segment must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	expected := "first segment must start at s=0, got 5"
	if serr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, serr.Reason)
	}
}

func TestValidateExtentMismatch(t *testing.T) {
	road := validationRoad()
	road.Length = Length(15)
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Short plan view must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	expected := "geometry covers [0, 10], road is 15 long"
	if serr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, serr.Reason)
	}
}

func TestValidateMissingGeometry(t *testing.T) {
	road := validationRoad()
	road.PlanView.Geometry = nil
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Empty plan view must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	if serr.Reason != "must contain at least one geometry" {
		t.Errorf("Unexpected reason: %s", serr.Reason)
	}
}

func TestValidateShapelessSegment(t *testing.T) {
	road := validationRoad()
	road.PlanView.Geometry[0].Line = nil
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Shapeless segment must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	if serr.Reason != "carries no shape" {
		t.Errorf("Unexpected reason: %s", serr.Reason)
	}
}

func TestValidateSectionOrder(t *testing.T) {
	road := validationRoad()
	road.Lanes.LaneSection = []LaneSection{validationSection(0), validationSection(5), validationSection(2)}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Unordered sections must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	if serr.Reason != "sections must be ordered by s" {
		t.Errorf("Unexpected reason: %s", serr.Reason)
	}
	if serr.Path != "OpenDRIVE/road[0]/lanes/laneSection[2]" {
		t.Errorf("Error path must point at the third section, but got %s", serr.Path)
	}
}

func TestValidateSectionPastRoadEnd(t *testing.T) {
	road := validationRoad()
	road.Lanes.LaneSection = []LaneSection{validationSection(0), validationSection(12)}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	derr, ok := err.(*DomainError)
	if !ok {
		t.Errorf("Section beyond the road must fail with *DomainError, but got %T (%v)", err, err)
		return
	}
	if derr.Reason != "must lie before the road end at 10" {
		t.Errorf("Unexpected reason: %s", derr.Reason)
	}
}

func TestValidateMissingSections(t *testing.T) {
	road := validationRoad()
	road.Lanes.LaneSection = nil
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	if _, ok := err.(*StructureError); !ok {
		t.Errorf("Road without sections must fail with *StructureError, but got %T (%v)", err, err)
	}
}

func TestValidateDuplicateLaneIDs(t *testing.T) {
	road := validationRoad()
	road.Lanes.LaneSection[0].Right = &LaneSide{Lane: []Lane{
		{ID: -1, Type: LANE_DRIVING},
		{ID: -1, Type: LANE_SHOULDER},
	}}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	derr, ok := err.(*DuplicateIDError)
	if !ok {
		t.Errorf("Duplicated lane ids must fail with *DuplicateIDError, but got %T (%v)", err, err)
		return
	}
	if derr.ID != "-1" || derr.Element != "right" {
		t.Errorf("Duplicate must be right/-1, but got %s/%s", derr.Element, derr.ID)
	}
}

func TestValidateEmptyLaneSide(t *testing.T) {
	road := validationRoad()
	road.Lanes.LaneSection[0].Left = &LaneSide{}
	doc := &Document{Roads: []Road{road}}
	err := doc.Validate()
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Empty lane side must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	if serr.Reason != "must contain at least one lane" || serr.Element != "left" {
		t.Errorf("Unexpected failure: %v", serr)
	}
}

func TestValidateRoadIdentity(t *testing.T) {
	road := validationRoad()
	road.ID = ""
	doc := &Document{Roads: []Road{road}}
	rerr, ok := doc.Validate().(*ReferenceError)
	if !ok || rerr.Field != "id" {
		t.Errorf("Road without id must fail with *ReferenceError on 'id', but got %v", doc.Validate())
	}

	road = validationRoad()
	road.Junction = ""
	doc = &Document{Roads: []Road{road}}
	rerr, ok = doc.Validate().(*ReferenceError)
	if !ok || rerr.Field != "junction" {
		t.Errorf("Road without junction must fail with *ReferenceError on 'junction', but got %v", doc.Validate())
	}

	road = validationRoad()
	road.Length = Length(-1)
	road.PlanView.Geometry[0].Length = Length(-1)
	doc = &Document{Roads: []Road{road}}
	if _, ok := doc.Validate().(*DomainError); !ok {
		t.Errorf("Negative length must fail with *DomainError, but got %v", doc.Validate())
	}

	road = validationRoad()
	road.Link = &RoadLink{Predecessor: &RoadLinkTarget{}}
	doc = &Document{Roads: []Road{road}}
	rerr, ok = doc.Validate().(*ReferenceError)
	if !ok || rerr.Field != "elementId" {
		t.Errorf("Empty link target must fail with *ReferenceError on 'elementId', but got %v", doc.Validate())
	}
}

func TestValidateJunctions(t *testing.T) {
	doc := &Document{Junctions: []Junction{{ID: "", Type: JUNCTION_DEFAULT}}}
	if _, ok := doc.Validate().(*ReferenceError); !ok {
		t.Errorf("Junction without id must fail with *ReferenceError, but got %v", doc.Validate())
	}

	doc = &Document{Junctions: []Junction{{ID: "50", Type: JUNCTION_DEFAULT}}}
	serr, ok := doc.Validate().(*StructureError)
	if !ok || serr.Reason != "must contain at least one connection" {
		t.Errorf("Junction without connections must fail with *StructureError, but got %v", doc.Validate())
	}

	empty := ""
	doc = &Document{Junctions: []Junction{{
		ID:   "50",
		Type: JUNCTION_DEFAULT,
		Connection: []Connection{{
			ID:           "0",
			Type:         CONNECTION_DEFAULT,
			IncomingRoad: &empty,
		}},
	}}}
	rerr, ok := doc.Validate().(*ReferenceError)
	if !ok || rerr.Field != "incomingRoad" {
		t.Errorf("Empty incomingRoad must fail with *ReferenceError, but got %v", doc.Validate())
	}
}
