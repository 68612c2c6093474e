package opendrive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// continuityTolerance bounds the gap between consecutive plan view
// segments, in meters for positions and radians for headings.
const continuityTolerance = 1e-6

// Validate checks the structural invariants of the network: contiguous
// plan view geometry, ordered lane sections, unique lane ids and sane id
// references. The first violation is returned. Reference existence across
// elements is not resolved, only the id shapes are checked.
func (doc *Document) Validate() error {
	for i := range doc.Roads {
		if err := doc.Roads[i].validate(fmt.Sprintf("OpenDRIVE/road[%d]", i)); err != nil {
			return err
		}
	}
	for i := range doc.Junctions {
		if err := doc.Junctions[i].validate(fmt.Sprintf("OpenDRIVE/junction[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (road *Road) validate(path string) error {
	if road.ID == "" {
		return &ReferenceError{Path: path, Element: "road", Field: "id", Value: road.ID}
	}
	if road.Junction == "" {
		return &ReferenceError{Path: path, Element: "road", Field: "junction", Value: road.Junction}
	}
	if road.Length < 0 {
		return &DomainError{Path: path, Element: "road", Field: "length", Value: road.Length.Meters(), Reason: "must not be negative"}
	}
	if link := road.Link; link != nil {
		if link.Predecessor != nil && link.Predecessor.ElementID == "" {
			return &ReferenceError{Path: path + "/link/predecessor", Element: "predecessor", Field: "elementId"}
		}
		if link.Successor != nil && link.Successor.ElementID == "" {
			return &ReferenceError{Path: path + "/link/successor", Element: "successor", Field: "elementId"}
		}
	}
	if err := road.validatePlanView(path + "/planView"); err != nil {
		return err
	}
	return road.validateLanes(path + "/lanes")
}

func (road *Road) validatePlanView(path string) error {
	geometry := road.PlanView.Geometry
	if len(geometry) == 0 {
		return &StructureError{Path: path, Element: "planView", Reason: "must contain at least one geometry"}
	}
	for i := range geometry {
		segment := &geometry[i]
		segmentPath := fmt.Sprintf("%s/geometry[%d]", path, i)
		if segment.Length < 0 {
			return &DomainError{Path: segmentPath, Element: "geometry", Field: "length", Value: segment.Length.Meters(), Reason: "must not be negative"}
		}
		if segment.S < 0 {
			return &DomainError{Path: segmentPath, Element: "geometry", Field: "s", Value: segment.S.Meters(), Reason: "must not be negative"}
		}
		if segment.Kind() == 0 {
			return &StructureError{Path: segmentPath, Element: "geometry", Reason: "carries no shape"}
		}
	}
	if gap := geometry[0].S.Meters(); math.Abs(gap) > continuityTolerance {
		return &StructureError{Path: path + "/geometry[0]", Element: "geometry", Reason: fmt.Sprintf("first segment must start at s=0, got %v", gap)}
	}
	for i := 0; i < len(geometry)-1; i++ {
		segment := &geometry[i]
		next := &geometry[i+1]
		extent := segment.S.Meters() + segment.Length.Meters()
		if math.Abs(extent-next.S.Meters()) > continuityTolerance {
			return &StructureError{
				Path:    fmt.Sprintf("%s/geometry[%d]", path, i+1),
				Element: "geometry",
				Reason:  fmt.Sprintf("segment starts at s=%v, previous one ends at s=%v", next.S.Meters(), extent),
			}
		}
		end, heading, err := segment.EndPosition()
		if err != nil {
			return err
		}
		dx := end[0] - next.X.Meters()
		dy := end[1] - next.Y.Meters()
		if math.Abs(dx) > continuityTolerance || math.Abs(dy) > continuityTolerance {
			return &StructureError{
				Path:    fmt.Sprintf("%s/geometry[%d]", path, i+1),
				Element: "geometry",
				Reason:  fmt.Sprintf("segment starts %v/%v away from the end of the previous one", dx, dy),
			}
		}
		if gap := headingGap(heading.Radians(), next.Hdg.Radians()); gap > continuityTolerance {
			return &StructureError{
				Path:    fmt.Sprintf("%s/geometry[%d]", path, i+1),
				Element: "geometry",
				Reason:  fmt.Sprintf("segment heading deviates %v from the end of the previous one", gap),
			}
		}
	}
	last := &geometry[len(geometry)-1]
	extent := last.S.Meters() + last.Length.Meters()
	if math.Abs(extent-road.Length.Meters()) > continuityTolerance {
		return &StructureError{
			Path:    path,
			Element: "planView",
			Reason:  fmt.Sprintf("geometry covers [0, %v], road is %v long", extent, road.Length.Meters()),
		}
	}
	return nil
}

func (road *Road) validateLanes(path string) error {
	sections := road.Lanes.LaneSection
	if len(sections) == 0 {
		return &StructureError{Path: path, Element: "lanes", Reason: "must contain at least one laneSection"}
	}
	for i := range sections {
		section := &sections[i]
		sectionPath := fmt.Sprintf("%s/laneSection[%d]", path, i)
		if section.S < 0 {
			return &DomainError{Path: sectionPath, Element: "laneSection", Field: "s", Value: section.S.Meters(), Reason: "must not be negative"}
		}
		if road.Length > 0 && section.S >= road.Length {
			return &DomainError{Path: sectionPath, Element: "laneSection", Field: "s", Value: section.S.Meters(), Reason: fmt.Sprintf("must lie before the road end at %v", road.Length.Meters())}
		}
		if i > 0 && section.S <= sections[i-1].S {
			return &StructureError{Path: sectionPath, Element: "laneSection", Reason: "sections must be ordered by s"}
		}
		if section.Left != nil {
			if err := section.Left.validate(sectionPath + "/left"); err != nil {
				return err
			}
		}
		if err := section.Center.validate(sectionPath + "/center"); err != nil {
			return err
		}
		if section.Right != nil {
			if err := section.Right.validate(sectionPath + "/right"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (side *LaneSide) validate(path string) error {
	element := path[strings.LastIndexByte(path, '/')+1:]
	if len(side.Lane) == 0 {
		return &StructureError{Path: path, Element: element, Reason: "must contain at least one lane"}
	}
	seen := map[int]struct{}{}
	for i := range side.Lane {
		id := side.Lane[i].ID
		if _, duplicated := seen[id]; duplicated {
			return &DuplicateIDError{Path: path, Element: element, ID: strconv.Itoa(id)}
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (junction *Junction) validate(path string) error {
	if junction.ID == "" {
		return &ReferenceError{Path: path, Element: "junction", Field: "id"}
	}
	if len(junction.Connection) == 0 {
		return &StructureError{Path: path, Element: "junction", Reason: "must contain at least one connection"}
	}
	for i := range junction.Connection {
		connection := &junction.Connection[i]
		connectionPath := fmt.Sprintf("%s/connection[%d]", path, i)
		if connection.ID == "" {
			return &ReferenceError{Path: connectionPath, Element: "connection", Field: "id"}
		}
		if connection.IncomingRoad != nil && *connection.IncomingRoad == "" {
			return &ReferenceError{Path: connectionPath, Element: "connection", Field: "incomingRoad"}
		}
		if connection.ConnectingRoad != nil && *connection.ConnectingRoad == "" {
			return &ReferenceError{Path: connectionPath, Element: "connection", Field: "connectingRoad"}
		}
		if connection.LinkedRoad != nil && *connection.LinkedRoad == "" {
			return &ReferenceError{Path: connectionPath, Element: "connection", Field: "linkedRoad"}
		}
	}
	return nil
}

// headingGap is the absolute angular distance between two headings,
// indifferent to full turns.
func headingGap(a, b float64) float64 {
	gap := math.Mod(a-b, 2.0*math.Pi)
	if gap > math.Pi {
		gap -= 2.0 * math.Pi
	}
	if gap < -math.Pi {
		gap += 2.0 * math.Pi
	}
	return math.Abs(gap)
}
