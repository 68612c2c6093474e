package opendrive

// Document is the root of an OpenDRIVE 1.7 road network. All
// cross-element references are plain ids resolved through the lookup
// methods below, never structural pointers.
type Document struct {
	Header Header

	Roads          []Road
	Controllers    []Controller
	Junctions      []Junction
	JunctionGroups []JunctionGroup
	Stations       []Station

	Additional AdditionalData
}

// RoadByID returns the road with the given id, nil when absent.
func (doc *Document) RoadByID(id string) *Road {
	for i := range doc.Roads {
		if doc.Roads[i].ID == id {
			return &doc.Roads[i]
		}
	}
	return nil
}

// JunctionByID returns the junction with the given id, nil when absent.
func (doc *Document) JunctionByID(id string) *Junction {
	for i := range doc.Junctions {
		if doc.Junctions[i].ID == id {
			return &doc.Junctions[i]
		}
	}
	return nil
}

// ControllerByID returns the signal controller with the given id, nil
// when absent.
func (doc *Document) ControllerByID(id string) *Controller {
	for i := range doc.Controllers {
		if doc.Controllers[i].ID == id {
			return &doc.Controllers[i]
		}
	}
	return nil
}

// JunctionRoads returns the roads declaring membership in the given
// junction.
func (doc *Document) JunctionRoads(junctionID string) []*Road {
	roads := []*Road{}
	for i := range doc.Roads {
		if doc.Roads[i].Junction == junctionID {
			roads = append(roads, &doc.Roads[i])
		}
	}
	return roads
}
