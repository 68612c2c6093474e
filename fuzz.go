package opendrive

import (
	"math/rand"
	"strconv"
)

// RandomDocument builds a pseudo-random network driven entirely by rnd.
// It exists for round-trip and validation tests: generated documents pass
// Validate (plan view segments are chained through the evaluated end pose
// of their predecessor, lane sections stay ordered inside the road, lane
// ids are unique per side) and survive a write/read cycle unchanged under
// any workaround configuration.
func RandomDocument(rnd *rand.Rand) *Document {
	doc := &Document{Header: RandomHeader(rnd)}
	roads := 1 + rnd.Intn(3)
	for i := 0; i < roads; i++ {
		doc.Roads = append(doc.Roads, RandomRoad(rnd, strconv.Itoa(i+1)))
	}
	if rnd.Intn(2) == 0 {
		doc.Controllers = append(doc.Controllers, RandomController(rnd, "42"))
	}
	if rnd.Intn(2) == 0 {
		junction := RandomJunction(rnd, "100", roadIDs(doc.Roads))
		doc.Junctions = append(doc.Junctions, junction)
		if rnd.Intn(2) == 0 {
			doc.JunctionGroups = append(doc.JunctionGroups, RandomJunctionGroup(rnd, "200", junction.ID))
		}
	}
	if rnd.Intn(3) == 0 {
		doc.Stations = append(doc.Stations, RandomStation(rnd, "300", doc.Roads[0].ID))
	}
	return doc
}

func roadIDs(roads []Road) []string {
	ids := make([]string, 0, len(roads))
	for i := range roads {
		ids = append(ids, roads[i].ID)
	}
	return ids
}

// RandomHeader fills the mandatory revision 1.7 header and a random
// subset of the optional fields.
func RandomHeader(rnd *rand.Rand) Header {
	header := Header{RevMajor: 1, RevMinor: 7}
	if rnd.Intn(2) == 0 {
		header.Name = strPtr(pickString(rnd, "fuzzed", "network", "testbed"))
	}
	if rnd.Intn(2) == 0 {
		header.Version = strPtr("1.00")
	}
	if rnd.Intn(2) == 0 {
		header.Date = strPtr("2021-06-24T10:00:00")
	}
	if rnd.Intn(2) == 0 {
		north := Length(randomFloat(rnd, 1000))
		south := Length(randomFloat(rnd, 1000))
		east := Length(randomFloat(rnd, 1000))
		west := Length(randomFloat(rnd, 1000))
		header.North, header.South = &north, &south
		header.East, header.West = &east, &west
	}
	if rnd.Intn(3) == 0 {
		header.Vendor = strPtr("odrfuzz")
	}
	if rnd.Intn(2) == 0 {
		header.GeoReference = &GeoReference{Text: "+proj=utm +zone=32 +ellps=WGS84 +units=m +no_defs"}
	}
	if rnd.Intn(2) == 0 {
		header.Offset = &Offset{
			X:   Length(randomFloat(rnd, 500)),
			Y:   Length(randomFloat(rnd, 500)),
			Z:   Length(randomFloat(rnd, 10)),
			Hdg: Angle(randomFloat(rnd, 3)),
		}
	}
	if rnd.Intn(3) == 0 {
		header.Additional = randomAdditional(rnd)
	}
	return header
}

// RandomRoad builds a standalone road with a contiguous plan view, an
// ordered lane layout and a random subset of profiles, objects and
// signals.
func RandomRoad(rnd *rand.Rand, id string) Road {
	road := Road{ID: id, Junction: "-1", Rule: TRAFFIC_RULE_RHT}
	if rnd.Intn(4) == 0 {
		road.Rule = TRAFFIC_RULE_LHT
	}
	if rnd.Intn(2) == 0 {
		road.Name = strPtr("road " + id)
	}
	road.PlanView, road.Length = randomPlanView(rnd)
	if rnd.Intn(2) == 0 {
		road.Link = randomRoadLink(rnd)
	}
	if rnd.Intn(2) == 0 {
		road.Type = randomRoadTypes(rnd, road.Length)
	}
	if rnd.Intn(2) == 0 {
		road.ElevationProfile = randomElevationProfile(rnd, road.Length)
	}
	if rnd.Intn(3) == 0 {
		road.LateralProfile = randomLateralProfile(rnd, road.Length)
	}
	road.Lanes = randomLanes(rnd, road.Length)
	if rnd.Intn(2) == 0 {
		road.Objects = randomObjects(rnd, road.Length)
	}
	if rnd.Intn(2) == 0 {
		road.Signals = randomSignals(rnd, road.Length)
	}
	if rnd.Intn(4) == 0 {
		road.Additional = randomAdditional(rnd)
	}
	return road
}

// randomPlanView chains 1 to 4 random segments, deriving every start
// pose from the evaluated end of the previous segment so the continuity
// checks hold exactly.
func randomPlanView(rnd *rand.Rand) (PlanView, Length) {
	planView := PlanView{}
	s := Length(0)
	x := Length(randomFloat(rnd, 200))
	y := Length(randomFloat(rnd, 200))
	heading := Angle(randomFloat(rnd, 3))
	segments := 1 + rnd.Intn(4)
	for i := 0; i < segments; i++ {
		length := Length(5.0 + rnd.Float64()*45.0)
		segment := Geometry{S: s, X: x, Y: y, Hdg: heading, Length: length}
		switch rnd.Intn(5) {
		case 0:
			segment.Line = &Line{}
		case 1:
			segment.Arc = &Arc{Curvature: randomCurvature(rnd)}
		case 2:
			segment.Spiral = &Spiral{CurvStart: randomCurvature(rnd), CurvEnd: randomCurvature(rnd)}
		case 3:
			segment.Poly3 = &Poly3{C: randomFloat(rnd, 0.005), D: randomFloat(rnd, 0.0005)}
		case 4:
			segment.ParamPoly3 = randomParamPoly3(rnd, length)
		}
		end, endHeading, _ := segment.EndPosition()
		planView.Geometry = append(planView.Geometry, segment)
		s += length
		x, y = Length(end[0]), Length(end[1])
		heading = endHeading
	}
	return planView, s
}

func randomCurvature(rnd *rand.Rand) Curvature {
	curvature := 0.002 + rnd.Float64()*0.03
	if rnd.Intn(2) == 0 {
		curvature = -curvature
	}
	return Curvature(curvature)
}

func randomParamPoly3(rnd *rand.Rand, length Length) *ParamPoly3 {
	if rnd.Intn(2) == 0 {
		return &ParamPoly3{
			BU:     1,
			CU:     randomFloat(rnd, 0.001),
			BV:     randomFloat(rnd, 0.01),
			CV:     randomFloat(rnd, 0.001),
			DV:     randomFloat(rnd, 0.0001),
			PRange: P_RANGE_ARC_LENGTH,
		}
	}
	meters := length.Meters()
	return &ParamPoly3{
		BU:     meters,
		CU:     randomFloat(rnd, 0.001) * meters,
		BV:     randomFloat(rnd, 0.01) * meters,
		CV:     randomFloat(rnd, 0.001) * meters,
		PRange: P_RANGE_NORMALIZED,
	}
}

func randomRoadLink(rnd *rand.Rand) *RoadLink {
	link := &RoadLink{}
	if rnd.Intn(2) == 0 {
		link.Predecessor = randomRoadLinkTarget(rnd)
	}
	if link.Predecessor == nil || rnd.Intn(2) == 0 {
		link.Successor = randomRoadLinkTarget(rnd)
	}
	return link
}

func randomRoadLinkTarget(rnd *rand.Rand) *RoadLinkTarget {
	target := &RoadLinkTarget{ElementID: strconv.Itoa(1 + rnd.Intn(20))}
	if rnd.Intn(2) == 0 {
		elementType := ELEMENT_ROAD
		contactPoint := CONTACT_POINT_START
		if rnd.Intn(2) == 0 {
			contactPoint = CONTACT_POINT_END
		}
		target.ElementType = &elementType
		target.ContactPoint = &contactPoint
		return target
	}
	elementType := ELEMENT_JUNCTION
	target.ElementType = &elementType
	if rnd.Intn(3) == 0 {
		elementS := Length(rnd.Float64() * 10)
		elementDir := ELEMENT_DIR_PLUS
		target.ElementS = &elementS
		target.ElementDir = &elementDir
	}
	return target
}

func randomRoadTypes(rnd *rand.Rand, roadLength Length) []RoadTypeRecord {
	record := RoadTypeRecord{Type: pickRoadType(rnd)}
	if rnd.Intn(2) == 0 {
		country := CountryCode(pickString(rnd, "DE", "US", "FR"))
		record.Country = &country
	}
	if rnd.Intn(2) == 0 {
		record.Speed = randomRoadSpeed(rnd)
	}
	records := []RoadTypeRecord{record}
	if rnd.Intn(3) == 0 {
		second := RoadTypeRecord{S: roadLength / 2, Type: pickRoadType(rnd)}
		records = append(records, second)
	}
	return records
}

func pickRoadType(rnd *rand.Rand) RoadTypeKind {
	kinds := []RoadTypeKind{ROAD_TYPE_TOWN, ROAD_TYPE_MOTORWAY, ROAD_TYPE_RURAL, ROAD_TYPE_LOW_SPEED}
	return kinds[rnd.Intn(len(kinds))]
}

func randomRoadSpeed(rnd *rand.Rand) *RoadSpeed {
	speed := &RoadSpeed{Unit: SPEED_MS}
	switch rnd.Intn(4) {
	case 0:
		speed.Max = MaxSpeed{NoLimit: true}
	case 1:
		speed.Max = MaxSpeed{Undefined: true}
	default:
		speed.Max = MaxSpeed{Value: 10 + rnd.Float64()*30}
		if rnd.Intn(2) == 0 {
			speed.Unit = SPEED_KMH
		}
	}
	return speed
}

func randomElevationProfile(rnd *rand.Rand, roadLength Length) *ElevationProfile {
	profile := &ElevationProfile{}
	profile.Elevation = append(profile.Elevation, Elevation{
		A: randomFloat(rnd, 20),
		B: randomFloat(rnd, 0.05),
		C: randomFloat(rnd, 0.001),
	})
	if rnd.Intn(2) == 0 {
		profile.Elevation = append(profile.Elevation, Elevation{
			S: roadLength / 2,
			A: randomFloat(rnd, 20),
			B: randomFloat(rnd, 0.05),
		})
	}
	return profile
}

func randomLateralProfile(rnd *rand.Rand, roadLength Length) *LateralProfile {
	profile := &LateralProfile{}
	profile.Superelevation = append(profile.Superelevation, Superelevation{
		A: randomFloat(rnd, 0.05),
		B: randomFloat(rnd, 0.001),
	})
	if rnd.Intn(3) == 0 {
		profile.Shape = append(profile.Shape, Shape{
			S: roadLength / 4,
			T: Length(randomFloat(rnd, 5)),
			A: randomFloat(rnd, 0.1),
		})
	}
	return profile
}

// randomLanes builds 1 or 2 ordered lane sections. Lane ids grow outward
// from the center, listed outermost first on the left side and innermost
// first on the right, the way surveyed files order them.
func randomLanes(rnd *rand.Rand, roadLength Length) Lanes {
	lanes := Lanes{}
	if rnd.Intn(3) == 0 {
		lanes.LaneOffset = append(lanes.LaneOffset, LaneOffset{
			A: randomFloat(rnd, 2),
			B: randomFloat(rnd, 0.01),
		})
	}
	sections := 1 + rnd.Intn(2)
	for i := 0; i < sections; i++ {
		s := Length(0)
		if i > 0 {
			s = Length(roadLength.Meters() * (0.3 + 0.4*rnd.Float64()))
		}
		lanes.LaneSection = append(lanes.LaneSection, randomLaneSection(rnd, s))
	}
	return lanes
}

func randomLaneSection(rnd *rand.Rand, s Length) LaneSection {
	section := LaneSection{S: s}
	if rnd.Intn(8) == 0 {
		section.SingleSide = true
	}
	center := Lane{ID: 0, Type: LANE_NONE}
	if rnd.Intn(2) == 0 {
		center.RoadMark = []RoadMark{randomRoadMark(rnd)}
	}
	section.Center.Lane = []Lane{center}
	if rnd.Intn(4) != 0 {
		side := &LaneSide{}
		count := 1 + rnd.Intn(3)
		for id := count; id >= 1; id-- {
			side.Lane = append(side.Lane, randomLane(rnd, id))
		}
		section.Left = side
	}
	if section.Left == nil || rnd.Intn(4) != 0 {
		side := &LaneSide{}
		count := 1 + rnd.Intn(3)
		for id := 1; id <= count; id++ {
			side.Lane = append(side.Lane, randomLane(rnd, -id))
		}
		section.Right = side
	}
	return section
}

func randomLane(rnd *rand.Rand, id int) Lane {
	lane := Lane{ID: id, Type: pickLaneType(rnd)}
	if rnd.Intn(8) == 0 {
		lane.Level = true
	}
	if rnd.Intn(3) == 0 {
		lane.Link = &LaneLink{}
		if rnd.Intn(2) == 0 {
			lane.Link.Predecessor = []LaneLinkTarget{{ID: id}}
		}
		if lane.Link.Predecessor == nil || rnd.Intn(2) == 0 {
			lane.Link.Successor = []LaneLinkTarget{{ID: id}}
		}
	}
	lane.Width = append(lane.Width, LaneWidth{
		A: 2.5 + rnd.Float64()*1.5,
		B: randomFloat(rnd, 0.01),
	})
	if rnd.Intn(3) == 0 {
		lane.Width = append(lane.Width, LaneWidth{
			SOffset: Length(5 + rnd.Float64()*5),
			A:       2.5 + rnd.Float64()*1.5,
		})
	}
	if rnd.Intn(2) == 0 {
		lane.RoadMark = []RoadMark{randomRoadMark(rnd)}
	}
	if rnd.Intn(4) == 0 {
		surface := "asphalt"
		lane.Material = []LaneMaterial{{Surface: &surface, Friction: 0.8 + rnd.Float64()*0.2}}
	}
	if rnd.Intn(4) == 0 {
		lane.Speed = []LaneSpeed{{Max: 10 + rnd.Float64()*20, Unit: SPEED_MS}}
	}
	if rnd.Intn(5) == 0 {
		rule := ACCESS_DENY
		lane.Access = []LaneAccess{{Rule: &rule, Restriction: RESTRICTION_TRUCK}}
	}
	if rnd.Intn(6) == 0 {
		lane.Height = []LaneHeight{{Inner: Length(0.1), Outer: Length(0.15)}}
	}
	if rnd.Intn(8) == 0 {
		lane.Rule = []LaneRule{{Value: "no stopping at any time"}}
	}
	return lane
}

func pickLaneType(rnd *rand.Rand) LaneType {
	types := []LaneType{LANE_DRIVING, LANE_DRIVING, LANE_SHOULDER, LANE_SIDEWALK, LANE_BORDER, LANE_PARKING, LANE_BIKING}
	return types[rnd.Intn(len(types))]
}

func randomRoadMark(rnd *rand.Rand) RoadMark {
	mark := RoadMark{
		Type:       pickRoadMarkType(rnd),
		Color:      ROAD_MARK_COLOR_STANDARD,
		LaneChange: LANE_CHANGE_BOTH,
	}
	if rnd.Intn(3) == 0 {
		mark.Color = ROAD_MARK_COLOR_WHITE
		if rnd.Intn(2) == 0 {
			mark.Color = ROAD_MARK_COLOR_YELLOW
		}
	}
	if rnd.Intn(3) == 0 {
		weight := ROAD_MARK_WEIGHT_STANDARD
		if rnd.Intn(3) == 0 {
			weight = ROAD_MARK_WEIGHT_BOLD
		}
		mark.Weight = &weight
	}
	if rnd.Intn(3) == 0 {
		width := Length(0.12 + rnd.Float64()*0.2)
		mark.Width = &width
	}
	if rnd.Intn(4) == 0 {
		mark.LaneChange = LANE_CHANGE_NONE
	}
	if rnd.Intn(4) == 0 {
		material := "standard"
		mark.Material = &material
	}
	if rnd.Intn(6) == 0 {
		mark.Sway = []Sway{{DS: 0, A: randomFloat(rnd, 0.05)}}
	}
	if rnd.Intn(4) == 0 {
		detail := &RoadMarkTypeDetail{Name: mark.Type.String(), Width: Length(0.12)}
		line := RoadMarkLine{Length: Length(3), Space: Length(6), SOffset: 0}
		if rnd.Intn(2) == 0 {
			rule := ROAD_MARK_RULE_NO_PASSING
			line.Rule = &rule
		}
		if rnd.Intn(2) == 0 {
			color := ROAD_MARK_COLOR_WHITE
			line.Color = &color
		}
		detail.Line = append(detail.Line, line)
		mark.TypeDetail = detail
	}
	return mark
}

func pickRoadMarkType(rnd *rand.Rand) RoadMarkType {
	types := []RoadMarkType{ROAD_MARK_SOLID, ROAD_MARK_BROKEN, ROAD_MARK_NONE, ROAD_MARK_SOLID_SOLID}
	return types[rnd.Intn(len(types))]
}

func randomObjects(rnd *rand.Rand, roadLength Length) *Objects {
	objects := &Objects{}
	count := 1 + rnd.Intn(2)
	for i := 0; i < count; i++ {
		objects.Object = append(objects.Object, randomObject(rnd, strconv.Itoa(500+i), roadLength))
	}
	if rnd.Intn(3) == 0 {
		objects.ObjectReference = append(objects.ObjectReference, ObjectReference{
			S:           roadLength / 3,
			T:           Length(randomFloat(rnd, 5)),
			ID:          "500",
			Orientation: ORIENTATION_NONE,
		})
	}
	if rnd.Intn(4) == 0 {
		objects.Tunnel = append(objects.Tunnel, randomTunnel(rnd, roadLength))
	}
	if rnd.Intn(4) == 0 {
		bridge := Bridge{S: 0, Length: roadLength / 4, ID: "700", Type: BRIDGE_CONCRETE}
		objects.Bridge = append(objects.Bridge, bridge)
	}
	return objects
}

func randomObject(rnd *rand.Rand, id string, roadLength Length) Object {
	object := Object{
		ID:      id,
		S:       Length(rnd.Float64() * roadLength.Meters()),
		T:       Length(randomFloat(rnd, 8)),
		ZOffset: Length(randomFloat(rnd, 1)),
	}
	if rnd.Intn(2) == 0 {
		object.Name = strPtr(pickString(rnd, "pole", "bench", "guardRail"))
	}
	if rnd.Intn(2) == 0 {
		objectType := OBJECT_POLE
		if rnd.Intn(3) == 0 {
			objectType = OBJECT_BARRIER
		}
		object.Type = &objectType
	}
	if rnd.Intn(4) == 0 {
		object.Dynamic = true
	}
	if rnd.Intn(2) == 0 {
		orientation := ORIENTATION_PLUS
		object.Orientation = &orientation
	}
	if rnd.Intn(3) == 0 {
		hdg := Angle(randomFloat(rnd, 3))
		object.Hdg = &hdg
	}
	if rnd.Intn(3) == 0 {
		height := Length(0.5 + rnd.Float64()*3)
		width := Length(0.2 + rnd.Float64()*2)
		objLength := Length(0.2 + rnd.Float64()*5)
		object.Height, object.Width, object.ObjLength = &height, &width, &objLength
	}
	if rnd.Intn(5) == 0 {
		radius := Length(0.3 + rnd.Float64())
		object.Radius = &radius
	}
	if rnd.Intn(4) == 0 {
		object.Repeat = append(object.Repeat, ObjectRepeat{
			S:        0,
			Length:   roadLength / 2,
			Distance: Length(10 + rnd.Float64()*10),
			TStart:   object.T,
			TEnd:     object.T,
		})
	}
	if rnd.Intn(4) == 0 {
		friction := 0.9
		object.Material = append(object.Material, ObjectMaterial{Friction: &friction})
	}
	if rnd.Intn(4) == 0 {
		object.Validity = append(object.Validity, LaneValidity{FromLane: -1, ToLane: 1})
	}
	if rnd.Intn(6) == 0 {
		objectType := OBJECT_PARKING_SPACE
		object.Type = &objectType
		object.ParkingSpace = &ParkingSpace{Access: PARKING_ALL}
		if rnd.Intn(2) == 0 {
			object.ParkingSpace.Access = PARKING_RESIDENTS
		}
	}
	return object
}

func randomTunnel(rnd *rand.Rand, roadLength Length) Tunnel {
	tunnel := Tunnel{
		S:      0,
		Length: roadLength / 3,
		ID:     "600",
		Type:   TUNNEL_STANDARD,
	}
	if rnd.Intn(2) == 0 {
		lighting := 0.5
		daylight := 0.3
		tunnel.Lighting = &lighting
		tunnel.Daylight = &daylight
	}
	return tunnel
}

func randomSignals(rnd *rand.Rand, roadLength Length) *Signals {
	signals := &Signals{}
	count := 1 + rnd.Intn(2)
	for i := 0; i < count; i++ {
		signals.Signal = append(signals.Signal, randomSignal(rnd, strconv.Itoa(800+i), roadLength))
	}
	if rnd.Intn(3) == 0 {
		signals.SignalReference = append(signals.SignalReference, SignalReference{
			S:           roadLength / 2,
			T:           Length(-4),
			ID:          "800",
			Orientation: ORIENTATION_MINUS,
		})
	}
	return signals
}

func randomSignal(rnd *rand.Rand, id string, roadLength Length) Signal {
	signal := Signal{
		S:           Length(rnd.Float64() * roadLength.Meters()),
		T:           Length(randomFloat(rnd, 6)),
		ID:          id,
		Orientation: ORIENTATION_PLUS,
		ZOffset:     Length(2 + rnd.Float64()*3),
		Type:        pickString(rnd, "1000001", "206", "274"),
		Subtype:     "-1",
	}
	if rnd.Intn(3) == 0 {
		signal.Dynamic = true
	}
	if rnd.Intn(2) == 0 {
		signal.Name = strPtr("signal " + id)
	}
	if rnd.Intn(2) == 0 {
		country := CountryCode("DE")
		signal.Country = &country
		signal.CountryRevision = strPtr("2017")
	}
	if rnd.Intn(2) == 0 {
		value := 10 + rnd.Float64()*20
		unit := UNIT_METERS_PER_SECOND
		signal.Value = &value
		signal.Unit = &unit
	}
	if rnd.Intn(3) == 0 {
		height := Length(0.6 + rnd.Float64())
		width := Length(0.6)
		signal.Height = &height
		signal.Width = &width
	}
	if rnd.Intn(4) == 0 {
		hOffset := Angle(randomFloat(rnd, 0.5))
		signal.HOffset = &hOffset
	}
	if rnd.Intn(3) == 0 {
		signal.Validity = append(signal.Validity, LaneValidity{FromLane: -2, ToLane: -1})
	}
	if rnd.Intn(5) == 0 {
		signal.Dependency = append(signal.Dependency, SignalDependency{ID: "801", Type: strPtr("limitLine")})
	}
	if rnd.Intn(5) == 0 {
		signal.Reference = append(signal.Reference, SignalReferenceLink{
			ElementType: SIGNAL_LINK_SIGNAL,
			ElementID:   "800",
		})
	}
	switch rnd.Intn(4) {
	case 0:
		signal.PositionRoad = &SignalPositionRoad{
			RoadID:  "1",
			S:       signal.S,
			T:       signal.T,
			ZOffset: signal.ZOffset,
		}
	case 1:
		signal.PositionInertial = &SignalPositionInertial{
			X:   Length(randomFloat(rnd, 200)),
			Y:   Length(randomFloat(rnd, 200)),
			Z:   Length(randomFloat(rnd, 5)),
			Hdg: Angle(randomFloat(rnd, 3)),
		}
	}
	return signal
}

// RandomController references signal ids without resolving them, id
// shapes are all the validator checks.
func RandomController(rnd *rand.Rand, id string) Controller {
	controller := Controller{ID: id}
	if rnd.Intn(2) == 0 {
		controller.Name = strPtr("ctrl-" + id)
	}
	if rnd.Intn(2) == 0 {
		sequence := uint64(rnd.Intn(10))
		controller.Sequence = &sequence
	}
	count := 1 + rnd.Intn(2)
	for i := 0; i < count; i++ {
		control := Control{SignalID: strconv.Itoa(800 + i)}
		if rnd.Intn(2) == 0 {
			control.Type = strPtr("default")
		}
		controller.Control = append(controller.Control, control)
	}
	return controller
}

// RandomJunction wires 1 or 2 connections between the given roads.
func RandomJunction(rnd *rand.Rand, id string, roads []string) Junction {
	junction := Junction{ID: id, Type: JUNCTION_DEFAULT}
	if rnd.Intn(2) == 0 {
		junction.Name = strPtr("junction " + id)
	}
	count := 1 + rnd.Intn(2)
	for i := 0; i < count; i++ {
		incoming := roads[rnd.Intn(len(roads))]
		connecting := roads[rnd.Intn(len(roads))]
		connection := Connection{
			ID:             strconv.Itoa(i),
			Type:           CONNECTION_DEFAULT,
			IncomingRoad:   &incoming,
			ConnectingRoad: &connecting,
		}
		if rnd.Intn(2) == 0 {
			contactPoint := CONTACT_POINT_START
			connection.ContactPoint = &contactPoint
		}
		links := 1 + rnd.Intn(2)
		for lane := 1; lane <= links; lane++ {
			connection.LaneLink = append(connection.LaneLink, JunctionLaneLink{From: -lane, To: -lane})
		}
		junction.Connection = append(junction.Connection, connection)
	}
	if rnd.Intn(3) == 0 {
		high := roads[0]
		junction.Priority = append(junction.Priority, JunctionPriority{High: &high})
	}
	if rnd.Intn(3) == 0 {
		junction.Controller = append(junction.Controller, JunctionControllerRef{ID: "42", Type: strPtr("default")})
	}
	return junction
}

func RandomJunctionGroup(rnd *rand.Rand, id string, junctionID string) JunctionGroup {
	group := JunctionGroup{ID: id, Type: JUNCTION_GROUP_ROUNDABOUT}
	if rnd.Intn(2) == 0 {
		group.Name = strPtr("roundabout " + id)
	}
	group.JunctionReference = append(group.JunctionReference, JunctionReference{Junction: junctionID})
	return group
}

func RandomStation(rnd *rand.Rand, id string, roadID string) Station {
	station := Station{ID: id, Name: "station " + id}
	if rnd.Intn(2) == 0 {
		stationType := STATION_SMALL
		station.Type = &stationType
	}
	platform := Platform{ID: id + "-1"}
	if rnd.Intn(2) == 0 {
		platform.Name = strPtr("platform")
	}
	side := SEGMENT_SIDE_RIGHT
	if rnd.Intn(2) == 0 {
		side = SEGMENT_SIDE_LEFT
	}
	platform.Segment = append(platform.Segment, PlatformSegment{
		RoadID: roadID,
		SStart: 0,
		SEnd:   Length(5 + rnd.Float64()*10),
		Side:   side,
	})
	station.Platform = append(station.Platform, platform)
	return station
}

func randomAdditional(rnd *rand.Rand) AdditionalData {
	additional := AdditionalData{}
	userData := UserData{Code: "origin"}
	if rnd.Intn(2) == 0 {
		userData.Value = strPtr("fuzz")
	}
	if rnd.Intn(3) == 0 {
		userData.Content = []RawElement{{
			Name:  "vectorScene",
			Attrs: []RawAttr{{Key: "program", Value: "RoadRunner"}},
		}}
	}
	additional.UserData = append(additional.UserData, userData)
	if rnd.Intn(4) == 0 {
		additional.Include = append(additional.Include, Include{File: "extra.xodr"})
	}
	return additional
}

// randomFloat draws from [-scale, scale).
func randomFloat(rnd *rand.Rand, scale float64) float64 {
	return (rnd.Float64()*2 - 1) * scale
}

func pickString(rnd *rand.Rand, pool ...string) string {
	return pool[rnd.Intn(len(pool))]
}

func strPtr(value string) *string {
	return &value
}
