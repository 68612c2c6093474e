package opendrive

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// Writer serializes documents back to OpenDRIVE 1.7 XML. The output is
// canonical: fixed element and attribute order, exponent notation for
// every floating point value, defaulted attributes omitted. Reading the
// output back yields an equal Document.
type Writer struct {
	workarounds Workarounds
}

func NewWriter(options ...func(*Writer)) *Writer {
	writer := &Writer{}
	for _, option := range options {
		option(writer)
	}
	return writer
}

// WithWriterWorkarounds enables compatibility workarounds for the writing
// side.
func WithWriterWorkarounds(workarounds Workarounds) func(*Writer) {
	return func(writer *Writer) {
		writer.workarounds = workarounds
	}
}

// Bytes serializes the document, ending with a newline.
func (writer *Writer) Bytes(doc *Document) ([]byte, error) {
	tree, err := writer.document(doc)
	if err != nil {
		return nil, err
	}
	out, err := tree.WriteToBytes()
	if err != nil {
		return nil, &WriteError{Reason: "can't serialize element tree", Cause: err}
	}
	return append(out, '\n'), nil
}

// Write serializes the document into w.
func (writer *Writer) Write(doc *Document, w io.Writer) error {
	data, err := writer.Bytes(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &WriteError{Reason: "can't write document", Cause: err}
	}
	return nil
}

func (writer *Writer) document(doc *Document) (*etree.Document, error) {
	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0" standalone="yes"`)
	out := &docWriter{workarounds: writer.workarounds}
	out.writeDocument(tree.CreateElement("OpenDRIVE"), doc)
	if out.err != nil {
		return nil, out.err
	}
	return tree, nil
}

// docWriter holds the sticky first error of one serialization pass, so
// the per-element writers stay free of error plumbing.
type docWriter struct {
	workarounds Workarounds
	err         error
}

func (w *docWriter) fail(format string, args ...interface{}) {
	if w.err == nil {
		w.err = &WriteError{Reason: fmt.Sprintf(format, args...)}
	}
}

func (w *docWriter) setFloat(el *etree.Element, name string, v float64) {
	if !isFinite(v) {
		w.fail("attribute '%s' of element '%s' must be finite, got %v", name, el.Tag, v)
		return
	}
	el.CreateAttr(name, formatFloat(v))
}

func (w *docWriter) setOptFloat(el *etree.Element, name string, v *float64) {
	if v != nil {
		w.setFloat(el, name, *v)
	}
}

func (w *docWriter) setLength(el *etree.Element, name string, v Length) {
	w.setFloat(el, name, float64(v))
}

func (w *docWriter) setOptLength(el *etree.Element, name string, v *Length) {
	if v != nil {
		w.setFloat(el, name, float64(*v))
	}
}

func (w *docWriter) setAngle(el *etree.Element, name string, v Angle) {
	w.setFloat(el, name, float64(v))
}

func (w *docWriter) setOptAngle(el *etree.Element, name string, v *Angle) {
	if v != nil {
		w.setFloat(el, name, float64(*v))
	}
}

func setOptString(el *etree.Element, name string, v *string) {
	if v != nil {
		el.CreateAttr(name, *v)
	}
}

func setInt(el *etree.Element, name string, v int) {
	el.CreateAttr(name, strconv.Itoa(v))
}

func setBool(el *etree.Element, name string, v bool) {
	el.CreateAttr(name, strconv.FormatBool(v))
}

func setYesNo(el *etree.Element, name string, v bool) {
	if v {
		el.CreateAttr(name, "yes")
	} else {
		el.CreateAttr(name, "no")
	}
}

func (w *docWriter) writeDocument(el *etree.Element, doc *Document) {
	w.writeHeader(el.CreateElement("header"), &doc.Header)
	for i := range doc.Roads {
		w.writeRoad(el.CreateElement("road"), &doc.Roads[i])
	}
	for i := range doc.Controllers {
		w.writeController(el.CreateElement("controller"), &doc.Controllers[i])
	}
	for i := range doc.Junctions {
		w.writeJunction(el.CreateElement("junction"), &doc.Junctions[i])
	}
	for i := range doc.JunctionGroups {
		w.writeJunctionGroup(el.CreateElement("junctionGroup"), &doc.JunctionGroups[i])
	}
	for i := range doc.Stations {
		w.writeStation(el.CreateElement("station"), &doc.Stations[i])
	}
	w.writeAdditional(el, &doc.Additional)
}

func (w *docWriter) writeHeader(el *etree.Element, header *Header) {
	el.CreateAttr("revMajor", strconv.FormatUint(uint64(header.RevMajor), 10))
	el.CreateAttr("revMinor", strconv.FormatUint(uint64(header.RevMinor), 10))
	setOptString(el, "name", header.Name)
	setOptString(el, "version", header.Version)
	setOptString(el, "date", header.Date)
	w.setOptLength(el, "north", header.North)
	w.setOptLength(el, "south", header.South)
	w.setOptLength(el, "east", header.East)
	w.setOptLength(el, "west", header.West)
	setOptString(el, "vendor", header.Vendor)
	if geo := header.GeoReference; geo != nil {
		geoEl := el.CreateElement("geoReference")
		if geo.Text != "" {
			geoEl.SetText(geo.Text)
		}
		w.writeAdditional(geoEl, &geo.Additional)
	}
	if offset := header.Offset; offset != nil {
		offsetEl := el.CreateElement("offset")
		w.setLength(offsetEl, "x", offset.X)
		w.setLength(offsetEl, "y", offset.Y)
		w.setLength(offsetEl, "z", offset.Z)
		w.setAngle(offsetEl, "hdg", offset.Hdg)
		w.writeAdditional(offsetEl, &offset.Additional)
	}
	w.writeAdditional(el, &header.Additional)
}

func (w *docWriter) writeRoad(el *etree.Element, road *Road) {
	setOptString(el, "name", road.Name)
	w.setLength(el, "length", road.Length)
	el.CreateAttr("id", road.ID)
	el.CreateAttr("junction", road.Junction)
	if road.Rule != TRAFFIC_RULE_RHT {
		el.CreateAttr("rule", road.Rule.String())
	}
	if link := road.Link; link != nil {
		w.writeRoadLink(el.CreateElement("link"), link)
	}
	for i := range road.Type {
		w.writeRoadTypeRecord(el.CreateElement("type"), &road.Type[i])
	}
	planViewEl := el.CreateElement("planView")
	for i := range road.PlanView.Geometry {
		w.writeGeometry(planViewEl.CreateElement("geometry"), &road.PlanView.Geometry[i])
	}
	w.writeAdditional(planViewEl, &road.PlanView.Additional)
	if profile := road.ElevationProfile; profile != nil {
		w.writeElevationProfile(el.CreateElement("elevationProfile"), profile)
	}
	if profile := road.LateralProfile; profile != nil {
		w.writeLateralProfile(el.CreateElement("lateralProfile"), profile)
	}
	w.writeLanes(el.CreateElement("lanes"), &road.Lanes)
	if objects := road.Objects; objects != nil {
		w.writeObjects(el.CreateElement("objects"), objects)
	}
	if signals := road.Signals; signals != nil {
		w.writeSignals(el.CreateElement("signals"), signals)
	}
	w.writeAdditional(el, &road.Additional)
}

func (w *docWriter) writeRoadLink(el *etree.Element, link *RoadLink) {
	if target := link.Predecessor; target != nil {
		w.writeRoadLinkTarget(el.CreateElement("predecessor"), target)
	}
	if target := link.Successor; target != nil {
		w.writeRoadLinkTarget(el.CreateElement("successor"), target)
	}
	w.writeAdditional(el, &link.Additional)
}

func (w *docWriter) writeRoadLinkTarget(el *etree.Element, target *RoadLinkTarget) {
	if target.ElementType != nil {
		el.CreateAttr("elementType", target.ElementType.String())
	}
	el.CreateAttr("elementId", target.ElementID)
	if target.ContactPoint != nil {
		el.CreateAttr("contactPoint", target.ContactPoint.String())
	}
	w.setOptLength(el, "elementS", target.ElementS)
	if target.ElementDir != nil {
		el.CreateAttr("elementDir", target.ElementDir.String())
	}
}

func (w *docWriter) writeRoadTypeRecord(el *etree.Element, record *RoadTypeRecord) {
	w.setLength(el, "s", record.S)
	el.CreateAttr("type", record.Type.String())
	if record.Country != nil {
		el.CreateAttr("country", string(*record.Country))
	}
	if speed := record.Speed; speed != nil {
		speedEl := el.CreateElement("speed")
		if !speed.Max.NoLimit && !speed.Max.Undefined && !isFinite(speed.Max.Value) {
			w.fail("attribute 'max' of element 'speed' must be finite, got %v", speed.Max.Value)
		}
		speedEl.CreateAttr("max", speed.Max.String())
		if speed.Unit != SPEED_MS {
			speedEl.CreateAttr("unit", speed.Unit.String())
		}
	}
	w.writeAdditional(el, &record.Additional)
}

func (w *docWriter) writeGeometry(el *etree.Element, geometry *Geometry) {
	w.setLength(el, "s", geometry.S)
	w.setLength(el, "x", geometry.X)
	w.setLength(el, "y", geometry.Y)
	w.setAngle(el, "hdg", geometry.Hdg)
	w.setLength(el, "length", geometry.Length)
	shapes := 0
	if geometry.Line != nil {
		el.CreateElement("line")
		shapes++
	}
	if spiral := geometry.Spiral; spiral != nil {
		spiralEl := el.CreateElement("spiral")
		w.setFloat(spiralEl, "curvStart", float64(spiral.CurvStart))
		w.setFloat(spiralEl, "curvEnd", float64(spiral.CurvEnd))
		shapes++
	}
	if arc := geometry.Arc; arc != nil {
		arcEl := el.CreateElement("arc")
		w.setFloat(arcEl, "curvature", float64(arc.Curvature))
		shapes++
	}
	if poly := geometry.Poly3; poly != nil {
		polyEl := el.CreateElement("poly3")
		w.setPoly(polyEl, poly.A, poly.B, poly.C, poly.D)
		shapes++
	}
	if param := geometry.ParamPoly3; param != nil {
		paramEl := el.CreateElement("paramPoly3")
		w.setFloat(paramEl, "aU", param.AU)
		w.setFloat(paramEl, "bU", param.BU)
		w.setFloat(paramEl, "cU", param.CU)
		w.setFloat(paramEl, "dU", param.DU)
		w.setFloat(paramEl, "aV", param.AV)
		w.setFloat(paramEl, "bV", param.BV)
		w.setFloat(paramEl, "cV", param.CV)
		w.setFloat(paramEl, "dV", param.DV)
		paramEl.CreateAttr("pRange", param.PRange.String())
		shapes++
	}
	if shapes != 1 {
		w.fail("geometry segment must carry exactly one shape, got %d", shapes)
	}
	w.writeAdditional(el, &geometry.Additional)
}

func (w *docWriter) setPoly(el *etree.Element, a, b, c, d float64) {
	w.setFloat(el, "a", a)
	w.setFloat(el, "b", b)
	w.setFloat(el, "c", c)
	w.setFloat(el, "d", d)
}

func (w *docWriter) writeElevationProfile(el *etree.Element, profile *ElevationProfile) {
	for i := range profile.Elevation {
		record := &profile.Elevation[i]
		recordEl := el.CreateElement("elevation")
		w.setLength(recordEl, "s", record.S)
		w.setPoly(recordEl, record.A, record.B, record.C, record.D)
	}
	w.writeAdditional(el, &profile.Additional)
}

func (w *docWriter) writeLateralProfile(el *etree.Element, profile *LateralProfile) {
	for i := range profile.Superelevation {
		record := &profile.Superelevation[i]
		recordEl := el.CreateElement("superelevation")
		w.setLength(recordEl, "s", record.S)
		w.setPoly(recordEl, record.A, record.B, record.C, record.D)
	}
	for i := range profile.Shape {
		record := &profile.Shape[i]
		recordEl := el.CreateElement("shape")
		w.setLength(recordEl, "s", record.S)
		w.setLength(recordEl, "t", record.T)
		w.setPoly(recordEl, record.A, record.B, record.C, record.D)
	}
	w.writeAdditional(el, &profile.Additional)
}

func (w *docWriter) writeLanes(el *etree.Element, lanes *Lanes) {
	for i := range lanes.LaneOffset {
		offset := &lanes.LaneOffset[i]
		offsetEl := el.CreateElement("laneOffset")
		w.setLength(offsetEl, "s", offset.S)
		w.setPoly(offsetEl, offset.A, offset.B, offset.C, offset.D)
	}
	for i := range lanes.LaneSection {
		w.writeLaneSection(el.CreateElement("laneSection"), &lanes.LaneSection[i])
	}
	w.writeAdditional(el, &lanes.Additional)
}

func (w *docWriter) writeLaneSection(el *etree.Element, section *LaneSection) {
	w.setLength(el, "s", section.S)
	if section.SingleSide {
		setBool(el, "singleSide", section.SingleSide)
	}
	if side := section.Left; side != nil {
		w.writeLaneSide(el.CreateElement("left"), side)
	}
	w.writeLaneSide(el.CreateElement("center"), &section.Center)
	if side := section.Right; side != nil {
		w.writeLaneSide(el.CreateElement("right"), side)
	}
	w.writeAdditional(el, &section.Additional)
}

func (w *docWriter) writeLaneSide(el *etree.Element, side *LaneSide) {
	for i := range side.Lane {
		w.writeLane(el.CreateElement("lane"), &side.Lane[i])
	}
}

func (w *docWriter) writeLane(el *etree.Element, lane *Lane) {
	setInt(el, "id", lane.ID)
	el.CreateAttr("type", lane.Type.String())
	if lane.Level {
		setBool(el, "level", lane.Level)
	}
	if link := lane.Link; link != nil {
		linkEl := el.CreateElement("link")
		for _, target := range link.Predecessor {
			setInt(linkEl.CreateElement("predecessor"), "id", target.ID)
		}
		for _, target := range link.Successor {
			setInt(linkEl.CreateElement("successor"), "id", target.ID)
		}
	}
	for i := range lane.Width {
		width := &lane.Width[i]
		widthEl := el.CreateElement("width")
		w.setLength(widthEl, "sOffset", width.SOffset)
		w.setPoly(widthEl, width.A, width.B, width.C, width.D)
	}
	for i := range lane.Border {
		border := &lane.Border[i]
		borderEl := el.CreateElement("border")
		w.setLength(borderEl, "sOffset", border.SOffset)
		w.setPoly(borderEl, border.A, border.B, border.C, border.D)
	}
	for i := range lane.RoadMark {
		w.writeRoadMark(el.CreateElement("roadMark"), &lane.RoadMark[i])
	}
	for i := range lane.Material {
		material := &lane.Material[i]
		materialEl := el.CreateElement("material")
		w.setLength(materialEl, "sOffset", material.SOffset)
		setOptString(materialEl, "surface", material.Surface)
		w.setFloat(materialEl, "friction", material.Friction)
		w.setOptFloat(materialEl, "roughness", material.Roughness)
	}
	for i := range lane.Speed {
		speed := &lane.Speed[i]
		speedEl := el.CreateElement("speed")
		w.setLength(speedEl, "sOffset", speed.SOffset)
		w.setFloat(speedEl, "max", speed.Max)
		if speed.Unit != SPEED_MS {
			speedEl.CreateAttr("unit", speed.Unit.String())
		}
	}
	for i := range lane.Access {
		access := &lane.Access[i]
		accessEl := el.CreateElement("access")
		w.setLength(accessEl, "sOffset", access.SOffset)
		if access.Rule != nil {
			accessEl.CreateAttr("rule", access.Rule.String())
		}
		accessEl.CreateAttr("restriction", access.Restriction.String())
	}
	for i := range lane.Height {
		height := &lane.Height[i]
		heightEl := el.CreateElement("height")
		w.setLength(heightEl, "sOffset", height.SOffset)
		w.setLength(heightEl, "inner", height.Inner)
		w.setLength(heightEl, "outer", height.Outer)
	}
	for i := range lane.Rule {
		rule := &lane.Rule[i]
		ruleEl := el.CreateElement("rule")
		w.setLength(ruleEl, "sOffset", rule.SOffset)
		ruleEl.CreateAttr("value", rule.Value)
	}
	w.writeAdditional(el, &lane.Additional)
}

func (w *docWriter) writeRoadMark(el *etree.Element, mark *RoadMark) {
	w.setLength(el, "sOffset", mark.SOffset)
	el.CreateAttr("type", mark.Type.String())
	if mark.Weight != nil {
		el.CreateAttr("weight", mark.Weight.String())
	}
	if mark.Color != ROAD_MARK_COLOR_STANDARD || w.workarounds.SumoRoadMarkColor {
		el.CreateAttr("color", mark.Color.String())
	}
	setOptString(el, "material", mark.Material)
	w.setOptLength(el, "width", mark.Width)
	if mark.LaneChange != LANE_CHANGE_BOTH {
		el.CreateAttr("laneChange", mark.LaneChange.String())
	}
	w.setOptLength(el, "height", mark.Height)
	for i := range mark.Sway {
		sway := &mark.Sway[i]
		swayEl := el.CreateElement("sway")
		w.setLength(swayEl, "ds", sway.DS)
		w.setPoly(swayEl, sway.A, sway.B, sway.C, sway.D)
	}
	if detail := mark.TypeDetail; detail != nil {
		w.writeRoadMarkTypeDetail(el.CreateElement("type"), detail)
	}
	if explicit := mark.Explicit; explicit != nil {
		w.writeRoadMarkExplicit(el.CreateElement("explicit"), explicit)
	}
	w.writeAdditional(el, &mark.Additional)
}

func (w *docWriter) writeRoadMarkTypeDetail(el *etree.Element, detail *RoadMarkTypeDetail) {
	el.CreateAttr("name", detail.Name)
	w.setLength(el, "width", detail.Width)
	for i := range detail.Line {
		line := &detail.Line[i]
		lineEl := el.CreateElement("line")
		w.setLength(lineEl, "length", line.Length)
		w.setLength(lineEl, "space", line.Space)
		w.setLength(lineEl, "tOffset", line.TOffset)
		w.setLength(lineEl, "sOffset", line.SOffset)
		if line.Rule != nil {
			lineEl.CreateAttr("rule", line.Rule.String())
		}
		w.setOptLength(lineEl, "width", line.Width)
		if line.Color != nil {
			lineEl.CreateAttr("color", line.Color.String())
		}
	}
	w.writeAdditional(el, &detail.Additional)
}

func (w *docWriter) writeRoadMarkExplicit(el *etree.Element, explicit *RoadMarkExplicit) {
	for i := range explicit.Line {
		line := &explicit.Line[i]
		lineEl := el.CreateElement("line")
		w.setLength(lineEl, "length", line.Length)
		w.setLength(lineEl, "tOffset", line.TOffset)
		w.setLength(lineEl, "sOffset", line.SOffset)
		if line.Rule != nil {
			lineEl.CreateAttr("rule", line.Rule.String())
		}
		w.setOptLength(lineEl, "width", line.Width)
	}
	w.writeAdditional(el, &explicit.Additional)
}

func (w *docWriter) writeObjects(el *etree.Element, objects *Objects) {
	for i := range objects.Object {
		w.writeObject(el.CreateElement("object"), &objects.Object[i])
	}
	for i := range objects.ObjectReference {
		w.writeObjectReference(el.CreateElement("objectReference"), &objects.ObjectReference[i])
	}
	for i := range objects.Tunnel {
		w.writeTunnel(el.CreateElement("tunnel"), &objects.Tunnel[i])
	}
	for i := range objects.Bridge {
		w.writeBridge(el.CreateElement("bridge"), &objects.Bridge[i])
	}
	w.writeAdditional(el, &objects.Additional)
}

func (w *docWriter) writeObject(el *etree.Element, object *Object) {
	el.CreateAttr("id", object.ID)
	setOptString(el, "name", object.Name)
	w.setLength(el, "s", object.S)
	w.setLength(el, "t", object.T)
	w.setLength(el, "zOffset", object.ZOffset)
	if object.Type != nil {
		el.CreateAttr("type", object.Type.String())
	}
	setOptString(el, "subtype", object.Subtype)
	if object.Dynamic {
		setYesNo(el, "dynamic", object.Dynamic)
	}
	if object.Orientation != nil {
		el.CreateAttr("orientation", object.Orientation.String())
	}
	w.setOptAngle(el, "hdg", object.Hdg)
	w.setOptAngle(el, "pitch", object.Pitch)
	w.setOptAngle(el, "roll", object.Roll)
	w.setOptLength(el, "height", object.Height)
	w.setOptLength(el, "length", object.ObjLength)
	w.setOptLength(el, "width", object.Width)
	w.setOptLength(el, "radius", object.Radius)
	w.setOptLength(el, "validLength", object.ValidLength)
	if object.PerpToRoad {
		setBool(el, "perpToRoad", object.PerpToRoad)
	}
	for i := range object.Repeat {
		w.writeObjectRepeat(el.CreateElement("repeat"), &object.Repeat[i])
	}
	for i := range object.Material {
		material := &object.Material[i]
		materialEl := el.CreateElement("material")
		setOptString(materialEl, "surface", material.Surface)
		w.setOptFloat(materialEl, "friction", material.Friction)
		w.setOptFloat(materialEl, "roughness", material.Roughness)
	}
	w.writeValidity(el, object.Validity)
	if parking := object.ParkingSpace; parking != nil {
		parkingEl := el.CreateElement("parkingSpace")
		if parking.Access != PARKING_ALL {
			parkingEl.CreateAttr("access", parking.Access.String())
		}
		setOptString(parkingEl, "restrictions", parking.Restrictions)
	}
	w.writeAdditional(el, &object.Additional)
}

func (w *docWriter) writeObjectRepeat(el *etree.Element, repeat *ObjectRepeat) {
	w.setLength(el, "s", repeat.S)
	w.setLength(el, "length", repeat.Length)
	w.setLength(el, "distance", repeat.Distance)
	w.setLength(el, "tStart", repeat.TStart)
	w.setLength(el, "tEnd", repeat.TEnd)
	w.setLength(el, "heightStart", repeat.HeightStart)
	w.setLength(el, "heightEnd", repeat.HeightEnd)
	w.setLength(el, "zOffsetStart", repeat.ZOffsetStart)
	w.setLength(el, "zOffsetEnd", repeat.ZOffsetEnd)
	w.setOptLength(el, "widthStart", repeat.WidthStart)
	w.setOptLength(el, "widthEnd", repeat.WidthEnd)
	w.setOptLength(el, "lengthStart", repeat.LengthStart)
	w.setOptLength(el, "lengthEnd", repeat.LengthEnd)
	w.setOptLength(el, "radiusStart", repeat.RadiusStart)
	w.setOptLength(el, "radiusEnd", repeat.RadiusEnd)
}

func (w *docWriter) writeValidity(el *etree.Element, validity []LaneValidity) {
	for _, record := range validity {
		validityEl := el.CreateElement("validity")
		setInt(validityEl, "fromLane", record.FromLane)
		setInt(validityEl, "toLane", record.ToLane)
	}
}

func (w *docWriter) writeObjectReference(el *etree.Element, reference *ObjectReference) {
	w.setLength(el, "s", reference.S)
	w.setLength(el, "t", reference.T)
	el.CreateAttr("id", reference.ID)
	w.setOptLength(el, "zOffset", reference.ZOffset)
	w.setOptLength(el, "validLength", reference.ValidLength)
	el.CreateAttr("orientation", reference.Orientation.String())
	w.writeValidity(el, reference.Validity)
	w.writeAdditional(el, &reference.Additional)
}

func (w *docWriter) writeTunnel(el *etree.Element, tunnel *Tunnel) {
	w.setLength(el, "s", tunnel.S)
	w.setLength(el, "length", tunnel.Length)
	setOptString(el, "name", tunnel.Name)
	el.CreateAttr("id", tunnel.ID)
	el.CreateAttr("type", tunnel.Type.String())
	w.setOptFloat(el, "lighting", tunnel.Lighting)
	w.setOptFloat(el, "daylight", tunnel.Daylight)
	w.writeValidity(el, tunnel.Validity)
	w.writeAdditional(el, &tunnel.Additional)
}

func (w *docWriter) writeBridge(el *etree.Element, bridge *Bridge) {
	w.setLength(el, "s", bridge.S)
	w.setLength(el, "length", bridge.Length)
	setOptString(el, "name", bridge.Name)
	el.CreateAttr("id", bridge.ID)
	el.CreateAttr("type", bridge.Type.String())
	w.writeValidity(el, bridge.Validity)
	w.writeAdditional(el, &bridge.Additional)
}

func (w *docWriter) writeSignals(el *etree.Element, signals *Signals) {
	for i := range signals.Signal {
		w.writeSignal(el.CreateElement("signal"), &signals.Signal[i])
	}
	for i := range signals.SignalReference {
		w.writeSignalReference(el.CreateElement("signalReference"), &signals.SignalReference[i])
	}
	w.writeAdditional(el, &signals.Additional)
}

func (w *docWriter) writeSignal(el *etree.Element, signal *Signal) {
	w.setLength(el, "s", signal.S)
	w.setLength(el, "t", signal.T)
	el.CreateAttr("id", signal.ID)
	setOptString(el, "name", signal.Name)
	setYesNo(el, "dynamic", signal.Dynamic)
	el.CreateAttr("orientation", signal.Orientation.String())
	w.setLength(el, "zOffset", signal.ZOffset)
	if signal.Country != nil {
		el.CreateAttr("country", string(*signal.Country))
	}
	setOptString(el, "countryRevision", signal.CountryRevision)
	el.CreateAttr("type", signal.Type)
	el.CreateAttr("subtype", signal.Subtype)
	w.setOptFloat(el, "value", signal.Value)
	if signal.Unit != nil {
		el.CreateAttr("unit", signal.Unit.String())
	}
	w.setOptLength(el, "height", signal.Height)
	w.setOptLength(el, "width", signal.Width)
	setOptString(el, "text", signal.Text)
	w.setOptAngle(el, "hOffset", signal.HOffset)
	w.setOptAngle(el, "pitch", signal.Pitch)
	w.setOptAngle(el, "roll", signal.Roll)
	w.writeValidity(el, signal.Validity)
	for _, dependency := range signal.Dependency {
		dependencyEl := el.CreateElement("dependency")
		dependencyEl.CreateAttr("id", dependency.ID)
		setOptString(dependencyEl, "type", dependency.Type)
	}
	for _, reference := range signal.Reference {
		referenceEl := el.CreateElement("reference")
		referenceEl.CreateAttr("elementType", reference.ElementType.String())
		referenceEl.CreateAttr("elementId", reference.ElementID)
		setOptString(referenceEl, "type", reference.Type)
	}
	if signal.PositionRoad != nil && signal.PositionInertial != nil {
		w.fail("signal '%s' carries both positionRoad and positionInertial", signal.ID)
	}
	if position := signal.PositionRoad; position != nil {
		positionEl := el.CreateElement("positionRoad")
		positionEl.CreateAttr("roadId", position.RoadID)
		w.setLength(positionEl, "s", position.S)
		w.setLength(positionEl, "t", position.T)
		w.setLength(positionEl, "zOffset", position.ZOffset)
		w.setAngle(positionEl, "hOffset", position.HOffset)
		w.setOptAngle(positionEl, "pitch", position.Pitch)
		w.setOptAngle(positionEl, "roll", position.Roll)
	}
	if position := signal.PositionInertial; position != nil {
		positionEl := el.CreateElement("positionInertial")
		w.setLength(positionEl, "x", position.X)
		w.setLength(positionEl, "y", position.Y)
		w.setLength(positionEl, "z", position.Z)
		w.setAngle(positionEl, "hdg", position.Hdg)
		w.setOptAngle(positionEl, "pitch", position.Pitch)
		w.setOptAngle(positionEl, "roll", position.Roll)
	}
	w.writeAdditional(el, &signal.Additional)
}

func (w *docWriter) writeSignalReference(el *etree.Element, reference *SignalReference) {
	w.setLength(el, "s", reference.S)
	w.setLength(el, "t", reference.T)
	el.CreateAttr("id", reference.ID)
	el.CreateAttr("orientation", reference.Orientation.String())
	w.writeValidity(el, reference.Validity)
	w.writeAdditional(el, &reference.Additional)
}

func (w *docWriter) writeController(el *etree.Element, controller *Controller) {
	el.CreateAttr("id", controller.ID)
	setOptString(el, "name", controller.Name)
	if controller.Sequence != nil {
		el.CreateAttr("sequence", strconv.FormatUint(*controller.Sequence, 10))
	}
	for _, control := range controller.Control {
		controlEl := el.CreateElement("control")
		controlEl.CreateAttr("signalId", control.SignalID)
		setOptString(controlEl, "type", control.Type)
	}
	w.writeAdditional(el, &controller.Additional)
}

func (w *docWriter) writeJunction(el *etree.Element, junction *Junction) {
	setOptString(el, "name", junction.Name)
	el.CreateAttr("id", junction.ID)
	if junction.Type != JUNCTION_DEFAULT {
		el.CreateAttr("type", junction.Type.String())
	}
	setOptString(el, "mainRoad", junction.MainRoad)
	if junction.Orientation != nil {
		el.CreateAttr("orientation", junction.Orientation.String())
	}
	w.setOptLength(el, "sStart", junction.SStart)
	w.setOptLength(el, "sEnd", junction.SEnd)
	for i := range junction.Connection {
		w.writeConnection(el.CreateElement("connection"), &junction.Connection[i])
	}
	for _, priority := range junction.Priority {
		priorityEl := el.CreateElement("priority")
		setOptString(priorityEl, "high", priority.High)
		setOptString(priorityEl, "low", priority.Low)
	}
	for _, ref := range junction.Controller {
		refEl := el.CreateElement("controller")
		refEl.CreateAttr("id", ref.ID)
		setOptString(refEl, "type", ref.Type)
		if ref.Sequence != nil {
			refEl.CreateAttr("sequence", strconv.FormatUint(*ref.Sequence, 10))
		}
	}
	w.writeAdditional(el, &junction.Additional)
}

func (w *docWriter) writeConnection(el *etree.Element, connection *Connection) {
	el.CreateAttr("id", connection.ID)
	if connection.Type != CONNECTION_DEFAULT {
		el.CreateAttr("type", connection.Type.String())
	}
	setOptString(el, "incomingRoad", connection.IncomingRoad)
	setOptString(el, "connectingRoad", connection.ConnectingRoad)
	if connection.ContactPoint != nil {
		el.CreateAttr("contactPoint", connection.ContactPoint.String())
	}
	setOptString(el, "linkedRoad", connection.LinkedRoad)
	if link := connection.Predecessor; link != nil {
		w.writeConnectionLink(el.CreateElement("predecessor"), link)
	}
	if link := connection.Successor; link != nil {
		w.writeConnectionLink(el.CreateElement("successor"), link)
	}
	for _, laneLink := range connection.LaneLink {
		laneLinkEl := el.CreateElement("laneLink")
		setInt(laneLinkEl, "from", laneLink.From)
		setInt(laneLinkEl, "to", laneLink.To)
	}
	w.writeAdditional(el, &connection.Additional)
}

func (w *docWriter) writeConnectionLink(el *etree.Element, link *ConnectionLink) {
	el.CreateAttr("elementType", link.ElementType.String())
	el.CreateAttr("elementId", link.ElementID)
	w.setOptLength(el, "elementS", link.ElementS)
	if link.ElementDir != nil {
		el.CreateAttr("elementDir", link.ElementDir.String())
	}
}

func (w *docWriter) writeJunctionGroup(el *etree.Element, group *JunctionGroup) {
	setOptString(el, "name", group.Name)
	el.CreateAttr("id", group.ID)
	el.CreateAttr("type", group.Type.String())
	for _, reference := range group.JunctionReference {
		el.CreateElement("junctionReference").CreateAttr("junction", reference.Junction)
	}
	w.writeAdditional(el, &group.Additional)
}

func (w *docWriter) writeStation(el *etree.Element, station *Station) {
	el.CreateAttr("id", station.ID)
	el.CreateAttr("name", station.Name)
	if station.Type != nil {
		el.CreateAttr("type", station.Type.String())
	}
	for i := range station.Platform {
		w.writePlatform(el.CreateElement("platform"), &station.Platform[i])
	}
	w.writeAdditional(el, &station.Additional)
}

func (w *docWriter) writePlatform(el *etree.Element, platform *Platform) {
	el.CreateAttr("id", platform.ID)
	setOptString(el, "name", platform.Name)
	for _, segment := range platform.Segment {
		segmentEl := el.CreateElement("segment")
		segmentEl.CreateAttr("roadId", segment.RoadID)
		w.setLength(segmentEl, "sStart", segment.SStart)
		w.setLength(segmentEl, "sEnd", segment.SEnd)
		segmentEl.CreateAttr("side", segment.Side.String())
	}
	w.writeAdditional(el, &platform.Additional)
}

func (w *docWriter) writeAdditional(el *etree.Element, additional *AdditionalData) {
	for i := range additional.UserData {
		userData := &additional.UserData[i]
		userDataEl := el.CreateElement("userData")
		userDataEl.CreateAttr("code", userData.Code)
		setOptString(userDataEl, "value", userData.Value)
		for j := range userData.Content {
			writeRawElement(userDataEl, &userData.Content[j])
		}
	}
	for _, include := range additional.Include {
		el.CreateElement("include").CreateAttr("file", include.File)
	}
	if quality := additional.DataQuality; quality != nil {
		qualityEl := el.CreateElement("dataQuality")
		if qualityError := quality.Error; qualityError != nil {
			errorEl := qualityEl.CreateElement("error")
			w.setLength(errorEl, "xyAbsolute", qualityError.XYAbsolute)
			w.setLength(errorEl, "xyRelative", qualityError.XYRelative)
			w.setLength(errorEl, "zAbsolute", qualityError.ZAbsolute)
			w.setLength(errorEl, "zRelative", qualityError.ZRelative)
		}
		if rawData := quality.RawData; rawData != nil {
			rawDataEl := qualityEl.CreateElement("rawData")
			rawDataEl.CreateAttr("date", rawData.Date)
			rawDataEl.CreateAttr("source", rawData.Source.String())
			setOptString(rawDataEl, "sourceComment", rawData.SourceComment)
			rawDataEl.CreateAttr("postProcessing", rawData.PostProcessing.String())
			setOptString(rawDataEl, "postProcessingComment", rawData.PostProcessingComment)
		}
	}
}

func writeRawElement(parent *etree.Element, raw *RawElement) {
	el := parent.CreateElement(raw.Name)
	for _, attr := range raw.Attrs {
		el.CreateAttr(attr.Key, attr.Value)
	}
	if raw.Text != "" {
		el.SetText(raw.Text)
	}
	for i := range raw.Children {
		writeRawElement(el, &raw.Children[i])
	}
}
