package opendrive

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Parser reads OpenDRIVE 1.7 documents into the typed model. A Parser is
// built per call site with its own workaround configuration; it keeps no
// state besides the diagnostics of the last Parse call.
type Parser struct {
	workarounds Workarounds
	diagnostics []Diagnostic
}

func NewParser(options ...func(*Parser)) *Parser {
	parser := &Parser{}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithWorkarounds enables compatibility workarounds for the reading side.
func WithWorkarounds(workarounds Workarounds) func(*Parser) {
	return func(parser *Parser) {
		parser.workarounds = workarounds
	}
}

// Diagnostics returns the non-fatal findings of the last Parse call:
// unknown elements and attributes that were skipped.
func (parser *Parser) Diagnostics() []Diagnostic {
	return parser.diagnostics
}

// Parse consumes a whole document from the reader and returns the typed
// model. Any defect of the document aborts the read with one of the
// structured errors of this package.
func (parser *Parser) Parse(r io.Reader) (*Document, error) {
	parser.diagnostics = nil
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, &MalformedXMLError{Reason: "can't build element tree", Cause: err}
	}
	root := tree.Root()
	if root == nil {
		return nil, &MalformedXMLError{Reason: "document has no root element"}
	}
	if root.Tag != "OpenDRIVE" {
		return nil, &MalformedXMLError{Reason: fmt.Sprintf("root element is '%s', expected 'OpenDRIVE'", root.Tag)}
	}
	return parser.readDocument(newElem(parser, root, "OpenDRIVE"))
}

// ParseBytes is Parse over an in-memory document. Surrounding whitespace
// is tolerated.
func (parser *Parser) ParseBytes(data []byte) (*Document, error) {
	return parser.Parse(bytes.NewReader(bytes.TrimSpace(data)))
}

// elem is a cursor over one source element. It tracks which attributes
// and child tags the readers consumed, so everything left over can be
// reported as unknown content.
type elem struct {
	parser *Parser
	el     *etree.Element
	path   string
	attrs  map[string]struct{}
	tags   map[string]struct{}
}

func newElem(parser *Parser, el *etree.Element, path string) *elem {
	return &elem{
		parser: parser,
		el:     el,
		path:   path,
		attrs:  map[string]struct{}{},
		tags:   map[string]struct{}{},
	}
}

func (e *elem) child(tag string) *elem {
	e.tags[tag] = struct{}{}
	el := e.el.SelectElement(tag)
	if el == nil {
		return nil
	}
	return newElem(e.parser, el, e.path+"/"+tag)
}

func (e *elem) children(tag string) []*elem {
	e.tags[tag] = struct{}{}
	els := e.el.SelectElements(tag)
	out := make([]*elem, 0, len(els))
	for i, el := range els {
		out = append(out, newElem(e.parser, el, fmt.Sprintf("%s/%s[%d]", e.path, tag, i)))
	}
	return out
}

func (e *elem) flagUnknown() {
	for _, attr := range e.el.Attr {
		if _, ok := e.attrs[attr.Key]; !ok {
			e.parser.note(e.path, fullAttrKey(attr), "unknown attribute skipped")
		}
	}
	for _, child := range e.el.ChildElements() {
		if _, ok := e.tags[child.Tag]; !ok {
			e.parser.note(e.path, fullTag(child), "unknown element skipped")
		}
	}
}

func fullTag(el *etree.Element) string {
	if el.Space == "" {
		return el.Tag
	}
	return el.Space + ":" + el.Tag
}

func fullAttrKey(attr etree.Attr) string {
	if attr.Space == "" {
		return attr.Key
	}
	return attr.Space + ":" + attr.Key
}

func (parser *Parser) note(path, name, message string) {
	parser.diagnostics = append(parser.diagnostics, Diagnostic{Path: path, Name: name, Message: message})
}

func (e *elem) attrRaw(name string) (string, bool) {
	e.attrs[name] = struct{}{}
	attr := e.el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

func (e *elem) missing(field string) error {
	return &MissingFieldError{Path: e.path, Element: e.el.Tag, Field: field}
}

func (e *elem) enumError(field, raw string) error {
	return &EnumError{Path: e.path, Element: e.el.Tag, Field: field, Value: raw}
}

func (e *elem) structure(reason string) error {
	return &StructureError{Path: e.path, Element: e.el.Tag, Reason: reason}
}

func (e *elem) reqString(name string) (string, error) {
	raw, ok := e.attrRaw(name)
	if !ok {
		return "", e.missing(name)
	}
	return raw, nil
}

func (e *elem) optString(name string) *string {
	raw, ok := e.attrRaw(name)
	if !ok {
		return nil
	}
	value := raw
	return &value
}

// reqRef reads a required id reference; an empty id can never resolve.
func (e *elem) reqRef(name string) (string, error) {
	raw, err := e.reqString(name)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", &ReferenceError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw}
	}
	return raw, nil
}

func (e *elem) parseFloat(name, raw string) (float64, error) {
	if strings.ContainsAny(raw, "xX_") {
		return 0, &NumberError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &NumberError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw, Cause: err}
	}
	if !isFinite(v) {
		return 0, &DomainError{Path: e.path, Element: e.el.Tag, Field: name, Value: v, Reason: "must be finite"}
	}
	return v, nil
}

func (e *elem) nonNegative(name string, v float64) error {
	if v < 0 {
		return &DomainError{Path: e.path, Element: e.el.Tag, Field: name, Value: v, Reason: "must not be negative"}
	}
	return nil
}

func (e *elem) reqFloat(name string) (float64, error) {
	raw, err := e.reqString(name)
	if err != nil {
		return 0, err
	}
	return e.parseFloat(name, raw)
}

func (e *elem) optFloat(name string) (*float64, error) {
	raw, ok := e.attrRaw(name)
	if !ok {
		return nil, nil
	}
	v, err := e.parseFloat(name, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (e *elem) reqLength(name string) (Length, error) {
	v, err := e.reqFloat(name)
	return Length(v), err
}

// reqPosLength reads a required length that must not be negative.
func (e *elem) reqPosLength(name string) (Length, error) {
	v, err := e.reqFloat(name)
	if err != nil {
		return 0, err
	}
	if err := e.nonNegative(name, v); err != nil {
		return 0, err
	}
	return Length(v), nil
}

func (e *elem) optLength(name string) (*Length, error) {
	v, err := e.optFloat(name)
	if v == nil || err != nil {
		return nil, err
	}
	length := Length(*v)
	return &length, nil
}

func (e *elem) reqAngle(name string) (Angle, error) {
	v, err := e.reqFloat(name)
	return Angle(v), err
}

func (e *elem) optAngle(name string) (*Angle, error) {
	v, err := e.optFloat(name)
	if v == nil || err != nil {
		return nil, err
	}
	angle := Angle(*v)
	return &angle, nil
}

func (e *elem) reqCurvature(name string) (Curvature, error) {
	v, err := e.reqFloat(name)
	return Curvature(v), err
}

func (e *elem) reqInt(name string) (int, error) {
	raw, err := e.reqString(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &NumberError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw, Cause: err}
	}
	return v, nil
}

func (e *elem) reqUint16(name string) (uint16, error) {
	raw, err := e.reqString(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &NumberError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw, Cause: err}
	}
	return uint16(v), nil
}

func (e *elem) optUint64(name string) (*uint64, error) {
	raw, ok := e.attrRaw(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &NumberError{Path: e.path, Element: e.el.Tag, Field: name, Value: raw, Cause: err}
	}
	return &v, nil
}

// boolAttr reads an xs:boolean attribute, def when absent.
func (e *elem) boolAttr(name string, def bool) (bool, error) {
	raw, ok := e.attrRaw(name)
	if !ok {
		return def, nil
	}
	switch raw {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, e.enumError(name, raw)
}

func (e *elem) reqYesNo(name string) (bool, error) {
	raw, err := e.reqString(name)
	if err != nil {
		return false, err
	}
	return e.yesNoValue(name, raw)
}

func (e *elem) yesNoAttr(name string, def bool) (bool, error) {
	raw, ok := e.attrRaw(name)
	if !ok {
		return def, nil
	}
	return e.yesNoValue(name, raw)
}

func (e *elem) yesNoValue(name, raw string) (bool, error) {
	switch raw {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, e.enumError(name, raw)
}

func (parser *Parser) readDocument(e *elem) (*Document, error) {
	doc := &Document{}
	headerEl := e.child("header")
	if headerEl == nil {
		return nil, e.missing("header")
	}
	header, err := parser.readHeader(headerEl)
	if err != nil {
		return nil, err
	}
	doc.Header = header
	for _, roadEl := range e.children("road") {
		road, err := parser.readRoad(roadEl)
		if err != nil {
			return nil, err
		}
		doc.Roads = append(doc.Roads, road)
	}
	for _, controllerEl := range e.children("controller") {
		controller, err := parser.readController(controllerEl)
		if err != nil {
			return nil, err
		}
		doc.Controllers = append(doc.Controllers, controller)
	}
	for _, junctionEl := range e.children("junction") {
		junction, err := parser.readJunction(junctionEl)
		if err != nil {
			return nil, err
		}
		doc.Junctions = append(doc.Junctions, junction)
	}
	for _, groupEl := range e.children("junctionGroup") {
		group, err := parser.readJunctionGroup(groupEl)
		if err != nil {
			return nil, err
		}
		doc.JunctionGroups = append(doc.JunctionGroups, group)
	}
	for _, stationEl := range e.children("station") {
		station, err := parser.readStation(stationEl)
		if err != nil {
			return nil, err
		}
		doc.Stations = append(doc.Stations, station)
	}
	if doc.Additional, err = parser.readAdditionalData(e); err != nil {
		return nil, err
	}
	e.flagUnknown()
	return doc, nil
}

func (parser *Parser) readHeader(e *elem) (Header, error) {
	var header Header
	majorRaw, ok := e.attrRaw("revMajor")
	if !ok {
		return header, e.missing("revMajor")
	}
	minorRaw, ok := e.attrRaw("revMinor")
	if !ok {
		return header, e.missing("revMinor")
	}
	major, err := strconv.ParseUint(majorRaw, 10, 16)
	if err != nil {
		return header, &NumberError{Path: e.path, Element: e.el.Tag, Field: "revMajor", Value: majorRaw, Cause: err}
	}
	minor, err := strconv.ParseUint(minorRaw, 10, 16)
	if err != nil {
		return header, &NumberError{Path: e.path, Element: e.el.Tag, Field: "revMinor", Value: minorRaw, Cause: err}
	}
	if major != 1 || minor != 7 {
		return header, &UnsupportedVersionError{Major: majorRaw, Minor: minorRaw}
	}
	header.RevMajor = uint16(major)
	header.RevMinor = uint16(minor)
	header.Name = e.optString("name")
	header.Version = e.optString("version")
	header.Date = e.optString("date")
	if header.North, err = e.optLength("north"); err != nil {
		return header, err
	}
	if header.South, err = e.optLength("south"); err != nil {
		return header, err
	}
	if header.East, err = e.optLength("east"); err != nil {
		return header, err
	}
	if header.West, err = e.optLength("west"); err != nil {
		return header, err
	}
	header.Vendor = e.optString("vendor")
	if geoEl := e.child("geoReference"); geoEl != nil {
		geo := GeoReference{Text: strings.TrimSpace(geoEl.el.Text())}
		if geo.Additional, err = parser.readAdditionalData(geoEl); err != nil {
			return header, err
		}
		geoEl.flagUnknown()
		header.GeoReference = &geo
	}
	if offsetEl := e.child("offset"); offsetEl != nil {
		var offset Offset
		if offset.X, err = offsetEl.reqLength("x"); err != nil {
			return header, err
		}
		if offset.Y, err = offsetEl.reqLength("y"); err != nil {
			return header, err
		}
		if offset.Z, err = offsetEl.reqLength("z"); err != nil {
			return header, err
		}
		if offset.Hdg, err = offsetEl.reqAngle("hdg"); err != nil {
			return header, err
		}
		if offset.Additional, err = parser.readAdditionalData(offsetEl); err != nil {
			return header, err
		}
		offsetEl.flagUnknown()
		header.Offset = &offset
	}
	if header.Additional, err = parser.readAdditionalData(e); err != nil {
		return header, err
	}
	e.flagUnknown()
	return header, nil
}

func (parser *Parser) readRoad(e *elem) (Road, error) {
	var road Road
	var err error
	road.Name = e.optString("name")
	if road.Length, err = e.reqPosLength("length"); err != nil {
		return road, err
	}
	if road.ID, err = e.reqRef("id"); err != nil {
		return road, err
	}
	if road.Junction, err = e.reqRef("junction"); err != nil {
		return road, err
	}
	if raw, ok := e.attrRaw("rule"); ok {
		rule, known := trafficRuleByName[raw]
		if !known {
			return road, e.enumError("rule", raw)
		}
		road.Rule = rule
	} else {
		road.Rule = TRAFFIC_RULE_RHT
	}
	if linkEl := e.child("link"); linkEl != nil {
		link, err := parser.readRoadLink(linkEl)
		if err != nil {
			return road, err
		}
		road.Link = &link
	}
	for _, typeEl := range e.children("type") {
		record, err := parser.readRoadTypeRecord(typeEl)
		if err != nil {
			return road, err
		}
		road.Type = append(road.Type, record)
	}
	planViewEl := e.child("planView")
	if planViewEl == nil {
		return road, e.missing("planView")
	}
	if road.PlanView, err = parser.readPlanView(planViewEl); err != nil {
		return road, err
	}
	if profileEl := e.child("elevationProfile"); profileEl != nil {
		profile, err := parser.readElevationProfile(profileEl)
		if err != nil {
			return road, err
		}
		road.ElevationProfile = &profile
	}
	if profileEl := e.child("lateralProfile"); profileEl != nil {
		profile, err := parser.readLateralProfile(profileEl)
		if err != nil {
			return road, err
		}
		road.LateralProfile = &profile
	}
	lanesEl := e.child("lanes")
	if lanesEl == nil {
		return road, e.missing("lanes")
	}
	if road.Lanes, err = parser.readLanes(lanesEl); err != nil {
		return road, err
	}
	if objectsEl := e.child("objects"); objectsEl != nil {
		objects, err := parser.readObjects(objectsEl)
		if err != nil {
			return road, err
		}
		road.Objects = &objects
	}
	if signalsEl := e.child("signals"); signalsEl != nil {
		signals, err := parser.readSignals(signalsEl)
		if err != nil {
			return road, err
		}
		road.Signals = &signals
	}
	if road.Additional, err = parser.readAdditionalData(e); err != nil {
		return road, err
	}
	e.flagUnknown()
	return road, nil
}

func (parser *Parser) readRoadLink(e *elem) (RoadLink, error) {
	var link RoadLink
	var err error
	if targetEl := e.child("predecessor"); targetEl != nil {
		target, err := parser.readRoadLinkTarget(targetEl)
		if err != nil {
			return link, err
		}
		link.Predecessor = &target
	}
	if targetEl := e.child("successor"); targetEl != nil {
		target, err := parser.readRoadLinkTarget(targetEl)
		if err != nil {
			return link, err
		}
		link.Successor = &target
	}
	if link.Additional, err = parser.readAdditionalData(e); err != nil {
		return link, err
	}
	e.flagUnknown()
	return link, nil
}

func (parser *Parser) readRoadLinkTarget(e *elem) (RoadLinkTarget, error) {
	var target RoadLinkTarget
	var err error
	if target.ElementID, err = e.reqRef("elementId"); err != nil {
		return target, err
	}
	if raw, ok := e.attrRaw("elementType"); ok {
		kind, known := elementTypeByName[raw]
		if !known {
			return target, e.enumError("elementType", raw)
		}
		target.ElementType = &kind
	}
	if raw, ok := e.attrRaw("contactPoint"); ok {
		contact, known := contactPointByName[raw]
		if !known {
			return target, e.enumError("contactPoint", raw)
		}
		target.ContactPoint = &contact
	}
	if target.ElementS, err = e.optLength("elementS"); err != nil {
		return target, err
	}
	if raw, ok := e.attrRaw("elementDir"); ok {
		dir, known := elementDirByName[raw]
		if !known {
			return target, e.enumError("elementDir", raw)
		}
		target.ElementDir = &dir
	}
	e.flagUnknown()
	return target, nil
}

func (parser *Parser) readRoadTypeRecord(e *elem) (RoadTypeRecord, error) {
	var record RoadTypeRecord
	var err error
	if record.S, err = e.reqPosLength("s"); err != nil {
		return record, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return record, err
	}
	kind, known := roadTypeKindByName[raw]
	if !known {
		return record, e.enumError("type", raw)
	}
	record.Type = kind
	if country := e.optString("country"); country != nil {
		code := CountryCode(*country)
		record.Country = &code
	}
	if speedEl := e.child("speed"); speedEl != nil {
		speed, err := parser.readRoadSpeed(speedEl)
		if err != nil {
			return record, err
		}
		record.Speed = &speed
	}
	if record.Additional, err = parser.readAdditionalData(e); err != nil {
		return record, err
	}
	e.flagUnknown()
	return record, nil
}

func (parser *Parser) readRoadSpeed(e *elem) (RoadSpeed, error) {
	var speed RoadSpeed
	raw, err := e.reqString("max")
	if err != nil {
		return speed, err
	}
	switch raw {
	case "no limit":
		speed.Max.NoLimit = true
	case "undefined":
		speed.Max.Undefined = true
	default:
		v, err := e.parseFloat("max", raw)
		if err != nil {
			return speed, err
		}
		if err := e.nonNegative("max", v); err != nil {
			return speed, err
		}
		speed.Max.Value = v
	}
	if err := e.readSpeedUnit(&speed.Unit); err != nil {
		return speed, err
	}
	e.flagUnknown()
	return speed, nil
}

// readSpeedUnit fills the unit attribute, m/s when absent.
func (e *elem) readSpeedUnit(unit *SpeedUnit) error {
	raw, ok := e.attrRaw("unit")
	if !ok {
		*unit = SPEED_MS
		return nil
	}
	parsed, known := speedUnitByName[raw]
	if !known {
		return e.enumError("unit", raw)
	}
	*unit = parsed
	return nil
}

func (parser *Parser) readPlanView(e *elem) (PlanView, error) {
	var planView PlanView
	var err error
	geometryEls := e.children("geometry")
	if len(geometryEls) == 0 {
		return planView, e.structure("must contain at least one geometry")
	}
	for _, geometryEl := range geometryEls {
		geometry, err := parser.readGeometry(geometryEl)
		if err != nil {
			return planView, err
		}
		planView.Geometry = append(planView.Geometry, geometry)
	}
	if planView.Additional, err = parser.readAdditionalData(e); err != nil {
		return planView, err
	}
	e.flagUnknown()
	return planView, nil
}

func (parser *Parser) readGeometry(e *elem) (Geometry, error) {
	var geometry Geometry
	var err error
	if geometry.S, err = e.reqPosLength("s"); err != nil {
		return geometry, err
	}
	if geometry.X, err = e.reqLength("x"); err != nil {
		return geometry, err
	}
	if geometry.Y, err = e.reqLength("y"); err != nil {
		return geometry, err
	}
	if geometry.Hdg, err = e.reqAngle("hdg"); err != nil {
		return geometry, err
	}
	if geometry.Length, err = e.reqPosLength("length"); err != nil {
		return geometry, err
	}
	shapes := 0
	if lineEl := e.child("line"); lineEl != nil {
		lineEl.flagUnknown()
		geometry.Line = &Line{}
		shapes++
	}
	if spiralEl := e.child("spiral"); spiralEl != nil {
		var spiral Spiral
		if spiral.CurvStart, err = spiralEl.reqCurvature("curvStart"); err != nil {
			return geometry, err
		}
		if spiral.CurvEnd, err = spiralEl.reqCurvature("curvEnd"); err != nil {
			return geometry, err
		}
		spiralEl.flagUnknown()
		geometry.Spiral = &spiral
		shapes++
	}
	if arcEl := e.child("arc"); arcEl != nil {
		var arc Arc
		if arc.Curvature, err = arcEl.reqCurvature("curvature"); err != nil {
			return geometry, err
		}
		arcEl.flagUnknown()
		geometry.Arc = &arc
		shapes++
	}
	if polyEl := e.child("poly3"); polyEl != nil {
		var poly Poly3
		if poly.A, err = polyEl.reqFloat("a"); err != nil {
			return geometry, err
		}
		if poly.B, err = polyEl.reqFloat("b"); err != nil {
			return geometry, err
		}
		if poly.C, err = polyEl.reqFloat("c"); err != nil {
			return geometry, err
		}
		if poly.D, err = polyEl.reqFloat("d"); err != nil {
			return geometry, err
		}
		polyEl.flagUnknown()
		geometry.Poly3 = &poly
		shapes++
	}
	if paramEl := e.child("paramPoly3"); paramEl != nil {
		param, err := parser.readParamPoly3(paramEl)
		if err != nil {
			return geometry, err
		}
		geometry.ParamPoly3 = &param
		shapes++
	}
	if shapes == 0 {
		return geometry, e.missing("line/spiral/arc/poly3/paramPoly3")
	}
	if shapes > 1 {
		return geometry, e.structure("must contain exactly one shape element")
	}
	if geometry.Additional, err = parser.readAdditionalData(e); err != nil {
		return geometry, err
	}
	e.flagUnknown()
	return geometry, nil
}

func (parser *Parser) readParamPoly3(e *elem) (ParamPoly3, error) {
	var param ParamPoly3
	var err error
	if param.AU, err = e.reqFloat("aU"); err != nil {
		return param, err
	}
	if param.BU, err = e.reqFloat("bU"); err != nil {
		return param, err
	}
	if param.CU, err = e.reqFloat("cU"); err != nil {
		return param, err
	}
	if param.DU, err = e.reqFloat("dU"); err != nil {
		return param, err
	}
	if param.AV, err = e.reqFloat("aV"); err != nil {
		return param, err
	}
	if param.BV, err = e.reqFloat("bV"); err != nil {
		return param, err
	}
	if param.CV, err = e.reqFloat("cV"); err != nil {
		return param, err
	}
	if param.DV, err = e.reqFloat("dV"); err != nil {
		return param, err
	}
	raw, ok := e.attrRaw("pRange")
	switch {
	case ok:
		pRange, known := pRangeByName[raw]
		if !known {
			return param, e.enumError("pRange", raw)
		}
		param.PRange = pRange
	case parser.workarounds.SumoIssue10301:
		param.PRange = P_RANGE_NORMALIZED
	default:
		return param, e.missing("pRange")
	}
	e.flagUnknown()
	return param, nil
}

func (parser *Parser) readElevationProfile(e *elem) (ElevationProfile, error) {
	var profile ElevationProfile
	var err error
	for _, recordEl := range e.children("elevation") {
		var record Elevation
		if record.S, err = recordEl.reqPosLength("s"); err != nil {
			return profile, err
		}
		if err = recordEl.readPoly(&record.A, &record.B, &record.C, &record.D); err != nil {
			return profile, err
		}
		recordEl.flagUnknown()
		profile.Elevation = append(profile.Elevation, record)
	}
	if profile.Additional, err = parser.readAdditionalData(e); err != nil {
		return profile, err
	}
	e.flagUnknown()
	return profile, nil
}

func (parser *Parser) readLateralProfile(e *elem) (LateralProfile, error) {
	var profile LateralProfile
	var err error
	for _, recordEl := range e.children("superelevation") {
		var record Superelevation
		if record.S, err = recordEl.reqPosLength("s"); err != nil {
			return profile, err
		}
		if err = recordEl.readPoly(&record.A, &record.B, &record.C, &record.D); err != nil {
			return profile, err
		}
		recordEl.flagUnknown()
		profile.Superelevation = append(profile.Superelevation, record)
	}
	for _, recordEl := range e.children("shape") {
		var record Shape
		if record.S, err = recordEl.reqPosLength("s"); err != nil {
			return profile, err
		}
		if record.T, err = recordEl.reqLength("t"); err != nil {
			return profile, err
		}
		if err = recordEl.readPoly(&record.A, &record.B, &record.C, &record.D); err != nil {
			return profile, err
		}
		recordEl.flagUnknown()
		profile.Shape = append(profile.Shape, record)
	}
	if profile.Additional, err = parser.readAdditionalData(e); err != nil {
		return profile, err
	}
	e.flagUnknown()
	return profile, nil
}

// readPoly fills the four cubic coefficients every polynomial record
// shares.
func (e *elem) readPoly(a, b, c, d *float64) error {
	var err error
	if *a, err = e.reqFloat("a"); err != nil {
		return err
	}
	if *b, err = e.reqFloat("b"); err != nil {
		return err
	}
	if *c, err = e.reqFloat("c"); err != nil {
		return err
	}
	if *d, err = e.reqFloat("d"); err != nil {
		return err
	}
	return nil
}

func (parser *Parser) readLanes(e *elem) (Lanes, error) {
	var lanes Lanes
	var err error
	for _, offsetEl := range e.children("laneOffset") {
		var offset LaneOffset
		if offset.S, err = offsetEl.reqPosLength("s"); err != nil {
			return lanes, err
		}
		if err = offsetEl.readPoly(&offset.A, &offset.B, &offset.C, &offset.D); err != nil {
			return lanes, err
		}
		offsetEl.flagUnknown()
		lanes.LaneOffset = append(lanes.LaneOffset, offset)
	}
	sectionEls := e.children("laneSection")
	if len(sectionEls) == 0 {
		return lanes, e.structure("must contain at least one laneSection")
	}
	for _, sectionEl := range sectionEls {
		section, err := parser.readLaneSection(sectionEl)
		if err != nil {
			return lanes, err
		}
		lanes.LaneSection = append(lanes.LaneSection, section)
	}
	if lanes.Additional, err = parser.readAdditionalData(e); err != nil {
		return lanes, err
	}
	e.flagUnknown()
	return lanes, nil
}

func (parser *Parser) readLaneSection(e *elem) (LaneSection, error) {
	var section LaneSection
	var err error
	if section.S, err = e.reqPosLength("s"); err != nil {
		return section, err
	}
	if section.SingleSide, err = e.boolAttr("singleSide", false); err != nil {
		return section, err
	}
	if sideEl := e.child("left"); sideEl != nil {
		side, err := parser.readLaneSide(sideEl)
		if err != nil {
			return section, err
		}
		section.Left = &side
	}
	centerEl := e.child("center")
	if centerEl == nil {
		return section, e.missing("center")
	}
	if section.Center, err = parser.readLaneSide(centerEl); err != nil {
		return section, err
	}
	if sideEl := e.child("right"); sideEl != nil {
		side, err := parser.readLaneSide(sideEl)
		if err != nil {
			return section, err
		}
		section.Right = &side
	}
	if section.Additional, err = parser.readAdditionalData(e); err != nil {
		return section, err
	}
	e.flagUnknown()
	return section, nil
}

func (parser *Parser) readLaneSide(e *elem) (LaneSide, error) {
	var side LaneSide
	laneEls := e.children("lane")
	if len(laneEls) == 0 {
		return side, e.structure("must contain at least one lane")
	}
	seen := map[int]struct{}{}
	for _, laneEl := range laneEls {
		lane, err := parser.readLane(laneEl)
		if err != nil {
			return side, err
		}
		if _, duplicated := seen[lane.ID]; duplicated {
			return side, &DuplicateIDError{Path: e.path, Element: e.el.Tag, ID: strconv.Itoa(lane.ID)}
		}
		seen[lane.ID] = struct{}{}
		side.Lane = append(side.Lane, lane)
	}
	e.flagUnknown()
	return side, nil
}

func (parser *Parser) readLane(e *elem) (Lane, error) {
	var lane Lane
	var err error
	if lane.ID, err = e.reqInt("id"); err != nil {
		return lane, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return lane, err
	}
	kind, known := laneTypeByName[raw]
	if !known {
		return lane, e.enumError("type", raw)
	}
	lane.Type = kind
	if lane.Level, err = e.boolAttr("level", false); err != nil {
		return lane, err
	}
	if linkEl := e.child("link"); linkEl != nil {
		var link LaneLink
		for _, targetEl := range linkEl.children("predecessor") {
			id, err := targetEl.reqInt("id")
			if err != nil {
				return lane, err
			}
			targetEl.flagUnknown()
			link.Predecessor = append(link.Predecessor, LaneLinkTarget{ID: id})
		}
		for _, targetEl := range linkEl.children("successor") {
			id, err := targetEl.reqInt("id")
			if err != nil {
				return lane, err
			}
			targetEl.flagUnknown()
			link.Successor = append(link.Successor, LaneLinkTarget{ID: id})
		}
		linkEl.flagUnknown()
		lane.Link = &link
	}
	for _, widthEl := range e.children("width") {
		var width LaneWidth
		if width.SOffset, err = widthEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if err = widthEl.readPoly(&width.A, &width.B, &width.C, &width.D); err != nil {
			return lane, err
		}
		widthEl.flagUnknown()
		lane.Width = append(lane.Width, width)
	}
	for _, borderEl := range e.children("border") {
		var border LaneBorder
		if border.SOffset, err = borderEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if err = borderEl.readPoly(&border.A, &border.B, &border.C, &border.D); err != nil {
			return lane, err
		}
		borderEl.flagUnknown()
		lane.Border = append(lane.Border, border)
	}
	for _, markEl := range e.children("roadMark") {
		mark, err := parser.readRoadMark(markEl)
		if err != nil {
			return lane, err
		}
		lane.RoadMark = append(lane.RoadMark, mark)
	}
	for _, materialEl := range e.children("material") {
		var material LaneMaterial
		if material.SOffset, err = materialEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		material.Surface = materialEl.optString("surface")
		if material.Friction, err = materialEl.reqFloat("friction"); err != nil {
			return lane, err
		}
		if material.Roughness, err = materialEl.optFloat("roughness"); err != nil {
			return lane, err
		}
		materialEl.flagUnknown()
		lane.Material = append(lane.Material, material)
	}
	for _, speedEl := range e.children("speed") {
		var speed LaneSpeed
		if speed.SOffset, err = speedEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if speed.Max, err = speedEl.reqFloat("max"); err != nil {
			return lane, err
		}
		if err := speedEl.nonNegative("max", speed.Max); err != nil {
			return lane, err
		}
		if err := speedEl.readSpeedUnit(&speed.Unit); err != nil {
			return lane, err
		}
		speedEl.flagUnknown()
		lane.Speed = append(lane.Speed, speed)
	}
	for _, accessEl := range e.children("access") {
		var access LaneAccess
		if access.SOffset, err = accessEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if raw, ok := accessEl.attrRaw("rule"); ok {
			rule, known := accessRuleByName[raw]
			if !known {
				return lane, accessEl.enumError("rule", raw)
			}
			access.Rule = &rule
		}
		restrictionRaw, err := accessEl.reqString("restriction")
		if err != nil {
			return lane, err
		}
		restriction, known := accessRestrictionByName[restrictionRaw]
		if !known {
			return lane, accessEl.enumError("restriction", restrictionRaw)
		}
		access.Restriction = restriction
		accessEl.flagUnknown()
		lane.Access = append(lane.Access, access)
	}
	for _, heightEl := range e.children("height") {
		var height LaneHeight
		if height.SOffset, err = heightEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if height.Inner, err = heightEl.reqLength("inner"); err != nil {
			return lane, err
		}
		if height.Outer, err = heightEl.reqLength("outer"); err != nil {
			return lane, err
		}
		heightEl.flagUnknown()
		lane.Height = append(lane.Height, height)
	}
	for _, ruleEl := range e.children("rule") {
		var rule LaneRule
		if rule.SOffset, err = ruleEl.reqPosLength("sOffset"); err != nil {
			return lane, err
		}
		if rule.Value, err = ruleEl.reqString("value"); err != nil {
			return lane, err
		}
		ruleEl.flagUnknown()
		lane.Rule = append(lane.Rule, rule)
	}
	if lane.Additional, err = parser.readAdditionalData(e); err != nil {
		return lane, err
	}
	e.flagUnknown()
	return lane, nil
}

func (parser *Parser) readRoadMark(e *elem) (RoadMark, error) {
	var mark RoadMark
	var err error
	if mark.SOffset, err = e.reqPosLength("sOffset"); err != nil {
		return mark, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return mark, err
	}
	kind, known := roadMarkTypeByName[raw]
	if !known {
		return mark, e.enumError("type", raw)
	}
	mark.Type = kind
	if raw, ok := e.attrRaw("weight"); ok {
		weight, known := roadMarkWeightByName[raw]
		if !known {
			return mark, e.enumError("weight", raw)
		}
		mark.Weight = &weight
	}
	if raw, ok := e.attrRaw("color"); ok {
		color, known := roadMarkColorByName[raw]
		if !known {
			return mark, e.enumError("color", raw)
		}
		mark.Color = color
	} else {
		mark.Color = ROAD_MARK_COLOR_STANDARD
	}
	mark.Material = e.optString("material")
	if mark.Width, err = e.optLength("width"); err != nil {
		return mark, err
	}
	if raw, ok := e.attrRaw("laneChange"); ok {
		change, known := laneChangeByName[raw]
		if !known {
			return mark, e.enumError("laneChange", raw)
		}
		mark.LaneChange = change
	} else {
		mark.LaneChange = LANE_CHANGE_BOTH
	}
	if mark.Height, err = e.optLength("height"); err != nil {
		return mark, err
	}
	for _, swayEl := range e.children("sway") {
		var sway Sway
		if sway.DS, err = swayEl.reqPosLength("ds"); err != nil {
			return mark, err
		}
		if err = swayEl.readPoly(&sway.A, &sway.B, &sway.C, &sway.D); err != nil {
			return mark, err
		}
		swayEl.flagUnknown()
		mark.Sway = append(mark.Sway, sway)
	}
	if detailEl := e.child("type"); detailEl != nil {
		detail, err := parser.readRoadMarkTypeDetail(detailEl)
		if err != nil {
			return mark, err
		}
		mark.TypeDetail = &detail
	}
	if explicitEl := e.child("explicit"); explicitEl != nil {
		explicit, err := parser.readRoadMarkExplicit(explicitEl)
		if err != nil {
			return mark, err
		}
		mark.Explicit = &explicit
	}
	if mark.Additional, err = parser.readAdditionalData(e); err != nil {
		return mark, err
	}
	e.flagUnknown()
	return mark, nil
}

func (parser *Parser) readRoadMarkTypeDetail(e *elem) (RoadMarkTypeDetail, error) {
	var detail RoadMarkTypeDetail
	var err error
	if detail.Name, err = e.reqString("name"); err != nil {
		return detail, err
	}
	if detail.Width, err = e.reqPosLength("width"); err != nil {
		return detail, err
	}
	lineEls := e.children("line")
	if len(lineEls) == 0 {
		return detail, e.structure("must contain at least one line")
	}
	for _, lineEl := range lineEls {
		var line RoadMarkLine
		if line.Length, err = lineEl.reqPosLength("length"); err != nil {
			return detail, err
		}
		if line.Space, err = lineEl.reqPosLength("space"); err != nil {
			return detail, err
		}
		if line.TOffset, err = lineEl.reqLength("tOffset"); err != nil {
			return detail, err
		}
		if line.SOffset, err = lineEl.reqPosLength("sOffset"); err != nil {
			return detail, err
		}
		if raw, ok := lineEl.attrRaw("rule"); ok {
			rule, known := roadMarkRuleByName[raw]
			if !known {
				return detail, lineEl.enumError("rule", raw)
			}
			line.Rule = &rule
		}
		if line.Width, err = lineEl.optLength("width"); err != nil {
			return detail, err
		}
		if raw, ok := lineEl.attrRaw("color"); ok {
			color, known := roadMarkColorByName[raw]
			if !known {
				return detail, lineEl.enumError("color", raw)
			}
			line.Color = &color
		}
		lineEl.flagUnknown()
		detail.Line = append(detail.Line, line)
	}
	if detail.Additional, err = parser.readAdditionalData(e); err != nil {
		return detail, err
	}
	e.flagUnknown()
	return detail, nil
}

func (parser *Parser) readRoadMarkExplicit(e *elem) (RoadMarkExplicit, error) {
	var explicit RoadMarkExplicit
	var err error
	lineEls := e.children("line")
	if len(lineEls) == 0 {
		return explicit, e.structure("must contain at least one line")
	}
	for _, lineEl := range lineEls {
		var line RoadMarkExplicitLine
		if line.Length, err = lineEl.reqPosLength("length"); err != nil {
			return explicit, err
		}
		if line.TOffset, err = lineEl.reqLength("tOffset"); err != nil {
			return explicit, err
		}
		if line.SOffset, err = lineEl.reqPosLength("sOffset"); err != nil {
			return explicit, err
		}
		if raw, ok := lineEl.attrRaw("rule"); ok {
			rule, known := roadMarkRuleByName[raw]
			if !known {
				return explicit, lineEl.enumError("rule", raw)
			}
			line.Rule = &rule
		}
		if line.Width, err = lineEl.optLength("width"); err != nil {
			return explicit, err
		}
		lineEl.flagUnknown()
		explicit.Line = append(explicit.Line, line)
	}
	if explicit.Additional, err = parser.readAdditionalData(e); err != nil {
		return explicit, err
	}
	e.flagUnknown()
	return explicit, nil
}

func (parser *Parser) readObjects(e *elem) (Objects, error) {
	var objects Objects
	var err error
	for _, objectEl := range e.children("object") {
		object, err := parser.readObject(objectEl)
		if err != nil {
			return objects, err
		}
		objects.Object = append(objects.Object, object)
	}
	for _, referenceEl := range e.children("objectReference") {
		reference, err := parser.readObjectReference(referenceEl)
		if err != nil {
			return objects, err
		}
		objects.ObjectReference = append(objects.ObjectReference, reference)
	}
	for _, tunnelEl := range e.children("tunnel") {
		tunnel, err := parser.readTunnel(tunnelEl)
		if err != nil {
			return objects, err
		}
		objects.Tunnel = append(objects.Tunnel, tunnel)
	}
	for _, bridgeEl := range e.children("bridge") {
		bridge, err := parser.readBridge(bridgeEl)
		if err != nil {
			return objects, err
		}
		objects.Bridge = append(objects.Bridge, bridge)
	}
	if objects.Additional, err = parser.readAdditionalData(e); err != nil {
		return objects, err
	}
	e.flagUnknown()
	return objects, nil
}

func (parser *Parser) readObject(e *elem) (Object, error) {
	var object Object
	var err error
	if object.ID, err = e.reqRef("id"); err != nil {
		return object, err
	}
	object.Name = e.optString("name")
	if object.S, err = e.reqPosLength("s"); err != nil {
		return object, err
	}
	if object.T, err = e.reqLength("t"); err != nil {
		return object, err
	}
	if object.ZOffset, err = e.reqLength("zOffset"); err != nil {
		return object, err
	}
	if raw, ok := e.attrRaw("type"); ok {
		kind, known := objectTypeByName[raw]
		if !known {
			return object, e.enumError("type", raw)
		}
		object.Type = &kind
	}
	object.Subtype = e.optString("subtype")
	if object.Dynamic, err = e.yesNoAttr("dynamic", false); err != nil {
		return object, err
	}
	if raw, ok := e.attrRaw("orientation"); ok {
		orientation, known := orientationByName[raw]
		if !known {
			return object, e.enumError("orientation", raw)
		}
		object.Orientation = &orientation
	}
	if object.Hdg, err = e.optAngle("hdg"); err != nil {
		return object, err
	}
	if object.Pitch, err = e.optAngle("pitch"); err != nil {
		return object, err
	}
	if object.Roll, err = e.optAngle("roll"); err != nil {
		return object, err
	}
	if object.Height, err = e.optLength("height"); err != nil {
		return object, err
	}
	if object.ObjLength, err = e.optLength("length"); err != nil {
		return object, err
	}
	if object.Width, err = e.optLength("width"); err != nil {
		return object, err
	}
	if object.Radius, err = e.optLength("radius"); err != nil {
		return object, err
	}
	if object.ValidLength, err = e.optLength("validLength"); err != nil {
		return object, err
	}
	if object.PerpToRoad, err = e.boolAttr("perpToRoad", false); err != nil {
		return object, err
	}
	for _, repeatEl := range e.children("repeat") {
		repeat, err := parser.readObjectRepeat(repeatEl)
		if err != nil {
			return object, err
		}
		object.Repeat = append(object.Repeat, repeat)
	}
	for _, materialEl := range e.children("material") {
		var material ObjectMaterial
		material.Surface = materialEl.optString("surface")
		if material.Friction, err = materialEl.optFloat("friction"); err != nil {
			return object, err
		}
		if material.Roughness, err = materialEl.optFloat("roughness"); err != nil {
			return object, err
		}
		materialEl.flagUnknown()
		object.Material = append(object.Material, material)
	}
	if object.Validity, err = parser.readValidity(e); err != nil {
		return object, err
	}
	if parkingEl := e.child("parkingSpace"); parkingEl != nil {
		var parking ParkingSpace
		if raw, ok := parkingEl.attrRaw("access"); ok {
			access, known := parkingAccessByName[raw]
			if !known {
				return object, parkingEl.enumError("access", raw)
			}
			parking.Access = access
		} else {
			parking.Access = PARKING_ALL
		}
		parking.Restrictions = parkingEl.optString("restrictions")
		parkingEl.flagUnknown()
		object.ParkingSpace = &parking
	}
	if object.Additional, err = parser.readAdditionalData(e); err != nil {
		return object, err
	}
	e.flagUnknown()
	return object, nil
}

func (parser *Parser) readObjectRepeat(e *elem) (ObjectRepeat, error) {
	var repeat ObjectRepeat
	var err error
	if repeat.S, err = e.reqPosLength("s"); err != nil {
		return repeat, err
	}
	if repeat.Length, err = e.reqPosLength("length"); err != nil {
		return repeat, err
	}
	if repeat.Distance, err = e.reqPosLength("distance"); err != nil {
		return repeat, err
	}
	if repeat.TStart, err = e.reqLength("tStart"); err != nil {
		return repeat, err
	}
	if repeat.TEnd, err = e.reqLength("tEnd"); err != nil {
		return repeat, err
	}
	if repeat.HeightStart, err = e.reqLength("heightStart"); err != nil {
		return repeat, err
	}
	if repeat.HeightEnd, err = e.reqLength("heightEnd"); err != nil {
		return repeat, err
	}
	if repeat.ZOffsetStart, err = e.reqLength("zOffsetStart"); err != nil {
		return repeat, err
	}
	if repeat.ZOffsetEnd, err = e.reqLength("zOffsetEnd"); err != nil {
		return repeat, err
	}
	if repeat.WidthStart, err = e.optLength("widthStart"); err != nil {
		return repeat, err
	}
	if repeat.WidthEnd, err = e.optLength("widthEnd"); err != nil {
		return repeat, err
	}
	if repeat.LengthStart, err = e.optLength("lengthStart"); err != nil {
		return repeat, err
	}
	if repeat.LengthEnd, err = e.optLength("lengthEnd"); err != nil {
		return repeat, err
	}
	if repeat.RadiusStart, err = e.optLength("radiusStart"); err != nil {
		return repeat, err
	}
	if repeat.RadiusEnd, err = e.optLength("radiusEnd"); err != nil {
		return repeat, err
	}
	e.flagUnknown()
	return repeat, nil
}

func (parser *Parser) readValidity(e *elem) ([]LaneValidity, error) {
	var validity []LaneValidity
	for _, validityEl := range e.children("validity") {
		fromLane, err := validityEl.reqInt("fromLane")
		if err != nil {
			return validity, err
		}
		toLane, err := validityEl.reqInt("toLane")
		if err != nil {
			return validity, err
		}
		validityEl.flagUnknown()
		validity = append(validity, LaneValidity{FromLane: fromLane, ToLane: toLane})
	}
	return validity, nil
}

func (parser *Parser) readObjectReference(e *elem) (ObjectReference, error) {
	var reference ObjectReference
	var err error
	if reference.S, err = e.reqPosLength("s"); err != nil {
		return reference, err
	}
	if reference.T, err = e.reqLength("t"); err != nil {
		return reference, err
	}
	if reference.ID, err = e.reqRef("id"); err != nil {
		return reference, err
	}
	if reference.ZOffset, err = e.optLength("zOffset"); err != nil {
		return reference, err
	}
	if reference.ValidLength, err = e.optLength("validLength"); err != nil {
		return reference, err
	}
	raw, err := e.reqString("orientation")
	if err != nil {
		return reference, err
	}
	orientation, known := orientationByName[raw]
	if !known {
		return reference, e.enumError("orientation", raw)
	}
	reference.Orientation = orientation
	if reference.Validity, err = parser.readValidity(e); err != nil {
		return reference, err
	}
	if reference.Additional, err = parser.readAdditionalData(e); err != nil {
		return reference, err
	}
	e.flagUnknown()
	return reference, nil
}

func (parser *Parser) readTunnel(e *elem) (Tunnel, error) {
	var tunnel Tunnel
	var err error
	if tunnel.S, err = e.reqPosLength("s"); err != nil {
		return tunnel, err
	}
	if tunnel.Length, err = e.reqPosLength("length"); err != nil {
		return tunnel, err
	}
	tunnel.Name = e.optString("name")
	if tunnel.ID, err = e.reqRef("id"); err != nil {
		return tunnel, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return tunnel, err
	}
	kind, known := tunnelTypeByName[raw]
	if !known {
		return tunnel, e.enumError("type", raw)
	}
	tunnel.Type = kind
	if tunnel.Lighting, err = e.optFloat("lighting"); err != nil {
		return tunnel, err
	}
	if tunnel.Daylight, err = e.optFloat("daylight"); err != nil {
		return tunnel, err
	}
	if tunnel.Validity, err = parser.readValidity(e); err != nil {
		return tunnel, err
	}
	if tunnel.Additional, err = parser.readAdditionalData(e); err != nil {
		return tunnel, err
	}
	e.flagUnknown()
	return tunnel, nil
}

func (parser *Parser) readBridge(e *elem) (Bridge, error) {
	var bridge Bridge
	var err error
	if bridge.S, err = e.reqPosLength("s"); err != nil {
		return bridge, err
	}
	if bridge.Length, err = e.reqPosLength("length"); err != nil {
		return bridge, err
	}
	bridge.Name = e.optString("name")
	if bridge.ID, err = e.reqRef("id"); err != nil {
		return bridge, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return bridge, err
	}
	kind, known := bridgeTypeByName[raw]
	if !known {
		return bridge, e.enumError("type", raw)
	}
	bridge.Type = kind
	if bridge.Validity, err = parser.readValidity(e); err != nil {
		return bridge, err
	}
	if bridge.Additional, err = parser.readAdditionalData(e); err != nil {
		return bridge, err
	}
	e.flagUnknown()
	return bridge, nil
}

func (parser *Parser) readSignals(e *elem) (Signals, error) {
	var signals Signals
	var err error
	for _, signalEl := range e.children("signal") {
		signal, err := parser.readSignal(signalEl)
		if err != nil {
			return signals, err
		}
		signals.Signal = append(signals.Signal, signal)
	}
	for _, referenceEl := range e.children("signalReference") {
		reference, err := parser.readSignalReference(referenceEl)
		if err != nil {
			return signals, err
		}
		signals.SignalReference = append(signals.SignalReference, reference)
	}
	if signals.Additional, err = parser.readAdditionalData(e); err != nil {
		return signals, err
	}
	e.flagUnknown()
	return signals, nil
}

func (parser *Parser) readSignal(e *elem) (Signal, error) {
	var signal Signal
	var err error
	if signal.S, err = e.reqPosLength("s"); err != nil {
		return signal, err
	}
	if signal.T, err = e.reqLength("t"); err != nil {
		return signal, err
	}
	if signal.ID, err = e.reqRef("id"); err != nil {
		return signal, err
	}
	signal.Name = e.optString("name")
	if signal.Dynamic, err = e.reqYesNo("dynamic"); err != nil {
		return signal, err
	}
	raw, err := e.reqString("orientation")
	if err != nil {
		return signal, err
	}
	orientation, known := orientationByName[raw]
	if !known {
		return signal, e.enumError("orientation", raw)
	}
	signal.Orientation = orientation
	if signal.ZOffset, err = e.reqLength("zOffset"); err != nil {
		return signal, err
	}
	if country := e.optString("country"); country != nil {
		code := CountryCode(*country)
		signal.Country = &code
	}
	signal.CountryRevision = e.optString("countryRevision")
	if signal.Type, err = e.reqString("type"); err != nil {
		return signal, err
	}
	if signal.Subtype, err = e.reqString("subtype"); err != nil {
		return signal, err
	}
	if signal.Value, err = e.optFloat("value"); err != nil {
		return signal, err
	}
	if raw, ok := e.attrRaw("unit"); ok {
		unit, known := unitByName[raw]
		if !known {
			return signal, e.enumError("unit", raw)
		}
		signal.Unit = &unit
	}
	if signal.Height, err = e.optLength("height"); err != nil {
		return signal, err
	}
	if signal.Width, err = e.optLength("width"); err != nil {
		return signal, err
	}
	signal.Text = e.optString("text")
	if signal.HOffset, err = e.optAngle("hOffset"); err != nil {
		return signal, err
	}
	if signal.Pitch, err = e.optAngle("pitch"); err != nil {
		return signal, err
	}
	if signal.Roll, err = e.optAngle("roll"); err != nil {
		return signal, err
	}
	if signal.Validity, err = parser.readValidity(e); err != nil {
		return signal, err
	}
	for _, dependencyEl := range e.children("dependency") {
		var dependency SignalDependency
		if dependency.ID, err = dependencyEl.reqRef("id"); err != nil {
			return signal, err
		}
		dependency.Type = dependencyEl.optString("type")
		dependencyEl.flagUnknown()
		signal.Dependency = append(signal.Dependency, dependency)
	}
	for _, referenceEl := range e.children("reference") {
		var reference SignalReferenceLink
		raw, err := referenceEl.reqString("elementType")
		if err != nil {
			return signal, err
		}
		kind, known := signalLinkTypeByName[raw]
		if !known {
			return signal, referenceEl.enumError("elementType", raw)
		}
		reference.ElementType = kind
		if reference.ElementID, err = referenceEl.reqRef("elementId"); err != nil {
			return signal, err
		}
		reference.Type = referenceEl.optString("type")
		referenceEl.flagUnknown()
		signal.Reference = append(signal.Reference, reference)
	}
	roadPosEl := e.child("positionRoad")
	inertialPosEl := e.child("positionInertial")
	if roadPosEl != nil && inertialPosEl != nil {
		return signal, e.structure("positionRoad and positionInertial exclude each other")
	}
	if roadPosEl != nil {
		var position SignalPositionRoad
		if position.RoadID, err = roadPosEl.reqRef("roadId"); err != nil {
			return signal, err
		}
		if position.S, err = roadPosEl.reqPosLength("s"); err != nil {
			return signal, err
		}
		if position.T, err = roadPosEl.reqLength("t"); err != nil {
			return signal, err
		}
		if position.ZOffset, err = roadPosEl.reqLength("zOffset"); err != nil {
			return signal, err
		}
		if position.HOffset, err = roadPosEl.reqAngle("hOffset"); err != nil {
			return signal, err
		}
		if position.Pitch, err = roadPosEl.optAngle("pitch"); err != nil {
			return signal, err
		}
		if position.Roll, err = roadPosEl.optAngle("roll"); err != nil {
			return signal, err
		}
		roadPosEl.flagUnknown()
		signal.PositionRoad = &position
	}
	if inertialPosEl != nil {
		var position SignalPositionInertial
		if position.X, err = inertialPosEl.reqLength("x"); err != nil {
			return signal, err
		}
		if position.Y, err = inertialPosEl.reqLength("y"); err != nil {
			return signal, err
		}
		if position.Z, err = inertialPosEl.reqLength("z"); err != nil {
			return signal, err
		}
		if position.Hdg, err = inertialPosEl.reqAngle("hdg"); err != nil {
			return signal, err
		}
		if position.Pitch, err = inertialPosEl.optAngle("pitch"); err != nil {
			return signal, err
		}
		if position.Roll, err = inertialPosEl.optAngle("roll"); err != nil {
			return signal, err
		}
		inertialPosEl.flagUnknown()
		signal.PositionInertial = &position
	}
	if signal.Additional, err = parser.readAdditionalData(e); err != nil {
		return signal, err
	}
	e.flagUnknown()
	return signal, nil
}

func (parser *Parser) readSignalReference(e *elem) (SignalReference, error) {
	var reference SignalReference
	var err error
	if reference.S, err = e.reqPosLength("s"); err != nil {
		return reference, err
	}
	if reference.T, err = e.reqLength("t"); err != nil {
		return reference, err
	}
	if reference.ID, err = e.reqRef("id"); err != nil {
		return reference, err
	}
	raw, err := e.reqString("orientation")
	if err != nil {
		return reference, err
	}
	orientation, known := orientationByName[raw]
	if !known {
		return reference, e.enumError("orientation", raw)
	}
	reference.Orientation = orientation
	if reference.Validity, err = parser.readValidity(e); err != nil {
		return reference, err
	}
	if reference.Additional, err = parser.readAdditionalData(e); err != nil {
		return reference, err
	}
	e.flagUnknown()
	return reference, nil
}

func (parser *Parser) readController(e *elem) (Controller, error) {
	var controller Controller
	var err error
	if controller.ID, err = e.reqRef("id"); err != nil {
		return controller, err
	}
	controller.Name = e.optString("name")
	if controller.Sequence, err = e.optUint64("sequence"); err != nil {
		return controller, err
	}
	controlEls := e.children("control")
	if len(controlEls) == 0 {
		return controller, e.structure("must contain at least one control")
	}
	for _, controlEl := range controlEls {
		var control Control
		if control.SignalID, err = controlEl.reqRef("signalId"); err != nil {
			return controller, err
		}
		control.Type = controlEl.optString("type")
		controlEl.flagUnknown()
		controller.Control = append(controller.Control, control)
	}
	if controller.Additional, err = parser.readAdditionalData(e); err != nil {
		return controller, err
	}
	e.flagUnknown()
	return controller, nil
}

func (parser *Parser) readJunction(e *elem) (Junction, error) {
	var junction Junction
	var err error
	junction.Name = e.optString("name")
	if junction.ID, err = e.reqRef("id"); err != nil {
		return junction, err
	}
	if raw, ok := e.attrRaw("type"); ok {
		kind, known := junctionTypeByName[raw]
		if !known {
			return junction, e.enumError("type", raw)
		}
		junction.Type = kind
	} else {
		junction.Type = JUNCTION_DEFAULT
	}
	junction.MainRoad = e.optString("mainRoad")
	if raw, ok := e.attrRaw("orientation"); ok {
		orientation, known := orientationByName[raw]
		if !known {
			return junction, e.enumError("orientation", raw)
		}
		junction.Orientation = &orientation
	}
	if junction.SStart, err = e.optLength("sStart"); err != nil {
		return junction, err
	}
	if junction.SEnd, err = e.optLength("sEnd"); err != nil {
		return junction, err
	}
	connectionEls := e.children("connection")
	if len(connectionEls) == 0 {
		return junction, e.structure("must contain at least one connection")
	}
	for _, connectionEl := range connectionEls {
		connection, err := parser.readConnection(connectionEl)
		if err != nil {
			return junction, err
		}
		junction.Connection = append(junction.Connection, connection)
	}
	for _, priorityEl := range e.children("priority") {
		priority := JunctionPriority{
			High: priorityEl.optString("high"),
			Low:  priorityEl.optString("low"),
		}
		priorityEl.flagUnknown()
		junction.Priority = append(junction.Priority, priority)
	}
	for _, controllerEl := range e.children("controller") {
		var ref JunctionControllerRef
		if ref.ID, err = controllerEl.reqRef("id"); err != nil {
			return junction, err
		}
		ref.Type = controllerEl.optString("type")
		if ref.Sequence, err = controllerEl.optUint64("sequence"); err != nil {
			return junction, err
		}
		controllerEl.flagUnknown()
		junction.Controller = append(junction.Controller, ref)
	}
	if junction.Additional, err = parser.readAdditionalData(e); err != nil {
		return junction, err
	}
	e.flagUnknown()
	return junction, nil
}

func (parser *Parser) readConnection(e *elem) (Connection, error) {
	var connection Connection
	var err error
	if connection.ID, err = e.reqRef("id"); err != nil {
		return connection, err
	}
	if raw, ok := e.attrRaw("type"); ok {
		kind, known := connectionTypeByName[raw]
		if !known {
			return connection, e.enumError("type", raw)
		}
		connection.Type = kind
	} else {
		connection.Type = CONNECTION_DEFAULT
	}
	connection.IncomingRoad = e.optString("incomingRoad")
	connection.ConnectingRoad = e.optString("connectingRoad")
	connection.LinkedRoad = e.optString("linkedRoad")
	if raw, ok := e.attrRaw("contactPoint"); ok {
		contact, known := contactPointByName[raw]
		if !known {
			return connection, e.enumError("contactPoint", raw)
		}
		connection.ContactPoint = &contact
	}
	if linkEl := e.child("predecessor"); linkEl != nil {
		link, err := parser.readConnectionLink(linkEl)
		if err != nil {
			return connection, err
		}
		connection.Predecessor = &link
	}
	if linkEl := e.child("successor"); linkEl != nil {
		link, err := parser.readConnectionLink(linkEl)
		if err != nil {
			return connection, err
		}
		connection.Successor = &link
	}
	for _, laneLinkEl := range e.children("laneLink") {
		var laneLink JunctionLaneLink
		if laneLink.From, err = laneLinkEl.reqInt("from"); err != nil {
			return connection, err
		}
		if laneLink.To, err = laneLinkEl.reqInt("to"); err != nil {
			return connection, err
		}
		laneLinkEl.flagUnknown()
		connection.LaneLink = append(connection.LaneLink, laneLink)
	}
	if connection.Additional, err = parser.readAdditionalData(e); err != nil {
		return connection, err
	}
	e.flagUnknown()
	return connection, nil
}

func (parser *Parser) readConnectionLink(e *elem) (ConnectionLink, error) {
	var link ConnectionLink
	var err error
	raw, err := e.reqString("elementType")
	if err != nil {
		return link, err
	}
	kind, known := elementTypeByName[raw]
	if !known {
		return link, e.enumError("elementType", raw)
	}
	link.ElementType = kind
	if link.ElementID, err = e.reqRef("elementId"); err != nil {
		return link, err
	}
	if link.ElementS, err = e.optLength("elementS"); err != nil {
		return link, err
	}
	if raw, ok := e.attrRaw("elementDir"); ok {
		dir, known := elementDirByName[raw]
		if !known {
			return link, e.enumError("elementDir", raw)
		}
		link.ElementDir = &dir
	}
	e.flagUnknown()
	return link, nil
}

func (parser *Parser) readJunctionGroup(e *elem) (JunctionGroup, error) {
	var group JunctionGroup
	var err error
	group.Name = e.optString("name")
	if group.ID, err = e.reqRef("id"); err != nil {
		return group, err
	}
	raw, err := e.reqString("type")
	if err != nil {
		return group, err
	}
	kind, known := junctionGroupTypeByName[raw]
	if !known {
		return group, e.enumError("type", raw)
	}
	group.Type = kind
	referenceEls := e.children("junctionReference")
	if len(referenceEls) == 0 {
		return group, e.structure("must contain at least one junctionReference")
	}
	for _, referenceEl := range referenceEls {
		junction, err := referenceEl.reqRef("junction")
		if err != nil {
			return group, err
		}
		referenceEl.flagUnknown()
		group.JunctionReference = append(group.JunctionReference, JunctionReference{Junction: junction})
	}
	if group.Additional, err = parser.readAdditionalData(e); err != nil {
		return group, err
	}
	e.flagUnknown()
	return group, nil
}

func (parser *Parser) readStation(e *elem) (Station, error) {
	var station Station
	var err error
	if station.ID, err = e.reqRef("id"); err != nil {
		return station, err
	}
	if station.Name, err = e.reqString("name"); err != nil {
		return station, err
	}
	if raw, ok := e.attrRaw("type"); ok {
		kind, known := stationTypeByName[raw]
		if !known {
			return station, e.enumError("type", raw)
		}
		station.Type = &kind
	}
	platformEls := e.children("platform")
	if len(platformEls) == 0 {
		return station, e.structure("must contain at least one platform")
	}
	for _, platformEl := range platformEls {
		platform, err := parser.readPlatform(platformEl)
		if err != nil {
			return station, err
		}
		station.Platform = append(station.Platform, platform)
	}
	if station.Additional, err = parser.readAdditionalData(e); err != nil {
		return station, err
	}
	e.flagUnknown()
	return station, nil
}

func (parser *Parser) readPlatform(e *elem) (Platform, error) {
	var platform Platform
	var err error
	if platform.ID, err = e.reqRef("id"); err != nil {
		return platform, err
	}
	platform.Name = e.optString("name")
	segmentEls := e.children("segment")
	if len(segmentEls) == 0 {
		return platform, e.structure("must contain at least one segment")
	}
	for _, segmentEl := range segmentEls {
		var segment PlatformSegment
		if segment.RoadID, err = segmentEl.reqRef("roadId"); err != nil {
			return platform, err
		}
		if segment.SStart, err = segmentEl.reqPosLength("sStart"); err != nil {
			return platform, err
		}
		if segment.SEnd, err = segmentEl.reqPosLength("sEnd"); err != nil {
			return platform, err
		}
		raw, err := segmentEl.reqString("side")
		if err != nil {
			return platform, err
		}
		side, known := segmentSideByName[raw]
		if !known {
			return platform, segmentEl.enumError("side", raw)
		}
		segment.Side = side
		segmentEl.flagUnknown()
		platform.Segment = append(platform.Segment, segment)
	}
	if platform.Additional, err = parser.readAdditionalData(e); err != nil {
		return platform, err
	}
	e.flagUnknown()
	return platform, nil
}

func (parser *Parser) readAdditionalData(e *elem) (AdditionalData, error) {
	var additional AdditionalData
	for _, userDataEl := range e.children("userData") {
		userData, err := parser.readUserData(userDataEl)
		if err != nil {
			return additional, err
		}
		additional.UserData = append(additional.UserData, userData)
	}
	for _, includeEl := range e.children("include") {
		file, err := includeEl.reqString("file")
		if err != nil {
			return additional, err
		}
		includeEl.flagUnknown()
		additional.Include = append(additional.Include, Include{File: file})
	}
	if qualityEl := e.child("dataQuality"); qualityEl != nil {
		quality, err := parser.readDataQuality(qualityEl)
		if err != nil {
			return additional, err
		}
		additional.DataQuality = &quality
	}
	return additional, nil
}

// readUserData keeps the payload below userData verbatim; it is opaque by
// contract, so nothing inside is flagged as unknown.
func (parser *Parser) readUserData(e *elem) (UserData, error) {
	var userData UserData
	var err error
	if userData.Code, err = e.reqString("code"); err != nil {
		return userData, err
	}
	userData.Value = e.optString("value")
	for _, child := range e.el.ChildElements() {
		userData.Content = append(userData.Content, snapshotElement(child))
	}
	return userData, nil
}

func snapshotElement(el *etree.Element) RawElement {
	raw := RawElement{Name: fullTag(el), Text: strings.TrimSpace(el.Text())}
	for _, attr := range el.Attr {
		raw.Attrs = append(raw.Attrs, RawAttr{Key: fullAttrKey(attr), Value: attr.Value})
	}
	for _, child := range el.ChildElements() {
		raw.Children = append(raw.Children, snapshotElement(child))
	}
	return raw
}

func (parser *Parser) readDataQuality(e *elem) (DataQuality, error) {
	var quality DataQuality
	if errorEl := e.child("error"); errorEl != nil {
		var qualityError DataQualityError
		var err error
		if qualityError.XYAbsolute, err = errorEl.reqPosLength("xyAbsolute"); err != nil {
			return quality, err
		}
		if qualityError.XYRelative, err = errorEl.reqPosLength("xyRelative"); err != nil {
			return quality, err
		}
		if qualityError.ZAbsolute, err = errorEl.reqPosLength("zAbsolute"); err != nil {
			return quality, err
		}
		if qualityError.ZRelative, err = errorEl.reqPosLength("zRelative"); err != nil {
			return quality, err
		}
		errorEl.flagUnknown()
		quality.Error = &qualityError
	}
	if rawDataEl := e.child("rawData"); rawDataEl != nil {
		var rawData RawData
		var err error
		if rawData.Date, err = rawDataEl.reqString("date"); err != nil {
			return quality, err
		}
		sourceRaw, err := rawDataEl.reqString("source")
		if err != nil {
			return quality, err
		}
		source, known := dataSourceByName[sourceRaw]
		if !known {
			return quality, rawDataEl.enumError("source", sourceRaw)
		}
		rawData.Source = source
		rawData.SourceComment = rawDataEl.optString("sourceComment")
		postRaw, err := rawDataEl.reqString("postProcessing")
		if err != nil {
			return quality, err
		}
		post, known := dataPostProcessingByName[postRaw]
		if !known {
			return quality, rawDataEl.enumError("postProcessing", postRaw)
		}
		rawData.PostProcessing = post
		rawData.PostProcessingComment = rawDataEl.optString("postProcessingComment")
		rawDataEl.flagUnknown()
		quality.RawData = &rawData
	}
	e.flagUnknown()
	return quality, nil
}
