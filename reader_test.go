package opendrive

import (
	"fmt"
	"testing"
)

func TestParseHeaderOnly(t *testing.T) {
	source := `
            <?xml version="1.0" standalone="yes"?>
            <OpenDRIVE>
                <header revMajor="1" revMinor="7" name="" version="1.00" date="Tue Feb 25 13:02:27 2020" north="0.0000000000000000e+00" south="0.0000000000000000e+00" east="0.0000000000000000e+00" west="0.0000000000000000e+00">
                </header>
            </OpenDRIVE>
        `
	parser := NewParser()
	doc, err := parser.ParseBytes([]byte(source))
	if err != nil {
		t.Error(err)
		return
	}
	if doc.Header.RevMajor != 1 || doc.Header.RevMinor != 7 {
		t.Errorf("Revision must be 1.7, but got %d.%d", doc.Header.RevMajor, doc.Header.RevMinor)
	}
	if doc.Header.Name == nil || *doc.Header.Name != "" {
		t.Errorf("Header name must be present and empty, but got %v", doc.Header.Name)
	}
	if doc.Header.Version == nil || *doc.Header.Version != "1.00" {
		t.Errorf("Header version must be '1.00', but got %v", doc.Header.Version)
	}
	if doc.Header.Date == nil || *doc.Header.Date != "Tue Feb 25 13:02:27 2020" {
		t.Errorf("Header date must be 'Tue Feb 25 13:02:27 2020', but got %v", doc.Header.Date)
	}
	if doc.Header.North == nil || doc.Header.North.Meters() != 0 {
		t.Errorf("Header north must be 0, but got %v", doc.Header.North)
	}
	if len(doc.Roads) != 0 {
		t.Errorf("Document must carry no roads, but got %d", len(doc.Roads))
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Diagnostics must be empty, but got %v", parser.Diagnostics())
	}
}

func TestParseCenterLaneBorder(t *testing.T) {
	source := `
            <?xml version="1.0" standalone="yes"?>
            <OpenDRIVE>
                <header revMajor="1" revMinor="7" name="" version="1.00" date="Tue Feb 25 13:02:27 2020" north="0.0000000000000000e+00" south="0.0000000000000000e+00" east="0.0000000000000000e+00" west="0.0000000000000000e+00">
                </header>
                <road rule="RHT" name="" length="1.0000000000000000e+02" id="1" junction="-1">
                    <link>
                    </link>
                    <planView>
                        <geometry s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="1.0000000000000000e+02">
                            <line/>
                        </geometry>
                    </planView>
                    <lateralProfile>
                    </lateralProfile>
                    <lanes>
                        <laneSection s="0.0000000000000000e+00">
                            <center>
                                <lane id="1337" type="driving" level="false">
                                    <border sOffset="0.0000000000000000e+00" a="3.5699999999999998e+00" b="0.0000000000000000e+00" c="0.0000000000000000e+00" d="0.0000000000000000e+00"/>
                                </lane>
                            </center>
                        </laneSection>
                    </lanes>
                </road>
            </OpenDRIVE>
        `
	parser := NewParser()
	doc, err := parser.ParseBytes([]byte(source))
	if err != nil {
		t.Error(err)
		return
	}
	if len(doc.Roads) != 1 {
		t.Errorf("Document must carry 1 road, but got %d", len(doc.Roads))
		return
	}
	road := &doc.Roads[0]
	if road.ID != "1" || road.Junction != "-1" {
		t.Errorf("Road identity must be id=1 junction=-1, but got id=%s junction=%s", road.ID, road.Junction)
	}
	if road.InJunction() {
		t.Errorf("Road with junction=-1 must be standalone")
	}
	if road.Rule != TRAFFIC_RULE_RHT {
		t.Errorf("Road rule must be %v, but got %v", TRAFFIC_RULE_RHT, road.Rule)
	}
	if road.Length.Meters() != 100 {
		t.Errorf("Road length must be 100, but got %v", road.Length.Meters())
	}
	if road.Link == nil {
		t.Errorf("Road link must survive even when empty")
	}
	if road.LateralProfile == nil {
		t.Errorf("Lateral profile must survive even when empty")
	}
	if len(road.PlanView.Geometry) != 1 {
		t.Errorf("Plan view must carry 1 geometry, but got %d", len(road.PlanView.Geometry))
		return
	}
	if kind := road.PlanView.Geometry[0].Kind(); kind != GEOMETRY_LINE {
		t.Errorf("Geometry kind must be %v, but got %v", GEOMETRY_LINE, kind)
	}
	if len(road.Lanes.LaneSection) != 1 {
		t.Errorf("Lanes must carry 1 section, but got %d", len(road.Lanes.LaneSection))
		return
	}
	center := &road.Lanes.LaneSection[0].Center
	if len(center.Lane) != 1 {
		t.Errorf("Center side must carry 1 lane, but got %d", len(center.Lane))
		return
	}
	lane := &center.Lane[0]
	if lane.ID != 1337 {
		t.Errorf("Center lane id must be 1337, but got %d", lane.ID)
	}
	if lane.Type != LANE_DRIVING {
		t.Errorf("Center lane type must be %v, but got %v", LANE_DRIVING, lane.Type)
	}
	if len(lane.Border) != 1 {
		t.Errorf("Center lane must carry 1 border, but got %d", len(lane.Border))
		return
	}
	if lane.Border[0].A != 3.57 {
		t.Errorf("Border width must be 3.57, but got %v", lane.Border[0].A)
	}
}

func TestParseDefaults(t *testing.T) {
	source := `
            <?xml version="1.0" standalone="yes"?>
            <OpenDRIVE>
                <header revMajor="1" revMinor="7"></header>
                <road length="5.0000000000000000e+01" id="2" junction="-1">
                    <type s="0.0000000000000000e+00" type="town">
                        <speed max="40"/>
                    </type>
                    <planView>
                        <geometry s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="5.0000000000000000e+01">
                            <arc curvature="1.0000000000000000e-02"/>
                        </geometry>
                    </planView>
                    <lanes>
                        <laneSection s="0.0000000000000000e+00">
                            <center>
                                <lane id="0" type="none">
                                    <roadMark sOffset="0.0000000000000000e+00" type="solid"/>
                                </lane>
                            </center>
                            <right>
                                <lane id="-1" type="driving">
                                    <width sOffset="0.0000000000000000e+00" a="3.5000000000000000e+00" b="0.0000000000000000e+00" c="0.0000000000000000e+00" d="0.0000000000000000e+00"/>
                                    <speed sOffset="0.0000000000000000e+00" max="13.89"/>
                                </lane>
                            </right>
                        </laneSection>
                    </lanes>
                    <objects>
                        <object id="10" s="1.0000000000000000e+01" t="0.0000000000000000e+00" zOffset="0.0000000000000000e+00"/>
                    </objects>
                </road>
                <junction id="50">
                    <connection id="0" incomingRoad="2" connectingRoad="2" contactPoint="start">
                        <laneLink from="-1" to="-1"/>
                    </connection>
                </junction>
            </OpenDRIVE>
        `
	parser := NewParser()
	doc, err := parser.ParseBytes([]byte(source))
	if err != nil {
		t.Error(err)
		return
	}
	road := doc.RoadByID("2")
	if road == nil {
		t.Errorf("Road 2 must be present")
		return
	}
	if road.Rule != TRAFFIC_RULE_RHT {
		t.Errorf("Omitted road rule must default to %v, but got %v", TRAFFIC_RULE_RHT, road.Rule)
	}
	if len(road.Type) != 1 || road.Type[0].Speed == nil {
		t.Errorf("Road type record with speed must be present")
		return
	}
	if road.Type[0].Speed.Unit != SPEED_MS {
		t.Errorf("Omitted speed unit must default to %v, but got %v", SPEED_MS, road.Type[0].Speed.Unit)
	}
	if road.Type[0].Speed.Max.Value != 40 {
		t.Errorf("Speed max must be 40, but got %v", road.Type[0].Speed.Max.Value)
	}
	section := &road.Lanes.LaneSection[0]
	if section.SingleSide {
		t.Errorf("Omitted singleSide must default to false")
	}
	mark := &section.Center.Lane[0].RoadMark[0]
	if mark.Color != ROAD_MARK_COLOR_STANDARD {
		t.Errorf("Omitted roadMark color must default to %v, but got %v", ROAD_MARK_COLOR_STANDARD, mark.Color)
	}
	if mark.LaneChange != LANE_CHANGE_BOTH {
		t.Errorf("Omitted laneChange must default to %v, but got %v", LANE_CHANGE_BOTH, mark.LaneChange)
	}
	if mark.Weight != nil {
		t.Errorf("Omitted weight must stay absent, but got %v", *mark.Weight)
	}
	right := section.Right.Lane[0]
	if right.Level {
		t.Errorf("Omitted lane level must default to false")
	}
	if right.Speed[0].Unit != SPEED_MS {
		t.Errorf("Omitted lane speed unit must default to %v, but got %v", SPEED_MS, right.Speed[0].Unit)
	}
	object := &road.Objects.Object[0]
	if object.Dynamic {
		t.Errorf("Omitted object dynamic must default to false")
	}
	if object.PerpToRoad {
		t.Errorf("Omitted perpToRoad must default to false")
	}
	junction := doc.JunctionByID("50")
	if junction == nil {
		t.Errorf("Junction 50 must be present")
		return
	}
	if junction.Type != JUNCTION_DEFAULT {
		t.Errorf("Omitted junction type must default to %v, but got %v", JUNCTION_DEFAULT, junction.Type)
	}
	if junction.Connection[0].Type != CONNECTION_DEFAULT {
		t.Errorf("Omitted connection type must default to %v, but got %v", CONNECTION_DEFAULT, junction.Connection[0].Type)
	}
}

func geometryFixture(attrs string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry %s>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`, attrs))
}

const geometryAttrsComplete = `s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="1.0000000000000000e+01"`

func TestParseUnsupportedVersion(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="6"></header>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	verr, ok := err.(*UnsupportedVersionError)
	if !ok {
		t.Errorf("Error must be *UnsupportedVersionError, but got %T (%v)", err, err)
		return
	}
	if verr.Major != "1" || verr.Minor != "6" {
		t.Errorf("Rejected revision must be 1.6, but got %s.%s", verr.Major, verr.Minor)
	}
	expected := "Unsupported OpenDRIVE revision 1.6, only 1.7 can be handled"
	if verr.Error() != expected {
		t.Errorf("Error text must be '%s', but got '%s'", expected, verr.Error())
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(`<OpenDRIVE><header revMajor="1"`))
	if _, ok := err.(*MalformedXMLError); !ok {
		t.Errorf("Truncated input must fail with *MalformedXMLError, but got %T (%v)", err, err)
	}
	_, err = NewParser().ParseBytes([]byte(`<roadNetwork/>`))
	merr, ok := err.(*MalformedXMLError)
	if !ok {
		t.Errorf("Foreign root must fail with *MalformedXMLError, but got %T (%v)", err, err)
		return
	}
	expected := "root element is 'roadNetwork', expected 'OpenDRIVE'"
	if merr.Reason != expected {
		t.Errorf("Reason must be '%s', but got '%s'", expected, merr.Reason)
	}
}

func TestParseMissingField(t *testing.T) {
	attrs := `s="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="1.0000000000000000e+01"`
	_, err := NewParser().ParseBytes(geometryFixture(attrs))
	merr, ok := err.(*MissingFieldError)
	if !ok {
		t.Errorf("Error must be *MissingFieldError, but got %T (%v)", err, err)
		return
	}
	if merr.Field != "x" || merr.Element != "geometry" {
		t.Errorf("Missing field must be geometry/x, but got %s/%s", merr.Element, merr.Field)
	}
	if merr.Path != "OpenDRIVE/road[0]/planView/geometry[0]" {
		t.Errorf("Error path must point at the geometry, but got %s", merr.Path)
	}
}

func TestParseEnumError(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="flying"/>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	eerr, ok := err.(*EnumError)
	if !ok {
		t.Errorf("Error must be *EnumError, but got %T (%v)", err, err)
		return
	}
	if eerr.Field != "type" || eerr.Value != "flying" {
		t.Errorf("Rejected value must be type='flying', but got %s='%s'", eerr.Field, eerr.Value)
	}
}

func TestParseNumberErrors(t *testing.T) {
	attrs := `s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="abc"`
	_, err := NewParser().ParseBytes(geometryFixture(attrs))
	if _, ok := err.(*NumberError); !ok {
		t.Errorf("Unparsable number must fail with *NumberError, but got %T (%v)", err, err)
	}

	attrs = `s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="0x1p-2"`
	_, err = NewParser().ParseBytes(geometryFixture(attrs))
	if _, ok := err.(*NumberError); !ok {
		t.Errorf("Hexadecimal float must fail with *NumberError, but got %T (%v)", err, err)
	}

	attrs = `s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="NaN" length="1.0000000000000000e+01"`
	_, err = NewParser().ParseBytes(geometryFixture(attrs))
	derr, ok := err.(*DomainError)
	if !ok {
		t.Errorf("NaN must fail with *DomainError, but got %T (%v)", err, err)
		return
	}
	if derr.Reason != "must be finite" {
		t.Errorf("Domain reason must be 'must be finite', but got '%s'", derr.Reason)
	}
}

func TestParseShapeChoice(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
                <arc curvature="1.0000000000000000e-02"/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	if _, ok := err.(*StructureError); !ok {
		t.Errorf("Two shapes must fail with *StructureError, but got %T (%v)", err, err)
	}

	source = `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`
	_, err = NewParser().ParseBytes([]byte(source))
	merr, ok := err.(*MissingFieldError)
	if !ok {
		t.Errorf("Shapeless geometry must fail with *MissingFieldError, but got %T (%v)", err, err)
		return
	}
	if merr.Field != "line/spiral/arc/poly3/paramPoly3" {
		t.Errorf("Missing field must name the shape choice, but got '%s'", merr.Field)
	}
}

func TestParseSignalPositionChoice(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
        <signals>
            <signal s="1.0000000000000000e+00" t="0.0000000000000000e+00" id="900" dynamic="no" orientation="+" zOffset="2.0000000000000000e+00" type="206" subtype="-1">
                <positionRoad roadId="1" s="1.0000000000000000e+00" t="0.0000000000000000e+00" zOffset="2.0000000000000000e+00" hOffset="0.0000000000000000e+00"/>
                <positionInertial x="0.0000000000000000e+00" y="0.0000000000000000e+00" z="0.0000000000000000e+00" hdg="0.0000000000000000e+00"/>
            </signal>
        </signals>
    </road>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	serr, ok := err.(*StructureError)
	if !ok {
		t.Errorf("Both signal positions must fail with *StructureError, but got %T (%v)", err, err)
		return
	}
	if serr.Reason != "positionRoad and positionInertial exclude each other" {
		t.Errorf("Structure reason must name the position choice, but got '%s'", serr.Reason)
	}
}

func TestParseDuplicateLaneID(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
                <right>
                    <lane id="1" type="driving"/>
                    <lane id="1" type="driving"/>
                </right>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	derr, ok := err.(*DuplicateIDError)
	if !ok {
		t.Errorf("Duplicated lane id must fail with *DuplicateIDError, but got %T (%v)", err, err)
		return
	}
	if derr.ID != "1" || derr.Element != "right" {
		t.Errorf("Duplicate must be right/1, but got %s/%s", derr.Element, derr.ID)
	}
}

func TestParseEmptyReference(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
    </road>
</OpenDRIVE>`
	_, err := NewParser().ParseBytes([]byte(source))
	rerr, ok := err.(*ReferenceError)
	if !ok {
		t.Errorf("Empty junction reference must fail with *ReferenceError, but got %T (%v)", err, err)
		return
	}
	if rerr.Field != "junction" {
		t.Errorf("Reference field must be 'junction', but got '%s'", rerr.Field)
	}
}

func TestParseDiagnostics(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1" closed="yes">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
        <surface>
            <CRG file="surface.crg"/>
        </surface>
    </road>
</OpenDRIVE>`
	parser := NewParser()
	_, err := parser.ParseBytes([]byte(source))
	if err != nil {
		t.Error(err)
		return
	}
	diagnostics := parser.Diagnostics()
	if len(diagnostics) != 2 {
		t.Errorf("Parser must report 2 findings, but got %d: %v", len(diagnostics), diagnostics)
		return
	}
	if diagnostics[0].Name != "closed" || diagnostics[0].Message != "unknown attribute skipped" {
		t.Errorf("First finding must flag the 'closed' attribute, but got %v", diagnostics[0])
	}
	if diagnostics[1].Name != "surface" || diagnostics[1].Message != "unknown element skipped" {
		t.Errorf("Second finding must flag the 'surface' element, but got %v", diagnostics[1])
	}
	expected := "OpenDRIVE/road[0]: closed: unknown attribute skipped"
	if diagnostics[0].String() != expected {
		t.Errorf("Finding must render as '%s', but got '%s'", expected, diagnostics[0].String())
	}

	// A second run on clean input drops the findings of the first one.
	_, err = parser.ParseBytes(geometryFixture(geometryAttrsComplete))
	if err != nil {
		t.Error(err)
		return
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Diagnostics must reset between runs, but got %v", parser.Diagnostics())
	}
}

func TestParseUserData(t *testing.T) {
	source := `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry ` + geometryAttrsComplete + `>
                <line/>
            </geometry>
        </planView>
        <lanes>
            <laneSection s="0.0000000000000000e+00">
                <center>
                    <lane id="0" type="none"/>
                </center>
            </laneSection>
        </lanes>
        <userData code="origin" value="import">
            <vectorScene program="RoadRunner" version="2019"/>
        </userData>
        <include file="extra.xodr"/>
    </road>
</OpenDRIVE>`
	parser := NewParser()
	doc, err := parser.ParseBytes([]byte(source))
	if err != nil {
		t.Error(err)
		return
	}
	road := &doc.Roads[0]
	if len(road.Additional.UserData) != 1 {
		t.Errorf("Road must carry 1 userData, but got %d", len(road.Additional.UserData))
		return
	}
	userData := &road.Additional.UserData[0]
	if userData.Code != "origin" {
		t.Errorf("userData code must be 'origin', but got '%s'", userData.Code)
	}
	if userData.Value == nil || *userData.Value != "import" {
		t.Errorf("userData value must be 'import', but got %v", userData.Value)
	}
	if len(userData.Content) != 1 {
		t.Errorf("userData must keep 1 payload element, but got %d", len(userData.Content))
		return
	}
	payload := &userData.Content[0]
	if payload.Name != "vectorScene" {
		t.Errorf("Payload element must be 'vectorScene', but got '%s'", payload.Name)
	}
	if len(payload.Attrs) != 2 || payload.Attrs[0].Key != "program" || payload.Attrs[0].Value != "RoadRunner" {
		t.Errorf("Payload attributes must survive in order, but got %v", payload.Attrs)
	}
	if len(road.Additional.Include) != 1 || road.Additional.Include[0].File != "extra.xodr" {
		t.Errorf("Include must carry file 'extra.xodr', but got %v", road.Additional.Include)
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Opaque userData payload must not be flagged, but got %v", parser.Diagnostics())
	}
}
