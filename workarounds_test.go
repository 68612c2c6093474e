package opendrive

import (
	"bytes"
	"strings"
	"testing"
)

const paramPoly3NoPRange = `<?xml version="1.0" standalone="yes"?>
<OpenDRIVE>
    <header revMajor="1" revMinor="7"></header>
    <road length="1.0000000000000000e+01" id="1" junction="-1">
        <planView>
            <geometry s="0.0000000000000000e+00" x="0.0000000000000000e+00" y="0.0000000000000000e+00" hdg="0.0000000000000000e+00" length="1.0000000000000000e+01">
                <paramPoly3 aU="0.0000000000000000e+00" bU="1.0000000000000000e+00" cU="0.0000000000000000e+00" dU="0.0000000000000000e+00" aV="0.0000000000000000e+00" bV="0.0000000000000000e+00" cV="0.0000000000000000e+00" dV="0.0000000000000000e+00"/>
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

func TestSumoPRangeRead(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte(paramPoly3NoPRange))
	merr, ok := err.(*MissingFieldError)
	if !ok {
		t.Errorf("Missing pRange must fail strict parsing with *MissingFieldError, but got %T (%v)", err, err)
		return
	}
	if merr.Field != "pRange" || merr.Element != "paramPoly3" {
		t.Errorf("Missing field must be paramPoly3/pRange, but got %s/%s", merr.Element, merr.Field)
	}
	if merr.Path != "OpenDRIVE/road[0]/planView/geometry[0]/paramPoly3" {
		t.Errorf("Error path must point at the paramPoly3, but got %s", merr.Path)
	}

	parser := NewParser(WithWorkarounds(Workarounds{SumoIssue10301: true}))
	doc, err := parser.ParseBytes([]byte(paramPoly3NoPRange))
	if err != nil {
		t.Error(err)
		return
	}
	param := doc.Roads[0].PlanView.Geometry[0].ParamPoly3
	if param == nil {
		t.Errorf("paramPoly3 shape must survive")
		return
	}
	if param.PRange != P_RANGE_NORMALIZED {
		t.Errorf("Patched pRange must be %v, but got %v", P_RANGE_NORMALIZED, param.PRange)
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Workaround must not leave findings, but got %v", parser.Diagnostics())
	}
}

func markedRoadDocument(color RoadMarkColor) *Document {
	return &Document{
		Header: Header{RevMajor: 1, RevMinor: 7},
		Roads: []Road{{
			Length:   Length(10),
			ID:       "1",
			Junction: "-1",
			Rule:     TRAFFIC_RULE_RHT,
			PlanView: PlanView{Geometry: []Geometry{{
				Length: Length(10),
				Line:   &Line{},
			}}},
			Lanes: Lanes{LaneSection: []LaneSection{{
				Center: LaneSide{Lane: []Lane{{
					ID:   0,
					Type: LANE_NONE,
					RoadMark: []RoadMark{{
						Type:       ROAD_MARK_SOLID,
						Color:      color,
						LaneChange: LANE_CHANGE_BOTH,
					}},
				}}},
			}}},
		}},
	}
}

func TestSumoRoadMarkColorWrite(t *testing.T) {
	doc := markedRoadDocument(ROAD_MARK_COLOR_STANDARD)
	strict, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Error(err)
		return
	}
	if strings.Contains(string(strict), "color=") {
		t.Errorf("Strict writer must omit the default color, output: %s", strict)
	}
	forced, err := NewWriter(WithWriterWorkarounds(Workarounds{SumoRoadMarkColor: true})).Bytes(doc)
	if err != nil {
		t.Error(err)
		return
	}
	if !strings.Contains(string(forced), `color="standard"`) {
		t.Errorf("Workaround must force the color attribute, output: %s", forced)
	}
}

// A configuration binds to the Parser or Writer it was handed to and must
// not bleed into other instances.
func TestWorkaroundsPerCall(t *testing.T) {
	tolerant := NewParser(WithWorkarounds(Sumo()))
	if _, err := tolerant.ParseBytes([]byte(paramPoly3NoPRange)); err != nil {
		t.Error(err)
		return
	}
	if _, err := NewParser().ParseBytes([]byte(paramPoly3NoPRange)); err == nil {
		t.Errorf("Strict parser must keep rejecting the missing pRange")
	}

	doc := markedRoadDocument(ROAD_MARK_COLOR_YELLOW)
	first, err := NewWriter(WithWriterWorkarounds(Sumo())).Bytes(doc)
	if err != nil {
		t.Error(err)
		return
	}
	second, err := NewWriter().Bytes(doc)
	if err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Workarounds must not change documents they do not apply to")
	}
}
