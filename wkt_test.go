package opendrive

import (
	"testing"
)

func TestRoadWKT(t *testing.T) {
	road := exportRoad()
	out, err := RoadWKT(&road, 2.5)
	if err != nil {
		t.Error(err)
		return
	}
	expected := "LINESTRING(0 0,2.5 0,5 0,7.5 0,10 0)"
	if out != expected {
		t.Errorf("WKT must be '%s', but got '%s'", expected, out)
	}

	if _, err := RoadWKT(&road, 0); err == nil {
		t.Errorf("Zero sampling step must be rejected")
	}
}
