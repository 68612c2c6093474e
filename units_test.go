package opendrive

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		0:    "0.0000000000000000e+00",
		1:    "1.0000000000000000e+00",
		3.57: "3.5699999999999998e+00",
		-0.5: "-5.0000000000000000e-01",
		100:  "1.0000000000000000e+02",
	}
	for v, expected := range cases {
		if got := formatFloat(v); got != expected {
			t.Errorf("formatFloat(%v) must be '%s', but got '%s'", v, expected, got)
		}
	}
}

// 17 significant digits reproduce the exact float64 on re-parse.
func TestFormatFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{math.Pi, 1.0 / 3.0, 2.5e-8, -123456.789} {
		back, err := strconv.ParseFloat(formatFloat(v), 64)
		if err != nil {
			t.Error(err)
			return
		}
		if back != v {
			t.Errorf("Value %v must survive formatting, but got %v", v, back)
		}
	}
}

func TestUnits(t *testing.T) {
	if Length(1500).Kilometers() != 1.5 {
		t.Errorf("1500 m must be 1.5 km, but got %v", Length(1500).Kilometers())
	}
	if Length(2.5).Meters() != 2.5 {
		t.Errorf("Meters must be the identity, but got %v", Length(2.5).Meters())
	}
	if math.Abs(Angle(math.Pi).Degrees()-180.0) > 1e-12 {
		t.Errorf("Pi radians must be 180 degrees, but got %v", Angle(math.Pi).Degrees())
	}
	if Curvature(0.1).Radius() != 10.0 {
		t.Errorf("Curvature 0.1 must mean radius 10, but got %v", Curvature(0.1).Radius())
	}
	if !math.IsInf(Curvature(0).Radius(), 1) {
		t.Errorf("Zero curvature must mean infinite radius, but got %v", Curvature(0).Radius())
	}
}

func TestMaxSpeedString(t *testing.T) {
	if got := (MaxSpeed{NoLimit: true}).String(); got != "no limit" {
		t.Errorf("Unlimited speed must render as 'no limit', but got '%s'", got)
	}
	if got := (MaxSpeed{Undefined: true}).String(); got != "undefined" {
		t.Errorf("Undefined speed must render as 'undefined', but got '%s'", got)
	}
	if got := (MaxSpeed{Value: 40}).String(); got != "4.0000000000000000e+01" {
		t.Errorf("Numeric speed must render in exponent notation, but got '%s'", got)
	}
}

func TestEnumNames(t *testing.T) {
	if GEOMETRY_PARAM_POLY3.String() != "paramPoly3" {
		t.Errorf("Geometry kind name must be 'paramPoly3', but got '%s'", GEOMETRY_PARAM_POLY3.String())
	}
	if P_RANGE_ARC_LENGTH.String() != "arcLength" {
		t.Errorf("PRange name must be 'arcLength', but got '%s'", P_RANGE_ARC_LENGTH.String())
	}
	if SPEED_KMH.String() != "km/h" || speedUnitByName["km/h"] != SPEED_KMH {
		t.Errorf("Speed unit km/h must map both ways")
	}
	if UNIT_PERCENT.String() != "%" || unitByName["%"] != UNIT_PERCENT {
		t.Errorf("Unit %% must map both ways")
	}
	if CONTACT_POINT_START.String() != "start" {
		t.Errorf("Contact point name must be 'start', but got '%s'", CONTACT_POINT_START.String())
	}
	if JUNCTION_DIRECT.String() != "direct" {
		t.Errorf("Junction type name must be 'direct', but got '%s'", JUNCTION_DIRECT.String())
	}
	if LANE_CONNECTING_RAMP.String() != "connectingRamp" {
		t.Errorf("Lane type name must be 'connectingRamp', but got '%s'", LANE_CONNECTING_RAMP.String())
	}
}
