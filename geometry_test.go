package opendrive

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestLineEvaluate(t *testing.T) {
	geometry := Geometry{S: 0, X: 0, Y: 0, Hdg: 0, Length: 10, Line: &Line{}}
	pt, heading, err := geometry.Evaluate(5)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 5.0 || pt.Y() != 0.0 {
		t.Errorf("Point on a straight line must be [5 0], but got %v", pt)
	}
	if heading != 0 {
		t.Errorf("Heading on a straight line must be 0, but got %v", heading)
	}
	pt, _, err = geometry.Evaluate(0)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 0.0 || pt.Y() != 0.0 {
		t.Errorf("Point at s=0 must be the segment start, but got %v", pt)
	}

	rotated := Geometry{X: 1, Y: 2, Hdg: Angle(math.Pi / 2.0), Length: 10, Line: &Line{}}
	pt, heading, err = rotated.Evaluate(4)
	if err != nil {
		t.Error(err)
		return
	}
	if math.Abs(pt.X()-1.0) > 1e-9 || math.Abs(pt.Y()-6.0) > 1e-9 {
		t.Errorf("Point on a rotated line must be [1 6], but got %v", pt)
	}
	if heading.Radians() != math.Pi/2.0 {
		t.Errorf("Heading of a line must not change, but got %v", heading)
	}
}

func TestArcEvaluate(t *testing.T) {
	quarter := Geometry{Hdg: 0, Length: Length(5.0 * math.Pi), Arc: &Arc{Curvature: 0.1}}
	pt, heading, err := quarter.Evaluate(quarter.Length)
	if err != nil {
		t.Error(err)
		return
	}
	if math.Abs(pt.X()-10.0) > 1e-9 || math.Abs(pt.Y()-10.0) > 1e-9 {
		t.Errorf("Quarter circle of radius 10 must end at [10 10], but got %v", pt)
	}
	if math.Abs(heading.Radians()-math.Pi/2.0) > 1e-12 {
		t.Errorf("Quarter circle heading must be %v, but got %v", math.Pi/2.0, heading.Radians())
	}

	pt, _, err = quarter.Evaluate(Length(2.5 * math.Pi))
	if err != nil {
		t.Error(err)
		return
	}
	if math.Abs(pt.X()-math.Sin(math.Pi/4.0)*10.0) > 1e-9 || math.Abs(pt.Y()-(1.0-math.Cos(math.Pi/4.0))*10.0) > 1e-9 {
		t.Errorf("Point in the middle of the quarter circle is off: %v", pt)
	}

	mirrored := Geometry{Hdg: 0, Length: Length(5.0 * math.Pi), Arc: &Arc{Curvature: -0.1}}
	pt, heading, err = mirrored.Evaluate(mirrored.Length)
	if err != nil {
		t.Error(err)
		return
	}
	if math.Abs(pt.X()-10.0) > 1e-9 || math.Abs(pt.Y()+10.0) > 1e-9 {
		t.Errorf("Negative curvature must bend to the right, but got %v", pt)
	}
	if math.Abs(heading.Radians()+math.Pi/2.0) > 1e-12 {
		t.Errorf("Heading of the mirrored arc must be %v, but got %v", -math.Pi/2.0, heading.Radians())
	}
}

func TestSpiralZeroCurvature(t *testing.T) {
	geometry := Geometry{Hdg: 0, Length: 10, Spiral: &Spiral{CurvStart: 0, CurvEnd: 0}}
	pt, heading, err := geometry.Evaluate(7)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 7.0 || pt.Y() != 0.0 {
		t.Errorf("Spiral with zero curvature must behave as a line, but got %v", pt)
	}
	if heading != 0 {
		t.Errorf("Heading of a flat spiral must stay 0, but got %v", heading)
	}
}

func TestSpiralConstantCurvature(t *testing.T) {
	geometry := Geometry{Hdg: 0, Length: 20, Spiral: &Spiral{CurvStart: 0.05, CurvEnd: 0.05}}
	for _, s := range []float64{5.0, 12.5, 20.0} {
		pt, heading, err := geometry.Evaluate(Length(s))
		if err != nil {
			t.Error(err)
			return
		}
		arcPt, arcHeading := evaluateArc(orb.Point{}, 0, 0.05, s)
		if math.Abs(pt.X()-arcPt.X()) > 1e-8 || math.Abs(pt.Y()-arcPt.Y()) > 1e-8 {
			t.Errorf("Spiral with constant curvature at s=%v must match the arc %v, but got %v", s, arcPt, pt)
		}
		if math.Abs(heading.Radians()-arcHeading) > 1e-12 {
			t.Errorf("Spiral heading at s=%v must be %v, but got %v", s, arcHeading, heading.Radians())
		}
	}
}

func TestSpiralRampedCurvature(t *testing.T) {
	geometry := Geometry{Hdg: 0, Length: 20, Spiral: &Spiral{CurvStart: 0, CurvEnd: 0.04}}
	pt, heading, err := geometry.Evaluate(20)
	if err != nil {
		t.Error(err)
		return
	}
	// Fresnel integrals of theta(u) = 0.001*u^2 over [0, 20], summed as a
	// power series to well below the quadrature error.
	if math.Abs(pt.X()-19.68236164) > 1e-6 || math.Abs(pt.Y()-2.63634521) > 1e-6 {
		t.Errorf("Clothoid end must be [19.68236164 2.63634521], but got %v", pt)
	}
	if math.Abs(heading.Radians()-0.4) > 1e-12 {
		t.Errorf("Clothoid end heading must be 0.4, but got %v", heading.Radians())
	}
}

func TestPoly3Evaluate(t *testing.T) {
	geometry := Geometry{Hdg: 0, Length: 10, Poly3: &Poly3{C: 0.01}}
	pt, heading, err := geometry.Evaluate(5)
	if err != nil {
		t.Error(err)
		return
	}
	if math.Abs(pt.Y()-0.01*pt.X()*pt.X()) > 1e-9 {
		t.Errorf("Poly3 point must lie on v=0.01*u^2, but got %v", pt)
	}
	if math.Abs(geometry.Poly3.arcLengthTo(pt.X())-5.0) > 1e-9 {
		t.Errorf("Arc length up to u=%v must be 5, but got %v", pt.X(), geometry.Poly3.arcLengthTo(pt.X()))
	}
	expected := math.Atan(0.02 * pt.X())
	if math.Abs(heading.Radians()-expected) > 1e-12 {
		t.Errorf("Poly3 heading must be %v, but got %v", expected, heading.Radians())
	}
}

func TestParamPoly3Evaluate(t *testing.T) {
	normalized := Geometry{Hdg: 0, Length: 10, ParamPoly3: &ParamPoly3{BU: 10, PRange: P_RANGE_NORMALIZED}}
	pt, heading, err := normalized.Evaluate(5)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 5.0 || pt.Y() != 0.0 {
		t.Errorf("Normalized straight paramPoly3 must pass [5 0], but got %v", pt)
	}
	if heading != 0 {
		t.Errorf("Heading of a straight paramPoly3 must be 0, but got %v", heading)
	}

	arcLength := Geometry{Hdg: 0, Length: 10, ParamPoly3: &ParamPoly3{BU: 1, PRange: P_RANGE_ARC_LENGTH}}
	pt, _, err = arcLength.Evaluate(7.5)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 7.5 || pt.Y() != 0.0 {
		t.Errorf("ArcLength straight paramPoly3 must pass [7.5 0], but got %v", pt)
	}

	curved := Geometry{Hdg: 0, Length: 10, ParamPoly3: &ParamPoly3{BU: 10, CV: 1, PRange: P_RANGE_NORMALIZED}}
	pt, heading, err = curved.Evaluate(10)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 10.0 || pt.Y() != 1.0 {
		t.Errorf("Curved paramPoly3 must end at [10 1], but got %v", pt)
	}
	if heading.Radians() != math.Atan2(2.0, 10.0) {
		t.Errorf("Curved paramPoly3 heading must be %v, but got %v", math.Atan2(2.0, 10.0), heading.Radians())
	}

	degenerate := Geometry{Hdg: 0.3, Length: 10, ParamPoly3: &ParamPoly3{PRange: P_RANGE_NORMALIZED}}
	_, heading, err = degenerate.Evaluate(0)
	if err != nil {
		t.Error(err)
		return
	}
	if heading != 0.3 {
		t.Errorf("ParamPoly3 with zero derivative must keep the start heading, but got %v", heading)
	}
}

func TestEvaluateOutsideRange(t *testing.T) {
	geometry := Geometry{Length: 10, Line: &Line{}}
	_, _, err := geometry.Evaluate(11)
	rangeErr, ok := err.(*OffsetRangeError)
	if !ok {
		t.Errorf("Offset beyond the segment must fail with OffsetRangeError, but got %v", err)
		return
	}
	if rangeErr.Offset != 11.0 || rangeErr.Length != 10.0 {
		t.Errorf("OffsetRangeError must carry offset 11 and length 10, but got %v and %v", rangeErr.Offset, rangeErr.Length)
	}
	_, _, err = geometry.Evaluate(-1)
	if _, ok := err.(*OffsetRangeError); !ok {
		t.Errorf("Negative offset must fail with OffsetRangeError, but got %v", err)
	}
}

func TestEvaluateNoShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Evaluating a segment without a shape must panic")
		}
	}()
	geometry := Geometry{Length: 10}
	geometry.Evaluate(5)
}

func TestEndPosition(t *testing.T) {
	geometry := Geometry{X: 3, Y: 4, Hdg: 0, Length: 10, Line: &Line{}}
	pt, heading, err := geometry.EndPosition()
	if err != nil {
		t.Error(err)
		return
	}
	if pt.X() != 13.0 || pt.Y() != 4.0 {
		t.Errorf("Line end must be [13 4], but got %v", pt)
	}
	if heading != 0 {
		t.Errorf("Line end heading must be 0, but got %v", heading)
	}
}

func TestReferenceLine(t *testing.T) {
	road := Road{
		Length: 20,
		PlanView: PlanView{Geometry: []Geometry{
			{S: 0, X: 0, Y: 0, Hdg: 0, Length: 10, Line: &Line{}},
			{S: 10, X: 10, Y: 0, Hdg: 0, Length: 10, Line: &Line{}},
		}},
	}
	line, err := road.ReferenceLine(2.5)
	if err != nil {
		t.Error(err)
		return
	}
	if len(line) != 9 {
		t.Errorf("Reference line must hold 9 samples, but got %d", len(line))
	}
	if line[0].X() != 0.0 || line[0].Y() != 0.0 {
		t.Errorf("Reference line must start at [0 0], but got %v", line[0])
	}
	if line[len(line)-1].X() != 20.0 || line[len(line)-1].Y() != 0.0 {
		t.Errorf("Reference line must end at [20 0], but got %v", line[len(line)-1])
	}
}

func TestReferenceLineBadStep(t *testing.T) {
	road := Road{PlanView: PlanView{Geometry: []Geometry{{Length: 10, Line: &Line{}}}}}
	_, err := road.ReferenceLine(-1)
	if err == nil {
		t.Errorf("Non-positive sampling step must be rejected")
		return
	}
	if err.Error() != "Sampling step must be positive, got -1" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
