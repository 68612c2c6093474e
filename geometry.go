package opendrive

import (
	"math"

	"github.com/paulmach/orb"
)

// PlanView is the reference line of a road: a chain of geometry segments
// parametrized by arc length, each starting where the previous one ends.
type PlanView struct {
	Geometry []Geometry

	Additional AdditionalData
}

type GeometryKind uint8

const (
	GEOMETRY_LINE = GeometryKind(iota + 1)
	GEOMETRY_SPIRAL
	GEOMETRY_ARC
	GEOMETRY_POLY3
	GEOMETRY_PARAM_POLY3
)

func (iotaIdx GeometryKind) String() string {
	return [...]string{"line", "spiral", "arc", "poly3", "paramPoly3"}[iotaIdx-1]
}

// Geometry is a single segment of the reference line: a start pose on the
// inertial frame, a length along the curve and exactly one shape.
type Geometry struct {
	S      Length
	X      Length
	Y      Length
	Hdg    Angle
	Length Length

	Line       *Line
	Spiral     *Spiral
	Arc        *Arc
	Poly3      *Poly3
	ParamPoly3 *ParamPoly3

	Additional AdditionalData
}

// Line continues straight along the start heading.
type Line struct {
}

// Spiral is an Euler spiral: curvature changes linearly from CurvStart at
// the segment start to CurvEnd at the segment end.
type Spiral struct {
	CurvStart Curvature
	CurvEnd   Curvature
}

// Arc bends with constant curvature, positive to the left.
type Arc struct {
	Curvature Curvature
}

// Poly3 offsets the curve from the local u axis (start heading) by
// v = a + b*u + c*u^2 + d*u^3.
type Poly3 struct {
	A float64
	B float64
	C float64
	D float64
}

// ParamPoly3 describes both local coordinates as cubic polynomials of a
// common parameter p, running over [0, 1] or [0, length] depending on
// PRange.
type ParamPoly3 struct {
	AU     float64
	BU     float64
	CU     float64
	DU     float64
	AV     float64
	BV     float64
	CV     float64
	DV     float64
	PRange PRange
}

type PRange uint8

const (
	P_RANGE_ARC_LENGTH = PRange(iota + 1)
	P_RANGE_NORMALIZED
)

func (iotaIdx PRange) String() string {
	return [...]string{"arcLength", "normalized"}[iotaIdx-1]
}

var pRangeByName = map[string]PRange{
	"arcLength":  P_RANGE_ARC_LENGTH,
	"normalized": P_RANGE_NORMALIZED,
}

// Kind reports which shape the segment carries, 0 when none is set.
func (geometry *Geometry) Kind() GeometryKind {
	switch {
	case geometry.Line != nil:
		return GEOMETRY_LINE
	case geometry.Spiral != nil:
		return GEOMETRY_SPIRAL
	case geometry.Arc != nil:
		return GEOMETRY_ARC
	case geometry.Poly3 != nil:
		return GEOMETRY_POLY3
	case geometry.ParamPoly3 != nil:
		return GEOMETRY_PARAM_POLY3
	}
	return 0
}

// Evaluate maps an arc length offset within the segment to a position and
// heading on the inertial frame. Offsets outside [0, Length] fail with
// OffsetRangeError. A Geometry without a shape panics: such a value cannot
// come out of the Parser and indicates a caller bug.
func (geometry *Geometry) Evaluate(s Length) (orb.Point, Angle, error) {
	off := s.Meters()
	length := geometry.Length.Meters()
	if off < 0 || off > length {
		return orb.Point{}, 0, &OffsetRangeError{Offset: off, Length: length}
	}
	hdg := geometry.Hdg.Radians()
	start := orb.Point{geometry.X.Meters(), geometry.Y.Meters()}
	switch {
	case geometry.Line != nil:
		return movePoint(start, hdg, off), geometry.Hdg, nil
	case geometry.Arc != nil:
		pt, theta := evaluateArc(start, hdg, geometry.Arc.Curvature.InverseMeters(), off)
		return pt, Angle(theta), nil
	case geometry.Spiral != nil:
		k0 := geometry.Spiral.CurvStart.InverseMeters()
		k1 := geometry.Spiral.CurvEnd.InverseMeters()
		kdot := 0.0
		if length > 0 {
			kdot = (k1 - k0) / length
		}
		pt, theta := evaluateClothoid(start, hdg, k0, kdot, off)
		return pt, Angle(theta), nil
	case geometry.Poly3 != nil:
		pt, theta := geometry.Poly3.evaluate(start, hdg, off)
		return pt, Angle(theta), nil
	case geometry.ParamPoly3 != nil:
		pt, theta := geometry.ParamPoly3.evaluate(start, hdg, off, length)
		return pt, Angle(theta), nil
	}
	panic("opendrive: geometry segment carries no shape")
}

// EndPosition returns the pose at the far end of the segment, where the
// next segment of the plan view starts.
func (geometry *Geometry) EndPosition() (orb.Point, Angle, error) {
	return geometry.Evaluate(geometry.Length)
}

func movePoint(pt orb.Point, direction, distance float64) orb.Point {
	return orb.Point{pt[0] + distance*math.Cos(direction), pt[1] + distance*math.Sin(direction)}
}

// evaluateArc uses the closed circular form. Curvatures below 1e-12 are
// treated as straight to keep the division stable.
func evaluateArc(start orb.Point, hdg, curvature, s float64) (orb.Point, float64) {
	if math.Abs(curvature) < 1e-12 {
		return movePoint(start, hdg, s), hdg
	}
	theta := hdg + curvature*s
	return orb.Point{
		start[0] + (math.Sin(theta)-math.Sin(hdg))/curvature,
		start[1] - (math.Cos(theta)-math.Cos(hdg))/curvature,
	}, theta
}

// evaluateClothoid integrates the Fresnel integrals of the Euler spiral
// with composite Simpson quadrature. Unlike the closed Fresnel scaling
// this stays finite for any curvature rate, including zero.
func evaluateClothoid(start orb.Point, hdg, k0, kdot, s float64) (orb.Point, float64) {
	theta := func(u float64) float64 {
		return hdg + k0*u + 0.5*kdot*u*u
	}
	if s == 0 {
		return start, theta(0)
	}
	n := simpsonSteps(math.Abs(k0*s + 0.5*kdot*s*s))
	h := s / float64(n)
	sumX := 0.0
	sumY := 0.0
	for i := 0; i <= n; i++ {
		t := theta(float64(i) * h)
		w := simpsonWeight(i, n)
		sumX += w * math.Cos(t)
		sumY += w * math.Sin(t)
	}
	return orb.Point{
		start[0] + sumX*h/3.0,
		start[1] + sumY*h/3.0,
	}, theta(s)
}

func simpsonSteps(headingChange float64) int {
	n := 64 + int(headingChange*64.0/math.Pi)
	if n > 8192 {
		n = 8192
	}
	if n%2 != 0 {
		n++
	}
	return n
}

func simpsonWeight(i, n int) float64 {
	switch {
	case i == 0 || i == n:
		return 1.0
	case i%2 != 0:
		return 4.0
	}
	return 2.0
}

func (poly *Poly3) offsetAt(u float64) float64 {
	return poly.A + poly.B*u + poly.C*u*u + poly.D*u*u*u
}

func (poly *Poly3) slopeAt(u float64) float64 {
	return poly.B + 2.0*poly.C*u + 3.0*poly.D*u*u
}

// evaluate solves the local abscissa whose curve arc length equals s with
// Newton iterations, then maps the local point through the start pose.
func (poly *Poly3) evaluate(start orb.Point, hdg, s float64) (orb.Point, float64) {
	u := s
	for i := 0; i < 16; i++ {
		f := poly.arcLengthTo(u) - s
		if math.Abs(f) < 1e-12 {
			break
		}
		u -= f / math.Sqrt(1.0+poly.slopeAt(u)*poly.slopeAt(u))
		if u < 0 {
			u = 0
		}
	}
	v := poly.offsetAt(u)
	sin, cos := math.Sincos(hdg)
	return orb.Point{
		start[0] + u*cos - v*sin,
		start[1] + u*sin + v*cos,
	}, hdg + math.Atan(poly.slopeAt(u))
}

func (poly *Poly3) arcLengthTo(u float64) float64 {
	if u == 0 {
		return 0
	}
	n := 128
	h := u / float64(n)
	sum := 0.0
	for i := 0; i <= n; i++ {
		slope := poly.slopeAt(float64(i) * h)
		sum += simpsonWeight(i, n) * math.Sqrt(1.0+slope*slope)
	}
	return sum * h / 3.0
}

func (poly *ParamPoly3) evaluate(start orb.Point, hdg, s, length float64) (orb.Point, float64) {
	p := s
	if poly.PRange == P_RANGE_NORMALIZED {
		if length > 0 {
			p = s / length
		} else {
			p = 0
		}
	}
	u := poly.AU + poly.BU*p + poly.CU*p*p + poly.DU*p*p*p
	v := poly.AV + poly.BV*p + poly.CV*p*p + poly.DV*p*p*p
	du := poly.BU + 2.0*poly.CU*p + 3.0*poly.DU*p*p
	dv := poly.BV + 2.0*poly.CV*p + 3.0*poly.DV*p*p
	theta := hdg
	if du != 0 || dv != 0 {
		theta += math.Atan2(dv, du)
	}
	sin, cos := math.Sincos(hdg)
	return orb.Point{
		start[0] + u*cos - v*sin,
		start[1] + u*sin + v*cos,
	}, theta
}
