package opendrive

// ElevationProfile describes the road elevation along the reference line.
type ElevationProfile struct {
	Elevation []Elevation

	Additional AdditionalData
}

// Elevation is a cubic polynomial elev(ds) = a + b*ds + c*ds^2 + d*ds^3
// valid from S until the next record.
type Elevation struct {
	S Length
	A float64
	B float64
	C float64
	D float64
}

// LateralProfile describes banking and surface shape across the road.
type LateralProfile struct {
	Superelevation []Superelevation
	Shape          []Shape

	Additional AdditionalData
}

// Superelevation is the banking angle of the cross section as a cubic
// polynomial of the distance from S.
type Superelevation struct {
	S Length
	A float64
	B float64
	C float64
	D float64
}

// Shape bends the cross section surface at a given s and lateral t.
type Shape struct {
	S Length
	T Length
	A float64
	B float64
	C float64
	D float64
}

// PolyAt evaluates a + b*x + c*x^2 + d*x^3. The records above share this
// form relative to their own start coordinate.
func PolyAt(a, b, c, d, x float64) float64 {
	return a + b*x + c*x*x + d*x*x*x
}

// ElevationAt returns the elevation at the given distance behind the
// record start.
func (elevation *Elevation) ElevationAt(ds float64) float64 {
	return PolyAt(elevation.A, elevation.B, elevation.C, elevation.D, ds)
}

// AngleAt returns the banking angle in radians at the given distance
// behind the record start.
func (superelevation *Superelevation) AngleAt(ds float64) Angle {
	return Angle(PolyAt(superelevation.A, superelevation.B, superelevation.C, superelevation.D, ds))
}
