package opendrive

import (
	"math"
	"strconv"
)

// Length is a distance expressed in meters.
type Length float64

// Meters returns the magnitude in meters.
func (l Length) Meters() float64 {
	return float64(l)
}

// Kilometers returns the magnitude converted to kilometers.
func (l Length) Kilometers() float64 {
	return float64(l) / 1000.0
}

// Angle is an angle expressed in radians.
type Angle float64

// Radians returns the magnitude in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the magnitude converted to degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180.0 / math.Pi
}

// Curvature is an inverse radius expressed in 1/meters.
type Curvature float64

// InverseMeters returns the magnitude in 1/meters.
func (c Curvature) InverseMeters() float64 {
	return float64(c)
}

// Radius returns the radius corresponding to the curvature. Infinite for zero curvature.
func (c Curvature) Radius() float64 {
	return 1.0 / float64(c)
}

// formatFloat renders a number in the canonical scientific notation of the
// format: 17 significant digits, enough to reproduce the exact float64 on
// re-parse, e.g. "0.0000000000000000e+00".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 16, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type SpeedUnit uint8

const (
	SPEED_MS = SpeedUnit(iota + 1)
	SPEED_MPH
	SPEED_KMH
)

func (iotaIdx SpeedUnit) String() string {
	return [...]string{"m/s", "mph", "km/h"}[iotaIdx-1]
}

var speedUnitByName = map[string]SpeedUnit{
	"m/s":  SPEED_MS,
	"mph":  SPEED_MPH,
	"km/h": SPEED_KMH,
}

// Unit covers every measurement unit a signal value may carry: distances,
// speeds, weights and percentage.
type Unit uint8

const (
	UNIT_METER = Unit(iota + 1)
	UNIT_KILOMETER
	UNIT_FEET
	UNIT_MILE
	UNIT_METERS_PER_SECOND
	UNIT_MILES_PER_HOUR
	UNIT_KILOMETERS_PER_HOUR
	UNIT_KILOGRAM
	UNIT_TON
	UNIT_PERCENT
)

func (iotaIdx Unit) String() string {
	return [...]string{"m", "km", "ft", "mile", "m/s", "mph", "km/h", "kg", "t", "%"}[iotaIdx-1]
}

var unitByName = map[string]Unit{
	"m":    UNIT_METER,
	"km":   UNIT_KILOMETER,
	"ft":   UNIT_FEET,
	"mile": UNIT_MILE,
	"m/s":  UNIT_METERS_PER_SECOND,
	"mph":  UNIT_MILES_PER_HOUR,
	"km/h": UNIT_KILOMETERS_PER_HOUR,
	"kg":   UNIT_KILOGRAM,
	"t":    UNIT_TON,
	"%":    UNIT_PERCENT,
}

// MaxSpeed is a speed limit: either a numerical value in the unit of the
// surrounding speed record, or one of the literals "no limit" / "undefined".
type MaxSpeed struct {
	Value     float64
	NoLimit   bool
	Undefined bool
}

func (m MaxSpeed) String() string {
	switch {
	case m.NoLimit:
		return "no limit"
	case m.Undefined:
		return "undefined"
	}
	return formatFloat(m.Value)
}
