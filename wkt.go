package opendrive

import (
	"github.com/paulmach/orb/encoding/wkt"
)

// RoadWKT samples the road reference line every step meters into a WKT
// LINESTRING.
func RoadWKT(road *Road, step Length) (string, error) {
	line, err := road.ReferenceLine(step)
	if err != nil {
		return "", err
	}
	return wkt.MarshalString(line), nil
}
