package opendrive

import (
	geojson "github.com/paulmach/go.geojson"
)

// RoadGeoJSON samples the road reference line every step meters and
// wraps it into a GeoJSON LineString feature carrying the road identity.
func RoadGeoJSON(road *Road, step Length) (*geojson.Feature, error) {
	line, err := road.ReferenceLine(step)
	if err != nil {
		return nil, err
	}
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i][0], line[i][1]}
	}
	feature := geojson.NewFeature(geojson.NewLineStringGeometry(pts2d))
	feature.SetProperty("id", road.ID)
	if road.Name != nil {
		feature.SetProperty("name", *road.Name)
	}
	feature.SetProperty("junction", road.Junction)
	feature.SetProperty("length", road.Length.Meters())
	return feature, nil
}

// DocumentGeoJSON collects the reference lines of every road of the
// network into a feature collection.
func DocumentGeoJSON(doc *Document, step Length) (*geojson.FeatureCollection, error) {
	collection := geojson.NewFeatureCollection()
	for i := range doc.Roads {
		feature, err := RoadGeoJSON(&doc.Roads[i], step)
		if err != nil {
			return nil, err
		}
		collection.AddFeature(feature)
	}
	return collection, nil
}
