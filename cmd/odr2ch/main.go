package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/LdDl/opendrive"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

var (
	xodrFileName  = flag.String("xodr", "network.xodr", "Filename of OpenDRIVE 1.7 (*.xodr) file")
	out           = flag.String("out", "network.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then 3 files will be produced: 'map.csv' (edges), 'map_vertices.csv', 'map_shortcuts.csv'")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	sampleStep    = flag.Float64("step", 1.0, "Sampling step along reference lines (meters)")
	doContraction = flag.Bool("contract", true, "Prepare contraction hierarchies?")
	rewrite       = flag.String("rewrite", "", "Filename for writing the parsed document back as canonical OpenDRIVE (skipped when empty)")
	sumoFixes     = flag.Bool("sumo", false, "Enable every SUMO interoperability workaround")
)

func main() {

	flag.Parse()

	workarounds := opendrive.Workarounds{}
	if *sumoFixes {
		workarounds = opendrive.Sumo()
	}

	data, err := ioutil.ReadFile(*xodrFileName)
	if err != nil {
		fmt.Println(err)
		return
	}
	parser := opendrive.NewParser(opendrive.WithWorkarounds(workarounds))
	doc, err := parser.ParseBytes(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, diagnostic := range parser.Diagnostics() {
		fmt.Printf("Warning. %s\n", diagnostic.String())
	}
	if err := doc.Validate(); err != nil {
		fmt.Printf("Warning. Document fails validation: %s\n", err)
	}

	if *rewrite != "" {
		fileRewrite, err := os.Create(*rewrite)
		if err != nil {
			fmt.Println(err)
			return
		}
		writer := opendrive.NewWriter(opendrive.WithWriterWorkarounds(workarounds))
		err = writer.Write(doc, fileRewrite)
		fileRewrite.Close()
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	fnamePart := strings.Split(*out, ".csv") // to guarantee proper filename and its extension
	fnameEdges := fnamePart[0] + ".csv"
	fnameVertices := fnamePart[0] + "_vertices.csv"
	fnameShortcuts := fnamePart[0] + "_shortcuts.csv"
	/* Edges file */
	fileEdges, err := os.Create(fnameEdges)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileEdges.Close()
	writerEdges := csv.NewWriter(fileEdges)
	defer writerEdges.Flush()
	writerEdges.Comma = ';'
	// 		from_vertex_id - int64, ID of generated source vertex
	// 		to_vertex_id - int64, ID of generated target vertex
	// 		weight - float64, Weight of an edge (meters, junction connections weigh 0)
	//      geom - geometry (WKT or GeoJSON representation)
	//      kind - origin of an edge: road / connection
	//      road_id - ID of OpenDRIVE road (connecting road for connection edges)
	//      junction_id - ID of junction for connection edges, -1 otherwise
	err = writerEdges.Write([]string{"from_vertex_id", "to_vertex_id", "weight", "geom", "kind", "road_id", "junction_id"})
	if err != nil {
		fmt.Println(err)
		return
	}

	/* Vertices file */
	fileVertices, err := os.Create(fnameVertices)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileVertices.Close()
	writerVertices := csv.NewWriter(fileVertices)
	defer writerVertices.Flush()
	writerVertices.Comma = ';'
	// 		vertex_id - int64, ID of vertex
	// 		order_pos - int, Position of vertex in hierarchies (evaluted by library)
	// 		importance - int, Importance of vertex in graph (evaluted by library)
	//      geom - geometry (WKT or GeoJSON representation)
	err = writerVertices.Write([]string{"vertex_id", "order_pos", "importance", "geom"})
	if err != nil {
		fmt.Println(err)
		return
	}

	// Every road contributes its two endpoints as vertices and one edge
	// weighted by its length. Junction connections glue the endpoints
	// together with zero-weight edges.
	vertexIDs := make(map[string]int64)
	verticesGeoms := make(map[int64]orb.Point)
	graph := ch.Graph{}
	nextVertex := int64(0)

	for i := range doc.Roads {
		road := &doc.Roads[i]
		start, end, err := roadEndpoints(road)
		if err != nil {
			fmt.Println(err)
			return
		}
		source, err := vertexFor(&graph, vertexIDs, verticesGeoms, &nextVertex, road.ID+":start", start)
		if err != nil {
			fmt.Println(err)
			return
		}
		target, err := vertexFor(&graph, vertexIDs, verticesGeoms, &nextVertex, road.ID+":end", end)
		if err != nil {
			fmt.Println(err)
			return
		}
		err = graph.AddEdge(source, target, road.Length.Meters())
		if err != nil {
			fmt.Println(err)
			return
		}
		line, err := road.ReferenceLine(opendrive.Length(*sampleStep))
		if err != nil {
			fmt.Println(err)
			return
		}
		err = writerEdges.Write([]string{
			fmt.Sprintf("%d", source),
			fmt.Sprintf("%d", target),
			fmt.Sprintf("%f", road.Length.Meters()),
			lineGeomString(line),
			"road",
			road.ID,
			road.Junction,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	for i := range doc.Junctions {
		junction := &doc.Junctions[i]
		for j := range junction.Connection {
			connection := &junction.Connection[j]
			if connection.IncomingRoad == nil || connection.ConnectingRoad == nil {
				continue
			}
			incoming := doc.RoadByID(*connection.IncomingRoad)
			connecting := doc.RoadByID(*connection.ConnectingRoad)
			if incoming == nil || connecting == nil {
				fmt.Printf("Warning. Junction '%s' connection '%s' references an unknown road\n", junction.ID, connection.ID)
				continue
			}
			contact := ":start"
			if connection.ContactPoint != nil && *connection.ContactPoint == opendrive.CONTACT_POINT_END {
				contact = ":end"
			}
			source := vertexIDs[incoming.ID+":end"]
			target := vertexIDs[connecting.ID+contact]
			err = graph.AddEdge(source, target, 0)
			if err != nil {
				fmt.Println(err)
				return
			}
			line := orb.LineString{verticesGeoms[source], verticesGeoms[target]}
			err = writerEdges.Write([]string{
				fmt.Sprintf("%d", source),
				fmt.Sprintf("%d", target),
				fmt.Sprintf("%f", 0.0),
				lineGeomString(line),
				"connection",
				connecting.ID,
				junction.ID,
			})
			if err != nil {
				fmt.Println(err)
				return
			}
		}
	}

	if *doContraction {
		fmt.Println("Starting contraction process....")
		st := time.Now()
		graph.PrepareContractionHierarchies()
		fmt.Printf("Done contraction process in %v\n", time.Since(st))
	}

	/* Write vertices */
	vertices := graph.Vertices
	for i := 0; i < len(vertices); i++ {
		currentVertexExternal := vertices[i].Label
		err = writerVertices.Write([]string{
			fmt.Sprintf("%d", currentVertexExternal),
			fmt.Sprintf("%d", vertices[i].OrderPos()),
			fmt.Sprintf("%d", vertices[i].Importance()),
			pointGeomString(verticesGeoms[currentVertexExternal]),
		})
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	if *doContraction {
		/* Write shortcuts */
		// 	from_vertex_id - int64, ID of source vertex
		// 	to_vertex_id - int64, ID of target vertex
		// 	weight - float64, Weight of an edge
		// 	via_vertex_id - int64, ID of vertex through which the shortcut exists
		err = graph.ExportShortcutsToFile(fnameShortcuts)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}

func vertexFor(graph *ch.Graph, vertexIDs map[string]int64, verticesGeoms map[int64]orb.Point, nextVertex *int64, label string, pt orb.Point) (int64, error) {
	if id, ok := vertexIDs[label]; ok {
		return id, nil
	}
	id := *nextVertex
	*nextVertex = id + 1
	if err := graph.CreateVertex(id); err != nil {
		return 0, err
	}
	vertexIDs[label] = id
	verticesGeoms[id] = pt
	return id, nil
}

func roadEndpoints(road *opendrive.Road) (orb.Point, orb.Point, error) {
	geometry := road.PlanView.Geometry
	if len(geometry) == 0 {
		return orb.Point{}, orb.Point{}, errors.Errorf("Road '%s' has no plan view geometry", road.ID)
	}
	start := orb.Point{geometry[0].X.Meters(), geometry[0].Y.Meters()}
	end, _, err := geometry[len(geometry)-1].EndPosition()
	if err != nil {
		return orb.Point{}, orb.Point{}, err
	}
	return start, end, nil
}

func lineGeomString(line orb.LineString) string {
	if strings.ToLower(*geomFormat) == "geojson" {
		pts2d := make([][]float64, len(line))
		for i := range line {
			pts2d[i] = []float64{line[i][0], line[i][1]}
		}
		b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
		if err != nil {
			fmt.Printf("Warning. Can not convert geometry to geojson format: %s\n", err.Error())
			return ""
		}
		return string(b)
	}
	return wkt.MarshalString(line)
}

func pointGeomString(pt orb.Point) string {
	if strings.ToLower(*geomFormat) == "geojson" {
		b, err := geojson.NewPointGeometry([]float64{pt[0], pt[1]}).MarshalJSON()
		if err != nil {
			fmt.Printf("Warning. Can not convert geometry to geojson format: %s\n", err.Error())
			return ""
		}
		return string(b)
	}
	return wkt.MarshalString(pt)
}
