package main

import (
	"fmt"
	"log"

	wfst "github.com/beetlebugorg/wfst/pkg/v1"
)

func main() {
	// Two new points of interest
	features := []wfst.Feature{
		{
			ID:       "1",
			Geometry: wfst.Point{-73.985, 40.748},
			Properties: map[string]any{
				"name": "Empire State Building",
				"kind": "landmark",
			},
		},
		{
			ID:       "2",
			Geometry: wfst.Point{-73.968, 40.785},
			Properties: map[string]any{
				"name": "Central Park",
				"kind": "park",
			},
		},
	}

	doc, err := wfst.Transaction(wfst.ActionSet{Insert: features}, wfst.TransactionOptions{
		Ns:           "tiger",
		Layer:        "poi",
		GeometryName: "geom",
		SrsName:      "urn:ogc:def:crs:EPSG::4326",
		NsAssignments: map[string]string{
			"tiger": "http://www.census.gov/tiger",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(doc)
}
