// Package wfst encodes geographic features as OGC GML 3.2 geometry
// fragments and WFS-T 2.0 transaction documents.
//
// The package is a pure string encoder: it performs no network I/O and
// keeps no state between calls. Feed it features, get back the XML a
// WFS 2.0 server accepts in a Transaction request.
//
// # Basic Usage
//
//	feature := wfst.Feature{
//	    ID:       "1",
//	    Geometry: wfst.Point{1, 2},
//	    Properties: map[string]any{
//	        "name": "a",
//	    },
//	}
//
//	doc, err := wfst.Transaction(wfst.ActionSet{
//	    Insert: []wfst.Feature{feature},
//	}, wfst.TransactionOptions{
//	    Ns:           "tiger",
//	    Layer:        "poi",
//	    GeometryName: "geom",
//	    NsAssignments: map[string]string{
//	        "tiger": "http://www.census.gov/tiger",
//	    },
//	})
//
// # Actions
//
// Insert, Update, Delete and Replace build individual action fragments.
// Transaction accepts either pre-built fragments (strings) or an
// ActionSet and wraps them in a wfs:Transaction envelope with namespace
// declarations and schema locations.
//
// # Filters
//
// Update, Delete and Replace address existing features. Supply a
// pre-built fes:Filter through TransactionOptions.Filter, or let the
// package synthesize one fes:ResourceId per feature from "layer.id"
// identifiers.
//
// # GeoJSON
//
// FromGeoJSON and FromGeoJSONCollection bridge github.com/paulmach/orb
// GeoJSON features into the package's typed geometry model:
//
//	fc, _ := geojson.UnmarshalFeatureCollection(data)
//	features, err := wfst.FromGeoJSONCollection(fc)
package wfst
