package wfst

import (
	"errors"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestFromOrbPoint(t *testing.T) {
	got, err := FromOrb(orb.Point{1, 2})
	if err != nil {
		t.Fatalf("FromOrb failed: %v", err)
	}
	if !reflect.DeepEqual(got, Point{1, 2}) {
		t.Errorf("Expected Point{1 2}, got %v", got)
	}
}

func TestFromOrbPolygon(t *testing.T) {
	polygon := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
	}
	got, err := FromOrb(polygon)
	if err != nil {
		t.Fatalf("FromOrb failed: %v", err)
	}
	converted, ok := got.(Polygon)
	if !ok {
		t.Fatalf("Expected Polygon, got %T", got)
	}
	if len(converted) != 2 || len(converted[0]) != 4 {
		t.Errorf("Unexpected ring structure: %v", converted)
	}
	if !reflect.DeepEqual(converted[1][2], Coordinate{2, 2}) {
		t.Errorf("Expected interior coordinate {2 2}, got %v", converted[1][2])
	}
}

func TestFromOrbCollection(t *testing.T) {
	collection := orb.Collection{
		orb.Point{1, 2},
		orb.LineString{{3, 4}, {5, 6}},
	}
	got, err := FromOrb(collection)
	if err != nil {
		t.Fatalf("FromOrb failed: %v", err)
	}
	members, ok := got.(Collection)
	if !ok {
		t.Fatalf("Expected Collection, got %T", got)
	}
	if len(members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(members))
	}
	if members[0].GeometryType() != TypePoint || members[1].GeometryType() != TypeLineString {
		t.Errorf("Unexpected member types: %v", members)
	}
}

func TestFromOrbBound(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
	got, err := FromOrb(bound)
	if err != nil {
		t.Fatalf("FromOrb failed: %v", err)
	}
	if _, ok := got.(Polygon); !ok {
		t.Errorf("Expected bound to convert to Polygon, got %T", got)
	}
}

func TestFromOrbNil(t *testing.T) {
	_, err := FromOrb(nil)
	var unsupported *ErrUnsupportedGeometry
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected ErrUnsupportedGeometry, got %v", err)
	}
}

func TestFromGeoJSON(t *testing.T) {
	f := &geojson.Feature{
		ID:       5.0, // JSON numbers decode as float64
		Geometry: orb.Point{1, 2},
		Properties: geojson.Properties{
			"name": "a",
		},
	}

	got, err := FromGeoJSON(f)
	if err != nil {
		t.Fatalf("FromGeoJSON failed: %v", err)
	}
	if got.ID != "5" {
		t.Errorf("Expected id 5, got %s", got.ID)
	}
	if !reflect.DeepEqual(got.Geometry, Point{1, 2}) {
		t.Errorf("Expected Point{1 2}, got %v", got.Geometry)
	}
	if got.Properties["name"] != "a" {
		t.Errorf("Expected property carried over, got %v", got.Properties)
	}
}

func TestFromGeoJSONCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{1, 2}))
	fc.Append(geojson.NewFeature(orb.LineString{{3, 4}, {5, 6}}))

	features, err := FromGeoJSONCollection(fc)
	if err != nil {
		t.Fatalf("FromGeoJSONCollection failed: %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("Expected 2 features, got %d", len(features))
	}
	if features[1].Geometry.GeometryType() != TypeLineString {
		t.Errorf("Expected LineString, got %s", features[1].Geometry.GeometryType())
	}
}

func TestFormatFeatureID(t *testing.T) {
	cases := []struct {
		id   any
		want string
	}{
		{nil, ""},
		{"poi.1", "poi.1"},
		{5.0, "5"},
		{7, "7"},
		{int64(8), "8"},
	}
	for _, c := range cases {
		if got := formatFeatureID(c.id); got != c.want {
			t.Errorf("formatFeatureID(%v): expected %q, got %q", c.id, c.want, got)
		}
	}
}
