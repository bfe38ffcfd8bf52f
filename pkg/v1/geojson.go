package wfst

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FromOrb converts an orb geometry into this package's typed model. orb
// carries two-component positions only, so converted geometries are always
// 2D. An orb.Bound converts to its polygon.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch geom := g.(type) {
	case orb.Point:
		return Point{geom[0], geom[1]}, nil
	case orb.MultiPoint:
		points := make(MultiPoint, len(geom))
		for i, p := range geom {
			points[i] = Point{p[0], p[1]}
		}
		return points, nil
	case orb.LineString:
		return LineString(fromOrbPositions(geom)), nil
	case orb.Ring:
		return LinearRing(fromOrbPositions(geom)), nil
	case orb.Polygon:
		return fromOrbPolygon(geom), nil
	case orb.MultiLineString:
		lines := make(MultiLineString, len(geom))
		for i, line := range geom {
			lines[i] = LineString(fromOrbPositions(line))
		}
		return lines, nil
	case orb.MultiPolygon:
		polygons := make(MultiPolygon, len(geom))
		for i, polygon := range geom {
			polygons[i] = fromOrbPolygon(polygon)
		}
		return polygons, nil
	case orb.Collection:
		members := make(Collection, len(geom))
		for i, member := range geom {
			converted, err := FromOrb(member)
			if err != nil {
				return nil, err
			}
			members[i] = converted
		}
		return members, nil
	case orb.Bound:
		return fromOrbPolygon(geom.ToPolygon()), nil
	case nil:
		return nil, &ErrUnsupportedGeometry{}
	default:
		return nil, &ErrUnsupportedGeometry{Type: GeometryType(g.GeoJSONType())}
	}
}

func fromOrbPositions(points []orb.Point) []Coordinate {
	coords := make([]Coordinate, len(points))
	for i, p := range points {
		coords[i] = Coordinate{p[0], p[1]}
	}
	return coords
}

func fromOrbPolygon(p orb.Polygon) Polygon {
	rings := make(Polygon, len(p))
	for i, ring := range p {
		rings[i] = LinearRing(fromOrbPositions(ring))
	}
	return rings
}

// FromGeoJSON converts a GeoJSON feature into a Feature. The GeoJSON id
// (string or number) is formatted into the Feature ID; properties are
// carried over as-is.
func FromGeoJSON(f *geojson.Feature) (Feature, error) {
	if f == nil {
		return Feature{}, fmt.Errorf("nil geojson feature")
	}
	geometry, err := FromOrb(f.Geometry)
	if err != nil {
		return Feature{}, err
	}
	return Feature{
		ID:         formatFeatureID(f.ID),
		Geometry:   geometry,
		Properties: map[string]any(f.Properties),
	}, nil
}

// FromGeoJSONCollection converts every feature of a GeoJSON
// FeatureCollection.
func FromGeoJSONCollection(fc *geojson.FeatureCollection) ([]Feature, error) {
	if fc == nil {
		return nil, fmt.Errorf("nil geojson feature collection")
	}
	features := make([]Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		converted, err := FromGeoJSON(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		features = append(features, converted)
	}
	return features, nil
}

// formatFeatureID renders a GeoJSON feature id. JSON numbers decode as
// float64 and are formatted without an exponent so "5" stays "5".
func formatFeatureID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
