package wfst

// Coordinate is a single position: (easting, northing) or
// (easting, northing, elevation). Axis reordering for lat/lon servers is
// applied at encode time, see CoordinateOrder.
type Coordinate []float64

// GeometryType names one of the eight geometry kinds this package encodes.
// Values match the GeoJSON type tags.
type GeometryType string

const (
	TypePoint              GeometryType = "Point"
	TypeLineString         GeometryType = "LineString"
	TypeLinearRing         GeometryType = "LinearRing"
	TypePolygon            GeometryType = "Polygon"
	TypeMultiPoint         GeometryType = "MultiPoint"
	TypeMultiLineString    GeometryType = "MultiLineString"
	TypeMultiPolygon       GeometryType = "MultiPolygon"
	TypeGeometryCollection GeometryType = "GeometryCollection"
)

// Geometry is the closed set of shapes EncodeGeometry accepts. The payload
// nesting is fixed by the concrete type, so a mismatch between tag and
// nesting cannot be constructed.
type Geometry interface {
	GeometryType() GeometryType
}

// Point is a single position.
type Point Coordinate

// LineString is an ordered sequence of positions.
type LineString []Coordinate

// LinearRing is a closed sequence of positions. Closure and winding are
// not enforced here; see ValidateGeometry.
type LinearRing []Coordinate

// Polygon is one exterior ring followed by zero or more interior rings.
type Polygon []LinearRing

// MultiPoint is a sequence of Points.
type MultiPoint []Point

// MultiLineString is a sequence of LineStrings. Encoded as gml:MultiCurve.
type MultiLineString []LineString

// MultiPolygon is a sequence of Polygons. Encoded as gml:MultiSurface.
type MultiPolygon []Polygon

// Collection is a heterogeneous sequence of geometries. Encoded as
// gml:MultiGeometry.
type Collection []Geometry

func (Point) GeometryType() GeometryType           { return TypePoint }
func (LineString) GeometryType() GeometryType      { return TypeLineString }
func (LinearRing) GeometryType() GeometryType      { return TypeLinearRing }
func (Polygon) GeometryType() GeometryType         { return TypePolygon }
func (MultiPoint) GeometryType() GeometryType      { return TypeMultiPoint }
func (MultiLineString) GeometryType() GeometryType { return TypeMultiLineString }
func (MultiPolygon) GeometryType() GeometryType    { return TypeMultiPolygon }
func (Collection) GeometryType() GeometryType      { return TypeGeometryCollection }

// Feature is one editable record: an identifier, a geometry, and a
// property map, plus optional per-feature overrides for settings that are
// normally supplied through TransactionOptions.
//
// ID may already be namespaced as "layer.id"; FormatID leaves such values
// untouched. Layer, Ns, SrsName and GeometryName are optional; when both a
// feature and the options carry a value, the feature wins for the
// feature-intrinsic fields (ID, Layer, Geometry, Properties) and the
// options win for the presentation fields (Ns, SrsName, GeometryName).
type Feature struct {
	ID           string
	Layer        string
	Ns           string
	Geometry     Geometry
	Properties   map[string]any
	SrsName      string
	GeometryName string
}
