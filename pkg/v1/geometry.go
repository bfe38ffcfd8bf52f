package wfst

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

// EncodeGeometry converts a geometry into a GML 3.2 element string.
//
// id becomes the gml:id of the outermost element; an empty id is omitted,
// as are empty SrsName and zero SrsDimension. Multi-geometries encode each
// member recursively, threading positional ids from opts.MemberIDs.
// A geometry outside the eight recognized kinds (or nil) returns
// *ErrUnsupportedGeometry naming the offending type.
func EncodeGeometry(g Geometry, id string, opts GeometryOptions) (string, error) {
	switch geom := g.(type) {
	case Point:
		return encodePoint(geom, id, opts), nil
	case LineString:
		return encodeLineString(geom, id, opts), nil
	case LinearRing:
		return encodeLinearRing(geom, id, opts), nil
	case Polygon:
		return encodePolygon(geom, id, opts), nil
	case MultiPoint:
		return encodeMultiPoint(geom, id, opts), nil
	case MultiLineString:
		return encodeMultiLineString(geom, id, opts), nil
	case MultiPolygon:
		return encodeMultiPolygon(geom, id, opts), nil
	case Collection:
		return encodeCollection(geom, id, opts)
	case nil:
		return "", &ErrUnsupportedGeometry{}
	default:
		return "", &ErrUnsupportedGeometry{Type: g.GeometryType()}
	}
}

// reorder applies the axis order to one tuple: XY keeps (easting,
// northing[, elevation]) as-is, YX swaps the first two components and
// preserves the third.
func (o CoordinateOrder) reorder(c Coordinate) Coordinate {
	if o != CoordinateOrderYX || len(c) < 2 {
		return c
	}
	swapped := make(Coordinate, len(c))
	copy(swapped, c)
	swapped[0], swapped[1] = c[1], c[0]
	return swapped
}

// formatCoordinate renders one tuple as space-separated decimal text.
// strconv's shortest exact form, no rounding or fixed precision.
func formatCoordinate(c Coordinate, order CoordinateOrder) string {
	c = order.reorder(c)
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

// formatPosList renders a coordinate sequence: components within a tuple
// and tuples themselves are both joined by a single space.
func formatPosList(coords []Coordinate, order CoordinateOrder) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatCoordinate(c, order)
	}
	return strings.Join(parts, " ")
}

// gmlAttrs renders the shared optional attributes. Falsy values (empty id
// or srsName, zero dimension) are omitted entirely.
func gmlAttrs(id string, opts GeometryOptions) string {
	attrs := xmlenc.Attr("gml:id", id) + xmlenc.Attr("srsName", opts.SrsName)
	if opts.SrsDimension != 0 {
		attrs += xmlenc.Attr("srsDimension", strconv.Itoa(opts.SrsDimension))
	}
	return attrs
}

// memberOptions strips the container-level attributes so they are not
// repeated on every member, keeping only the axis order.
func memberOptions(opts GeometryOptions) GeometryOptions {
	return GeometryOptions{CoordinateOrder: opts.CoordinateOrder}
}

// memberID returns the positional id for member i, or "".
func memberID(opts GeometryOptions, i int) string {
	if i < len(opts.MemberIDs) {
		return opts.MemberIDs[i]
	}
	return ""
}

func encodePoint(p Point, id string, opts GeometryOptions) string {
	return "<gml:Point" + gmlAttrs(id, opts) + ">" +
		"<gml:pos>" + formatCoordinate(Coordinate(p), opts.CoordinateOrder) + "</gml:pos>" +
		"</gml:Point>"
}

func encodeLineString(l LineString, id string, opts GeometryOptions) string {
	return "<gml:LineString" + gmlAttrs(id, opts) + ">" +
		"<gml:posList>" + formatPosList(l, opts.CoordinateOrder) + "</gml:posList>" +
		"</gml:LineString>"
}

func encodeLinearRing(r LinearRing, id string, opts GeometryOptions) string {
	return "<gml:LinearRing" + gmlAttrs(id, opts) + ">" +
		"<gml:posList>" + formatPosList(r, opts.CoordinateOrder) + "</gml:posList>" +
		"</gml:LinearRing>"
}

// encodePolygon emits the first ring as gml:exterior and every following
// ring as gml:interior, in input order. Winding is not validated.
func encodePolygon(p Polygon, id string, opts GeometryOptions) string {
	var b strings.Builder
	b.WriteString("<gml:Polygon" + gmlAttrs(id, opts) + ">")
	ringOpts := memberOptions(opts)
	for i, ring := range p {
		container := "gml:interior"
		if i == 0 {
			container = "gml:exterior"
		}
		b.WriteString("<" + container + ">")
		b.WriteString(encodeLinearRing(ring, "", ringOpts))
		b.WriteString("</" + container + ">")
	}
	b.WriteString("</gml:Polygon>")
	return b.String()
}

func encodeMultiPoint(m MultiPoint, id string, opts GeometryOptions) string {
	var b strings.Builder
	b.WriteString("<gml:MultiPoint" + gmlAttrs(id, opts) + "><gml:pointMembers>")
	memberOpts := memberOptions(opts)
	for i, member := range m {
		b.WriteString(encodePoint(member, memberID(opts, i), memberOpts))
	}
	b.WriteString("</gml:pointMembers></gml:MultiPoint>")
	return b.String()
}

// encodeMultiLineString emits gml:MultiCurve, the GML 3.2 aggregate for
// curves; there is no MultiLineString element in this vocabulary.
func encodeMultiLineString(m MultiLineString, id string, opts GeometryOptions) string {
	var b strings.Builder
	b.WriteString("<gml:MultiCurve" + gmlAttrs(id, opts) + "><gml:curveMembers>")
	memberOpts := memberOptions(opts)
	for i, member := range m {
		b.WriteString(encodeLineString(member, memberID(opts, i), memberOpts))
	}
	b.WriteString("</gml:curveMembers></gml:MultiCurve>")
	return b.String()
}

// encodeMultiPolygon emits gml:MultiSurface, the GML 3.2 aggregate for
// surfaces.
func encodeMultiPolygon(m MultiPolygon, id string, opts GeometryOptions) string {
	var b strings.Builder
	b.WriteString("<gml:MultiSurface" + gmlAttrs(id, opts) + "><gml:surfaceMembers>")
	memberOpts := memberOptions(opts)
	for i, member := range m {
		b.WriteString(encodePolygon(member, memberID(opts, i), memberOpts))
	}
	b.WriteString("</gml:surfaceMembers></gml:MultiSurface>")
	return b.String()
}

// encodeCollection emits gml:MultiGeometry, re-dispatching per member's
// own type. The only failure mode is an unsupported member.
func encodeCollection(c Collection, id string, opts GeometryOptions) (string, error) {
	var b strings.Builder
	b.WriteString("<gml:MultiGeometry" + gmlAttrs(id, opts) + "><gml:geometryMembers>")
	memberOpts := memberOptions(opts)
	for i, member := range c {
		encoded, err := EncodeGeometry(member, memberID(opts, i), memberOpts)
		if err != nil {
			return "", err
		}
		b.WriteString(encoded)
	}
	b.WriteString("</gml:geometryMembers></gml:MultiGeometry>")
	return b.String(), nil
}
