package wfst

import (
	"fmt"
)

// ValidateGeometry checks a geometry payload against the rules the encoder
// itself does not enforce: coordinate tuples must have 2 or 3 components,
// rings must be closed with at least 4 positions, and aggregate members
// must validate recursively. Encoding never calls this implicitly — a
// mismatched payload is a caller error — but callers assembling geometries
// from untrusted input can run it first.
func ValidateGeometry(g Geometry) error {
	switch geom := g.(type) {
	case Point:
		return validateCoordinate(TypePoint, 0, Coordinate(geom))
	case LineString:
		if len(geom) < 2 {
			return &ErrInvalidGeometry{Type: TypeLineString, Reason: "needs at least 2 positions"}
		}
		return validateCoordinates(TypeLineString, geom)
	case LinearRing:
		return validateRing(geom)
	case Polygon:
		if len(geom) == 0 {
			return &ErrInvalidGeometry{Type: TypePolygon, Reason: "needs an exterior ring"}
		}
		for _, ring := range geom {
			if err := validateRing(ring); err != nil {
				return err
			}
		}
		return nil
	case MultiPoint:
		for i, p := range geom {
			if err := validateCoordinate(TypeMultiPoint, i, Coordinate(p)); err != nil {
				return err
			}
		}
		return nil
	case MultiLineString:
		for _, line := range geom {
			if err := ValidateGeometry(line); err != nil {
				return err
			}
		}
		return nil
	case MultiPolygon:
		for _, polygon := range geom {
			if err := ValidateGeometry(polygon); err != nil {
				return err
			}
		}
		return nil
	case Collection:
		for _, member := range geom {
			if err := ValidateGeometry(member); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return &ErrUnsupportedGeometry{}
	default:
		return &ErrUnsupportedGeometry{Type: g.GeometryType()}
	}
}

func validateCoordinate(t GeometryType, i int, c Coordinate) error {
	if len(c) < 2 || len(c) > 3 {
		return &ErrInvalidGeometry{
			Type:   t,
			Reason: fmt.Sprintf("coordinate %d must have 2 or 3 components, got %d", i, len(c)),
		}
	}
	return nil
}

func validateCoordinates(t GeometryType, coords []Coordinate) error {
	for i, c := range coords {
		if err := validateCoordinate(t, i, c); err != nil {
			return err
		}
	}
	return nil
}

func validateRing(ring LinearRing) error {
	if len(ring) < 4 {
		return &ErrInvalidGeometry{Type: TypeLinearRing, Reason: "needs at least 4 positions"}
	}
	if err := validateCoordinates(TypeLinearRing, ring); err != nil {
		return err
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return &ErrInvalidGeometry{Type: TypeLinearRing, Reason: "ring is not closed"}
	}
	return nil
}
