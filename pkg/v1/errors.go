package wfst

import (
	"fmt"
)

// ErrUnsupportedGeometry indicates a geometry whose dynamic type is not one
// of the eight recognized kinds (or a nil geometry).
type ErrUnsupportedGeometry struct {
	Type GeometryType
}

func (e *ErrUnsupportedGeometry) Error() string {
	if e.Type == "" {
		return "unsupported geometry: <nil>"
	}
	return fmt.Sprintf("unsupported geometry type: %s", e.Type)
}

// ErrInvalidActions indicates a malformed top-level actions argument passed
// to Transaction.
type ErrInvalidActions struct {
	Reason string
}

func (e *ErrInvalidActions) Error() string {
	return fmt.Sprintf("invalid actions: %s", e.Reason)
}

// ErrUndeclaredNamespace indicates a namespace prefix used in the output
// without a declared URI after the built-in defaults are applied.
type ErrUndeclaredNamespace struct {
	Prefix string
}

func (e *ErrUndeclaredNamespace) Error() string {
	return fmt.Sprintf("no namespace URI declared for prefix %q", e.Prefix)
}

// ErrMissingTypeName indicates an Update or Delete action that could not
// derive a typeName from its options or features.
type ErrMissingTypeName struct {
	Action string
}

func (e *ErrMissingTypeName) Error() string {
	return fmt.Sprintf("%s: cannot derive typeName (supply TypeName, or Ns and Layer)", e.Action)
}

// ErrInvalidValue indicates a property value that cannot be serialized,
// such as a NaN float.
type ErrInvalidValue struct {
	Property string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("property %q has a NaN value", e.Property)
}

// ErrInvalidGeometry indicates a geometry payload that violates the rules
// checked by ValidateGeometry.
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("invalid geometry (%s): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}
