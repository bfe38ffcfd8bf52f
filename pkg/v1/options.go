package wfst

import (
	"log/slog"
)

// CoordinateOrder selects the axis order written into coordinate text.
type CoordinateOrder int

const (
	// CoordinateOrderXY writes tuples unchanged: easting northing.
	CoordinateOrderXY CoordinateOrder = iota

	// CoordinateOrderYX swaps the first two components of every tuple,
	// preserving a third component when present. Used for servers that
	// expect latitude/longitude axis order in EPSG:4326 and friends.
	CoordinateOrderYX
)

// String returns the axis order as written, e.g. "xy".
func (o CoordinateOrder) String() string {
	if o == CoordinateOrderYX {
		return "yx"
	}
	return "xy"
}

// GeometryOptions configures a single EncodeGeometry call.
type GeometryOptions struct {
	// SrsName: spatial reference identifier written on the outermost
	// element. Empty means omitted.
	SrsName string

	// SrsDimension: coordinate dimensionality (2 or 3). Zero means omitted.
	SrsDimension int

	// MemberIDs supplies positional gml:id values for the members of a
	// multi-geometry. Members beyond the list get no id.
	MemberIDs []string

	// CoordinateOrder selects the axis order, default CoordinateOrderXY.
	CoordinateOrder CoordinateOrder
}

type unsetValue struct{}

// Unset marks an Update property whose wfs:Value element must be omitted
// entirely, emitting only the ValueReference. Whether the target server
// then leaves the field unchanged or nulls it is server-defined. A nil
// property value instead emits an explicit xsi:nil marker.
var Unset = unsetValue{}

// TransactionOptions is the per-call configuration bag shared by the
// action builders and Transaction. Every field is optional; empty or zero
// fields are treated as absent.
type TransactionOptions struct {
	// Ns: namespace prefix for feature type and property elements.
	Ns string

	// Layer: layer (feature type) name. A feature's own Layer wins over
	// this value.
	Layer string

	// SrsName: spatial reference identifier.
	SrsName string

	// SrsDimension: coordinate dimensionality (2 or 3).
	SrsDimension int

	// GeometryName: name of the geometry property element. When empty and
	// the feature carries none, no geometry field is emitted.
	GeometryName string

	// Whitelist: when non-empty, only the listed property names are
	// emitted, in listed order.
	Whitelist []string

	// Filter: a pre-built fes:Filter fragment, passed through opaquely.
	// When empty, a filter is synthesized from the feature identifiers.
	Filter string

	// TypeName: explicit qualified feature type ("ns:layer") for Update
	// and Delete. When empty it is derived from Ns and Layer.
	TypeName string

	// Properties: bulk update values. Presence selects Update's bulk mode.
	// A nil value emits <wfs:Value xsi:nil="true"/>; Unset emits the
	// ValueReference only; anything else an escaped wfs:Value.
	Properties map[string]any

	// NsAssignments declares prefix to URI bindings for the transaction
	// envelope. Prefixes used in the output and not covered by the
	// built-in defaults must be declared here.
	NsAssignments map[string]string

	// SchemaLocations adds or overrides xsi:schemaLocation pairs. The
	// WFS 2.0 default is always included.
	SchemaLocations map[string]string

	// InputFormat: the inputFormat attribute on Insert/Update/Replace.
	InputFormat string

	// Handle: the handle attribute on the transaction and on Insert.
	Handle string

	// Version: protocol version. Values matching 2.0.x are preserved
	// verbatim; anything else is overridden to "2.0.0".
	Version string

	// LockID: the lockId attribute on the transaction.
	LockID string

	// ReleaseAction: the releaseAction attribute on the transaction.
	ReleaseAction string

	// GeometryIDs supplies positional gml:id values for multi-geometry
	// members, see GeometryOptions.MemberIDs.
	GeometryIDs []string

	// CoordinateOrder selects the coordinate axis order for all encoded
	// geometries, default CoordinateOrderXY.
	CoordinateOrder CoordinateOrder

	// Logger receives non-fatal warnings (empty feature lists, dropped
	// Replace features). Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultTransactionOptions returns options with defaults.
func DefaultTransactionOptions() TransactionOptions {
	return TransactionOptions{
		Version:         "2.0.0",
		CoordinateOrder: CoordinateOrderXY,
	}
}

func (o *TransactionOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
