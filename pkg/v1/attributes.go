package wfst

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// resolvedAttrs is the per-feature merge of a Feature and the options bag,
// recomputed for every action.
//
// Two precedence rules apply. Feature-intrinsic data (the layer a feature
// belongs to, its id, geometry, properties) must not be silently overridden
// by a bulk options bag, so the feature wins and the options are a
// fallback. Presentation and targeting settings (namespace prefix, srs,
// geometry property name) are caller-controlled defaults, so the options
// win and the feature's own value applies only when the options carry none.
type resolvedAttrs struct {
	ns           string
	layer        string
	srsName      string
	srsDimension int
	geometryName string
	inputFormat  string
	whitelist    []string
}

// resolveAttributes merges f and opts. f may be nil (an action invoked
// without features), in which case everything comes from the options.
func resolveAttributes(f *Feature, opts *TransactionOptions) resolvedAttrs {
	attrs := resolvedAttrs{
		ns:           opts.Ns,
		layer:        opts.Layer,
		srsName:      opts.SrsName,
		srsDimension: opts.SrsDimension,
		geometryName: opts.GeometryName,
		inputFormat:  opts.InputFormat,
		whitelist:    opts.Whitelist,
	}
	if f == nil {
		return attrs
	}

	// Reserved: feature wins.
	if f.Layer != "" {
		attrs.layer = f.Layer
	}

	// Presentation: options win, feature fallback.
	if attrs.ns == "" {
		attrs.ns = f.Ns
	}
	if attrs.srsName == "" {
		attrs.srsName = f.SrsName
	}
	if attrs.geometryName == "" {
		attrs.geometryName = f.GeometryName
	}
	return attrs
}

// geometryOptions derives the per-encode options from resolved attributes.
func (a resolvedAttrs) geometryOptions(opts *TransactionOptions) GeometryOptions {
	return GeometryOptions{
		SrsName:         a.srsName,
		SrsDimension:    a.srsDimension,
		MemberIDs:       opts.GeometryIDs,
		CoordinateOrder: opts.CoordinateOrder,
	}
}

// qualify prefixes a local element name with the resolved namespace, or
// returns it bare when no prefix is resolved.
func (a resolvedAttrs) qualify(local string) string {
	if a.ns == "" {
		return local
	}
	return a.ns + ":" + local
}

// FormatID builds the canonical gml:id for a feature: "layer.id" unless id
// already contains a dot, in which case id is returned verbatim.
func FormatID(layer, id string) string {
	if strings.Contains(id, ".") || layer == "" {
		return id
	}
	return layer + "." + id
}

// propertyKeys returns the property names to emit: the whitelist verbatim
// when present (only listed properties, in listed order), otherwise all
// keys in sorted order for deterministic output.
func propertyKeys(props map[string]any, whitelist []string) []string {
	if len(whitelist) > 0 {
		return whitelist
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// propertyValue renders a property value as text, before escaping. A NaN
// float is a hard error rather than a silently malformed number.
func propertyValue(name string, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		if math.IsNaN(val) {
			return "", &ErrInvalidValue{Property: name}
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		if math.IsNaN(float64(val)) {
			return "", &ErrInvalidValue{Property: name}
		}
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	default:
		return fmt.Sprint(val), nil
	}
}
