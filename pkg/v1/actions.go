package wfst

import (
	"strings"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

// Insert builds a wfs:Insert action: one feature element per feature, each
// holding an optional geometry field followed by the whitelisted
// properties. An empty feature list logs a warning and yields an empty
// string, never an error, so one empty action cannot abort a transaction.
func Insert(features []Feature, opts TransactionOptions) (string, error) {
	return insertAction(features, &opts, newPrefixSet())
}

// Update builds a wfs:Update action. When opts.Properties is present it
// runs in bulk mode: one action applying the shared property values to
// everything matched by the filter. Without bulk properties it recurses
// once per feature, using that feature's own property map, and
// concatenates the per-feature actions.
func Update(features []Feature, opts TransactionOptions) (string, error) {
	return updateAction(features, &opts, newPrefixSet())
}

// Delete builds a wfs:Delete action for the features' identifiers, or for
// an explicit filter. Fails with *ErrMissingTypeName when no typeName can
// be derived.
func Delete(features []Feature, opts TransactionOptions) (string, error) {
	return deleteAction(features, &opts, newPrefixSet())
}

// Replace builds a wfs:Replace action from the first feature only; extra
// features are dropped with a warning. The replacement representation is
// built through the same encoding path as Insert.
func Replace(features []Feature, opts TransactionOptions) (string, error) {
	return replaceAction(features, &opts, newPrefixSet())
}

// featureElement builds one <ns:layer> element: the geometry field first
// (when a geometry property name resolves), then the whitelisted
// properties as escaped text elements. Shared by Insert and Replace.
func featureElement(f *Feature, opts *TransactionOptions, used prefixSet) (string, error) {
	attrs := resolveAttributes(f, opts)

	var b strings.Builder
	b.WriteString("<" + attrs.qualify(attrs.layer) + ">")

	if attrs.geometryName != "" && f.Geometry != nil {
		gml, err := EncodeGeometry(f.Geometry, FormatID(attrs.layer, f.ID), attrs.geometryOptions(opts))
		if err != nil {
			return "", err
		}
		used.add("gml")
		name := attrs.qualify(attrs.geometryName)
		b.WriteString("<" + name + ">" + gml + "</" + name + ">")
	}

	for _, key := range propertyKeys(f.Properties, attrs.whitelist) {
		value, ok := f.Properties[key]
		if !ok {
			continue
		}
		text, err := propertyValue(key, value)
		if err != nil {
			return "", err
		}
		name := attrs.qualify(key)
		b.WriteString("<" + name + ">" + xmlenc.EscapeText(text) + "</" + name + ">")
	}

	b.WriteString("</" + attrs.qualify(attrs.layer) + ">")
	used.add(attrs.ns)
	return b.String(), nil
}

func insertAction(features []Feature, opts *TransactionOptions, used prefixSet) (string, error) {
	if len(features) == 0 {
		opts.logger().Warn("no features supplied to Insert, emitting empty action")
		return "", nil
	}

	var body strings.Builder
	for i := range features {
		element, err := featureElement(&features[i], opts, used)
		if err != nil {
			return "", err
		}
		body.WriteString(element)
	}

	attrs := resolveAttributes(&features[0], opts)
	used.add("wfs")
	return "<wfs:Insert" +
		xmlenc.Attr("inputFormat", attrs.inputFormat) +
		xmlenc.Attr("srsName", attrs.srsName) +
		xmlenc.Attr("handle", opts.Handle) +
		">" + body.String() + "</wfs:Insert>", nil
}

func updateAction(features []Feature, opts *TransactionOptions, used prefixSet) (string, error) {
	if opts.Properties == nil {
		// Per-feature mode: recurse once per feature, injecting the
		// feature's own property map as the bulk properties.
		if len(features) == 0 {
			opts.logger().Warn("no features supplied to Update, emitting empty action")
			return "", nil
		}
		var b strings.Builder
		for i := range features {
			nested := *opts
			nested.Properties = features[i].Properties
			if nested.Properties == nil {
				nested.Properties = map[string]any{}
			}
			fragment, err := updateAction(features[i:i+1], &nested, used)
			if err != nil {
				return "", err
			}
			b.WriteString(fragment)
		}
		return b.String(), nil
	}

	var first *Feature
	if len(features) > 0 {
		first = &features[0]
	}
	attrs := resolveAttributes(first, opts)

	typeName, err := deriveTypeName("Update", attrs, opts, used)
	if err != nil {
		return "", err
	}

	filter := synthesizeFilter(opts.Filter, features, opts, used)
	if filter == "" {
		opts.logger().Warn("Update has no filter and no features, emitting empty action")
		return "", nil
	}

	var b strings.Builder
	for _, key := range propertyKeys(opts.Properties, attrs.whitelist) {
		value, ok := opts.Properties[key]
		if !ok {
			continue
		}
		b.WriteString("<wfs:Property><wfs:ValueReference>" + xmlenc.EscapeText(key) + "</wfs:ValueReference>")
		switch {
		case value == nil:
			// Explicit nil marker: the server nulls the field.
			used.add("xsi")
			b.WriteString(`<wfs:Value xsi:nil="true"/>`)
		case value == Unset:
			// ValueReference only; server semantics are its own.
		default:
			text, err := propertyValue(key, value)
			if err != nil {
				return "", err
			}
			b.WriteString("<wfs:Value>" + xmlenc.EscapeText(text) + "</wfs:Value>")
		}
		b.WriteString("</wfs:Property>")
	}

	if attrs.geometryName != "" && first != nil && first.Geometry != nil {
		gml, gerr := EncodeGeometry(first.Geometry, FormatID(attrs.layer, first.ID), attrs.geometryOptions(opts))
		if gerr != nil {
			return "", gerr
		}
		used.add("gml")
		b.WriteString("<wfs:Property><wfs:ValueReference>" + xmlenc.EscapeText(attrs.geometryName) +
			"</wfs:ValueReference><wfs:Value>" + gml + "</wfs:Value></wfs:Property>")
	}

	used.add("wfs")
	return "<wfs:Update" +
		xmlenc.Attr("inputFormat", attrs.inputFormat) +
		xmlenc.Attr("srsName", attrs.srsName) +
		xmlenc.Attr("typeName", typeName) +
		">" + b.String() + filter + "</wfs:Update>", nil
}

func deleteAction(features []Feature, opts *TransactionOptions, used prefixSet) (string, error) {
	var first *Feature
	if len(features) > 0 {
		first = &features[0]
	}
	attrs := resolveAttributes(first, opts)

	typeName, err := deriveTypeName("Delete", attrs, opts, used)
	if err != nil {
		return "", err
	}

	filter := synthesizeFilter(opts.Filter, features, opts, used)

	used.add("wfs")
	return "<wfs:Delete" + xmlenc.Attr("typeName", typeName) + ">" + filter + "</wfs:Delete>", nil
}

func replaceAction(features []Feature, opts *TransactionOptions, used prefixSet) (string, error) {
	if len(features) == 0 {
		opts.logger().Warn("no features supplied to Replace, emitting empty action")
		return "", nil
	}
	if len(features) > 1 {
		opts.logger().Warn("Replace uses only the first feature", "dropped", len(features)-1)
	}

	element, err := featureElement(&features[0], opts, used)
	if err != nil {
		return "", err
	}
	filter := synthesizeFilter(opts.Filter, features[:1], opts, used)
	attrs := resolveAttributes(&features[0], opts)

	used.add("wfs")
	return "<wfs:Replace" +
		xmlenc.Attr("inputFormat", attrs.inputFormat) +
		xmlenc.Attr("srsName", attrs.srsName) +
		">" + element + filter + "</wfs:Replace>", nil
}

// deriveTypeName resolves the qualified feature type: the explicit
// TypeName when given, else "ns:layer" from the resolved attributes.
// Registers the prefix so the envelope declares it.
func deriveTypeName(action string, attrs resolvedAttrs, opts *TransactionOptions, used prefixSet) (string, error) {
	typeName := opts.TypeName
	if typeName == "" && attrs.ns != "" && attrs.layer != "" {
		typeName = attrs.ns + ":" + attrs.layer
	}
	if typeName == "" {
		return "", &ErrMissingTypeName{Action: action}
	}
	if prefix, _, ok := strings.Cut(typeName, ":"); ok {
		used.add(prefix)
	}
	return typeName, nil
}
