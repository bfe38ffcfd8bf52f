package wfst

import (
	"strings"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

// synthesizeFilter returns the explicit filter unchanged when one is
// supplied (it is trusted, opaque fes:Filter XML), otherwise one
// fes:ResourceId predicate per feature wrapped in a single fes:Filter.
// Concatenated ResourceIds form an implicit union; no and/or combination
// logic is applied. With no explicit filter and no features the result is
// empty and the caller decides how to proceed.
func synthesizeFilter(explicit string, features []Feature, opts *TransactionOptions, used prefixSet) string {
	if explicit != "" {
		used.merge(harvestPrefixes(explicit))
		return explicit
	}
	if len(features) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<fes:Filter>")
	for i := range features {
		attrs := resolveAttributes(&features[i], opts)
		rid := FormatID(attrs.layer, features[i].ID)
		b.WriteString(`<fes:ResourceId rid="` + xmlenc.EscapeAttr(rid) + `"/>`)
	}
	b.WriteString("</fes:Filter>")
	used.add("fes")
	return b.String()
}
