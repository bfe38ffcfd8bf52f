// Package xmlenc provides low-level helpers for building OGC XML documents
// as text: escaping, attribute rendering, and the fixed namespace and schema
// location tables shared by GML 3.2 and WFS 2.0 output.
package xmlenc

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes character data for use as element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes character data for use inside a double-quoted
// attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
