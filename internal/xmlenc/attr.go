package xmlenc

// Attr renders one XML attribute with a leading space, ready to append
// after an element name. An empty value yields an empty string: optional
// attributes are omitted from the output rather than emitted as ="".
func Attr(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + `="` + EscapeAttr(value) + `"`
}
