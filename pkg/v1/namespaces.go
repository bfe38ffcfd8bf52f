package wfst

import (
	"regexp"
	"sort"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

// prefixSet tracks the namespace prefixes an assembly actually references.
// Action builders add prefixes as they emit elements; opaque text the
// builders never saw (raw action strings, caller-supplied filters) is
// covered by harvestPrefixes instead.
type prefixSet map[string]struct{}

func newPrefixSet() prefixSet {
	return make(prefixSet)
}

func (s prefixSet) add(prefix string) {
	if prefix != "" {
		s[prefix] = struct{}{}
	}
}

func (s prefixSet) merge(other prefixSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

func (s prefixSet) contains(prefix string) bool {
	_, ok := s[prefix]
	return ok
}

func (s prefixSet) sorted() []string {
	prefixes := make([]string, 0, len(s))
	for p := range s {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}

// prefixPattern matches tag openings (<prefix:) and typeName="prefix:
// attribute values. Closing tags need no separate match since every
// closing tag has an opening one.
var prefixPattern = regexp.MustCompile(`(?:<|typeName=")([A-Za-z_][A-Za-z0-9_.-]*):`)

// harvestPrefixes scans XML text for referenced namespace prefixes.
func harvestPrefixes(text string) prefixSet {
	found := newPrefixSet()
	for _, m := range prefixPattern.FindAllStringSubmatch(text, -1) {
		found.add(m[1])
	}
	return found
}

// assignNamespaces merges caller-declared prefix/URI bindings with the
// built-in defaults and verifies that every referenced prefix ends up
// bound. The fes default is injected only when fes is referenced; xsi, gml
// and wfs are always declared since the envelope itself uses them. Any
// other referenced prefix without a binding fails with
// *ErrUndeclaredNamespace.
func assignNamespaces(declared map[string]string, used prefixSet) (map[string]string, error) {
	assigned := make(map[string]string, len(declared)+4)
	for prefix, uri := range declared {
		assigned[prefix] = uri
	}

	if used.contains("fes") {
		if _, ok := assigned["fes"]; !ok {
			assigned["fes"] = xmlenc.FESNamespace
		}
	}
	if _, ok := assigned["xsi"]; !ok {
		assigned["xsi"] = xmlenc.XSINamespace
	}
	if _, ok := assigned["gml"]; !ok {
		assigned["gml"] = xmlenc.GMLNamespace
	}
	if _, ok := assigned["wfs"]; !ok {
		assigned["wfs"] = xmlenc.WFSNamespace
	}

	for _, prefix := range used.sorted() {
		if _, ok := assigned[prefix]; !ok {
			return nil, &ErrUndeclaredNamespace{Prefix: prefix}
		}
	}
	return assigned, nil
}
