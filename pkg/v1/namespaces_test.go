package wfst

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

func TestHarvestPrefixes(t *testing.T) {
	text := `<tiger:poi><gml:Point/></tiger:poi><wfs:Delete typeName="topp:roads"/>`
	found := harvestPrefixes(text)

	for _, prefix := range []string{"tiger", "gml", "wfs", "topp"} {
		if !found.contains(prefix) {
			t.Errorf("Expected prefix %s to be harvested", prefix)
		}
	}
	if found.contains("poi") {
		t.Error("Element local names must not be harvested as prefixes")
	}
}

func TestHarvestPrefixesIgnoresUnprefixedTags(t *testing.T) {
	found := harvestPrefixes(`<Point><pos>1 2</pos></Point>`)
	if len(found) != 0 {
		t.Errorf("Expected no prefixes, got %v", found.sorted())
	}
}

func TestAssignNamespacesDefaults(t *testing.T) {
	// xsi, gml and wfs are always declared
	assigned, err := assignNamespaces(nil, newPrefixSet())
	if err != nil {
		t.Fatalf("assignNamespaces failed: %v", err)
	}
	if assigned["xsi"] != xmlenc.XSINamespace {
		t.Errorf("Expected xsi default, got %s", assigned["xsi"])
	}
	if assigned["gml"] != xmlenc.GMLNamespace {
		t.Errorf("Expected gml default, got %s", assigned["gml"])
	}
	if assigned["wfs"] != xmlenc.WFSNamespace {
		t.Errorf("Expected wfs default, got %s", assigned["wfs"])
	}

	// fes is injected only when referenced
	if _, ok := assigned["fes"]; ok {
		t.Error("fes must not be declared when unused")
	}

	used := newPrefixSet()
	used.add("fes")
	assigned, err = assignNamespaces(nil, used)
	if err != nil {
		t.Fatalf("assignNamespaces failed: %v", err)
	}
	if assigned["fes"] != xmlenc.FESNamespace {
		t.Errorf("Expected fes default when referenced, got %s", assigned["fes"])
	}
}

func TestAssignNamespacesUndeclaredPrefix(t *testing.T) {
	used := harvestPrefixes(`<custom:thing/>`)
	_, err := assignNamespaces(map[string]string{"fes": xmlenc.FESNamespace}, used)

	var undeclared *ErrUndeclaredNamespace
	if !errors.As(err, &undeclared) {
		t.Fatalf("Expected ErrUndeclaredNamespace, got %v", err)
	}
	if undeclared.Prefix != "custom" {
		t.Errorf("Expected error to name custom, got %s", undeclared.Prefix)
	}
}

func TestAssignNamespacesCallerDeclaration(t *testing.T) {
	used := newPrefixSet()
	used.add("tiger")
	assigned, err := assignNamespaces(map[string]string{"tiger": "http://www.census.gov/tiger"}, used)
	if err != nil {
		t.Fatalf("assignNamespaces failed: %v", err)
	}
	if assigned["tiger"] != "http://www.census.gov/tiger" {
		t.Errorf("Expected caller URI preserved, got %s", assigned["tiger"])
	}
}

func TestAssignNamespacesCallerOverridesDefault(t *testing.T) {
	// A caller-declared URI wins over the built-in default
	assigned, err := assignNamespaces(map[string]string{"gml": "http://www.opengis.net/gml"}, newPrefixSet())
	if err != nil {
		t.Fatalf("assignNamespaces failed: %v", err)
	}
	if assigned["gml"] != "http://www.opengis.net/gml" {
		t.Errorf("Expected caller gml URI preserved, got %s", assigned["gml"])
	}
}
