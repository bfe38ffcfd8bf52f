package xmlenc

import (
	"testing"
)

func TestFormatSchemaLocationsDefault(t *testing.T) {
	got := FormatSchemaLocations(nil)
	want := WFSNamespace + " " + WFSSchemaLocation
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatSchemaLocationsOverride(t *testing.T) {
	// Caller can replace the default WFS location
	got := FormatSchemaLocations(map[string]string{
		WFSNamespace: "http://example.com/wfs.xsd",
	})
	want := WFSNamespace + " http://example.com/wfs.xsd"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatSchemaLocationsMerge(t *testing.T) {
	got := FormatSchemaLocations(map[string]string{
		"http://example.com/tiger": "http://example.com/tiger.xsd",
	})
	// Sorted namespace order: example.com before opengis.net
	want := "http://example.com/tiger http://example.com/tiger.xsd " +
		WFSNamespace + " " + WFSSchemaLocation
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
