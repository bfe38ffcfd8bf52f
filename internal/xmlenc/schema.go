package xmlenc

import (
	"sort"
	"strings"
)

// Namespace URIs fixed by the OGC vocabularies this package emits.
const (
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	GMLNamespace = "http://www.opengis.net/gml/3.2"
	WFSNamespace = "http://www.opengis.net/wfs/2.0"
	FESNamespace = "http://www.opengis.net/fes/2.0"
)

// WFSSchemaLocation is the schema document for the WFS 2.0 namespace.
const WFSSchemaLocation = "http://schemas.opengis.net/wfs/2.0/wfs.xsd"

// FormatSchemaLocations renders an xsi:schemaLocation attribute value:
// namespace/location pairs separated by single spaces. The WFS 2.0 entry
// is always present; overrides may add further namespaces or replace the
// default location. Pairs are emitted in sorted namespace order so output
// is deterministic.
func FormatSchemaLocations(overrides map[string]string) string {
	locations := map[string]string{
		WFSNamespace: WFSSchemaLocation,
	}
	for ns, loc := range overrides {
		locations[ns] = loc
	}

	namespaces := make([]string, 0, len(locations))
	for ns := range locations {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	pairs := make([]string, 0, len(namespaces))
	for _, ns := range namespaces {
		pairs = append(pairs, ns+" "+locations[ns])
	}
	return strings.Join(pairs, " ")
}
