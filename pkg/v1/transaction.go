package wfst

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/beetlebugorg/wfst/internal/xmlenc"
)

// ActionSet is the structured actions input for Transaction. Builders run
// in Insert, Update, Delete order. A nil slice means the action is absent;
// a non-nil empty slice invokes the builder, which warns and emits
// nothing.
type ActionSet struct {
	Insert []Feature
	Update []Feature
	Delete []Feature
}

// Only 2.0.x versions are passed through; everything else is overridden
// to the default.
var versionPattern = regexp.MustCompile(`^2\.0\.\d+$`)

// Transaction assembles a complete wfs:Transaction document.
//
// actions may be:
//   - a string: a pre-built action fragment, used as-is
//   - a []string (or []any of strings): fragments concatenated verbatim
//   - an ActionSet (or *ActionSet): the corresponding builders are invoked
//     with the shared options
//
// Anything else fails with *ErrInvalidActions. The envelope carries
// service="WFS", the validated protocol version, one xmlns declaration per
// referenced prefix, the xsi:schemaLocation attribute (always including
// the WFS 2.0 default), and the optional srsName, lockId, releaseAction
// and handle attributes when set.
func Transaction(actions any, opts TransactionOptions) (string, error) {
	used := newPrefixSet()

	body, err := assembleActions(actions, &opts, used)
	if err != nil {
		return "", err
	}

	namespaces, err := assignNamespaces(opts.NsAssignments, used)
	if err != nil {
		return "", err
	}

	version := opts.Version
	if !versionPattern.MatchString(version) {
		version = "2.0.0"
	}

	var b strings.Builder
	b.WriteString(`<wfs:Transaction service="WFS"` + xmlenc.Attr("version", version))

	prefixes := make([]string, 0, len(namespaces))
	for prefix := range namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		b.WriteString(xmlenc.Attr("xmlns:"+prefix, namespaces[prefix]))
	}

	b.WriteString(xmlenc.Attr("xsi:schemaLocation", xmlenc.FormatSchemaLocations(opts.SchemaLocations)))
	b.WriteString(xmlenc.Attr("srsName", opts.SrsName))
	b.WriteString(xmlenc.Attr("lockId", opts.LockID))
	b.WriteString(xmlenc.Attr("releaseAction", opts.ReleaseAction))
	b.WriteString(xmlenc.Attr("handle", opts.Handle))
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</wfs:Transaction>")
	return b.String(), nil
}

// assembleActions classifies the actions argument and produces the
// concatenated action fragments. Prefixes in opaque string input are
// harvested textually; structured input is covered by the builders'
// own tracking.
func assembleActions(actions any, opts *TransactionOptions, used prefixSet) (string, error) {
	switch v := actions.(type) {
	case string:
		used.merge(harvestPrefixes(v))
		return v, nil
	case []string:
		joined := strings.Join(v, "")
		used.merge(harvestPrefixes(joined))
		return joined, nil
	case []any:
		var b strings.Builder
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return "", &ErrInvalidActions{Reason: fmt.Sprintf("element %d is %T, not string", i, item)}
			}
			b.WriteString(s)
		}
		used.merge(harvestPrefixes(b.String()))
		return b.String(), nil
	case ActionSet:
		return assembleActionSet(v, opts, used)
	case *ActionSet:
		if v == nil {
			return "", &ErrInvalidActions{Reason: "nil *ActionSet"}
		}
		return assembleActionSet(*v, opts, used)
	default:
		return "", &ErrInvalidActions{Reason: fmt.Sprintf("unsupported type %T", actions)}
	}
}

func assembleActionSet(set ActionSet, opts *TransactionOptions, used prefixSet) (string, error) {
	var b strings.Builder
	if set.Insert != nil {
		fragment, err := insertAction(set.Insert, opts, used)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	if set.Update != nil {
		fragment, err := updateAction(set.Update, opts, used)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	if set.Delete != nil {
		fragment, err := deleteAction(set.Delete, opts, used)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}
