package wfst

import (
	"testing"
)

func TestSynthesizeFilterExplicitPassthrough(t *testing.T) {
	used := newPrefixSet()
	explicit := `<fes:Filter><fes:PropertyIsEqualTo>...</fes:PropertyIsEqualTo></fes:Filter>`

	got := synthesizeFilter(explicit, []Feature{{ID: "1", Layer: "poi"}}, &TransactionOptions{}, used)
	if got != explicit {
		t.Errorf("Expected explicit filter verbatim, got %s", got)
	}

	// Prefixes in opaque filter text are harvested
	if !used.contains("fes") {
		t.Error("Expected fes prefix harvested from explicit filter")
	}
}

func TestSynthesizeFilterResourceIds(t *testing.T) {
	used := newPrefixSet()
	features := []Feature{
		{ID: "1", Layer: "poi"},
		{ID: "other.7"},
	}
	opts := &TransactionOptions{Layer: "roads"}

	got := synthesizeFilter("", features, opts, used)
	want := `<fes:Filter><fes:ResourceId rid="poi.1"/><fes:ResourceId rid="other.7"/></fes:Filter>`
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if !used.contains("fes") {
		t.Error("Expected fes prefix registered")
	}
}

func TestSynthesizeFilterEmpty(t *testing.T) {
	used := newPrefixSet()
	got := synthesizeFilter("", nil, &TransactionOptions{}, used)
	if got != "" {
		t.Errorf("Expected empty filter, got %s", got)
	}
	if used.contains("fes") {
		t.Error("Empty synthesis should not register fes")
	}
}
