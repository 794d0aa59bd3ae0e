package tools

import (
	"strings"
	"testing"
)

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry(
		Spec{Name: "zeta"},
		Spec{Name: "alpha"},
		Spec{Name: "mid"},
	)
	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(all))
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, s := range all {
		if s.Name != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, s.Name, want[i])
		}
	}
	if names := r.ToolNames(); names != "zeta, alpha, mid" {
		t.Fatalf("unexpected ToolNames: %q", names)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(Spec{Name: "hello_world"})
	if _, ok := r.Lookup("hello_world"); !ok {
		t.Fatalf("expected to find hello_world")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("did not expect to find nope")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
		if msg, ok := rec.(string); !ok || !strings.Contains(msg, "dup") {
			t.Fatalf("unexpected panic value: %v", rec)
		}
	}()
	NewRegistry(Spec{Name: "dup"}, Spec{Name: "dup"})
}

func TestCatalogNamesUnique(t *testing.T) {
	// NewRegistry panics on a collision, so building the full catalog is the
	// uniqueness check.
	r := NewRegistry(Catalog(nil)...)
	if got := len(r.All()); got != 13 {
		t.Fatalf("expected 13 tools, got %d", got)
	}
}

func TestFormatToolDescriptions(t *testing.T) {
	r := NewRegistry(Catalog(nil)...)
	out := r.FormatToolDescriptions()
	for _, name := range []string{"hello_world", "get_exchange_rate", "vsps_extend_stop"} {
		if !strings.Contains(out, "### "+name) {
			t.Fatalf("descriptions missing %q:\n%s", name, out)
		}
	}
}
