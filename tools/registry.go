package tools

import (
	"fmt"
	"strings"
)

// Registry is the fixed tool catalog, preserving insertion order. It is built
// once at startup and never mutated afterwards, so lookups need no locking.
type Registry struct {
	order []string
	specs map[string]Spec
}

func NewRegistry(specs ...Spec) *Registry {
	r := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		r.Register(s)
	}
	return r
}

// Register panics on a duplicate name: the catalog is static, so a collision
// is a programming error caught at startup, not a runtime condition.
func (r *Registry) Register(s Spec) {
	if _, exists := r.specs[s.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate tool %q", s.Name))
	}
	r.specs[s.Name] = s
	r.order = append(r.order, s.Name)
}

func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

func (r *Registry) All() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

func (r *Registry) ToolNames() string {
	return strings.Join(r.order, ", ")
}

func (r *Registry) FormatToolDescriptions() string {
	var b strings.Builder
	for _, s := range r.All() {
		fmt.Fprintf(&b, "### %s\n%s\nParameters:\n```json\n%s\n```\n\n", s.Name, s.Description, s.ParameterSchema())
	}
	return b.String()
}
