package registry

import (
	"fmt"
	"sync"
)

// Registry holds registered suites in registration order. The zero value
// is not usable; call NewRegistry.
type Registry struct {
	mu     sync.Mutex
	suites map[string]*Suite
	order  []string
}

// NewRegistry creates an empty registry. Production code registers into
// Default; tests build private registries to stay isolated.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]*Suite)}
}

// Default is the process-wide registry that Register feeds. Suite packages
// register themselves from init and are pulled in with blank imports.
var Default = NewRegistry()

// Register adds a suite to the default registry. It is usually called from
// an init function in the suite's package.
func Register(s *Suite) {
	Default.Register(s)
}

// Register adds a suite. It panics on an empty or duplicate suite name and
// on statically declared units without a name, since both are defects in
// the registering package, not runtime conditions. Dynamically enumerated
// units (UnitsFunc) are validated later, inside discovery's fault boundary.
func (r *Registry) Register(s *Suite) {
	if s == nil || s.Name == "" {
		panic("registry: suite must have a name")
	}
	for i, u := range s.Units {
		if u.Name == "" {
			panic(fmt.Sprintf("registry: suite %v unit #%d has no name", s.Name, i))
		}
	}
	if s.MinBars < 0 {
		panic(fmt.Sprintf("registry: suite %v has negative MinBars", s.Name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suites[s.Name]; ok {
		panic(fmt.Sprintf("registry: suite %v already registered", s.Name))
	}
	r.suites[s.Name] = s
	r.order = append(r.order, s.Name)
}

// Suites returns the registered suites in registration order.
func (r *Registry) Suites() []*Suite {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Suite, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.suites[name])
	}
	return out
}

// Len returns the number of registered suites.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
