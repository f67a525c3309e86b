package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores templates by name and guards against duplicate names or
// filenames. Templates() preserves registration order.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
	filenames map[string]string
	order     []string
}

// NewRegistry creates a registry holding templates, in order.
func NewRegistry(templates ...Template) (*Registry, error) {
	r := &Registry{
		templates: make(map[string]Template),
		filenames: make(map[string]string),
	}
	for _, tpl := range templates {
		if err := r.Register(tpl); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a template. Empty names, empty filenames, missing render
// functions and duplicates return an error.
func (r *Registry) Register(tpl Template) error {
	if tpl.Name == "" {
		return fmt.Errorf("render: template name is required")
	}
	if tpl.Filename == "" {
		return fmt.Errorf("render: template %q filename is required", tpl.Name)
	}
	if tpl.Render == nil {
		return fmt.Errorf("render: template %q render function is required", tpl.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.templates == nil {
		r.templates = make(map[string]Template)
		r.filenames = make(map[string]string)
	}
	if _, exists := r.templates[tpl.Name]; exists {
		return fmt.Errorf("render: template %q already registered", tpl.Name)
	}
	if owner, exists := r.filenames[tpl.Filename]; exists {
		return fmt.Errorf("render: filename %q already produced by template %q", tpl.Filename, owner)
	}

	r.templates[tpl.Name] = tpl
	r.filenames[tpl.Filename] = tpl.Name
	r.order = append(r.order, tpl.Name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(tpl Template) {
	if err := r.Register(tpl); err != nil {
		panic(err)
	}
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("render: template %q not found", name)
	}
	return tpl, nil
}

// MustGet panics if the template is missing.
func (r *Registry) MustGet(name string) Template {
	tpl, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return tpl
}

// List returns a sorted list of template names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns the registered templates in registration order.
func (r *Registry) Templates() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Template, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.templates[name])
	}
	return out
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}
