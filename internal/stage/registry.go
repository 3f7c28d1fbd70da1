package stage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fermikit/latprep/internal/ctxlog"
)

// Registry holds all registered stage definitions for a single application
// instance.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a stage definition. Duplicate names and incomplete
// definitions are programmer errors, so they panic.
func (r *Registry) Register(d *Definition) {
	if d.Name == "" {
		panic("stage definition with empty name")
	}
	if d.Run == nil {
		panic(fmt.Sprintf("stage %q registered without a Run function", d.Name))
	}
	if _, exists := r.defs[d.Name]; exists {
		panic(fmt.Sprintf("stage %q already registered", d.Name))
	}
	slog.Debug("Registering stage.", "name", d.Name)
	r.defs[d.Name] = d
	r.order = append(r.order, d.Name)
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (*Definition, error) {
	d, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage: %q (known stages: %v)", name, r.order)
	}
	return d, nil
}

// Names returns the stage names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Validate checks the integrity of the registered set: every After
// reference must name a registered stage.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	for _, name := range r.order {
		for _, dep := range r.defs[name].After {
			if _, ok := r.defs[dep]; !ok {
				return fmt.Errorf("stage %q declares dependency on unregistered stage %q", name, dep)
			}
		}
	}
	logger.Debug("Stage registry validated.", "count", len(r.order))
	return nil
}
