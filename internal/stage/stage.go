package stage

import (
	"context"

	"github.com/fermikit/latprep/internal/config"
	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/workspace"
)

// Context carries everything a stage needs to build and run its tool
// invocation.
type Context struct {
	Config    *config.Model
	Workspace *workspace.Workspace
	Runner    *gtool.Runner
}

// Definition describes one pipeline stage.
type Definition struct {
	// Name identifies the stage on the command line and in the graph.
	Name string

	// Description is shown in usage output.
	Description string

	// After lists stages that must run before this one in a full run.
	After []string

	// Requires returns the files that must exist before the stage runs.
	// Preconditions are evaluated at execution time, not at planning
	// time, so earlier stages can produce them first.
	Requires func(c *Context) []string

	// Run builds the parameter set and invokes the external tool.
	Run func(ctx context.Context, c *Context) error
}

// Module is the interface pipeline packages implement to contribute their
// stage definitions to the registry.
type Module interface {
	Register(r *Registry)
}
