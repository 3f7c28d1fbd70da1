package gtool

import "path/filepath"

// App pairs an external tool name with the parameter set for one
// invocation.
type App struct {
	Tool   string
	Params *Params
}

// NewApp returns an App for the named tool with an empty parameter set.
func NewApp(tool string) *App {
	return &App{Tool: tool, Params: NewParams()}
}

// Command renders the full argument vector for the invocation. A non-empty
// binDir pins the tool to a specific installation instead of the PATH
// lookup.
func (a *App) Command(binDir string) ([]string, error) {
	pairs, err := a.Params.Pairs()
	if err != nil {
		return nil, err
	}
	tool := a.Tool
	if binDir != "" {
		tool = filepath.Join(binDir, tool)
	}
	return append([]string{tool}, pairs...), nil
}
