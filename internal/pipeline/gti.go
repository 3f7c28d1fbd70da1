package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// gtiDef drives gtmktime: good-time-interval filtering of the selected
// events against the spacecraft history.
func gtiDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageGTI,
		Description: "Filter selected events on spacecraft good time intervals (gtmktime).",
		After:       []string{StageSelect},
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.Spacecraft(), c.Workspace.Filtered()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtmktime")
			app.Params.SetString("scfile", c.Workspace.Spacecraft())
			app.Params.SetString("filter", c.Config.Analysis.GTIFilter)
			app.Params.SetFlag("roicut", c.Config.Analysis.ROICut)
			app.Params.SetString("evfile", c.Workspace.Filtered())
			app.Params.SetString("outfile", c.Workspace.FilteredGTI())
			return c.Runner.Run(ctx, app)
		},
	}
}
