package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// selectDef drives gtselect: the region, time, energy, and zenith cuts on
// the raw event list.
func selectDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageSelect,
		Description: "Select events by region, time window, energy, and zenith angle (gtselect).",
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.EventList(), c.Workspace.Spacecraft()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtselect")
			app.Params.SetFloat("rad", c.Config.Analysis.Radius)
			app.Params.SetInt("evclass", c.Config.Common.EventClass)
			app.Params.SetString("infile", "@"+c.Workspace.EventList())
			app.Params.SetString("outfile", c.Workspace.Filtered())
			app.Params.SetFloat("ra", c.Config.Analysis.RA)
			app.Params.SetFloat("dec", c.Config.Analysis.Dec)
			app.Params.SetString("tmin", c.Config.Analysis.TMin)
			app.Params.SetString("tmax", c.Config.Analysis.TMax)
			app.Params.SetFloat("emin", c.Config.Analysis.EMin)
			app.Params.SetFloat("emax", c.Config.Analysis.EMax)
			app.Params.SetFloat("zmax", c.Config.Analysis.ZMax)
			app.Params.SetInt("convtype", c.Config.Analysis.ConvType)
			return c.Runner.Run(ctx, app)
		},
	}
}
