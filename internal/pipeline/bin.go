package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// Map projection shared by every binned product.
const (
	binCoordSys = "CEL"
	binProj     = "AIT"
	binAxisRot  = 0
	binEAlg     = "LOG"
)

// ccubeDef drives gtbin in CCUBE mode: the three-dimensional counts cube
// over the largest square inscribed in the selection region, with
// logarithmic energy bins.
func ccubeDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageCCube,
		Description: "Bin filtered events into a counts cube (gtbin CCUBE).",
		After:       []string{StageGTI},
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.FilteredGTI()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			npix := NumberOfPixels(c.Config.Analysis.Radius, c.Config.Analysis.BinSize)

			app := gtool.NewApp("gtbin")
			app.Params.SetString("evfile", c.Workspace.FilteredGTI())
			app.Params.SetString("outfile", c.Workspace.CountsCube())
			app.Params.SetString("algorithm", "CCUBE")
			app.Params.SetInt("nxpix", npix)
			app.Params.SetInt("nypix", npix)
			app.Params.SetFloat("binsz", c.Config.Analysis.BinSize)
			app.Params.SetString("coordsys", binCoordSys)
			app.Params.SetFloat("xref", c.Config.Analysis.RA)
			app.Params.SetFloat("yref", c.Config.Analysis.Dec)
			app.Params.SetInt("axisrot", binAxisRot)
			app.Params.SetString("proj", binProj)
			app.Params.SetString("ebinalg", binEAlg)
			app.Params.SetFloat("emin", c.Config.Analysis.EMin)
			app.Params.SetFloat("emax", c.Config.Analysis.EMax)
			app.Params.SetInt("enumbins", c.Config.Analysis.EnergyBins)
			return c.Runner.Run(ctx, app)
		},
	}
}

// cmapDef drives gtbin in CMAP mode: the quick-look counts map with the
// same geometry as the cube but no energy axis.
func cmapDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageCMap,
		Description: "Bin filtered events into a counts map (gtbin CMAP).",
		After:       []string{StageGTI},
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.FilteredGTI()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			npix := NumberOfPixels(c.Config.Analysis.Radius, c.Config.Analysis.BinSize)

			app := gtool.NewApp("gtbin")
			app.Params.SetString("evfile", c.Workspace.FilteredGTI())
			app.Params.SetString("outfile", c.Workspace.CountsMap())
			app.Params.SetString("algorithm", "CMAP")
			app.Params.SetInt("nxpix", npix)
			app.Params.SetInt("nypix", npix)
			app.Params.SetFloat("binsz", c.Config.Analysis.BinSize)
			app.Params.SetString("coordsys", binCoordSys)
			app.Params.SetFloat("xref", c.Config.Analysis.RA)
			app.Params.SetFloat("yref", c.Config.Analysis.Dec)
			app.Params.SetInt("axisrot", binAxisRot)
			app.Params.SetString("proj", binProj)
			return c.Runner.Run(ctx, app)
		},
	}
}
