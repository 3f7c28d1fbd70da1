package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// bexpmapDef drives gtexpcube2: the binned-analysis exposure map. It reuses
// the counts-cube geometry; sources well outside the region are covered by
// the tool's own map padding.
func bexpmapDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageBExpMap,
		Description: "Generate the binned-analysis exposure map (gtexpcube2).",
		After:       []string{StageLTCube},
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.LivetimeCube()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			npix := NumberOfPixels(c.Config.Analysis.Radius, c.Config.Analysis.BinSize)

			app := gtool.NewApp("gtexpcube2")
			app.Params.SetString("infile", c.Workspace.LivetimeCube())
			app.Params.SetString("cmap", "none")
			app.Params.SetString("outfile", c.Workspace.BinnedExposureMap())
			app.Params.SetString("irfs", c.Config.Common.IRFs)
			app.Params.SetFloat("xref", c.Config.Analysis.RA)
			app.Params.SetFloat("yref", c.Config.Analysis.Dec)
			app.Params.SetInt("nxpix", npix)
			app.Params.SetInt("nypix", npix)
			app.Params.SetFloat("binsz", c.Config.Analysis.BinSize)
			app.Params.SetString("coordsys", binCoordSys)
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
