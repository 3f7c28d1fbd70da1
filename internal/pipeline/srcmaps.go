package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// Source-map resampling settings carried over from the standard
// point-source analysis.
const (
	srcmapsRFactor = 4
)

// srcmapsDef drives gtsrcmaps: PSF-convolved model maps for every source in
// the XML model, ready for the binned likelihood fit.
func srcmapsDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageSrcMaps,
		Description: "Convolve the source model with the response into source maps (gtsrcmaps).",
		After:       []string{StageCCube, StageBExpMap, StageModel},
		Requires: func(c *stage.Context) []string {
			return []string{
				c.Workspace.CountsCube(),
				c.Workspace.LivetimeCube(),
				c.Workspace.BinnedExposureMap(),
				c.Workspace.Spacecraft(),
				c.Workspace.ModelXML(),
			}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtsrcmaps")
			app.Params.SetString("scfile", c.Workspace.Spacecraft())
			app.Params.SetString("expcube", c.Workspace.LivetimeCube())
			app.Params.SetString("cmap", c.Workspace.CountsCube())
			app.Params.SetString("srcmdl", c.Workspace.ModelXML())
			app.Params.SetString("bexpmap", c.Workspace.BinnedExposureMap())
			app.Params.SetString("outfile", c.Workspace.SourceMaps())
			app.Params.SetString("irfs", c.Config.Common.IRFs)
			app.Params.SetInt("rfactor", srcmapsRFactor)
			app.Params.SetFlag("emapbnds", false)
			return c.Runner.Run(ctx, app)
		},
	}
}
