package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// Unbinned exposure map geometry. The map extends 10 degrees beyond the
// selection radius because sources outside the region still contribute
// exposure through the PSF tails.
const (
	expmapPadding   = 10.0
	expmapNLong     = 120
	expmapNLat      = 120
	expmapNEnergies = 20
)

// expmapDef drives gtexpmap: the exposure map for an unbinned likelihood
// analysis.
func expmapDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageExpMap,
		Description: "Generate the unbinned-analysis exposure map (gtexpmap).",
		After:       []string{StageLTCube},
		Requires: func(c *stage.Context) []string {
			return []string{
				c.Workspace.FilteredGTI(),
				c.Workspace.Spacecraft(),
				c.Workspace.LivetimeCube(),
			}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtexpmap")
			app.Params.SetString("evfile", c.Workspace.FilteredGTI())
			app.Params.SetString("scfile", c.Workspace.Spacecraft())
			app.Params.SetString("expcube", c.Workspace.LivetimeCube())
			app.Params.SetString("outfile", c.Workspace.ExposureMap())
			app.Params.SetString("irfs", c.Config.Common.IRFs)
			app.Params.SetFloat("srcrad", c.Config.Analysis.Radius+expmapPadding)
			app.Params.SetInt("nlong", expmapNLong)
			app.Params.SetInt("nlat", expmapNLat)
			app.Params.SetInt("nenergies", expmapNEnergies)
			return c.Runner.Run(ctx, app)
		},
	}
}
