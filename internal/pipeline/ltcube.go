package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// Livetime cube binning. The zenith cut here is deliberately wider than the
// selection's: the cube covers the full sky so one cube serves any later
// zenith choice.
const (
	ltcubeDCosTheta = 0.025
	ltcubeBinSize   = 1.0
	ltcubeZMax      = 180.0
)

// ltcubeDef drives gtltcube: livetime accumulated per sky position and
// inclination angle.
func ltcubeDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageLTCube,
		Description: "Generate the livetime cube from the spacecraft history (gtltcube).",
		After:       []string{StageGTI},
		Requires: func(c *stage.Context) []string {
			return []string{c.Workspace.FilteredGTI(), c.Workspace.Spacecraft()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtltcube")
			app.Params.SetString("evfile", c.Workspace.FilteredGTI())
			app.Params.SetString("scfile", c.Workspace.Spacecraft())
			app.Params.SetString("outfile", c.Workspace.LivetimeCube())
			app.Params.SetFloat("dcostheta", ltcubeDCosTheta)
			app.Params.SetFloat("binsz", ltcubeBinSize)
			app.Params.SetFloat("zmax", ltcubeZMax)
			return c.Runner.Run(ctx, app)
		},
	}
}
