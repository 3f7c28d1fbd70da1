package pipeline

import (
	"context"

	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
)

// modelmapDef drives gtmodel: the model counts map predicted by the fitted
// source maps, used to inspect the model against the counts map.
func modelmapDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageModelMap,
		Description: "Produce the model counts map from the source maps (gtmodel).",
		After:       []string{StageSrcMaps},
		Requires: func(c *stage.Context) []string {
			return []string{
				c.Workspace.SourceMaps(),
				c.Workspace.ModelXML(),
				c.Workspace.LivetimeCube(),
				c.Workspace.BinnedExposureMap(),
			}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			app := gtool.NewApp("gtmodel")
			app.Params.SetString("srcmaps", c.Workspace.SourceMaps())
			app.Params.SetString("srcmdl", c.Workspace.ModelXML())
			app.Params.SetString("outfile", c.Workspace.ModelMap())
			app.Params.SetString("irfs", c.Config.Common.IRFs)
			app.Params.SetString("expcube", c.Workspace.LivetimeCube())
			app.Params.SetString("bexpmap", c.Workspace.BinnedExposureMap())
			return c.Runner.Run(ctx, app)
		},
	}
}
