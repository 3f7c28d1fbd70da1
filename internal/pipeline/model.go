package pipeline

import (
	"context"
	"os"

	"github.com/fermikit/latprep/internal/ctxlog"
	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/stage"
	"github.com/fermikit/latprep/internal/workspace"
)

// modelDef drives the external XML model generator, which builds the region
// source model from the point-source catalog plus the diffuse templates. An
// existing model file is kept untouched so hand-edited models survive
// re-runs.
func modelDef() *stage.Definition {
	return &stage.Definition{
		Name:        StageModel,
		Description: "Generate the XML source model from the catalog, unless one already exists.",
		After:       []string{StageGTI},
		Requires: func(c *stage.Context) []string {
			// Catalog and diffuse inputs are only needed when a model has
			// to be generated; see Run.
			return []string{c.Workspace.FilteredGTI()}
		},
		Run: func(ctx context.Context, c *stage.Context) error {
			logger := ctxlog.FromContext(ctx)

			if _, err := os.Stat(c.Workspace.ModelXML()); err == nil {
				logger.Info("Model file exists, skipping generation.", "path", c.Workspace.ModelXML())
				return nil
			}

			if !c.Runner.DryRun {
				if err := workspace.CheckFiles(ctx,
					c.Workspace.GalacticDiffuse(),
					c.Workspace.IsotropicDiffuse(),
					c.Workspace.SourceCatalog(),
				); err != nil {
					return err
				}
			}

			app := gtool.NewApp(c.Config.Tools.ModelGenerator)
			app.Params.SetString("catalog", c.Workspace.SourceCatalog())
			app.Params.SetString("evfile", c.Workspace.FilteredGTI())
			app.Params.SetString("galdiffuse", c.Workspace.GalacticDiffuse())
			app.Params.SetString("isodiffuse", c.Workspace.IsotropicDiffuse())
			app.Params.SetString("outfile", c.Workspace.ModelXML())
			return c.Runner.Run(ctx, app)
		},
	}
}
