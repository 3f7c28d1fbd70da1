package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fermikit/latprep/internal/ctxlog"
	"github.com/fermikit/latprep/internal/dag"
	"github.com/fermikit/latprep/internal/pipeline"
	"github.com/fermikit/latprep/internal/stage"
	"github.com/fermikit/latprep/internal/workspace"
)

// Run executes the selected stages in dependency order. Each stage is a
// blocking subprocess call; execution is strictly sequential and stops at
// the first failure.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString(), "base", a.ws.Base)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	names, fullRun := a.selectStages()
	logger.Info("Stages selected.", "stages", names, "full_run", fullRun, "binned", a.model.Common.Binned, "dry_run", a.cfg.DryRun)

	defs := make([]*stage.Definition, 0, len(names))
	for _, name := range names {
		def, err := a.registry.Lookup(name)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	// A full run reads nothing but the event list and spacecraft file, so
	// missing inputs surface before any tool is spawned.
	if fullRun && !a.cfg.DryRun {
		logger.Info("Checking for input files.")
		if err := workspace.CheckFiles(ctx, a.ws.EventList(), a.ws.Spacecraft()); err != nil {
			return err
		}
	}

	order, err := a.schedule(names, defs)
	if err != nil {
		return err
	}
	logger.Debug("Stage order resolved.", "order", order)

	sc := &stage.Context{Config: a.model, Workspace: a.ws, Runner: a.runner}

	logger.Info("🚀 Starting pipeline run.")
	for _, name := range order {
		def, _ := a.registry.Lookup(name)
		stageCtx := ctxlog.With(ctx, "stage", name)
		stageLogger := ctxlog.FromContext(stageCtx)

		stageLogger.Info("Running stage.")
		if def.Requires != nil && !a.cfg.DryRun {
			if err := workspace.CheckFiles(stageCtx, def.Requires(sc)...); err != nil {
				return fmt.Errorf("stage %s: %w", name, err)
			}
		}
		if err := def.Run(stageCtx, sc); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
		stageLogger.Info("Stage finished.")
	}
	logger.Info("🏁 Pipeline finished.")

	return nil
}

// selectStages returns the stage names for this run and whether it is the
// full preparation sequence.
func (a *App) selectStages() ([]string, bool) {
	if len(a.cfg.Stages) > 0 {
		return a.cfg.Stages, false
	}
	return pipeline.FullRun(a.model.Common.Binned), true
}

// schedule builds the dependency graph over the selected stages and returns
// them in execution order. Dependency edges only apply between selected
// stages; a deliberately partial run relies on file preflights instead.
func (a *App) schedule(names []string, defs []*stage.Definition) ([]string, error) {
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}

	g := dag.New()
	for _, n := range names {
		g.AddNode(n)
	}
	for _, def := range defs {
		for _, dep := range def.After {
			if !selected[dep] {
				continue
			}
			if err := g.AddEdge(dep, def.Name); err != nil {
				return nil, fmt.Errorf("building stage graph: %w", err)
			}
		}
	}

	order, err := g.TopoSort()
	if err != nil {
		return nil, fmt.Errorf("building stage graph: %w", err)
	}
	return order, nil
}
