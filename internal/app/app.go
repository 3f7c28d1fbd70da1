package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fermikit/latprep/internal/config"
	"github.com/fermikit/latprep/internal/ctxlog"
	"github.com/fermikit/latprep/internal/gtool"
	"github.com/fermikit/latprep/internal/pipeline"
	"github.com/fermikit/latprep/internal/stage"
	"github.com/fermikit/latprep/internal/workspace"
)

// App encapsulates a fully configured pipeline run: logger, loaded config
// model, workspace, stage registry, and tool runner.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	logFile  *os.File
	registry *stage.Registry
	model    *config.Model
	ws       *workspace.Workspace
	runner   *gtool.Runner
	cfg      *Config
}

// coreModules is the definitive list of stage modules compiled into the
// binary.
var coreModules = []stage.Module{
	&pipeline.Module{},
}

// NewApp constructs the application. Configuration problems at this point
// are unrecoverable, so they panic; the caller recovers and reports them as
// a startup error.
func NewApp(outW io.Writer, appCfg *Config, loader config.Loader, modules ...stage.Module) *App {
	ws := workspace.New(appCfg.WorkDir, appCfg.Basename)

	// The per-run log file sits next to the products. A dry run writes
	// nothing, including logs, so it only logs to the terminal.
	logW := outW
	var logFile *os.File
	if !appCfg.DryRun {
		f, err := os.OpenFile(ws.LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}
		logFile = f
		logW = io.MultiWriter(outW, f)
	}

	logger := newLogger(appCfg.LogLevel, appCfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	configPath := appCfg.ConfigPath
	if configPath == "" {
		configPath = ws.Base + ".hcl"
	}
	model, err := loader.Load(ctx, configPath, appCfg.Basename)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into unified model.")

	reg := stage.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All stage modules registered.", "count", len(modules))

	if err := reg.Validate(ctx); err != nil {
		// A mismatch between stage code and its declared dependencies is
		// a programmer error.
		panic(err)
	}

	runner := gtool.NewRunner(model.Tools.BinDir, appCfg.WorkDir, appCfg.DryRun)
	envFile := appCfg.EnvFile
	if envFile == "" {
		envFile = model.Tools.EnvFile
	}
	if envFile != "" {
		if err := runner.LoadEnvFile(envFile); err != nil {
			panic(fmt.Errorf("failed to load tool environment: %w", err))
		}
		logger.Debug("Tool environment loaded.", "env_file", envFile)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		logFile:  logFile,
		registry: reg,
		model:    model,
		ws:       ws,
		runner:   runner,
		cfg:      appCfg,
	}
}

// Registry returns the application's stage registry, primarily for tests.
func (a *App) Registry() *stage.Registry {
	return a.registry
}

// Model returns the loaded configuration model, primarily for tests.
func (a *App) Model() *config.Model {
	return a.model
}

// Close releases the per-run log file, if any.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
