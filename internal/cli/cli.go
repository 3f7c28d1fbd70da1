package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fermikit/latprep/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Result is what Parse hands back to main: either a run configuration or
// an init request.
type Result struct {
	// Config is the run configuration. Nil when Init is set.
	Config *app.Config

	// Init requests writing an example config for InitBase and exiting.
	Init     bool
	InitBase string
}

// Parse processes command-line arguments. It returns a Result, a boolean
// indicating the program should exit cleanly (help or no arguments), or an
// ExitError for invalid usage.
func Parse(args []string, output io.Writer) (*Result, bool, error) {
	flagSet := flag.NewFlagSet("latprep", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
latprep - Prepare LAT event data for a likelihood analysis.

Sequences the external science tools over the <basename> file namespace:
<basename>.list (raw event files, one per line) and <basename>_SC.fits
(spacecraft file) in, selected/filtered events, livetime cube, exposure
and counts maps out. All steps are logged to <basename>_latprep.log as
well as to the terminal.

Usage:
  latprep [options] <basename>
  latprep -init [basename]

Arguments:
  basename
    The analysis prefix; usually the source of interest. The config file
    defaults to <basename>.hcl.

Stages:
  select, gti, ltcube, expmap, ccube, cmap, bexpmap, model, srcmaps,
  modelmap. Without -stage, a full run executes select, gti, and ltcube,
  then either expmap (unbinned) or ccube, bexpmap, model, and srcmaps
  (binned).

Options:
`)
		flagSet.PrintDefaults()
	}

	var configFlag string
	flagSet.StringVar(&configFlag, "config", "", "Path to the config file. Defaults to <basename>.hcl.")
	flagSet.StringVar(&configFlag, "c", "", "Shorthand for -config.")
	initFlag := flagSet.Bool("init", false, "Write an example config file for the basename (default \"example\") and exit.")
	stageFlag := flagSet.String("stage", "", "Comma-separated list of stages to run instead of the full sequence.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log each tool command without executing it.")
	workDirFlag := flagSet.String("workdir", ".", "Working directory holding inputs and products.")
	envFileFlag := flagSet.String("env-file", "", "Dotenv file merged into the tool environment; overrides the config.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *initFlag {
		base := "example"
		if flagSet.NArg() > 0 {
			base = flagSet.Arg(0)
		}
		return &Result{Init: true, InitBase: base}, false, nil
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one basename, got %d arguments", flagSet.NArg())}
	}
	base := flagSet.Arg(0)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Basename:   base,
		ConfigPath: configFlag,
		WorkDir:    *workDirFlag,
		Stages:     splitStages(*stageFlag),
		DryRun:     *dryRunFlag,
		EnvFile:    *envFileFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &Result{Config: config}, false, nil
}

// splitStages parses the -stage list, trimming blanks and dropping
// duplicates while preserving order.
func splitStages(s string) []string {
	if s == "" {
		return nil
	}
	seen := make(map[string]bool)
	var stages []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		stages = append(stages, name)
	}
	return stages
}
