package gtool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fermikit/latprep/internal/ctxlog"
)

// ToolError describes a tool invocation that started but exited non-zero.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

// Error implements the error interface for ToolError.
func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
}

// Runner invokes external tools as blocking subprocesses.
type Runner struct {
	// BinDir, when set, is prepended to every tool name.
	BinDir string

	// WorkDir is the working directory for every invocation.
	WorkDir string

	// DryRun logs the rendered command line instead of executing it.
	DryRun bool

	extraEnv []string
}

// NewRunner returns a Runner executing in workDir.
func NewRunner(binDir, workDir string, dryRun bool) *Runner {
	return &Runner{BinDir: binDir, WorkDir: workDir, DryRun: dryRun}
}

// LoadEnvFile reads a dotenv file and merges its variables over the
// inherited environment for subsequent invocations.
func (r *Runner) LoadEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.extraEnv = append(r.extraEnv, k+"="+vars[k])
	}
	return nil
}

// Run executes one tool invocation and blocks until it finishes. The
// returned error is a *ToolError for non-zero exits and a plain error when
// the process could not be started at all.
func (r *Runner) Run(ctx context.Context, app *App) error {
	logger := ctxlog.FromContext(ctx).With("tool", app.Tool)

	argv, err := app.Command(r.BinDir)
	if err != nil {
		return fmt.Errorf("rendering %s command: %w", app.Tool, err)
	}
	rendered := strings.Join(argv, " ")

	if r.DryRun {
		logger.Info("Dry run, command not executed.", "command", rendered)
		return nil
	}
	logger.Info("Invoking tool.", "command", rendered)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.WorkDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(r.extraEnv) > 0 {
		cmd.Env = append(os.Environ(), r.extraEnv...)
	}

	runErr := cmd.Run()

	if out := strings.TrimSpace(stdout.String()); out != "" {
		logger.Debug("Tool stdout.", "output", out)
	}
	if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
		logger.Warn("Tool stderr.", "output", errOut)
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s interrupted: %w", app.Tool, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return &ToolError{
				Tool:     app.Tool,
				ExitCode: exitErr.ExitCode(),
				Stderr:   lastLine(stderr.String()),
			}
		}
		return fmt.Errorf("starting %s: %w", app.Tool, runErr)
	}

	logger.Info("Tool finished.", "exit_code", 0)
	return nil
}

// lastLine returns the final non-empty line of s, which for the science
// tools is where the human-readable failure reason lands.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
