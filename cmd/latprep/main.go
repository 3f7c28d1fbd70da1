package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fermikit/latprep/internal/app"
	"github.com/fermikit/latprep/internal/cli"
	"github.com/fermikit/latprep/internal/hclcfg"
)

// main is the entrypoint for the latprep binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	result, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if result.Init {
		path := result.InitBase + ".hcl"
		if err := hclcfg.WriteExample(path, result.InitBase); err != nil {
			return err
		}
		fmt.Fprintf(outW, "Wrote example config %s. Edit it and rename it <basename>.hcl for your analysis.\n", filepath.Clean(path))
		return nil
	}

	// The app panics on critical config errors; recover into a clean exit
	// message for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := hclcfg.NewLoader()
	latprepApp := app.NewApp(outW, result.Config, loader)
	defer latprepApp.Close()

	return latprepApp.Run(ctx)
}
