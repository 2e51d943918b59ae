// Package cmd provides Cobra CLI commands for clipfetch.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli"
	"github.com/bnema/clipfetch/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	flagBackend  string
	flagLogLevel string
	flagVerbose  bool

	rootCmd = &cobra.Command{
		Use:   "clipfetch",
		Short: "Non-blocking clipboard reader",
		Long: `clipfetch - read the system clipboard without ever blocking the frame loop.

Every read returns a pending handle immediately; the caller polls it once per
frame and redraws when the text changes. Backends cover native OS APIs,
command-line tools (wl-paste, xclip, xsel), and an emulated browser clipboard
whose promises settle on the host event loop.

Run without a subcommand to watch the clipboard in a full-screen view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWatch,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}
			// config subcommands must work while the file is invalid
			if cmd.HasParent() && cmd.Parent().Name() == "config" {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Backend:     flagBackend,
				LogLevel:    flagLogLevel,
				LogToStderr: flagVerbose && !isWatch(cmd),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "clipboard backend (overrides clipboard.backend)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides logging.level)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "also write logs to stderr")
}

// isWatch reports whether cmd runs the full-screen view, which must not log
// to the terminal.
func isWatch(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "watch"
}

// exitError carries a process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command and exits with its status.
func Execute() {
	if code := run(os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// run executes the root command, closes the app and returns the exit status.
// cobra skips PersistentPostRun when RunE fails, so the app is closed here.
func run(stderr io.Writer) int {
	err := rootCmd.Execute()
	closeApp()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil && !errors.Is(ee.err, errReported) {
			fmt.Fprintln(stderr, ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// errReported marks an error the command already printed.
var errReported = errors.New("reported")

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
