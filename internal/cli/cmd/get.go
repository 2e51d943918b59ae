package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli"
	"github.com/bnema/clipfetch/internal/cli/model"
	"github.com/bnema/clipfetch/internal/logging"
	"github.com/bnema/clipfetch/pkg/clipboard"
)

// Exit statuses of get.
const (
	exitNoText       = 1
	exitAccessDenied = 2
	exitFailed       = 3
)

var (
	getTimeout time.Duration
	getRaw     bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the clipboard text once",
	Long: `Read the clipboard once and print its text.

When stdout is not a terminal the text is written unchanged, so the command
composes with pipes. On a terminal a spinner shows while the read is pending.

Exit status: 0 on success, 1 when the clipboard holds no text, 2 when access
is denied, 3 on any other failure or timeout.

Examples:
  clipfetch get                      # Print the clipboard
  clipfetch get --timeout 2s         # Give up after two seconds
  clipfetch get -b webemu | wc -c    # Read through the emulated browser clipboard`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().DurationVarP(&getTimeout, "timeout", "t", 0, "give up after this long (default clipboard.fetch_timeout_ms, 0 waits until interrupted)")
	getCmd.Flags().BoolVarP(&getRaw, "raw", "r", false, "print unstyled output even on a terminal")
}

func runGet(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc, err := app.FetchOnceUseCase()
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "get"), os.Interrupt)
	defer stop()

	timeout := getTimeout
	if timeout == 0 {
		timeout = cli.FetchTimeout(app.Config)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	interactive := !getRaw && isatty.IsTerminal(os.Stdout.Fd())
	if !interactive {
		text, err := uc.Fetch(ctx)
		if err != nil {
			return &exitError{code: exitCode(err), err: err}
		}
		_, err = fmt.Fprint(os.Stdout, text)
		return err
	}

	fm := model.NewFetchModel(ctx, app.Theme, "reading clipboard ("+uc.Backend()+")", uc.Fetch)
	final, err := tea.NewProgram(fm, tea.WithOutput(os.Stderr), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("get: %w", err)
	}

	result, ok := final.(model.FetchModel)
	if !ok || !result.Done() {
		cause := context.Cause(ctx)
		if cause == nil {
			cause = context.Canceled
		}
		return &exitError{code: exitFailed, err: fmt.Errorf("clipboard read: %w", cause)}
	}

	text, err := result.Result()
	if err != nil {
		fmt.Fprintln(os.Stderr, app.Theme.ErrorStyle.Render(clipboard.Debug(err)))
		return &exitError{code: exitCode(err), err: errReported}
	}
	fmt.Println(text)
	return nil
}

// exitCode maps a read error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, clipboard.ErrNoText):
		return exitNoText
	case errors.Is(err, clipboard.ErrAccessDenied):
		return exitAccessDenied
	default:
		return exitFailed
	}
}
