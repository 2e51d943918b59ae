package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/application/usecase"
	"github.com/bnema/clipfetch/internal/cli"
	"github.com/bnema/clipfetch/internal/cli/model"
	"github.com/bnema/clipfetch/internal/infrastructure/config"
	"github.com/bnema/clipfetch/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the clipboard live in a full-screen view",
	Long: `Poll the clipboard once per frame and draw its text centred on screen.

A read error is drawn in place of the text. Display settings in config.toml
(fps, max_lines, show_status) and clipboard.fetch_timeout_ms apply live when
the file changes.

Keys: q, esc or ctrl+c to quit.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Ctx(), "watch")
	display, err := app.DisplayUseCase()
	if err != nil {
		return err
	}

	settings := viewSettings(app.Config)
	watchConfig(app, display, settings)

	m := model.NewClipboardModel(ctx, app.Theme, model.ClipboardModelConfig{
		Display:  display,
		Loop:     app.HostLoop(),
		Settings: settings,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

func viewSettings(cfg *config.Config) *model.ViewSettings {
	return &model.ViewSettings{
		FPS:        cfg.Display.FPS,
		MaxLines:   cfg.Display.MaxLines,
		ShowStatus: cfg.Display.ShowStatus,
	}
}

// watchConfig applies config file edits on the frame loop. Bursts of file
// events collapse into one update per frame.
func watchConfig(app *cli.App, display *usecase.DisplayClipboardUseCase, settings *model.ViewSettings) {
	log := logging.FromContext(app.Ctx())

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		app.Coalescer.Post("config", func() {
			*settings = *viewSettings(cfg)
			display.SetFetchTimeout(cli.FetchTimeout(cfg))
			if cfg.Clipboard.Backend != app.Config.Clipboard.Backend {
				log.Info().Str("backend", cfg.Clipboard.Backend).Msg("backend change takes effect on restart")
			}
			log.Debug().Int("fps", settings.FPS).Int("max_lines", settings.MaxLines).Msg("display settings reloaded")
		})
	})

	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}
