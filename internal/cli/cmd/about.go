package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, the active clipboard backend, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	backend := app.Config.Clipboard.Backend
	if svc, err := app.Clipboard(); err == nil {
		backend = svc.Backend()
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo, backend))
	return nil
}
