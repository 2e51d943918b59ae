package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli/styles"
	infraclip "github.com/bnema/clipfetch/internal/infrastructure/clipboard"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List clipboard backends and their availability",
	Long: `List every clipboard backend, whether it completes synchronously or
asynchronously, and whether it can be used on this machine.

The configured backend is marked with *.`,
	RunE: runBackends,
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewBackendsRenderer(app.Theme).Render(backendRows(infraclip.Available(), app.Config.Clipboard.Backend)))
	if app.Config.Clipboard.Backend == infraclip.BackendAuto {
		fmt.Println(app.Theme.Subtle.Render("backend = auto: the first available of native, tools, atotto, design"))
	}
	return nil
}

func backendRows(infos []infraclip.Info, selected string) []styles.BackendRow {
	rows := make([]styles.BackendRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, styles.BackendRow{
			Name:      info.Name,
			Mode:      info.Mode,
			Available: info.Available,
			Selected:  info.Name == selected,
			Note:      info.Note,
		})
	}
	return rows
}
