package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/clipfetch/internal/cli/styles"
	"github.com/bnema/clipfetch/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Inspect and edit config.toml.

The file lives in $XDG_CONFIG_HOME/clipfetch and is created with the defaults
on first run. Every key can also be set through a CLIPFETCH_ environment
variable, for example CLIPFETCH_CLIPBOARD_BACKEND=tools.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the file and environment variables are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing every configuration key.

Editors with TOML schema support can use it for completion and validation.`,
	RunE: runConfigSchema,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}
	fmt.Println(configFile)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		mgr.Set("clipboard.backend", flagBackend)
	}
	if flagLogLevel != "" {
		mgr.Set("logging.level", flagLogLevel)
	}
	if err := mgr.Load(); err != nil {
		fmt.Println(renderer.RenderValidationError(err))
		return &exitError{code: 1, err: errReported}
	}

	doc, err := config.Encode(mgr.Get())
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		_, err = os.Stdout.Write(doc)
		return err
	}
	fmt.Println(renderer.RenderConfigInfo(mgr.ConfigFile()))
	fmt.Println(renderer.RenderTOML(string(doc)))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Println(string(schema))
	return nil
}

// runConfigEdit opens the config file in the user's editor.
func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		if err := config.WriteConfig(config.DefaultConfig(), configPath); err != nil {
			return err
		}
	}

	// prefer $VISUAL, fallback to $EDITOR
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
