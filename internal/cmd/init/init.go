// Package init provides the init command for reactfix.
package init

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/config"
	"github.com/open-cli-collective/reactfix/internal/view"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		root    string
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize reactfix configuration",
		Long: `Initialize reactfix with the location of your docs tree.

This command asks for the root directory and the glob pattern that selects
the example files. The configuration will be saved to
~/.config/reactfix/config.yml.`,
		Example: `  # Interactive setup
  reactfix init

  # Pre-populate the root directory
  reactfix init --root ~/src/design-system`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runInit(configPath, root, pattern, noColor, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Root directory of the docs tree")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob pattern selecting example files")

	return cmd
}

func runInit(configPath, prefillRoot, prefillPattern string, noColor bool, out io.Writer) error {
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		Root:         prefillRoot,
		Pattern:      prefillPattern,
		OutputFormat: string(view.FormatTable),
	}
	cfg.ApplyDefaults()

	if err := newForm(cfg).Run(); err != nil {
		return err
	}

	return saveConfig(cfg, configPath, noColor, out)
}

func newForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Root directory").
				Description("Directory that contains the docs tree").
				Placeholder(".").
				Value(&cfg.Root).
				Validate(validateRoot),

			huh.NewInput().
				Title("Pattern").
				Description("Glob pattern, relative to the root, selecting example files").
				Placeholder(config.DefaultPattern).
				Value(&cfg.Pattern).
				Validate(validatePattern),

			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&cfg.OutputFormat),
		),
	)
}

func validateRoot(s string) error {
	if s == "" {
		return fmt.Errorf("root directory is required")
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", s, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validatePattern(s string) error {
	if s == "" {
		return fmt.Errorf("pattern is required")
	}
	if _, err := filepath.Match(s, ""); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

func saveConfig(cfg *config.Config, configPath string, noColor bool, out io.Writer) error {
	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	r := view.NewRenderer(view.FormatTable, noColor)
	r.SetWriter(out)
	r.RenderText("")
	r.Success("Configuration saved to " + configPath)
	r.RenderText("")
	r.RenderText("You're all set! Try running:")
	r.RenderText("  reactfix fix --dry-run")
	r.RenderText("  reactfix fix")

	return nil
}
