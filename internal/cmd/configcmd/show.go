package configcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/config"
	"github.com/open-cli-collective/reactfix/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective reactfix configuration and where each value comes from.`,
		Example: `  # Show current config
  reactfix config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPathFlag(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	fileCfg, err := config.Load(configPath)
	fileMissing := errors.Is(err, os.ErrNotExist)
	switch {
	case fileMissing:
		fileCfg = &config.Config{}
	case err != nil:
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg := *fileCfg
	cfg.LoadFromEnv()

	defaults := config.Config{}
	defaults.ApplyDefaults()

	r := view.NewRenderer(view.FormatTable, noColor)
	r.SetWriter(out)

	printField := func(label, value, fileValue, defaultValue, envVar string) {
		source := "default"
		switch {
		case value != "" && os.Getenv(envVar) == value:
			source = envVar
		case value != "" && value == fileValue:
			source = "config"
		default:
			value = defaultValue
		}
		r.RenderKeyValue(label, fmt.Sprintf("%s  (source: %s)", value, source))
	}

	printField("Root", cfg.Root, fileCfg.Root, defaults.Root, "REACTFIX_ROOT")
	printField("Pattern", cfg.Pattern, fileCfg.Pattern, defaults.Pattern, "REACTFIX_PATTERN")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, defaults.OutputFormat, "REACTFIX_OUTPUT")
	printField("Log level", cfg.LogLevel, fileCfg.LogLevel, defaults.LogLevel, "REACTFIX_LOG_LEVEL")

	r.RenderText("")
	r.RenderKeyValue("Config file", configPath)
	if fileMissing {
		r.RenderText("(file not found)")
	}

	return nil
}
