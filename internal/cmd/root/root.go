// Package root provides the root command for the reactfix CLI.
package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/cmd/completion"
	"github.com/open-cli-collective/reactfix/internal/cmd/components"
	"github.com/open-cli-collective/reactfix/internal/cmd/configcmd"
	"github.com/open-cli-collective/reactfix/internal/cmd/convert"
	"github.com/open-cli-collective/reactfix/internal/cmd/fix"
	initcmd "github.com/open-cli-collective/reactfix/internal/cmd/init"
	"github.com/open-cli-collective/reactfix/internal/logging"
	"github.com/open-cli-collective/reactfix/internal/version"
	"github.com/open-cli-collective/reactfix/internal/view"
)

// NewCmdRoot creates the root command for reactfix.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reactfix",
		Short: "Convert React-style HTML examples to standard HTML",
		Long: `reactfix rewrites HTML code examples written with React syntax into
plain HTML that web components understand.

It converts inline style objects (style={{...}}) into style="..." attributes
and PascalCase component names (ElvtButton) into custom-element names
(elvt-button).

Get started by running: reactfix fix --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/reactfix/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", string(view.FormatTable), "output format: "+strings.Join(view.ValidFormats(), ", "))
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", logging.LevelNormal, "log level: "+strings.Join(logging.ValidLevels(), ", "))

	cmd.SetVersionTemplate("reactfix version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(fix.NewCmdFix())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(components.NewCmdComponents())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
