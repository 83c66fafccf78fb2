// Package components provides the components command, which lists the
// identifier conversion table.
package components

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/view"
	"github.com/open-cli-collective/reactfix/pkg/rewrite"
)

type componentsOptions struct {
	output  string
	noColor bool
	out     io.Writer
}

// NewCmdComponents creates the components command.
func NewCmdComponents() *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"table"},
		Short:   "List the component identifiers that are rewritten",
		Long: `List the component identifier conversions in the order they are applied.

Entries marked "shadowed" contain an earlier identifier and never match on
their own; for example ElvtButtonGroup is rewritten by the ElvtButton entry
and becomes elvt-buttonGroup.`,
		Example: `  # Show the table
  reactfix components

  # As JSON
  reactfix components -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			return runComponents(opts, rewrite.DefaultTable())
		},
	}

	return cmd
}

func runComponents(opts *componentsOptions, table rewrite.Table) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	shadowed := make(map[string]bool)
	for _, c := range table.Shadowed() {
		shadowed[c.From] = true
	}

	rows := make([][]string, 0, len(table))
	for _, c := range table {
		note := ""
		if shadowed[c.From] {
			note = "shadowed"
		}
		rows = append(rows, []string{c.From, c.To, note})
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}
	renderer.RenderTable([]string{"SOURCE", "TARGET", "NOTE"}, rows)
	return nil
}
