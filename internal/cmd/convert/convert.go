// Package convert provides the convert command, which prints the rewritten
// form of a single file.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/fixer"
	"github.com/open-cli-collective/reactfix/pkg/rewrite"
)

type convertOptions struct {
	path   string
	stats  bool
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Print the converted form of one file",
		Long: `Convert a single file and write the result to stdout. The file itself
is left untouched. With no argument, or with "-", input is read from stdin.`,
		Example: `  # Preview one example
  reactfix convert docs/components/button/code-examples/basic.html

  # Convert from a pipe
  cat snippet.html | reactfix convert

  # Show how many rewrites were made
  reactfix convert --stats basic.html > /dev/null`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			return runConvert(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print rewrite counts to stderr")

	return cmd
}

func runConvert(opts *convertOptions) error {
	var (
		res rewrite.Result
		err error
	)

	if opts.path == "" || opts.path == "-" {
		in := opts.in
		if in == nil {
			in = os.Stdin
		}
		res, err = fixer.Convert(in, nil)
	} else {
		res, err = fixer.ConvertFile(opts.path, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}

	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, res.Content); err != nil {
		return err
	}

	if opts.stats {
		errOut := opts.errOut
		if errOut == nil {
			errOut = os.Stderr
		}
		fmt.Fprintf(errOut, "style objects: %d, identifiers: %d\n", res.StyleObjects, res.Identifiers)
	}
	return nil
}
