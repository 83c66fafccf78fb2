// Package fix provides the fix command, which rewrites example files in place.
package fix

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/reactfix/internal/config"
	"github.com/open-cli-collective/reactfix/internal/fixer"
	"github.com/open-cli-collective/reactfix/internal/logging"
	"github.com/open-cli-collective/reactfix/internal/view"
)

// ErrNeedsFix is returned by --check when at least one file would change.
var ErrNeedsFix = errors.New("files need conversion")

type fixOptions struct {
	root       string
	pattern    string
	dryRun     bool
	check      bool
	configPath string
	output     string
	logLevel   string
	noColor    bool
	out        io.Writer
	errOut     io.Writer
}

// NewCmdFix creates the fix command.
func NewCmdFix() *cobra.Command {
	opts := &fixOptions{}

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite React-style example files as plain HTML",
		Long: `Rewrite every file matching the pattern under the root directory.

Inline style objects (style={{...}}) become style="..." attributes and known
component identifiers (ElvtButton) become custom-element names (elvt-button).
Files whose content does not change are not written.`,
		Example: `  # Convert the docs tree in the current directory
  reactfix fix

  # Preview what would change
  reactfix fix --dry-run

  # Fail in CI if anything still needs converting
  reactfix fix --check

  # Use another tree and pattern
  reactfix fix --root website --pattern 'examples/*.html'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			if cmd.Flags().Changed("output") {
				opts.output, _ = cmd.Flags().GetString("output")
			}
			if cmd.Flags().Changed("log-level") {
				opts.logLevel, _ = cmd.Flags().GetString("log-level")
			}
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			return runFix(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Root directory of the docs tree (default: .)")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Glob pattern relative to root (default: "+config.DefaultPattern+")")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Report changes without writing files")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Like --dry-run, but exit non-zero if any file would change")

	return cmd
}

// resolveConfig merges config file, environment and flags, in increasing
// order of precedence.
func resolveConfig(opts *fixOptions) (*config.Config, error) {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.root != "" {
		cfg.Root = opts.root
	}
	if opts.pattern != "" {
		cfg.Pattern = opts.pattern
	}
	if opts.output != "" {
		cfg.OutputFormat = opts.output
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runFix(opts *fixOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	errOut := opts.errOut
	if errOut == nil {
		errOut = os.Stderr
	}
	log, err := logging.New(cfg.LogLevel, opts.noColor, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	report, err := fixer.Run(fixer.Options{
		Root:    cfg.Root,
		Pattern: cfg.Pattern,
		DryRun:  opts.dryRun || opts.check,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(cfg.OutputFormat), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}
	if err := renderReport(renderer, report); err != nil {
		return err
	}

	if opts.check {
		if n := len(report.Modified()); n > 0 {
			return fmt.Errorf("%w: %d of %d", ErrNeedsFix, n, report.Found())
		}
	}
	return nil
}

type fileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type summary struct {
	Found         int         `json:"found"`
	Modified      int         `json:"modified"`
	Unchanged     int         `json:"unchanged"`
	DryRun        bool        `json:"dry_run"`
	ModifiedFiles []string    `json:"modified_files"`
	Errors        []fileError `json:"errors,omitempty"`
}

func renderReport(r *view.Renderer, report *fixer.Report) error {
	modified := report.Modified()

	switch r.Format() {
	case view.FormatJSON:
		s := summary{
			Found:         report.Found(),
			Modified:      len(modified),
			Unchanged:     report.Unchanged(),
			DryRun:        report.DryRun,
			ModifiedFiles: modified,
		}
		if s.ModifiedFiles == nil {
			s.ModifiedFiles = []string{}
		}
		for _, f := range report.Failed() {
			s.Errors = append(s.Errors, fileError{Path: f.Path, Error: f.Err.Error()})
		}
		return r.RenderJSON(s)

	case view.FormatPlain:
		for _, p := range modified {
			r.RenderText(p)
		}
		return nil
	}

	r.RenderText(fmt.Sprintf("Found %d HTML files to process...", report.Found()))
	r.RenderText("")
	r.RenderText("Processing complete!")
	if report.DryRun {
		r.RenderText(fmt.Sprintf("Files that would be modified: %d", len(modified)))
	} else {
		r.RenderText(fmt.Sprintf("Files modified: %d", len(modified)))
	}
	r.RenderText(fmt.Sprintf("Files unchanged: %d", report.Unchanged()))

	if len(modified) > 0 {
		r.RenderText("")
		if report.DryRun {
			r.RenderText("Files that would be modified:")
		} else {
			r.RenderText("Modified files:")
		}
		for _, p := range modified {
			r.RenderText("  - " + p)
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		r.RenderText("")
		r.Warning(fmt.Sprintf("%d file(s) could not be processed:", len(failed)))
		for _, f := range failed {
			r.RenderText(fmt.Sprintf("  - %s: %v", f.Path, f.Err))
		}
	}
	return nil
}
