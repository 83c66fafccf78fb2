// Package fixer applies the React-to-HTML rewrite to a tree of example files.
package fixer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/open-cli-collective/reactfix/pkg/rewrite"
)

// ErrInvalidUTF8 is returned for files whose content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Options configures a Run.
type Options struct {
	Root    string
	Pattern string
	DryRun  bool
	Table   rewrite.Table
	Logger  *zap.Logger
}

// FileResult records what happened to one file.
type FileResult struct {
	Path         string
	Changed      bool
	StyleObjects int
	Identifiers  int
	Err          error
}

// Report collects the results of a Run in discovery order.
type Report struct {
	Files  []FileResult
	DryRun bool
}

// Found returns the number of files matched by the pattern.
func (r *Report) Found() int {
	return len(r.Files)
}

// Modified returns the sorted paths of files that were (or, in a dry run,
// would be) rewritten.
func (r *Report) Modified() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Changed {
			paths = append(paths, f.Path)
		}
	}
	slices.Sort(paths)
	return paths
}

// Unchanged returns the number of files left as they were, including files
// that failed.
func (r *Report) Unchanged() int {
	n := 0
	for _, f := range r.Files {
		if !f.Changed {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// Err combines all per-file errors, or returns nil.
func (r *Report) Err() error {
	var err error
	for _, f := range r.Files {
		if f.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", f.Path, f.Err))
		}
	}
	return err
}

// Run rewrites every file under opts.Root matching opts.Pattern. Failures on
// individual files are recorded in the report and do not stop the run; the
// returned error is reserved for an unusable root or pattern.
func Run(opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	paths, err := Discover(root, opts.Pattern)
	if err != nil {
		return nil, err
	}
	log.Debug("Discovered files", zap.String("root", root), zap.String("pattern", opts.Pattern), zap.Int("count", len(paths)))

	rw := rewrite.New(opts.Table)
	report := &Report{DryRun: opts.DryRun}
	for _, rel := range paths {
		res := processFile(rw, root, rel, opts.DryRun)
		if res.Err != nil {
			log.Error("Unable to process file", zap.String("path", rel), zap.Error(res.Err))
		} else if res.Changed {
			log.Debug("Rewrote file",
				zap.String("path", rel),
				zap.Int("style_objects", res.StyleObjects),
				zap.Int("identifiers", res.Identifiers),
				zap.Bool("dry_run", opts.DryRun))
		} else {
			log.Debug("File unchanged", zap.String("path", rel))
		}
		report.Files = append(report.Files, res)
	}

	return report, nil
}

// Discover returns the paths under root matching pattern, relative to root
// and in slash-separated form. Wildcards do not match names beginning with a
// dot.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errors.New("pattern is required")
	}

	matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var paths []string
	for _, m := range matches {
		rel, err := filepath.Rel(root, m)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		if hidesDotfile(pattern, rel) {
			continue
		}
		paths = append(paths, rel)
	}
	return paths, nil
}

// hidesDotfile reports whether a wildcard segment of pattern matched a
// dot-prefixed name in rel.
func hidesDotfile(pattern, rel string) bool {
	patSegs := strings.Split(filepath.ToSlash(filepath.Clean(filepath.FromSlash(pattern))), "/")
	relSegs := strings.Split(rel, "/")
	if len(patSegs) != len(relSegs) {
		return false
	}
	for i, seg := range relSegs {
		if strings.HasPrefix(seg, ".") && !strings.HasPrefix(patSegs[i], ".") {
			return true
		}
	}
	return false
}

func processFile(rw *rewrite.Rewriter, root, rel string, dryRun bool) FileResult {
	res := FileResult{Path: rel}
	path := filepath.Join(root, filepath.FromSlash(rel))

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	if !utf8.Valid(data) {
		res.Err = ErrInvalidUTF8
		return res
	}

	original := string(data)
	out := rw.Rewrite(original)
	res.StyleObjects = out.StyleObjects
	res.Identifiers = out.Identifiers
	if !out.Changed(original) {
		return res
	}

	if !dryRun {
		if err := writeFile(path, out.Content); err != nil {
			res.Err = err
			return res
		}
	}
	res.Changed = true
	return res
}

func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}

// Convert reads r fully and rewrites its content.
func Convert(r io.Reader, table rewrite.Table) (rewrite.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return rewrite.Result{}, err
	}
	if !utf8.Valid(data) {
		return rewrite.Result{}, ErrInvalidUTF8
	}
	return rewrite.New(table).Rewrite(string(data)), nil
}

// ConvertFile rewrites one file in memory and returns the result without
// touching the file.
func ConvertFile(path string, table rewrite.Table) (rewrite.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return rewrite.Result{}, err
	}
	defer func() { _ = f.Close() }()

	res, err := Convert(f, table)
	if err != nil {
		return rewrite.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
