package fixer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/open-cli-collective/reactfix/pkg/rewrite"
)

const testPattern = "docs/components/*/code-examples/*.html"

const reactExample = `<ElvtButton style={{backgroundColor: 'red', fontSize: '12px'}}>Click</ElvtButton>
`

const htmlExample = `<elvt-button style="color: red;">Click</elvt-button>
`

// writeTree creates files under root from a map of slash paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestRun_RewritesMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/button/code-examples/basic.html": reactExample,
		"docs/components/card/code-examples/plain.html":   htmlExample,
		"docs/components/card/code-examples/notes.md":     reactExample,
		"docs/guides/code-examples/intro.html":            reactExample,
	})

	report, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Found())
	assert.Equal(t, []string{"docs/components/button/code-examples/basic.html"}, report.Modified())
	assert.Equal(t, 1, report.Unchanged())
	assert.NoError(t, report.Err())

	assert.Equal(t,
		"<elvt-button style=\"background-Color: red; font-Size: 12px;\">Click</elvt-button>\n",
		readFile(t, root, "docs/components/button/code-examples/basic.html"))

	// Files outside the pattern are untouched.
	assert.Equal(t, reactExample, readFile(t, root, "docs/components/card/code-examples/notes.md"))
	assert.Equal(t, reactExample, readFile(t, root, "docs/guides/code-examples/intro.html"))
}

func TestRun_UnchangedFileNotWritten(t *testing.T) {
	root := t.TempDir()
	rel := "docs/components/card/code-examples/plain.html"
	writeTree(t, root, map[string]string{rel: htmlExample})

	path := filepath.Join(root, filepath.FromSlash(rel))
	old := time.Now().Add(-24 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	report, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)
	assert.Empty(t, report.Modified())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged file must not be rewritten")
}

func TestRun_DryRun(t *testing.T) {
	root := t.TempDir()
	rel := "docs/components/button/code-examples/basic.html"
	writeTree(t, root, map[string]string{rel: reactExample})

	report, err := Run(Options{Root: root, Pattern: testPattern, DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, []string{rel}, report.Modified())
	assert.Equal(t, reactExample, readFile(t, root, rel))
}

func TestRun_InvalidUTF8ContinuesWithOtherFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/a/code-examples/bad.html":  "<ElvtCard>\xff\xfe</ElvtCard>",
		"docs/components/b/code-examples/good.html": reactExample,
	})

	core, logs := observer.New(zapcore.DebugLevel)
	report, err := Run(Options{Root: root, Pattern: testPattern, Logger: zap.New(core)})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Found())
	assert.Equal(t, []string{"docs/components/b/code-examples/good.html"}, report.Modified())
	assert.Equal(t, 1, report.Unchanged())

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "docs/components/a/code-examples/bad.html", failed[0].Path)
	assert.ErrorIs(t, failed[0].Err, ErrInvalidUTF8)
	assert.False(t, failed[0].Changed)

	errs := multierr.Errors(report.Err())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad.html")

	// The bad file is left byte-identical.
	assert.Equal(t, "<ElvtCard>\xff\xfe</ElvtCard>", readFile(t, root, "docs/components/a/code-examples/bad.html"))

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Equal(t, "docs/components/a/code-examples/bad.html", errorLogs[0].ContextMap()["path"])
}

func TestRun_DirectoryMatchingPatternIsReported(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/a/code-examples/dir.html/inner.txt": "x",
		"docs/components/a/code-examples/ok.html":            reactExample,
	})

	report, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Found())
	assert.Len(t, report.Failed(), 1)
	assert.Equal(t, []string{"docs/components/a/code-examples/ok.html"}, report.Modified())
}

func TestRun_PreservesPermissions(t *testing.T) {
	root := t.TempDir()
	rel := "docs/components/button/code-examples/basic.html"
	writeTree(t, root, map[string]string{rel: reactExample})

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.Chmod(path, 0640))

	_, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestRun_ModifiedIsSorted(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/zeta/code-examples/a.html":  reactExample,
		"docs/components/alpha/code-examples/b.html": reactExample,
		"docs/components/mid/code-examples/c.html":   reactExample,
	})

	report, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"docs/components/alpha/code-examples/b.html",
		"docs/components/mid/code-examples/c.html",
		"docs/components/zeta/code-examples/a.html",
	}, report.Modified())
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/button/code-examples/basic.html": reactExample,
	})

	_, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)

	report, err := Run(Options{Root: root, Pattern: testPattern})
	require.NoError(t, err)
	assert.Empty(t, report.Modified())
}

func TestRun_CustomTable(t *testing.T) {
	root := t.TempDir()
	rel := "docs/components/x/code-examples/x.html"
	writeTree(t, root, map[string]string{rel: "<MyWidget/>"})

	report, err := Run(Options{
		Root:    root,
		Pattern: testPattern,
		Table:   rewrite.Table{{From: "MyWidget", To: "my-widget"}},
	})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, 1, report.Files[0].Identifiers)
	assert.Equal(t, "<my-widget/>", readFile(t, root, rel))
}

func TestRun_NoMatches(t *testing.T) {
	report, err := Run(Options{Root: t.TempDir(), Pattern: testPattern})
	require.NoError(t, err)

	assert.Zero(t, report.Found())
	assert.Empty(t, report.Modified())
	assert.Zero(t, report.Unchanged())
	assert.NoError(t, report.Err())
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Run(Options{Root: filepath.Join(t.TempDir(), "missing"), Pattern: testPattern})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to access root")
	})

	t.Run("root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.html")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := Run(Options{Root: file, Pattern: testPattern})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := Run(Options{Root: t.TempDir(), Pattern: "docs/[a-"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, err := Run(Options{Root: t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pattern is required")
	})
}

func TestDiscover_SkipsDotfiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/components/button/code-examples/basic.html":  "",
		"docs/components/button/code-examples/.draft.html": "",
		"docs/components/.hidden/code-examples/x.html":     "",
	})

	paths, err := Discover(root, testPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/components/button/code-examples/basic.html"}, paths)
}

func TestDiscover_ExplicitDotSegment(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".site/index.html": "",
	})

	paths, err := Discover(root, ".site/*.html")
	require.NoError(t, err)
	assert.Equal(t, []string{".site/index.html"}, paths)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.html")
	require.NoError(t, os.WriteFile(path, []byte(reactExample), 0644))

	res, err := ConvertFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.StyleObjects)
	assert.Equal(t, 2, res.Identifiers)
	assert.Contains(t, res.Content, "<elvt-button style=")

	// The file itself is not modified.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, reactExample, string(data))
}

func TestConvertFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFile(filepath.Join(dir, "missing.html"), nil)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.html")
	require.NoError(t, os.WriteFile(bad, []byte{0xff}, 0644))
	_, err = ConvertFile(bad, nil)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
