package runner

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dirty = "import {c, b, a} from 'x'\n"
	clean = "import {\n  a,\n  b,\n  c\n} from 'x'\n"
)

// newOptions returns options reading stdin from input with captured output.
// Tests run from an empty directory so no config file is discovered.
func newOptions(t *testing.T, input string) (*Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	return &Options{
		Stdin:  strings.NewReader(input),
		Stdout: &stdout,
		Stderr: &stderr,
		Jobs:   2,
	}, &stdout, &stderr
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunStdinFix(t *testing.T) {
	opts, stdout, stderr := newOptions(t, dirty)

	code := Run(t.Context(), opts)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, clean, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunStdinJavaScript(t *testing.T) {
	opts, stdout, _ := newOptions(t, "import {b, a} from 'x'\n")
	opts.StdinFilename = "input.mjs"

	code := Run(t.Context(), opts)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "import { a,b} from 'x'\n", stdout.String())
}

func TestRunStdinUnsupportedFilename(t *testing.T) {
	opts, _, stderr := newOptions(t, dirty)
	opts.StdinFilename = "input.py"

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), "unsupported language")
}

func TestRunCheck(t *testing.T) {
	opts, stdout, _ := newOptions(t, dirty)
	opts.Check = true

	code := Run(t.Context(), opts)
	assert.Equal(t, ExitFindings, code)

	out := stdout.String()
	assert.Contains(t, out, "<stdin>:1:8: Run autofix to put each imported name on its own line [newline]")
	assert.Contains(t, out, "<stdin>:1:8: Run autofix to sort imported names [sort-params]")
	assert.Contains(t, out, "2 issue(s) found, 2 fixable.")
}

func TestRunCheckClean(t *testing.T) {
	opts, stdout, _ := newOptions(t, clean)
	opts.Check = true

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Empty(t, stdout.String())
}

func TestRunCheckJSON(t *testing.T) {
	opts, stdout, _ := newOptions(t, "import {b, a} from 'x'\n")
	opts.Check = true
	opts.Format = "json"

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "<stdin>", got[0]["file"])
	assert.Equal(t, "sort-params", got[0]["rule"])
	assert.Equal(t, "import-sort-params", got[0]["messageId"])
	assert.Equal(t, float64(1), got[0]["line"])
	assert.Equal(t, float64(8), got[0]["column"])
	assert.Equal(t, true, got[0]["fixable"])
}

func TestRunCheckJSONClean(t *testing.T) {
	opts, stdout, _ := newOptions(t, clean)
	opts.Check = true
	opts.Format = "json"

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.JSONEq(t, "[]", stdout.String())
}

func TestRunUnknownFormat(t *testing.T) {
	opts, _, stderr := newOptions(t, dirty)
	opts.Format = "xml"

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), "unknown output format")
}

func TestRunDiff(t *testing.T) {
	opts, stdout, _ := newOptions(t, "import {b,a} from 'x'\n")
	opts.Diff = true

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))

	out := stdout.String()
	assert.Contains(t, out, "--- a/<stdin>")
	assert.Contains(t, out, "+++ b/<stdin>")
	assert.Contains(t, out, "-import {b,a} from 'x'")
	assert.Contains(t, out, "+import {a,b} from 'x'")
}

func TestRunDiffFile(t *testing.T) {
	opts, stdout, _ := newOptions(t, "")
	dir := t.TempDir()
	path := writeSource(t, dir, "a.ts", "import {b,a} from 'x'\n")
	opts.Paths = []string{path}
	opts.Diff = true

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))
	assert.Contains(t, stdout.String(), "--- a/"+path)

	// Diff mode leaves the file alone.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "import {b,a} from 'x'\n", string(data))
}

func TestRunWrite(t *testing.T) {
	opts, stdout, stderr := newOptions(t, "")
	dir := t.TempDir()
	path := writeSource(t, dir, "a.ts", dirty)
	opts.Paths = []string{path}

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "fixed "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, clean, string(data))
}

func TestRunWriteQuiet(t *testing.T) {
	opts, _, stderr := newOptions(t, "")
	path := writeSource(t, t.TempDir(), "a.ts", dirty)
	opts.Paths = []string{path}
	opts.Quiet = true

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Empty(t, stderr.String())
}

func TestRunAlreadyClean(t *testing.T) {
	opts, _, stderr := newOptions(t, "")
	path := writeSource(t, t.TempDir(), "a.ts", clean)
	info, err := os.Stat(path)
	require.NoError(t, err)
	opts.Paths = []string{path}

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Empty(t, stderr.String())

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
}

func TestRunRemainingFindings(t *testing.T) {
	// The comma inside the comment keeps the list from being split safely.
	src := "import {b /* x, y */, a} from 'x'\n"
	opts, stdout, stderr := newOptions(t, src)

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))
	assert.Equal(t, src, stdout.String())
	assert.Contains(t, stderr.String(), "<stdin>:1:8: Run autofix to sort imported names [sort-params]")
	assert.Contains(t, stderr.String(), "1 issue(s) found, 0 fixable.")
}

func TestRunRemainingFindingsQuiet(t *testing.T) {
	src := "import {b /* x, y */, a} from 'x'\n"
	opts, stdout, stderr := newOptions(t, src)
	opts.Quiet = true

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))
	assert.Equal(t, src, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunRemainingFindingsQuietFile(t *testing.T) {
	src := "import {b /* x, y */, a} from 'x'\n"
	opts, _, stderr := newOptions(t, "")
	opts.Paths = []string{writeSource(t, t.TempDir(), "a.ts", src)}
	opts.Quiet = true

	assert.Equal(t, ExitFindings, Run(t.Context(), opts))
	assert.Empty(t, stderr.String())
}

func TestRunWriteRequiresPaths(t *testing.T) {
	opts, stdout, stderr := newOptions(t, dirty)
	opts.Write = true

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "-w requires file paths")
}

func TestRunWriteFlagWithPaths(t *testing.T) {
	opts, _, _ := newOptions(t, "")
	path := writeSource(t, t.TempDir(), "a.ts", dirty)
	opts.Paths = []string{path}
	opts.Write = true

	assert.Equal(t, ExitOK, Run(t.Context(), opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, clean, string(data))
}

func TestRunMissingFile(t *testing.T) {
	opts, _, stderr := newOptions(t, "")
	opts.Paths = []string{filepath.Join(t.TempDir(), "missing.ts")}

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), "importcurly:")
}

func TestRunExplicitUnsupportedFile(t *testing.T) {
	opts, _, stderr := newOptions(t, "")
	path := writeSource(t, t.TempDir(), "notes.txt", dirty)
	opts.Paths = []string{path}

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), "unsupported language")
}

func TestRunBadConfig(t *testing.T) {
	opts, _, stderr := newOptions(t, dirty)
	opts.ConfigPath = filepath.Join(t.TempDir(), "missing.yml")

	assert.Equal(t, ExitError, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), "config file not found")
}

func TestRunExplicitConfig(t *testing.T) {
	opts, stdout, _ := newOptions(t, "import {a, b, c} from 'x'\n")
	opts.ConfigPath = writeSource(t, t.TempDir(), "cfg.yml", "rules:\n  newline:\n    count: 4\n")

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Equal(t, "import {a, b, c} from 'x'\n", stdout.String())
}

func TestRunMultipleFilesInOrder(t *testing.T) {
	for _, jobs := range []int{1, 4} {
		opts, stdout, _ := newOptions(t, "")
		dir := t.TempDir()
		var paths []string
		for _, name := range []string{"c.ts", "a.ts", "b.ts"} {
			paths = append(paths, writeSource(t, dir, name, "import {b,a} from 'x'\n"))
		}
		opts.Paths = paths
		opts.Check = true
		opts.Jobs = jobs

		assert.Equal(t, ExitFindings, Run(t.Context(), opts))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		for i, p := range paths {
			assert.True(t, strings.HasPrefix(lines[i], p+":"), "jobs=%d line %d: %s", jobs, i, lines[i])
		}
	}
}

func TestRunDirectory(t *testing.T) {
	opts, _, _ := newOptions(t, "")
	dir := t.TempDir()
	app := writeSource(t, dir, "src/app.tsx", "import {b,a} from 'x'\n")
	dep := writeSource(t, dir, "node_modules/dep/index.js", "import {b,a} from 'x'\n")
	opts.Paths = []string{dir}

	assert.Equal(t, ExitOK, Run(t.Context(), opts))

	data, err := os.ReadFile(app)
	require.NoError(t, err)
	assert.Equal(t, "import {a,b} from 'x'\n", string(data))

	data, err = os.ReadFile(dep)
	require.NoError(t, err)
	assert.Equal(t, "import {b,a} from 'x'\n", string(data))
}

func TestRunVerbose(t *testing.T) {
	opts, _, stderr := newOptions(t, "")
	path := writeSource(t, t.TempDir(), "a.ts", clean)
	opts.Paths = []string{path}
	opts.Verbose = true

	assert.Equal(t, ExitOK, Run(t.Context(), opts))
	assert.Contains(t, stderr.String(), path+"\n")
}
