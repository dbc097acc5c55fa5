// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/importcurly/internal/config"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// FixFunc fixes source text. filename carries the extension that selects
// the language.
type FixFunc func(input, filename string, cfg *config.Config) (string, error)

// RunGolden runs a single golden file test in the given directory.
// It reads input.<ext> and an optional config.yml, applies fixFn, and
// compares against expected.<ext>.
func RunGolden(t *testing.T, dir string, fixFn FixFunc) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "input.*"))
	require.NoError(t, err)
	require.Len(t, matches, 1, "want exactly one input file in %s", dir)

	inputPath := matches[0]
	expectedPath := filepath.Join(dir, "expected"+filepath.Ext(inputPath))

	cfg := config.DefaultConfig()
	if cfgPath := filepath.Join(dir, "config.yml"); fileExists(cfgPath) {
		cfg, err = config.Load(cfgPath)
		require.NoError(t, err)
	}

	inputBytes, err := os.ReadFile(inputPath)
	require.NoError(t, err)

	actual, err := fixFn(string(inputBytes), inputPath, cfg)
	require.NoError(t, err)

	if *Update {
		require.NoError(t, os.WriteFile(expectedPath, []byte(actual), 0o644))
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	require.NoError(t, err)
	require.Equal(t, string(expectedBytes), actual, "output mismatch for %s", dir)
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, fixFn FixFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	require.NoError(t, err, "reading testdata dir %s", testdataDir)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, filepath.Join(testdataDir, entry.Name()), fixFn)
		})
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
