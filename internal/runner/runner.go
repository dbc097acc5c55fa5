// Package runner orchestrates the parse -> check -> fix -> output pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/importcurly/internal/config"
	"github.com/donaldgifford/importcurly/internal/formatter"
	"github.com/donaldgifford/importcurly/internal/parser"
	"github.com/donaldgifford/importcurly/internal/report"
	"github.com/donaldgifford/importcurly/internal/rules"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// stdinName is how stdin appears in diagnostics and diffs.
const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	Paths      []string
	Check      bool
	Diff       bool
	Write      bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
	Format     string // Diagnostic format: text or json.
	Jobs       int    // Files processed concurrently; <= 0 means NumCPU.

	// StdinFilename picks the language for stdin input.
	StdinFilename string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	// Stdin output always goes to stdout; there is no file to write.
	if opts.Write && len(opts.Paths) == 0 {
		writeErr(opts.Stderr, "importcurly: -w requires file paths\n")
		return ExitError
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %v\n", err)
		return ExitError
	}

	reporter, err := report.New(opts.Format)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %v\n", err)
		return ExitError
	}

	r := &run{opts: opts, cfg: cfg, rules: rules.All(), reporter: reporter}

	// stdin mode: no paths given.
	if len(opts.Paths) == 0 {
		return r.stdin()
	}

	files, err := CollectFiles(opts.Paths, cfg.Files)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %v\n", err)
		return ExitError
	}

	results, err := r.processAll(ctx, files)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %v\n", err)
		return ExitError
	}

	exitCode := ExitOK
	var diags []report.Diagnostic
	for _, res := range results {
		code, d := r.output(res)
		diags = append(diags, d...)
		exitCode = max(exitCode, code)
	}

	if len(diags) > 0 || (opts.Check && opts.Format == "json") {
		if err := r.report(diags); err != nil {
			return ExitError
		}
	}
	return exitCode
}

type run struct {
	opts     *Options
	cfg      *config.Config
	rules    []formatter.Rule
	reporter report.Reporter
}

// fileResult is the outcome of fixing one file.
type fileResult struct {
	path  string
	input string
	fix   *formatter.Result
	err   error
}

// processAll fixes files concurrently and returns results in input order.
// Per-file failures are kept on the result; only cancellation aborts.
func (r *run) processAll(ctx context.Context, files []string) ([]*fileResult, error) {
	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.processFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *run) processFile(path string) *fileResult {
	res := &fileResult{path: path}

	lang, err := parser.LanguageFor(path)
	if err != nil {
		res.err = err
		return res
	}

	src, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	res.input = string(src)

	res.fix, res.err = formatter.Fix(res.input, lang, r.cfg, r.rules)
	return res
}

// output handles one file according to the mode and returns its exit code
// and the diagnostics to report.
func (r *run) output(res *fileResult) (int, []report.Diagnostic) {
	opts := r.opts

	if res.err != nil {
		writeErr(opts.Stderr, "importcurly: %s: %v\n", res.path, res.err)
		return ExitError, nil
	}

	if opts.Verbose {
		writeErr(opts.Stderr, "%s\n", res.path)
	}

	if opts.Check {
		diags := diagnostics(res.path, res.input, res.fix.Initial)
		if len(diags) > 0 {
			return ExitFindings, diags
		}
		return ExitOK, nil
	}

	if opts.Diff {
		d, err := unifiedDiff(res.path, res.input, res.fix.Output)
		if err != nil {
			writeErr(opts.Stderr, "importcurly: %s: %v\n", res.path, err)
			return ExitError, nil
		}
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFindings, nil
		}
		return ExitOK, nil
	}

	// Write mode (default for path args).
	if res.fix.Changed() {
		if err := os.WriteFile(res.path, []byte(res.fix.Output), 0o644); err != nil {
			writeErr(opts.Stderr, "importcurly: writing %s: %v\n", res.path, err)
			return ExitError, nil
		}
		if !opts.Quiet {
			writeErr(opts.Stderr, "fixed %s (%d change(s))\n", res.path, res.fix.Applied)
		}
	}

	return r.remaining(res.path, res.fix)
}

func (r *run) stdin() int {
	opts := r.opts

	name := opts.StdinFilename
	if name == "" {
		name = "stdin.ts"
	}
	lang, err := parser.LanguageFor(name)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %v\n", err)
		return ExitError
	}

	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: reading stdin: %v\n", err)
		return ExitError
	}
	input := string(src)

	fix, err := formatter.Fix(input, lang, r.cfg, r.rules)
	if err != nil {
		writeErr(opts.Stderr, "importcurly: %s: %v\n", stdinName, err)
		return ExitError
	}

	if opts.Check {
		diags := diagnostics(stdinName, input, fix.Initial)
		if len(diags) == 0 && opts.Format != "json" {
			return ExitOK
		}
		if err := r.report(diags); err != nil {
			return ExitError
		}
		if len(diags) > 0 {
			return ExitFindings
		}
		return ExitOK
	}

	if opts.Diff {
		d, err := unifiedDiff(stdinName, input, fix.Output)
		if err != nil {
			writeErr(opts.Stderr, "importcurly: %v\n", err)
			return ExitError
		}
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFindings
		}
		return ExitOK
	}

	writeOut(opts.Stdout, fix.Output)
	code, diags := r.remaining(stdinName, fix)
	if len(diags) > 0 {
		if err := r.reporter.Report(opts.Stderr, diags); err != nil {
			return ExitError
		}
	}
	return code
}

// remaining turns findings that survived fixing into diagnostics. Quiet
// drops the diagnostics but not the exit code.
func (r *run) remaining(name string, fix *formatter.Result) (int, []report.Diagnostic) {
	if len(fix.Remaining) == 0 {
		return ExitOK, nil
	}
	if r.opts.Quiet {
		return ExitFindings, nil
	}
	return ExitFindings, diagnostics(name, fix.Output, fix.Remaining)
}

// report renders diagnostics: on stdout in check mode, on stderr
// otherwise so fixed output stays clean.
func (r *run) report(diags []report.Diagnostic) error {
	w := r.opts.Stderr
	if r.opts.Check {
		w = r.opts.Stdout
	}
	if err := r.reporter.Report(w, diags); err != nil {
		writeErr(r.opts.Stderr, "importcurly: writing report: %v\n", err)
		return err
	}
	return nil
}

func diagnostics(name, src string, findings []formatter.Finding) []report.Diagnostic {
	out := make([]report.Diagnostic, 0, len(findings))
	for _, f := range findings {
		line, col := parser.Position(src, f.Start)
		out = append(out, report.Diagnostic{
			File:      name,
			Line:      line,
			Column:    col,
			Rule:      f.Rule,
			MessageID: f.MessageID,
			Message:   f.Message,
			Fixable:   f.HasFix(),
		})
	}
	return out
}

// unifiedDiff returns a unified diff of oldText and newText, or an empty
// string if they are identical.
func unifiedDiff(name, oldText, newText string) (string, error) {
	if oldText == newText {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
