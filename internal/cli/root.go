// Package cli defines the importcurly command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/donaldgifford/importcurly/internal/rules" // Register rules via init().
	"github.com/donaldgifford/importcurly/internal/report"
	"github.com/donaldgifford/importcurly/internal/runner"
)

const longDescription = `importcurly checks and fixes the brace list of JavaScript and
TypeScript import statements:

  newline      one imported name per line once a statement has enough names
  sort-params  imported names sorted, optionally grouping inline type imports

With no paths, reads from stdin and writes the fixed source to stdout.
Paths may be files or directories; directories are walked recursively.
By default files are fixed in place.`

// exitError carries a runner exit code through cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCommand builds the command tree. version is shown by --version.
func NewRootCommand(version string) *cobra.Command {
	opts := &runner.Options{}

	root := &cobra.Command{
		Use:           "importcurly [flags] [paths...]",
		Short:         "Lay out and sort the names in JS/TS import braces",
		Long:          longDescription,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			opts.Stdin = cmd.InOrStdin()
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()

			if code := runner.Run(cmd.Context(), opts); code != runner.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.BoolVar(&opts.Check, "check", false, "report findings and exit 1 if any are found")
	flags.BoolVar(&opts.Diff, "diff", false, "print unified diff of fixes")
	flags.BoolVarP(&opts.Write, "write", "w", false, "write result to file (default for paths; requires paths)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print files as they are processed")
	flags.StringVar(&opts.Format, "format", "text", "finding format: "+strings.Join(report.Formats, ", "))
	flags.IntVarP(&opts.Jobs, "jobs", "j", 0, "files processed in parallel (default: number of CPUs)")
	flags.StringVar(&opts.StdinFilename, "stdin-filename", "stdin.ts", "file name used to pick the language of stdin")
	root.MarkFlagsMutuallyExclusive("check", "diff", "write")

	root.AddCommand(newRulesCommand())
	root.AddCommand(newInitCommand())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand(version)
	if err := root.ExecuteContext(ctx); err != nil {
		var e *exitError
		if errors.As(err, &e) {
			return e.code
		}
		fmt.Fprintf(os.Stderr, "importcurly: %v\n", err)
		return runner.ExitError
	}
	return runner.ExitOK
}
