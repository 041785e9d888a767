// Package main provides the CLI entry point for eparse.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/eparse-go/pkg/eparse"
	"github.com/ukaji3/eparse-go/pkg/eparse/store"
)

// app holds the root flags and the endpoints shared by every subcommand.
type app struct {
	input     string
	output    string
	targets   []string
	debug     bool
	loose     bool
	recursive bool
	verbose   int

	files  []string
	in     store.Interface
	out    store.Interface
	logger *slog.Logger
}

// reportedError is an error whose message was already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func main() {
	a := &app{}
	err := buildRootCmd(a).Execute()
	// a failed command skips the post-run hook
	a.teardown(nil, nil)
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&app{})
}

func buildRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eparse",
		Short: "Find and extract tables from Excel files",
		Long: `eparse scans spreadsheet files for the tables embedded in their sheets,
parses them and sends them, optionally serialized, to an output endpoint.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.input, "input", "i", "null:///", "input source")
	flags.StringVarP(&a.output, "output", "o", "null:///", "output destination")
	flags.StringArrayVarP(&a.targets, "file", "f", nil, "file(s) or dir(s) to target")
	flags.BoolVarP(&a.debug, "debug", "d", false, "use debug mode")
	flags.BoolVarP(&a.loose, "loose", "l", true, "find tables loosely")
	flags.BoolVarP(&a.recursive, "recursive", "r", false, "find files recursively")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase output verbosity")

	rootCmd.AddCommand(newScanCmd(a), newParseCmd(a), newQueryCmd(a), newMigrateCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	files, err := collectFiles(a.targets, a.recursive)
	if err != nil {
		return err
	}
	a.files = files
	if a.verbose > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "found %d files\n", len(files))
	}

	opts := []store.Option{store.WithWriter(cmd.OutOrStdout()), store.WithLogger(a.logger)}
	if a.in, err = store.New(cmd.Context(), a.input, opts...); err != nil {
		return a.handle(cmd, err, true, "input error - %v", err)
	}
	if a.out, err = store.New(cmd.Context(), a.output, opts...); err != nil {
		return a.handle(cmd, err, true, "output error - %v", err)
	}
	return nil
}

// teardown closes the endpoints that hold connections.
func (a *app) teardown(*cobra.Command, []string) error {
	var errs []error
	for _, i := range []store.Interface{a.in, a.out} {
		if c, ok := i.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	a.in, a.out = nil, nil
	return errors.Join(errs...)
}

// handle prints a message for err. It returns err when the command must
// stop: always in debug mode, otherwise only when fatal is set.
func (a *app) handle(cmd *cobra.Command, err error, fatal bool, format string, args ...interface{}) error {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	if fatal || a.debug {
		return reportedError{err}
	}
	return nil
}

func (a *app) extractOptions() eparse.Options {
	opts := eparse.DefaultOptions()
	opts.Loose = a.loose
	opts.Logger = a.logger
	return opts
}

// spreadsheets returns the collected files that eparse can open.
func (a *app) spreadsheets() []string {
	var result []string
	for _, f := range a.files {
		if eparse.IsSpreadsheet(f) {
			result = append(result, f)
		}
	}
	return result
}

// collectFiles expands targets into file paths. Directories contribute
// their files, or their whole tree when recursive is set.
func collectFiles(targets []string, recursive bool) ([]string, error) {
	var files []string
	for _, target := range targets {
		st, err := os.Stat(target)
		if err != nil {
			continue
		}
		if !st.IsDir() {
			files = append(files, target)
			continue
		}

		if recursive {
			err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		entries, err := os.ReadDir(target)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, filepath.Join(target, e.Name()))
			}
		}
	}
	return files, nil
}
