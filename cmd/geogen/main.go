// Command geogen generates Euclidean configurations from input files,
// realizes them in agreeing random pictures, and reports the surviving
// theorems.
//
// Exit codes: 0 success, 2 input-parse error, 3 template-parse error,
// 4 analytic fault while realizing an initial configuration, 1 anything
// else.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geogen/parse"
	"github.com/katalvlaran/geogen/prover"
	"github.com/katalvlaran/geogen/runner"
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var (
	flagInputs     string
	flagTemplates  string
	flagOutput     string
	flagIterations int
	flagPictures   int
	flagWorkers    int
	flagSeed       int64
	flagTimeout    time.Duration
	flagPrefix     string
	flagExt        string
)

var rootCmd = &cobra.Command{
	Use:           "geogen",
	Short:         "Automated generation and analysis of Euclidean geometry theorems",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every input file and write one theorem report per input",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		inputs, err := loadInputs(flagInputs)
		if err != nil {
			return &exitError{code: 2, err: err}
		}

		var lib *prover.Library
		if flagTemplates != "" {
			lib, err = parse.LoadTemplates(flagTemplates)
			if err != nil {
				return &exitError{code: 3, err: err}
			}
			log.Info("templates loaded", "count", len(lib.Templates))
		}

		err = runner.Run(inputs, lib,
			runner.WithContext(cmd.Context()),
			runner.WithIterations(flagIterations),
			runner.WithPictures(flagPictures),
			runner.WithWorkers(flagWorkers),
			runner.WithSeed(flagSeed),
			runner.WithTimeout(flagTimeout),
			runner.WithOutputDir(flagOutput),
			runner.WithNaming(flagPrefix, flagExt),
			runner.WithLogger(log))
		if errors.Is(err, runner.ErrInitialRealization) {
			return &exitError{code: 4, err: err}
		}
		return err
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&flagInputs, "inputs", "", "directory of generator input files")
	f.StringVar(&flagTemplates, "templates", "", "directory of template theorem files")
	f.StringVar(&flagOutput, "output", ".", "directory for report files")
	f.IntVar(&flagIterations, "iterations", runner.DefaultIterations, "generation depth budget")
	f.IntVar(&flagPictures, "pictures", 5, "pictures per configuration (min 2)")
	f.IntVar(&flagWorkers, "workers", 1, "parallel analysis workers")
	f.Int64Var(&flagSeed, "seed", 0, "randomness seed (0 means the fixed default)")
	f.DurationVar(&flagTimeout, "timeout", runner.DefaultTimeout, "per-configuration analysis budget")
	f.StringVar(&flagPrefix, "output-prefix", "", "report file name prefix")
	f.StringVar(&flagExt, "output-ext", runner.DefaultExt, "report file extension")
	cobra.CheckErr(runCmd.MarkFlagRequired("inputs"))

	rootCmd.AddCommand(runCmd)
}

// loadInputs parses every regular file of the input directory, sorted by
// name for a stable processing order.
func loadInputs(dir string) ([]*parse.Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no input files in %s", dir)
	}
	inputs := make([]*parse.Input, len(names))
	for i, name := range names {
		inputs[i], err = parse.ParseInputFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

// newLogger builds the process logger; GEOGEN_LOG_LEVEL selects the level.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("GEOGEN_LOG_LEVEL")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "geogen:", err)
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}
