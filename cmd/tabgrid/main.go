// Command tabgrid reconstructs tables from PDF pages, fragment JSON files and
// scanned images.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabgrid"
	"github.com/tsawler/tabgrid/config"
)

// app holds the state shared by all commands.
type app struct {
	configPath string
	preset     string
	page       int
	timeout    time.Duration
	verbose    bool

	settings config.Settings
	logger   *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tabgrid",
		Short:         "Reconstruct tables from positioned text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML settings file")
	flags.StringVar(&a.preset, "preset", "", "settings preset, replacing --config: default|tight|loose")
	flags.IntVarP(&a.page, "page", "p", 1, "PDF page to read (1-indexed)")
	flags.DurationVar(&a.timeout, "timeout", tabgrid.DefaultTimeout, "time budget per reconstruction (0 disables)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log pipeline decisions to stderr")

	root.AddCommand(
		tablesCmd(a),
		rawCmd(a),
		calibrateCmd(a),
		lookupCmd(a),
		fragmentsCmd(a),
		strategiesCmd(),
	)
	return root
}

// setup resolves logging and settings once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	s, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.preset != "" {
		if s, err = config.Preset(a.preset); err != nil {
			return err
		}
		s = config.ApplyEnv(s)
	}
	a.settings = s

	a.logger.Debug("settings resolved",
		"preset", s.Preset,
		"column_strategy", s.Tables.ColumnStrategy,
		"header_strategy", s.Tables.HeaderStrategy,
		"y_tolerance", s.Tables.YTolerance)
	return nil
}

// extractor configures an Extractor for path from the shared flags.
func (a *app) extractor(path string) *tabgrid.Extractor {
	return tabgrid.Open(path).
		Settings(a.settings).
		Page(a.page).
		Timeout(a.timeout).
		Logger(a.logger)
}

// report logs warnings without failing the command.
func (a *app) report(warnings []tabgrid.Warning) {
	for _, w := range warnings {
		a.logger.Warn(w.Message, "code", string(w.Code))
	}
}
