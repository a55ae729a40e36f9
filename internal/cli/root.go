// Package cli defines Cobra command definitions for the stackscout CLI.
// This file contains the root command, shared flags, and config layering.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stackscout/stackscout/internal/config"
	"github.com/stackscout/stackscout/internal/detect"
	"github.com/stackscout/stackscout/internal/log"
	"github.com/stackscout/stackscout/internal/ui"
)

var version = "dev" // set via ldflags at build time

// app is the per-invocation state shared by subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	events *log.EventLog
	output string
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "stackscout",
		Short: "Detect a repository's build stack for CI pipeline generation",
		Long: `stackscout inspects a repository on disk, picks exactly one build stack
from a fixed catalog, and reports the install, build, and test commands a CI
pipeline template needs. It also finds env files that should not be
committed and lists the variables documented in example env files.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ./"+config.FileName+" if present)")
	pf.StringP("output", "o", "", "Output format: table, json, or yaml")
	pf.String("log-level", "", "Diagnostic log level: debug, info, warn, or error")
	pf.String("event-log", "", "Append JSONL run events to this file")

	a.v.SetEnvPrefix("STACKSCOUT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	cobra.CheckErr(a.v.BindPFlags(pf))

	cmd.AddCommand(newDetectCmd(a))
	cmd.AddCommand(newEnvCmd(a))
	cmd.AddCommand(newStacksCmd(a))
	cmd.AddCommand(newInitCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	return cmd
}

// setup layers flags over STACKSCOUT_* env vars over the config file over defaults.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v.GetString("config"), ".")
	if err != nil {
		return err
	}
	a.v.SetDefault("output", cfg.Output)
	a.v.SetDefault("log-level", cfg.LogLevel)

	cfg.Output = a.v.GetString("output")
	cfg.LogLevel = a.v.GetString("log-level")
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.output = cfg.Output

	logger, err := log.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	if path := a.v.GetString("event-log"); path != "" {
		events, err := log.NewEventLog(path)
		if err != nil {
			return err
		}
		a.events = events
	}
	return nil
}

// record appends an event, downgrading failures to a warning.
func (a *app) record(ev log.LogEvent) {
	if err := a.events.Append(ev); err != nil {
		a.logger.Warn("event log write failed", zap.Error(err))
	}
}

// emit writes v in the configured machine format, or calls table for table output.
func (a *app) emit(w io.Writer, v any, table func(p *ui.Printer) error) error {
	if a.output == config.OutputTable {
		return table(printerFor(w))
	}
	return ui.Encode(w, a.output, v)
}

func printerFor(w io.Writer) *ui.Printer {
	if f, ok := w.(*os.File); ok {
		return ui.NewPrinter(f)
	}
	return &ui.Printer{W: w}
}

// rootArg returns the optional PATH argument, defaulting to the working directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		handleError(err)
		os.Exit(1)
	}
}

func handleError(err error) {
	message := err.Error()
	if errors.Is(err, detect.ErrInvalidInput) {
		message = fmt.Sprintf("%s\nHint: pass the path of a repository checkout.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
