package main

import (
	"fmt"
	"io"

	"github.com/dd0wney/cluso-routefinder/pkg/config"
	"github.com/dd0wney/cluso-routefinder/pkg/input"
	"github.com/dd0wney/cluso-routefinder/pkg/logging"
	"github.com/dd0wney/cluso-routefinder/pkg/metrics"
	"github.com/dd0wney/cluso-routefinder/pkg/query"
	"github.com/dd0wney/cluso-routefinder/pkg/render"
	"github.com/dd0wney/cluso-routefinder/pkg/session"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// environment is everything a command needs once flags are resolved
type environment struct {
	cfg      *config.Config
	runID    string
	logger   logging.Logger
	metrics  *metrics.Registry
	renderer *render.Renderer
	out      io.Writer
}

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if flags.Changed("max-hops") {
		cfg.MaxHopLimit = opts.maxHops
	}
	if flags.Changed("max-path") {
		cfg.MaxPathLength = opts.maxPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEnvironment(cmd *cobra.Command, opts *options) (*environment, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	var logger logging.Logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), logging.ParseFormat(cfg.LogFormat))
	logging.SetDefaultLogger(logger)

	out := cmd.OutOrStdout()
	renderer := render.New(out, useColor(cfg.Color, out))
	logger = logger.With(logging.RunID(runID))
	logger.Debug("environment ready",
		logging.String("color", cfg.Color),
		logging.Bool("styled", renderer.Styled()),
	)

	return &environment{
		cfg:      cfg,
		runID:    runID,
		logger:   logger,
		metrics:  metrics.NewRegistry(),
		renderer: renderer,
		out:      out,
	}, nil
}

func (e *environment) newSession() *session.Session {
	return session.New(
		session.WithRunID(e.runID),
		session.WithLogger(e.logger),
		session.WithMetrics(e.metrics),
		session.WithRenderer(e.renderer),
		session.WithLimits(query.Limits{
			MaxHopLimit:   e.cfg.MaxHopLimit,
			MaxPathLength: e.cfg.MaxPathLength,
		}),
	)
}

// readInput loads the input file, printing the fatal message on failure
func (e *environment) readInput(path string) ([]string, error) {
	f, err := input.Open(path)
	if err != nil {
		return nil, e.inputFailed(path, err)
	}
	defer f.Close()

	lines, err := f.Lines()
	if err != nil {
		return nil, e.inputFailed(path, err)
	}

	e.logger.Debug("input read",
		logging.Path(f.Path()),
		logging.Int("bytes", f.Size()),
		logging.Int("lines", len(lines)),
	)
	return lines, nil
}

func (e *environment) inputFailed(path string, err error) error {
	e.logger.Error("input unreadable", logging.Path(path), logging.Error(err))
	if ferr := e.renderer.Fatal(err); ferr != nil {
		return ferr
	}
	return errFatal
}

// flushMetrics writes the metrics textfile when one is configured
func (e *environment) flushMetrics() {
	if e.cfg.MetricsFile == "" {
		return
	}
	if err := e.metrics.WriteTextfile(e.cfg.MetricsFile); err != nil {
		e.logger.Warn("metrics not written", logging.Path(e.cfg.MetricsFile), logging.Error(err))
	}
}

// requireFile prints the missing-argument message when no file was given
func requireFile(out io.Writer, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		fmt.Fprintln(out, render.MsgFileRequired)
		return "", errFatal
	}
	return args[0], nil
}

// useColor decides whether output lines are styled
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
