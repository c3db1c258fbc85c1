package main

import (
	"github.com/spf13/cobra"
)

// options holds flag values shared by every command
type options struct {
	configPath  string
	logLevel    string
	logFormat   string
	color       string
	metricsFile string
	maxHops     int64
	maxPath     int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "routefinder <input-file>",
		Short: "Answer route queries over a weighted directed graph",
		Long: `routefinder reads a graph description from the first line of the input
file and evaluates every following line as a query command:

  route A-B-C            distance along an exact route
  maxStops A C 3         walks from A to C with at most 3 stops
  exactStops A C 4       walks from A to C with exactly 4 stops
  shortest A C           length of the shortest route
  maxDistance C C 30     routes from C to C shorter than 30

Results are printed as numbered "Output #n:" lines.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args)
		},
	}

	replCmd := &cobra.Command{
		Use:           "repl <input-file>",
		Short:         "Load a graph and answer queries typed on stdin",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: json or text")
	flags.StringVar(&opts.color, "color", "", "colour output: auto, always, never")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	flags.Int64Var(&opts.maxHops, "max-hops", 0, "largest stop count accepted by maxStops/exactStops (0 = unbounded)")
	flags.IntVar(&opts.maxPath, "max-path", 0, "most labels accepted in a route command (0 = unbounded)")

	rootCmd.AddCommand(replCmd)
	return rootCmd
}
