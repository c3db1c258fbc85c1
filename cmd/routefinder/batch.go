package main

import (
	"errors"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
	"github.com/spf13/cobra"
)

// runBatch evaluates every command in the input file and prints the results
func runBatch(cmd *cobra.Command, opts *options, args []string) error {
	path, err := requireFile(cmd.OutOrStdout(), args)
	if err != nil {
		return err
	}

	env, err := newEnvironment(cmd, opts)
	if err != nil {
		return err
	}
	defer env.flushMetrics()

	lines, err := env.readInput(path)
	if err != nil {
		return err
	}

	if err := env.newSession().Run(lines); err != nil {
		var buildErr *graph.BuildError
		if errors.As(err, &buildErr) {
			return errFatal
		}
		return err
	}
	return nil
}
