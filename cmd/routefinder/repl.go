package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dd0wney/cluso-routefinder/pkg/input"
	"github.com/dd0wney/cluso-routefinder/pkg/query"
	"github.com/dd0wney/cluso-routefinder/pkg/session"
	"github.com/spf13/cobra"
)

const replPrompt = "routefinder> "

// runREPL loads the graph from the file's first line and answers commands
// typed on stdin until exit or end of input
func runREPL(cmd *cobra.Command, opts *options, args []string) error {
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

	s := env.newSession()
	description := ""
	if len(lines) > 0 {
		description = lines[0]
	}
	if err := s.Load(description); err != nil {
		if ferr := env.renderer.Fatal(err); ferr != nil {
			return ferr
		}
		return errFatal
	}

	st := s.Stats()
	banner := []string{
		fmt.Sprintf("Loaded %d nodes and %d edges from %s", st.Nodes, st.Edges, path),
		"Type 'help' for available commands, 'exit' to quit",
	}
	for _, msg := range banner {
		if err := env.renderer.Message(msg); err != nil {
			return err
		}
	}

	return repl(s, cmd.InOrStdin(), env.out)
}

// repl answers commands from in. Results go through the session's renderer,
// prompts and help text straight to out.
func repl(s *session.Session, in io.Reader, out io.Writer) error {
	scanner := input.NewScanner(in)

	for {
		fmt.Fprint(out, replPrompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			showHelp(out)
			continue
		case "stats":
			showStats(out, s.Stats())
			continue
		}

		if err := s.Handle(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

func showHelp(out io.Writer) {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, v := range query.Verbs {
		fmt.Fprintf(&b, "  %s\n", v.Usage())
	}
	b.WriteString("  stats\n  help\n  exit\n")
	b.WriteString("Labels are single characters; route labels are joined with '" + query.PathSeparator + "'.\n")
	fmt.Fprint(out, b.String())
}

func showStats(out io.Writer, st session.Stats) {
	fmt.Fprintf(out, "Nodes:    %d (%s)\n", st.Nodes, strings.Join(st.Labels, " "))
	fmt.Fprintf(out, "Edges:    %d\n", st.Edges)
	fmt.Fprintf(out, "Outputs:  %d\n", st.Outputs)
	fmt.Fprintf(out, "Rejected: %d\n", st.Rejected)
}
