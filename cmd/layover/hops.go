package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/layover"
	"github.com/katalvlaran/layover/bfs"
)

func newHopsCmd(load func() (*runtime, error)) *cobra.Command {
	var maxHops int

	cmd := &cobra.Command{
		Use:   "hops <from> <to>",
		Short: "Print the route with the fewest flights, ignoring cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if from == "" || to == "" {
				return errBothRequired
			}

			rt, err := load()
			if err != nil {
				return err
			}
			if !rt.graph.HasNode(to) {
				return fmt.Errorf("%w: %q", layover.ErrUnknownNode, to)
			}

			res, err := bfs.BFS(rt.graph, from, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(maxHops))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path, err := res.PathTo(to)
			if errors.Is(err, bfs.ErrNotReached) {
				fmt.Fprintln(out, "No valid path found.")
				return nil
			}
			fmt.Fprintf(out, "%s\nFlights: %d\n", strings.Join(path, " -> "), len(path)-1)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxHops, "max", 0, "maximum number of flights (0: no limit)")

	return cmd
}
