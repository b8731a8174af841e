package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/layover"
)

var errBothRequired = errors.New("both fields are required")

func newRouteCmd(load func() (*runtime, error)) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route [from] [to]",
		Short: "Print the cheapest route and its cost breakdown",
		Example: `  layover route Atlanta Newark
  layover route --from "San Diego" --to Newark`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				from = args[0]
			}
			if len(args) > 1 {
				to = args[1]
			}
			from, to = strings.TrimSpace(from), strings.TrimSpace(to)
			if from == "" || to == "" {
				return errBothRequired
			}

			rt, err := load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			route, err := layover.FindRoute(rt.graph, from, to)
			switch {
			case errors.Is(err, layover.ErrNoPath):
				fmt.Fprintln(out, "No valid path found.")
				return nil
			case errors.Is(err, layover.ErrMissingEdge):
				rt.logger.Warn("route has hops without a direct edge", "from", from, "to", to, "error", err)
			case err != nil:
				return err
			}

			fmt.Fprintln(out, strings.Join(route.Lines(), "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "starting node")
	cmd.Flags().StringVar(&to, "to", "", "destination node")

	return cmd
}
