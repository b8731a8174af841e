package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/layover/network"
)

func newNodesCmd(load func() (*runtime, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List node labels in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			for _, n := range rt.graph.Nodes() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

// newNetworkCmd prints the active edge list as a YAML network document,
// a starting point for a custom --network file.
func newNetworkCmd(load func() (*runtime, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Print the active edge list as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := load()
			if err != nil {
				return err
			}
			edges, err := network.Load(rt.cfg.Network)
			if err != nil {
				return err
			}
			return network.Encode(cmd.OutOrStdout(), edges)
		},
	}
}
