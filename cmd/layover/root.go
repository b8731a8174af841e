package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/layover"
	"github.com/katalvlaran/layover/config"
	"github.com/katalvlaran/layover/core"
	"github.com/katalvlaran/layover/logging"
	"github.com/katalvlaran/layover/network"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	network    string
	logLevel   string
	logFormat  string
}

// runtime is what a subcommand needs once flags and config are resolved.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	graph  *core.Graph
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "layover",
		Short: "Cheapest routes over a flight network with layover surcharges",
		Long: `layover computes the cheapest route between two airports when every
flight costs its travel time plus a fixed layover surcharge.

Without --network the built-in five-flight sample network is used.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&flags.network, "network", "", "path to a YAML edge list (default: built-in airports)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text|json")

	load := func() (*runtime, error) { return flags.load(stderr) }

	rootCmd.AddCommand(
		newRouteCmd(load),
		newHopsCmd(load),
		newNodesCmd(load),
		newNetworkCmd(load),
		newServeCmd(load),
	)

	return rootCmd
}

// load resolves config (file, env, then flags), validates it once, and builds
// the logger and the graph.
func (f *rootFlags) load(logOut io.Writer) (*runtime, error) {
	cfg, err := config.Read(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.network != "" {
		cfg.Network = f.network
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging, logOut)

	edges, err := network.Load(cfg.Network)
	if err != nil {
		return nil, err
	}
	g, err := layover.BuildGraph(edges)
	if err != nil {
		return nil, fmt.Errorf("network %q: %w", cfg.Network, err)
	}
	logger.Debug("graph built", "network", cfg.Network, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return &runtime{cfg: cfg, logger: logger, graph: g}, nil
}
