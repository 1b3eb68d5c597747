// SPDX-License-Identifier: MIT

// Package cli implements the semgraph command-line interface.
//
// Commands:
//   - path: shortest route between two nodes
//   - centrality: betweenness or eigenvector ranking
//   - layout: spring layout, printed as world positions
//   - partition: connected components with per-component betweenness
//
// Every command reads a graph with --graph (JSON document or CSV edge list,
// chosen by extension). Settings come from --config (TOML or YAML) over the
// library defaults. --verbose switches logging to debug level; the logger
// travels in the command context.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/config"
	"github.com/katalvlaran/semgraph/core"
	"github.com/katalvlaran/semgraph/ingest"
)

var version = "dev"

var (
	errGraphRequired = errors.New("--graph is required")
	errNoPath        = errors.New("no path")
	errUnknownKind   = errors.New("unknown centrality kind")
)

// SetVersion sets the string printed by --version.
func SetVersion(v string) { version = v }

// app carries the persistent flag values and the loaded configuration.
type app struct {
	configPath string
	verbose    bool
	logOut     io.Writer
	cfg        config.Config
}

// NewRootCommand builds the command tree. Logs go to logOut (stderr when nil).
func NewRootCommand(logOut io.Writer) *cobra.Command {
	if logOut == nil {
		logOut = os.Stderr
	}
	a := &app{logOut: logOut}

	root := &cobra.Command{
		Use:           "semgraph",
		Short:         "semgraph analyses graphs: paths, centrality, layout and components",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(a.logOut, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("configuration loaded", "path", a.configPath)

			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML or YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.pathCommand())
	root.AddCommand(a.centralityCommand())
	root.AddCommand(a.layoutCommand())
	root.AddCommand(a.partitionCommand())

	return root
}

// Execute runs the CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// loadGraph reads path with the configured spacing, spring layout and the
// command logger.
func (a *app) loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	if path == "" {
		return nil, errGraphRequired
	}
	logger := loggerFromContext(ctx)
	opts := append(a.cfg.GraphOptions(), core.WithLogger(logger))
	g, err := ingest.LoadFile(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// graphFlag registers the shared --graph flag.
func graphFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "graph", "g", "", "graph file (.json or .csv)")
	_ = cmd.MarkFlagRequired("graph")
}
