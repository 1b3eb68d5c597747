// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/centrality"
	"github.com/katalvlaran/semgraph/core"
)

const (
	kindBetweenness = "betweenness"
	kindEigenvector = "eigenvector"
)

func (a *app) centralityCommand() *cobra.Command {
	var (
		graphPath string
		kind      string
		top       int
	)
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Rank nodes by betweenness or eigenvector centrality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			metric, compute, err := centralityKind(kind)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(ctx, graphPath)
			if err != nil {
				return err
			}

			opts := append(a.cfg.Centrality.Options(),
				centrality.WithLogger(logger), centrality.WithContext(ctx))
			p := newProgress(logger)
			if _, err = compute(g, opts...); err != nil {
				return err
			}
			p.done("centrality computed", "kind", kind, "nodes", g.NodeCount())

			ranked, err := centrality.Ranked(g, metric, 0)
			if err != nil {
				return err
			}
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, n := range ranked {
				fmt.Fprintf(tw, "%s\t%.4f\n", n.ID(), score(n, metric))
			}

			return tw.Flush()
		},
	}
	graphFlag(cmd, &graphPath)
	cmd.Flags().StringVarP(&kind, "kind", "k", kindBetweenness, "betweenness or eigenvector")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "print only the n highest-ranked nodes (0 = all)")

	return cmd
}

type computeFn func(*core.Graph, ...centrality.Option) (centrality.Scores, error)

func centralityKind(kind string) (centrality.Metric, computeFn, error) {
	switch kind {
	case kindBetweenness:
		return centrality.ByCentrality, centrality.Betweenness, nil
	case kindEigenvector:
		return centrality.ByWeight, centrality.Eigenvector, nil
	default:
		return 0, nil, fmt.Errorf("%w: %q (want %s or %s)", errUnknownKind, kind, kindBetweenness, kindEigenvector)
	}
}

func score(n *core.Node, metric centrality.Metric) float64 {
	if metric == centrality.ByWeight {
		v, _ := n.Weight()
		return v
	}
	v, _ := n.Centrality()
	return v
}
