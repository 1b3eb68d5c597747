// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/shortest"
)

func (a *app) pathCommand() *cobra.Command {
	var (
		graphPath string
		from, to  string
		directed  bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest route between two nodes",
		Long: `Print the shortest route between two nodes.

Arc cost is 1 - 0.5*weight, so heavier edges are preferred. The route is
printed as ids joined by " -> "; an unreachable target is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := a.loadGraph(ctx, graphPath)
			if err != nil {
				return err
			}
			route, ok, err := shortest.ShortestPath(g, from, to,
				shortest.WithDirected(directed), shortest.WithContext(ctx))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w from %q to %q", errNoPath, from, to)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(route, " -> "))

			return err
		},
	}
	graphFlag(cmd, &graphPath)
	cmd.Flags().StringVar(&from, "from", "", "source node id")
	cmd.Flags().StringVar(&to, "to", "", "target node id")
	cmd.Flags().BoolVar(&directed, "directed", false, "follow edges only in their direction")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
