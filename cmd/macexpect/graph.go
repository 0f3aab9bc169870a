package main

import (
	"fmt"

	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the top of the branching tree as a Mermaid flowchart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			until, _ := cmd.Flags().GetInt("until")
			tree := graph.NewTree(until)

			// The tree is built from hooks, so a cached result would draw nothing.
			analyzer, model, err := setup(cmd,
				macexpect.WithStore(nil),
				macexpect.WithLifecycleHooks(tree.Hooks()),
			)
			if err != nil {
				return err
			}
			if _, err := analyzer.Analyze(cmd.Context(), model); err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(tree))
			return err
		},
	}
	cmd.Flags().Int("until", 12, "Last slot to draw")
	return cmd
}
