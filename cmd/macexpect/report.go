package main

import (
	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/internal/presentation/tui"
	"github.com/aretw0/macexpect/pkg/report"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a Markdown report with the completion-time distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, model, err := setup(cmd)
			if err != nil {
				return err
			}

			res, err := analyzer.Analyze(cmd.Context(), model)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tui.PrintBanner(out, macexpect.Version)
			return tui.WriteMarkdown(out, report.Markdown(res))
		},
	}
}
