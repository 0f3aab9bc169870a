package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/macexpect"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of macexpect",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "macexpect version %s\n", strings.TrimSpace(macexpect.Version))
		},
	}
}
