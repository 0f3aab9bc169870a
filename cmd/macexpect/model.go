package main

import (
	"github.com/aretw0/macexpect/pkg/config"
	"github.com/spf13/cobra"
)

func newModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Print the effective model as YAML",
		Long:  `Prints the model after applying --model and --set, in the format accepted by --model.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(cmd)
			if err != nil {
				return err
			}
			data, err := config.Marshal(model)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
