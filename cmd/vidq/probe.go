package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vidq/config"
)

var probeCmd = &cobra.Command{
	Use:   "probe FILE",
	Short: "Print the dimensions of a video file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dims, err := newConverter(cfg).GetDimensions(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), dims)
		return err
	},
}
