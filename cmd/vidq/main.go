package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/vidq/internal/infrastructure/logger"
)

var rootCmd = &cobra.Command{
	Use:           "vidq",
	Short:         "Asynchronous video resize service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, workerCmd, probeCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error.Printf("%v", err)
		os.Exit(1)
	}
}
