package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/vidq/config"
	"github.com/bnema/vidq/internal/adapter/ipc"
	"github.com/bnema/vidq/internal/adapter/process"
	"github.com/bnema/vidq/internal/infrastructure/logger"
)

var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Serve the API as a worker of a running primary",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runWorker,
}

func runWorker(cmd *cobra.Command, _ []string) error {
	slot, err := process.Slot()
	if err != nil {
		return err
	}
	logger.SetRole(fmt.Sprintf("worker %d", slot))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	listener, err := process.InheritedListener()
	if err != nil {
		return err
	}
	pipe, err := process.SubmissionPipe()
	if err != nil {
		return err
	}
	defer func() { _ = pipe.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	process.WatchParent(os.Stdin, cancel)

	srv := a.apiServer(ipc.NewSubmitter(pipe))
	logger.Info.Printf("worker %d (pid %d) serving on %s", slot, os.Getpid(), listener.Addr())
	return serveUntilDone(ctx, srv, listener)
}
