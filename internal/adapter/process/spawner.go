// Package process runs workers as child processes of the primary. A worker
// is the same binary started with the worker subcommand; it inherits the
// API listener and the write end of a submission pipe.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bnema/vidq/internal/adapter/ipc"
	"github.com/bnema/vidq/internal/domain"
	"github.com/bnema/vidq/internal/infrastructure/logger"
	"github.com/bnema/vidq/internal/service"
)

// File descriptors as seen by the worker.
const (
	IPCFD      = 3
	ListenerFD = 4
)

// SlotEnv names the environment variable carrying the worker's slot.
const SlotEnv = "VIDQ_WORKER_SLOT"

// stopTimeout is how long a worker may take to exit after SIGTERM before it
// is killed.
const stopTimeout = 10 * time.Second

type ExecSpawner struct {
	executable string
	args       []string
	listener   *os.File
}

// NewExecSpawner re-executes the running binary with args. The listener is
// shared by every worker.
func NewExecSpawner(listener *net.TCPListener, args ...string) (*ExecSpawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return newExecSpawner(exe, listener, args...)
}

func newExecSpawner(executable string, listener *net.TCPListener, args ...string) (*ExecSpawner, error) {
	f, err := listener.File()
	if err != nil {
		return nil, fmt.Errorf("listener file: %w", err)
	}
	return &ExecSpawner{
		executable: executable,
		args:       args,
		listener:   f,
	}, nil
}

// Close releases the spawner's copy of the listener.
func (s *ExecSpawner) Close() error {
	return s.listener.Close()
}

func (s *ExecSpawner) Spawn(ctx context.Context, slot int) (service.Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create submission pipe: %w", err)
	}

	cmd := exec.Command(s.executable, s.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), SlotEnv+"="+strconv.Itoa(slot))
	cmd.ExtraFiles = []*os.File{w, s.listener}

	// The worker watches stdin: EOF means the primary is gone.
	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, fmt.Errorf("start worker: %w", err)
	}
	// Only the child holds the write end now, so r sees EOF when it exits.
	_ = w.Close()

	pw := &procWorker{
		cmd:   cmd,
		stdin: stdin,
		subs:  make(chan domain.Job),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(pw.subs)
		defer func() { _ = r.Close() }()
		if err := ipc.Receive(r, func(job domain.Job) { pw.subs <- job }); err != nil {
			logger.Warn.Printf("worker %d (pid %d): %v", slot, pw.PID(), err)
		}
	}()
	go func() {
		_ = cmd.Wait()
		close(pw.done)
	}()

	return pw, nil
}

type procWorker struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	subs  chan domain.Job
	done  chan struct{}

	stopOnce sync.Once
}

func (w *procWorker) PID() int {
	return w.cmd.Process.Pid
}

func (w *procWorker) Submissions() <-chan domain.Job {
	return w.subs
}

func (w *procWorker) Wait() service.ExitStatus {
	<-w.done
	return exitStatus(w.cmd.ProcessState)
}

// Stop sends SIGTERM and kills the worker if it is still running after
// stopTimeout.
func (w *procWorker) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.cmd.Process.Signal(syscall.SIGTERM)
		if errors.Is(err, os.ErrProcessDone) {
			err = nil
			return
		}
		go func() {
			t := time.NewTimer(stopTimeout)
			defer t.Stop()
			select {
			case <-w.done:
			case <-t.C:
				logger.Warn.Printf("worker pid %d ignored SIGTERM, killing", w.PID())
				_ = w.cmd.Process.Kill()
			}
		}()
	})
	return err
}

func exitStatus(ps *os.ProcessState) service.ExitStatus {
	if ps == nil {
		return service.ExitStatus{Code: -1}
	}
	status := service.ExitStatus{Code: ps.ExitCode()}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		status.Signal = ws.Signal().String()
	}
	return status
}

var _ service.Spawner = (*ExecSpawner)(nil)
