package process

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"syscall"
)

// Slot returns the slot number the primary assigned to this worker.
func Slot() (int, error) {
	raw := os.Getenv(SlotEnv)
	slot, err := strconv.Atoi(raw)
	if err != nil || slot <= 0 {
		return 0, fmt.Errorf("%s=%q: not started by the primary", SlotEnv, raw)
	}
	return slot, nil
}

// InheritedListener rebuilds the API listener passed on ListenerFD.
func InheritedListener() (net.Listener, error) {
	f := os.NewFile(ListenerFD, "listener")
	if f == nil {
		return nil, fmt.Errorf("fd %d is not open", ListenerFD)
	}
	defer func() { _ = f.Close() }()

	l, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("inherit listener: %w", err)
	}
	return l, nil
}

// SubmissionPipe returns the write end of the pipe read by the primary.
// The descriptor is marked close-on-exec so tools the worker runs do not
// keep the pipe open after the worker is gone.
func SubmissionPipe() (*os.File, error) {
	f := os.NewFile(IPCFD, "submissions")
	if f == nil {
		return nil, fmt.Errorf("fd %d is not open", IPCFD)
	}
	syscall.CloseOnExec(IPCFD)
	return f, nil
}

// WatchParent calls cancel once stdin reaches EOF, which happens when the
// primary exits for whatever reason.
func WatchParent(stdin io.Reader, cancel context.CancelFunc) {
	go func() {
		_, _ = io.Copy(io.Discard, stdin)
		cancel()
	}()
}
