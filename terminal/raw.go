package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// TTY wraps the file descriptors read_line operates on. New binds it
// to os.Stdin/os.Stdout and tests construct it around pipes; nothing
// else in this package hardcodes the standard streams.
type TTY struct {
	In  *os.File
	Out *os.File

	mu    sync.Mutex
	state *term.State
}

// New returns a TTY bound to the process's standard input and output.
func New() *TTY {
	return &TTY{In: os.Stdin, Out: os.Stdout}
}

// fd returns the input file descriptor used for terminal ioctls.
func (t *TTY) fd() int {
	return int(t.In.Fd())
}

// IsTTY reports whether In is a character device, the first branch of
// spec.md §4.1's capability detection.
func (t *TTY) IsTTY() bool {
	return term.IsTerminal(t.fd())
}

// EnterRaw captures the current terminal attributes and switches to
// raw mode: no canonical input, no echo, no signal generation, 8-bit
// clean, minimum read of 1 byte with no timer (spec.md §4.1). It
// registers the returned restore function with the process-wide
// cleanup hook so terminal sanity survives SIGTERM/SIGINT delivered
// from outside the raw-mode process (Ctrl-C itself is delivered as a
// data byte, not a signal, once ISIG is disabled — spec.md §5).
func (t *TTY) EnterRaw() (restore func() error, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(t.fd())
	if err != nil {
		return nil, err
	}
	t.state = state

	restoreFn := t.Restore
	registerRestoreHook(restoreFn)
	return restoreFn, nil
}

// Restore reverts to the terminal attributes captured by the most
// recent EnterRaw call. It is idempotent: calling it when not in raw
// mode is a no-op.
func (t *TTY) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd(), t.state)
	t.state = nil
	return err
}

// Width returns the terminal's column count, falling back to 80 per
// spec.md §4.1 and error category 5 when the window-size ioctl fails.
func (t *TTY) Width() int {
	w, _, err := term.GetSize(t.fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

var (
	restoreHooksMu sync.Mutex
	restoreHooks   []func() error
	signalOnce     sync.Once
)

// registerRestoreHook adds restore to the process-wide list invoked
// when a termination signal arrives while a TTY is in raw mode. Go
// has no process-exit hook equivalent to a C atexit handler, so this
// signal-based approach is the idiomatic substitute the spec's Design
// Notes (§9) anticipate: "the caller must wrap read_line in a scoped
// acquisition that restores attributes on every exit path." The
// caller's own defer covers normal returns; this covers external
// termination requests.
func registerRestoreHook(restore func() error) {
	restoreHooksMu.Lock()
	restoreHooks = append(restoreHooks, restore)
	restoreHooksMu.Unlock()

	signalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-ch
			restoreHooksMu.Lock()
			for _, r := range restoreHooks {
				_ = r()
			}
			restoreHooksMu.Unlock()
			signal.Stop(ch)
			os.Exit(1)
		}()
	})
}
