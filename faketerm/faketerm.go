// Package faketerm provides an in-memory stand-in for a real terminal
// device, for tests that exercise terminal.TTY-consuming code without
// a pseudo-terminal. It is deliberately narrow: terminal.TTY's raw-mode
// ioctls only make sense against a real character device, and a pipe
// never reports as a terminal, so a Session built on FakeTerminal
// always takes the NotATTY path — the interactive state machine itself
// is tested by calling processEvent directly against a Session's
// buffer and mode fields, with FakeTerminal only receiving the redraw
// output.
package faketerm

import (
	"bytes"
	"os"
	"sync"

	"github.com/ember-lang/lineedit/terminal"
)

// FakeTerminal wires a terminal.TTY to a pair of OS pipes: writes to
// TTY.Out are captured and readable via Output, and Feed pushes bytes
// that reads from TTY.In will see. Pipes, not an in-memory
// io.Reader/Writer pair, because terminal.TTY's fields are *os.File —
// every raw-mode ioctl it wraps needs a real file descriptor, and a
// pipe's fd answers term.IsTerminal the same way a redirected file or
// socket would: false.
type FakeTerminal struct {
	TTY *terminal.TTY

	inW *os.File

	mu       sync.Mutex
	captured bytes.Buffer
	drained  chan struct{}
}

// New creates a FakeTerminal ready for use.
func New() *FakeTerminal {
	inR, inW, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		panic(err)
	}

	f := &FakeTerminal{
		TTY:     &terminal.TTY{In: inR, Out: outW},
		inW:     inW,
		drained: make(chan struct{}),
	}
	go f.drain(outR)
	return f
}

func (f *FakeTerminal) drain(outR *os.File) {
	defer close(f.drained)
	buf := make([]byte, 4096)
	for {
		n, err := outR.Read(buf)
		if n > 0 {
			f.mu.Lock()
			f.captured.Write(buf[:n])
			f.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Feed writes s to the input side, as if typed or piped in.
func (f *FakeTerminal) Feed(s string) error {
	_, err := f.inW.WriteString(s)
	return err
}

// CloseInput closes the input side, simulating EOF.
func (f *FakeTerminal) CloseInput() error {
	return f.inW.Close()
}

// Output returns everything captured on the output side so far.
func (f *FakeTerminal) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.captured.String()
}

// Close releases both pipes, waiting for the drain goroutine to finish.
func (f *FakeTerminal) Close() error {
	_ = f.inW.Close()
	_ = f.TTY.Out.Close()
	<-f.drained
	return f.TTY.In.Close()
}
