//go:build !windows

package terminal

import "golang.org/x/sys/unix"

// KeyAvailable performs a zero-timeout readiness check on fd, letting
// the keypress decoder drain any bytes a paste dumped into the input
// buffer within a single read_line iteration (spec.md §4.6).
func (t *TTY) KeyAvailable() bool {
	fd := t.fd()
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n <= 0 {
		return false
	}
	return fds[0].Revents&unix.POLLIN != 0
}
