//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// EnableRawInput switches the input file descriptor to non blocking raw
// mode. The previous mode is restored by Close.
func (t *Terminal) EnableRawInput(file *os.File) error {
	fd := int(file.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("reading terminal mode: %w", err)
	}

	restore := *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 0
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &termstate); err != nil {
		return fmt.Errorf("setting raw terminal mode: %w", err)
	}

	t.restore = func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, &restore)
	}
	return nil
}
