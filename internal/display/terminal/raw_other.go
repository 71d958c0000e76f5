//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"os"
)

// EnableRawInput is not supported on this platform.
func (t *Terminal) EnableRawInput(_ *os.File) error {
	return errors.New("raw terminal input is not supported on this platform")
}
