//go:build !linux && !darwin

package maincmd

import (
	"errors"

	"github.com/mna/mainer"
)

// rawSelect is unavailable without termios support; the caller falls back
// to the numbered menu.
func rawSelect(stdio mainer.Stdio, question string, options []string) (int, error) {
	return 0, errors.New("raw terminal mode not supported on this platform")
}
