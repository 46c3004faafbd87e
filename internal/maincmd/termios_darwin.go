//go:build darwin

package maincmd

import "syscall"

const (
	termiosGet uintptr = syscall.TIOCGETA
	termiosSet uintptr = syscall.TIOCSETA
)
