//go:build linux

package maincmd

import "syscall"

const (
	termiosGet uintptr = syscall.TCGETS
	termiosSet uintptr = syscall.TCSETS
)
