//go:build linux || darwin

package maincmd

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/mna/mainer"
)

// rawSelect runs the arrow-key menu on a terminal: the current option is
// marked with ">", up/down move, Enter confirms. The terminal is put in raw
// mode (no echo, no canonical input) and restored on exit; any termios
// failure makes the caller fall back to the numbered menu.
func rawSelect(stdio mainer.Stdio, question string, options []string) (int, error) {
	fd := int(os.Stdin.Fd())

	var oldState syscall.Termios
	if err := ioctl(fd, termiosGet, &oldState); err != nil {
		return 0, err
	}

	newState := oldState
	newState.Lflag &^= syscall.ECHO | syscall.ICANON
	newState.Cc[syscall.VMIN] = 1
	newState.Cc[syscall.VTIME] = 0
	if err := ioctl(fd, termiosSet, &newState); err != nil {
		return 0, err
	}
	defer func() {
		_ = ioctl(fd, termiosSet, &oldState)
	}()

	fmt.Fprintln(stdio.Stdout, question)

	cur := 0
	render := func() {
		for i, opt := range options {
			if i == cur {
				fmt.Fprintf(stdio.Stdout, "> %s\n", opt)
			} else {
				fmt.Fprintf(stdio.Stdout, "  %s\n", opt)
			}
		}
	}
	render()

	buf := make([]byte, 3)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return cur, nil
		}

		switch {
		case buf[0] == '\n' || buf[0] == '\r':
			// clear the menu and the question line
			for i := 0; i < len(options)+1; i++ {
				fmt.Fprint(stdio.Stdout, "\x1b[F\x1b[K")
			}
			return cur, nil

		case n >= 3 && buf[0] == 27 && buf[1] == '[' && buf[2] == 'A': // up
			cur = (cur - 1 + len(options)) % len(options)
			fmt.Fprint(stdio.Stdout, cursorUp(len(options)))
			render()

		case n >= 3 && buf[0] == 27 && buf[1] == '[' && buf[2] == 'B': // down
			cur = (cur + 1) % len(options)
			fmt.Fprint(stdio.Stdout, cursorUp(len(options)))
			render()
		}
	}
}

// cursorUp returns the escape sequence moving the cursor up n lines.
func cursorUp(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "\x1b[F"
	}
	return s
}

func ioctl(fd int, req uintptr, state *syscall.Termios) error {
	if _, _, errno := syscall.Syscall6(
		syscall.SYS_IOCTL,
		uintptr(fd),
		req,
		uintptr(unsafe.Pointer(state)),
		0, 0, 0,
	); errno != 0 {
		return errno
	}
	return nil
}
