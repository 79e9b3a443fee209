//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// readSecretLine reads one line from a terminal with echo switched off.
// errNotTerminal is returned when stdin is not a terminal.
func readSecretLine(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	fd := int(stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, termiosReadRequest)
	if err != nil {
		return "", errNotTerminal
	}
	restore := *saved
	silent := *saved
	silent.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, termiosWriteRequest, &silent); err != nil {
		return "", err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, termiosWriteRequest, &restore)
	}()

	return readLine(stdin)
}
