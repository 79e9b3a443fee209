//go:build windows

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

func readSecretLine(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	handle := windows.Handle(stdin.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return "", errNotTerminal
	}
	if err := windows.SetConsoleMode(handle, mode&^windows.ENABLE_ECHO_INPUT); err != nil {
		return "", err
	}
	defer func() {
		_ = windows.SetConsoleMode(handle, mode)
	}()

	return readLine(stdin)
}
