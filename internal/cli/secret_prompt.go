package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var errNotTerminal = errors.New("stdin is not a terminal")

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
