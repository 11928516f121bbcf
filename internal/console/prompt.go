package console

import (
	"bufio"
	"io"
)

// prompt writes a prompt and reads one line of input.
func prompt(rw io.ReadWriter, br *bufio.Reader, text string) (string, error) {
	_, err := rw.Write([]byte(text))
	if err != nil {
		return "", err
	}

	line, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}

	// Trim the newline and any carriage return left by the transport.
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return line, nil
}
