package adapter

import (
	"bufio"
	"io"
	"strings"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 4 * 1024 * 1024
)

// eventReader splits a server-sent event stream into message payloads.
//
// Consecutive `data:` lines are joined with "\n"; a blank line dispatches the
// message. Comment lines and the event, id and retry fields are skipped. A
// message still open when the stream ends is discarded.
type eventReader struct {
	scanner *bufio.Scanner
}

func newEventReader(r io.Reader) *eventReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineSize)

	return &eventReader{scanner: scanner}
}

// Next returns the payload of the next dispatched message. It returns
// io.EOF when the stream ends cleanly and the scanner error otherwise.
func (r *eventReader) Next() (string, error) {
	var data []string
	for r.scanner.Scan() {
		line := r.scanner.Text()

		if line == "" {
			if data == nil {
				continue
			}
			return strings.Join(data, "\n"), nil
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		if field != "data" {
			continue
		}
		data = append(data, strings.TrimPrefix(value, " "))
	}

	if err := r.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
