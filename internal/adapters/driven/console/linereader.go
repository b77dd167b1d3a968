// Package console provides a LineSource over a text stream such as stdin.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/quadra-cli/internal/core/ports/driven"
)

// Ensure LineReader implements the interface.
var _ driven.LineSource = (*LineReader)(nil)

type readResult struct {
	line string
	err  error
}

// LineReader reads newline-terminated lines from an io.Reader.
// Reads run on a background goroutine so a blocked read can be abandoned
// when the context is cancelled.
type LineReader struct {
	reader *bufio.Reader

	// pending holds the result of a read abandoned by a cancelled call.
	// The next call receives it instead of starting another read.
	pending chan readResult
}

// NewLineReader creates a line reader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line with its "\n" or "\r\n" removed.
// A final line without a terminator is returned before io.EOF.
// It returns ctx.Err() as soon as ctx is done, even while a read is blocked.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	results := l.pending
	if results == nil {
		results = make(chan readResult, 1)
		go func() {
			line, err := l.read()
			results <- readResult{line: line, err: err}
		}()
	}

	select {
	case res := <-results:
		l.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		l.pending = results
		return "", ctx.Err()
	}
}

func (l *LineReader) read() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
