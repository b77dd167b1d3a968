package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	ctx := context.Background()
	r := NewLineReader(strings.NewReader("x^2 - 3x + 2 = 0\r\nsecond\nlast"))

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x^2 - 3x + 2 = 0", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReader_EmptyInput(t *testing.T) {
	r := NewLineReader(strings.NewReader(""))

	_, err := r.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReader_BlankLine(t *testing.T) {
	r := NewLineReader(strings.NewReader("\n"))

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestLineReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewLineReader(strings.NewReader("x^2 = 0\n"))
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLineReader_ReadError(t *testing.T) {
	r := NewLineReader(failingReader{})

	_, err := r.ReadLine(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}

func TestLineReader_CancelWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewLineReader(pr)
	ctx, cancel := context.WithCancel(context.Background())

	errs := make(chan error, 1)
	go func() {
		_, err := r.ReadLine(ctx)
		errs <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after cancellation")
	}
}

func TestLineReader_AbandonedLineIsNotLost(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewLineReader(pr)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Abandon a blocked read when the deadline passes.
	deadline, stop := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer stop()
	_, err := r.ReadLine(deadline)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = r.ReadLine(ctx)
	require.ErrorIs(t, err, context.Canceled)

	go func() {
		_, _ = pw.Write([]byte("x^2 = 0\n"))
	}()

	line, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x^2 = 0", line)
}
