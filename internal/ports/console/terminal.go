// Package console adapts a text terminal to the game: human seats read
// card positions from input lines, and a reporter prints the table.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

type line struct {
	text string
	err  error
}

// Terminal owns the input stream. A single goroutine scans lines so prompts
// can be abandoned on context cancellation or timeout without losing input.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	timeout time.Duration

	once  sync.Once
	lines chan line
}

// NewTerminal returns a Terminal. A zero timeout waits forever.
func NewTerminal(in io.Reader, out io.Writer, timeout time.Duration) *Terminal {
	return &Terminal{in: in, out: out, timeout: timeout}
}

func (t *Terminal) start() {
	t.lines = make(chan line)
	go func() {
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			t.lines <- line{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		t.lines <- line{err: err}
		close(t.lines)
	}()
}

// Printf writes to the terminal output.
func (t *Terminal) Printf(format string, v ...any) {
	fmt.Fprintf(t.out, format, v...)
}

// Prompt prints msg and waits for the next input line.
func (t *Terminal) Prompt(ctx context.Context, msg string) (string, error) {
	t.once.Do(t.start)
	if msg != "" {
		t.Printf("%s", msg)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for input: %w", ctx.Err())
	case l, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}
