package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineReader asks questions on a terminal and reads single-line answers.
// One question is outstanding at a time. Open must be called before Ask,
// and a closed reader can be reopened. The buffered reader survives Close
// so input buffered ahead of a mode toggle is not lost.
type LineReader struct {
	in   io.Reader
	out  io.Writer
	br   *bufio.Reader
	open bool
}

// NewLineReader creates a LineReader over the given streams.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{in: in, out: out}
}

// DefaultLineReader returns a LineReader over stdin/stdout.
func DefaultLineReader() *LineReader {
	return NewLineReader(os.Stdin, os.Stdout)
}

// Open prepares the reader for Ask calls. Idempotent. The buffer is only
// allocated once; reopening continues from where the last Ask stopped.
func (r *LineReader) Open() {
	if r.br == nil {
		r.br = bufio.NewReader(r.in)
	}
	r.open = true
}

// Close stops the reader. Ask fails until Open is called again.
func (r *LineReader) Close() {
	r.open = false
}

// Ask writes the prompt and reads one line, returning it without the
// trailing newline. EOF with a non-empty partial line is treated as input.
func (r *LineReader) Ask(prompt string) (string, error) {
	if !r.open {
		return "", fmt.Errorf("line reader is not open")
	}

	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := r.br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StdinIsTTY reports whether stdin is attached to a terminal. The driver
// uses this to fall back to defaults-only prompt resolution when input is
// piped.
func StdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
