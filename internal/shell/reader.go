package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader produces one input line per call. Implementations print the
// prompt themselves. io.EOF signals end of input; a final unterminated line
// may be returned together with io.EOF.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// NewLineReader picks the reader for the input stream: readline when the
// input is a terminal, a plain buffered reader otherwise.
func NewLineReader(in io.Reader, out io.Writer, prompt string) (LineReader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewReadlineReader(prompt)
	}
	return NewBufferReader(in, out, prompt), nil
}

// ReadlineReader reads from the controlling terminal with line editing.
type ReadlineReader struct {
	rl *readline.Instance
}

func NewReadlineReader(prompt string) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		HistoryLimit: -1, // command history is out of scope
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}

	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()

	// readline owns the terminal during the call and reports Ctrl-C as an
	// error value instead of delivering the signal.
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}

	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// BufferReader reads newline-delimited lines from any stream, growing its
// buffer as needed; there is no maximum line length. It reads one byte at a
// time so it never consumes input beyond the current line: a dispatched
// child that reads stdin sees everything after its own command line.
type BufferReader struct {
	in     io.Reader
	out    io.Writer
	prompt string
}

func NewBufferReader(in io.Reader, out io.Writer, prompt string) *BufferReader {
	return &BufferReader{
		in:     in,
		out:    out,
		prompt: prompt,
	}
}

func (r *BufferReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, r.prompt)

	var line []byte
	buf := make([]byte, 1)

	for {
		n, err := r.in.Read(buf)
		if n > 0 {
			line = append(line, buf[0])
			if buf[0] == '\n' {
				return string(line), nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(line), io.EOF
			}
			return "", err
		}
	}
}

func (r *BufferReader) Close() error {
	return nil
}
