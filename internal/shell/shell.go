// Package shell implements the interactive command interpreter: a dispatch
// loop that reads one line at a time, resolves the first token against the
// builtin registry, and hands everything else to the process launcher.
package shell

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	core "simplesh/pkg/shell"
)

// ErrExit is returned by the exit builtin to stop the dispatch loop.
var ErrExit = errors.New("exit")

// ErrInterrupted is returned by a line reader when the user pressed Ctrl-C
// at the prompt; the loop prints the termination notice and stops cleanly.
var ErrInterrupted = errors.New("interrupted")

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "simplesh> "

// Builtin is a command handled inside the interpreter's own process.
// A nil return continues the loop; ErrExit stops it.
type Builtin func(args []string, s *Shell) error

type Shell struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	prompt    string
	reader    LineReader
	builtins  map[string]Builtin
	tokenizer core.Tokenizer
	launcher  core.Launcher
	child     *core.ChildHandle
	logger    *zap.Logger
}

// Option configures a Shell beyond its standard streams.
type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithReader overrides the line reader selected from the input stream.
func WithReader(r LineReader) Option {
	return func(s *Shell) { s.reader = r }
}

// WithLauncher overrides the external-command launcher.
func WithLauncher(l core.Launcher) Option {
	return func(s *Shell) { s.launcher = l }
}

func New(in io.Reader, out, errw io.Writer, opts ...Option) (*Shell, error) {
	s := &Shell{
		In:       in,
		Out:      out,
		Err:      errw,
		prompt:   DefaultPrompt,
		builtins: make(map[string]Builtin),
		child:    core.NewChildHandle(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.tokenizer == nil {
		s.tokenizer = core.NewDefaultTokenizer()
	}
	if s.launcher == nil {
		s.launcher = core.NewDefaultLauncher(s.child, s.logger)
	}
	if s.reader == nil {
		r, err := NewLineReader(in, out, s.prompt)
		if err != nil {
			return nil, err
		}
		s.reader = r
	}

	s.registerBuiltins()
	return s, nil
}

// Child exposes the active-child handle for the interrupt relay.
func (s *Shell) Child() *core.ChildHandle {
	return s.child
}

// Run drives the dispatch loop until the exit builtin runs, input ends, or
// an unrecoverable launch failure occurs.
func (s *Shell) Run() error {
	defer s.reader.Close()

	for {
		line, err := s.reader.ReadLine()

		if err != nil && !errors.Is(err, io.EOF) {
			if errors.Is(err, ErrInterrupted) {
				fmt.Fprintln(s.Out, "\nsimplesh terminated")
				return nil
			}
			return err
		}

		// End of input is a graceful stop, but a final unterminated line
		// still gets dispatched first.
		eof := err != nil

		if derr := s.dispatch(line); derr != nil {
			if errors.Is(derr, ErrExit) {
				return nil
			}
			return derr
		}

		if eof {
			return nil
		}
	}
}

func (s *Shell) dispatch(line string) error {
	tokens := s.tokenizer.Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	if fn, ok := s.builtins[tokens[0]]; ok {
		s.logger.Debug("dispatch builtin", zap.String("name", tokens[0]))
		return fn(tokens[1:], s)
	}

	s.logger.Debug("dispatch external", zap.Strings("tokens", tokens))

	return s.launcher.Launch(tokens, core.IOBindings{
		Stdin:  s.In,
		Stdout: s.Out,
		Stderr: s.Err,
	})
}
