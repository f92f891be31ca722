package shell

import (
	"io"
)

// Tokenizer splits one input line into an ordered argument sequence.
// Element 0 is the command name.
type Tokenizer interface {
	Tokenize(line string) []string
}

// Launcher runs one external command in the foreground and blocks until
// the child has exited or been killed by a signal.
type Launcher interface {
	Launch(tokens []string, bindings IOBindings) error
}

// IOBindings carries the standard streams a command inherits.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
