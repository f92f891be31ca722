package shell

import (
	"fmt"
	"os"
	"strings"
)

// builtinNames keeps help output in a stable order.
var builtinNames = []string{"cd", "help", "echo", "exit"}

func (s *Shell) registerBuiltins() {

	s.builtins["cd"] = func(args []string, s *Shell) error {
		// bare cd is a no-op, not "go home"
		if len(args) == 0 {
			return nil
		}

		target := args[0]

		if err := os.Chdir(target); err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(s.Err, "cd: %s: No such file or directory\n", target)
			} else if os.IsPermission(err) {
				fmt.Fprintf(s.Err, "cd: %s: Permission denied\n", target)
			} else {
				fmt.Fprintf(s.Err, "cd: %s: %v\n", target, err)
			}
		}

		return nil
	}

	s.builtins["help"] = func(args []string, s *Shell) error {
		fmt.Fprintln(s.Out, "simplesh, a minimal command interpreter")
		fmt.Fprintln(s.Out, "Builtin commands:")
		for _, name := range builtinNames {
			fmt.Fprintln(s.Out, "  "+name)
		}
		fmt.Fprintln(s.Out, "Anything else runs as an external program.")
		return nil
	}

	s.builtins["echo"] = func(args []string, s *Shell) error {
		fmt.Fprintln(s.Out, strings.Join(args, " "))
		return nil
	}

	s.builtins["exit"] = func(args []string, s *Shell) error {
		return ErrExit
	}
}
