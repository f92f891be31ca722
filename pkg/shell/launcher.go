package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrSpawn marks a process-creation failure the interpreter cannot recover
// from locally. Callers treat it as fatal.
var ErrSpawn = errors.New("cannot spawn process")

// DefaultLauncher resolves tokens[0] on PATH and runs it as a foreground
// child. The child gets its own process group so an interrupt can be
// forwarded to the whole group; on a terminal that group is also handed the
// terminal for the duration of the wait.
type DefaultLauncher struct {
	child  *ChildHandle
	logger *zap.Logger

	tty     *os.File // controlling terminal, nil when stdin is not one
	setpgrp func(fd, pgid int) error
}

func NewDefaultLauncher(child *ChildHandle, logger *zap.Logger) *DefaultLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &DefaultLauncher{
		child:  child,
		logger: logger,
		setpgrp: func(fd, pgid int) error {
			return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid)
		},
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		l.tty = os.Stdin
		// reclaiming the terminal after a child would otherwise stop the
		// shell with SIGTTOU
		signal.Ignore(unix.SIGTTOU)
	}

	return l
}

func (l *DefaultLauncher) Launch(tokens []string, bindings IOBindings) error {
	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0]

	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintln(bindings.Stderr, name+": command not found")
		return nil
	}

	cmd := exec.Command(path)
	// argv is exactly the token sequence; argv[0] restates the name as typed
	cmd.Args = tokens
	cmd.Stdin = bindings.Stdin
	cmd.Stdout = bindings.Stdout
	cmd.Stderr = bindings.Stderr
	cmd.SysProcAttr = &unix.SysProcAttr{
		Setpgid: true,
	}

	if err := cmd.Start(); err != nil {
		// LookPath already vetted the target, so a Start failure here is a
		// fork-level resource error, not a bad command name.
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	l.child.Set(cmd.Process.Pid)
	defer l.child.Clear()

	// Setpgid left the child in a fresh group (pgid == pid). On a terminal
	// that group must also become the foreground group, or the kernel stops
	// the child with SIGTTIN as soon as it reads stdin and the wait below
	// never sees a final state. Reclaimed after the wait.
	l.setForeground(cmd.Process.Pid)
	defer l.setForeground(unix.Getpgrp())

	l.logger.Debug("child started",
		zap.Int("pid", cmd.Process.Pid),
		zap.String("path", path),
	)

	// Blocks until the child exits or is killed by a signal; a merely
	// stopped child is not a final state and does not end the wait.
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.logger.Debug("child finished",
				zap.Int("pid", cmd.Process.Pid),
				zap.String("state", exitErr.ProcessState.String()),
			)
			return nil
		}

		fmt.Fprintln(bindings.Stderr, name+":", err)
		return nil
	}

	l.logger.Debug("child finished",
		zap.Int("pid", cmd.Process.Pid),
		zap.String("state", cmd.ProcessState.String()),
	)

	return nil
}

func (l *DefaultLauncher) setForeground(pgid int) {
	if l.tty == nil {
		return
	}

	if err := l.setpgrp(int(l.tty.Fd()), pgid); err != nil {
		l.logger.Debug("set foreground process group",
			zap.Int("pgid", pgid),
			zap.Error(err),
		)
	}
}
