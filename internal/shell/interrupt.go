package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	core "simplesh/pkg/shell"
)

// InterruptRelay handles the interactive interrupt signal for the whole
// process: it prints a termination notice, forwards the interrupt to the
// active foreground child if there is one, and ends the interpreter. It
// never returns control to the dispatch loop.
type InterruptRelay struct {
	child  *core.ChildHandle
	out    io.Writer
	logger *zap.Logger

	exit func(int)
	kill func(pid int, sig unix.Signal) error
}

func NewInterruptRelay(child *core.ChildHandle, out io.Writer, logger *zap.Logger) *InterruptRelay {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &InterruptRelay{
		child:  child,
		out:    out,
		logger: logger,
		exit:   os.Exit,
		kill:   unix.Kill,
	}
}

// Start registers the signal handler. Called once at startup.
func (r *InterruptRelay) Start() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		<-ch
		r.handle()
	}()
}

func (r *InterruptRelay) handle() {
	fmt.Fprintln(r.out, "\nsimplesh terminated")

	if pid, ok := r.child.Load(); ok {
		// children run in their own process group; signal the whole group
		if err := r.kill(-pid, unix.SIGINT); err != nil {
			r.logger.Debug("forward interrupt", zap.Int("pid", pid), zap.Error(err))
		}
	}

	r.exit(0)
}
