package shell

import (
	"sync/atomic"
)

// ChildHandle publishes the pid of the currently-running foreground child.
// It is the only state shared between the dispatch loop and the interrupt
// relay, so every access is a single atomic word. A stored pid of zero means
// no child is active; at most one child is ever live.
type ChildHandle struct {
	pid atomic.Int64
}

func NewChildHandle() *ChildHandle {
	return &ChildHandle{}
}

func (h *ChildHandle) Set(pid int) {
	h.pid.Store(int64(pid))
}

func (h *ChildHandle) Clear() {
	h.pid.Store(0)
}

// Load returns the active child pid and whether one is set.
func (h *ChildHandle) Load() (int, bool) {
	pid := h.pid.Load()
	return int(pid), pid != 0
}
