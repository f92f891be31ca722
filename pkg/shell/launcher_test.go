package shell

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDefaultLauncher_CommandNotFound(t *testing.T) {
	child := NewChildHandle()
	launcher := NewDefaultLauncher(child, nil)

	var out, errw bytes.Buffer
	err := launcher.Launch(
		[]string{"definitely-not-a-real-command-xyz"},
		IOBindings{Stdout: &out, Stderr: &errw},
	)

	require.NoError(t, err, "an unknown command is a user error, not a launch failure")
	assert.Equal(t, "definitely-not-a-real-command-xyz: command not found\n", errw.String())

	_, ok := child.Load()
	assert.False(t, ok)
}

func TestDefaultLauncher_ArgvRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not on PATH")
	}

	child := NewChildHandle()
	launcher := NewDefaultLauncher(child, nil)

	var out, errw bytes.Buffer
	err := launcher.Launch(
		[]string{"echo", "a", "b"},
		IOBindings{Stdout: &out, Stderr: &errw},
	)

	require.NoError(t, err)
	assert.Equal(t, "a b\n", out.String())

	_, ok := child.Load()
	assert.False(t, ok, "handle must be cleared after the child is reaped")
}

func TestDefaultLauncher_NonZeroExitContinues(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not on PATH")
	}

	child := NewChildHandle()
	launcher := NewDefaultLauncher(child, nil)

	var out, errw bytes.Buffer
	err := launcher.Launch(
		[]string{"sh", "-c", "exit 3"},
		IOBindings{Stdout: &out, Stderr: &errw},
	)

	require.NoError(t, err, "a failing child never stops the loop")

	_, ok := child.Load()
	assert.False(t, ok)
}

func TestDefaultLauncher_TerminalHandoff(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not on PATH")
	}

	tty, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer tty.Close()

	launcher := NewDefaultLauncher(NewChildHandle(), nil)
	launcher.tty = tty

	var handoffs []int
	launcher.setpgrp = func(fd, pgid int) error {
		handoffs = append(handoffs, pgid)
		return nil
	}

	var out, errw bytes.Buffer
	require.NoError(t, launcher.Launch(
		[]string{"echo", "hi"},
		IOBindings{Stdout: &out, Stderr: &errw},
	))

	require.Len(t, handoffs, 2, "terminal is handed to the child's group and reclaimed")
	assert.Greater(t, handoffs[0], 0, "first handoff targets the child's pgid")
	assert.Equal(t, unix.Getpgrp(), handoffs[1], "terminal returns to the interpreter's group")
}

func TestDefaultLauncher_NoTerminalNoHandoff(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not on PATH")
	}

	launcher := NewDefaultLauncher(NewChildHandle(), nil)
	launcher.tty = nil

	called := false
	launcher.setpgrp = func(fd, pgid int) error {
		called = true
		return nil
	}

	var out, errw bytes.Buffer
	require.NoError(t, launcher.Launch(
		[]string{"echo", "hi"},
		IOBindings{Stdout: &out, Stderr: &errw},
	))

	assert.False(t, called, "no terminal control without a controlling terminal")
}

func TestDefaultLauncher_EmptyTokens(t *testing.T) {
	launcher := NewDefaultLauncher(NewChildHandle(), nil)
	assert.NoError(t, launcher.Launch(nil, IOBindings{}))
}
