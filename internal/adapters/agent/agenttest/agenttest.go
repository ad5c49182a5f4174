// Package agenttest provides an in-memory Commander for tests that must not
// start real processes.
package agenttest

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/jsamuelsen11/ward-alert-service/internal/adapters/agent"
)

// ExitStatus is an error carrying a process exit code, as *exec.ExitError does.
type ExitStatus int

func (e ExitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode returns the status.
func (e ExitStatus) ExitCode() int { return int(e) }

// Commander records every Spec it is asked to run. Run, when set, plays the
// role of the process: it may write to stdout and stderr and its return
// value becomes the Wait result. StartErr makes every Start fail.
type Commander struct {
	Run      func(spec agent.Spec, stdout, stderr io.Writer) error
	StartErr error

	mu    sync.Mutex
	specs []agent.Spec
}

// NewCommand implements agent.Commander.
func (c *Commander) NewCommand(s agent.Spec) agent.Command {
	c.mu.Lock()
	c.specs = append(c.specs, s)
	c.mu.Unlock()
	return &Command{spec: s, run: c.Run, startErr: c.StartErr}
}

// Specs returns the specs seen so far.
func (c *Commander) Specs() []agent.Spec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.specs)
}

// Command is a fake process.
type Command struct {
	spec     agent.Spec
	run      func(agent.Spec, io.Writer, io.Writer) error
	startErr error
	stdout   io.Writer
	stderr   io.Writer
	started  bool
}

func (c *Command) Start() error {
	if c.startErr != nil {
		return c.startErr
	}
	c.started = true
	return nil
}

func (c *Command) Wait() error {
	if !c.started {
		return errors.New("agenttest: Wait before Start")
	}
	if c.run == nil {
		return nil
	}
	return c.run(c.spec, writerOrDiscard(c.stdout), writerOrDiscard(c.stderr))
}

func (c *Command) Stdout(w io.Writer) { c.stdout = w }
func (c *Command) Stderr(w io.Writer) { c.stderr = w }

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
