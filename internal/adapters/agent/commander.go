// Package agent invokes the external mesh agent that transmits encoded
// broadcasts to the hardware nodes. Each dispatch starts exactly one process
// and waits for it to exit.
package agent

import (
	"bytes"
	"io"
	"os/exec"
)

// Spec is everything needed to start one agent process.
type Spec struct {
	Prog string
	Args []string
	Dir  string
}

// Command is a process that has not been started yet.
type Command interface {
	Start() error
	Wait() error

	Stdout(io.Writer)
	Stderr(io.Writer)
}

// Commander creates commands. Tests replace it with agenttest.Commander.
type Commander interface {
	NewCommand(s Spec) Command
}

// ExecCommander creates commands backed by os/exec.
var ExecCommander Commander = execCommander{}

type execCommander struct{}

// NewCommand builds an *exec.Cmd without a context: once started, the
// process is always allowed to run to completion.
func (execCommander) NewCommand(s Spec) Command {
	cmd := exec.Command(s.Prog, s.Args...) //nolint:gosec,noctx // the command line comes from the encoder
	cmd.Dir = s.Dir
	return &execCmd{cmd: cmd}
}

type execCmd struct {
	cmd *exec.Cmd
}

func (c *execCmd) Start() error       { return c.cmd.Start() }
func (c *execCmd) Wait() error        { return c.cmd.Wait() }
func (c *execCmd) Stdout(w io.Writer) { c.cmd.Stdout = w }
func (c *execCmd) Stderr(w io.Writer) { c.cmd.Stderr = w }

// cappedBuffer keeps the first max bytes written to it and silently drops
// the rest, so a chatty agent never blocks on a full pipe.
type cappedBuffer struct {
	buf bytes.Buffer
	max int
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{max: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *cappedBuffer) String() string { return b.buf.String() }
