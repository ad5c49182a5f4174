package agent

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
)

// ExitError reports an agent process that could not be started or that
// terminated unsuccessfully. It matches domain.ErrDispatch under errors.Is.
type ExitError struct {
	// Code is the process exit code, or -1 when the process could not be
	// started or was terminated by a signal.
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	var b strings.Builder
	if e.Code >= 0 {
		fmt.Fprintf(&b, "mesh agent exited with code %d", e.Code)
	} else {
		b.WriteString("mesh agent failed")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

func (e *ExitError) Unwrap() []error {
	return []error{domain.ErrDispatch, e.Err}
}
