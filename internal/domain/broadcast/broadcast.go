// Package broadcast defines the mesh broadcast intents issued for ward
// patients and the positional command grammar understood by the mesh agent.
package broadcast

import "time"

// Kind selects how a broadcast is addressed and flagged.
type Kind string

const (
	// KindSetup registers a patient with its sector. The message is sent to
	// the patient's own node with the critical flag cleared.
	KindSetup Kind = "setup"

	// KindCritical raises a critical alert for a patient. The message is sent
	// to the ward group address with the critical flag set.
	KindCritical Kind = "critical"
)

// IsValid returns true if k is a recognized broadcast kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindSetup, KindCritical:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Intent is a single broadcast request after directory resolution. It is
// built per request, consumed once by the Encoder, and then discarded.
type Intent struct {
	Target   string
	Subject  string
	Sector   string
	Critical bool
}

// flag returns the single payload digit for the critical flag.
func (i Intent) flag() string {
	if i.Critical {
		return "1"
	}
	return "0"
}

// Command is a fully encoded agent command line.
type Command string

// String implements fmt.Stringer.
func (c Command) String() string {
	return string(c)
}

// DispatchResult describes a completed agent invocation. Output is the
// captured standard output; Stderr and ExitCode are kept for diagnostics.
type DispatchResult struct {
	Output   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}
