package broadcast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain/ward"
)

// Defaults reproduce the command layout deployed with the ward gateway.
const (
	DefaultPrefix  = "python3 execute.py model 0 0x0000"
	DefaultGateway = "0xfbf105"
	DefaultGroup   = "0xc123"
)

// Encoder renders intents into agent command lines:
//
//	<prefix> <gateway> <target> 0 0<subject><sector><flag>
//
// The trailing token has no separators; the firmware parses it by position.
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	prefix  string
	gateway string
	group   string
}

// NewEncoder returns an Encoder for the given invocation prefix, gateway
// address and group address. None of the values may be blank.
func NewEncoder(prefix, gateway, group string) (*Encoder, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, errors.New("broadcast: prefix must not be empty")
	}
	if !ward.ValidAddress(gateway) {
		return nil, fmt.Errorf("broadcast: invalid gateway address %q", gateway)
	}
	if !ward.ValidAddress(group) {
		return nil, fmt.Errorf("broadcast: invalid group address %q", group)
	}
	return &Encoder{prefix: prefix, gateway: gateway, group: group}, nil
}

// Group returns the ward group address used for critical broadcasts.
func (e *Encoder) Group() string {
	return e.group
}

// Intent builds the intent of the given kind for a resolved patient.
func (e *Encoder) Intent(kind Kind, p ward.Patient) Intent {
	in := Intent{
		Target:  p.ID,
		Subject: p.ID,
		Sector:  p.Sector,
	}
	if kind == KindCritical {
		in.Target = e.group
		in.Critical = true
	}
	return in
}

// Encode renders the intent. It performs plain concatenation with no
// escaping; callers only pass intents built from directory records.
func (e *Encoder) Encode(in Intent) Command {
	var b strings.Builder
	b.Grow(len(e.prefix) + len(e.gateway) + 2*len(in.Target) + len(in.Sector) + 8)

	b.WriteString(e.prefix)
	b.WriteByte(' ')
	b.WriteString(e.gateway)
	b.WriteByte(' ')
	b.WriteString(in.Target)
	b.WriteString(" 0 0")
	b.WriteString(in.Subject)
	b.WriteString(in.Sector)
	b.WriteString(in.flag())

	return Command(b.String())
}
