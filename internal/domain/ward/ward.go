// Package ward holds the directory entities of a monitoring ward: patients
// carrying a sensor node and doctors carrying a handheld node. Both are
// addressed by an opaque mesh node-address such as "0x0001".
package ward

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain"
)

const (
	msgRequired       = "is required"
	msgInvalidAddress = "must be a hex node-address like 0x0001"
	msgInvalidSector  = "must not contain whitespace"
)

// addressPattern is the node-address form the deployed mesh gateway
// parses (int(x, 0) on the agent side). The broadcast path itself copies
// addresses into the command line as opaque strings.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// Patient is a monitored patient whose sensor node is registered with a
// monitoring sector.
type Patient struct {
	ID     string
	Name   string
	Sector string
}

// Doctor is a clinician node. Doctors are listed by the directory but never
// addressed by a broadcast.
type Doctor struct {
	ID   string
	Name string
}

// ValidAddress reports whether s is a 0x-prefixed hex node-address. This
// is a constraint of the current gateway deployment, checked when directory
// records are loaded and when an encoder is configured. Encode never
// inspects an address.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// Validate checks the patient record. Sector codes are embedded in the
// broadcast payload without separators, so whitespace is rejected here
// rather than escaped later.
func (p *Patient) Validate() error {
	fields := make(map[string]string)

	validateAddress(fields, p.ID)
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = msgRequired
	}
	switch {
	case p.Sector == "":
		fields["sector"] = msgRequired
	case strings.ContainsFunc(p.Sector, unicode.IsSpace):
		fields["sector"] = msgInvalidSector
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the doctor record.
func (d *Doctor) Validate() error {
	fields := make(map[string]string)

	validateAddress(fields, d.ID)
	if strings.TrimSpace(d.Name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateAddress(fields map[string]string, id string) {
	switch {
	case id == "":
		fields["id"] = msgRequired
	case !ValidAddress(id):
		fields["id"] = msgInvalidAddress
	}
}
