// FILE: logbridge/src/internal/priority/priority.go
// Decodes RFC 3164 §4.1.1 PRI headers into facility and severity labels.
package priority

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPriValue marks a PRI decimal that is absent, non-numeric, or
// decodes to a facility code with no name.
var ErrInvalidPriValue = errors.New("invalid PRI value")

// Priority is a decoded PRI header: 3 bits of severity, up to 5 of facility.
type Priority struct {
	Facility Facility
	Severity Severity
}

// Parse decodes a decimal PRI string. Valid values are 0-191: the facility
// half must resolve to one of the 24 named facilities.
func Parse(s string) (Priority, error) {
	if s == "" {
		return Priority{}, fmt.Errorf("%w: empty string", ErrInvalidPriValue)
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Priority{}, fmt.Errorf("%w: %q is not a non-negative decimal", ErrInvalidPriValue, s)
	}

	facilityCode := n >> 3
	severityCode := n & 0x7

	if facilityCode >= numFacilities {
		return Priority{}, fmt.Errorf("%w: facility code %d has no name", ErrInvalidPriValue, facilityCode)
	}
	// Cannot occur given the 3-bit mask, kept for contract completeness
	if severityCode >= numSeverities {
		return Priority{}, fmt.Errorf("%w: severity code %d out of range", ErrInvalidPriValue, severityCode)
	}

	return Priority{Facility: Facility(facilityCode), Severity: Severity(severityCode)}, nil
}

// String renders the priority as "facility.severity" using the canonical
// lowercase names, e.g. "user.notice".
func (p Priority) String() string {
	return p.Facility.String() + "." + p.Severity.String()
}
