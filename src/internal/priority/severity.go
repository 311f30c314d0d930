// FILE: logbridge/src/internal/priority/severity.go
package priority

import (
	"fmt"

	"logbridge/src/internal/core"
)

// Severity is the urgency level encoded in the lower three bits of a PRI
// value. Code 0 is the most urgent.
type Severity uint8

const (
	SeverityEmergency Severity = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug

	numSeverities = iota
)

var severityNames = [numSeverities]string{
	"emergency", "alert", "critical", "error",
	"warning", "notice", "info", "debug",
}

func (s Severity) String() string {
	if int(s) < numSeverities {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Class maps the severity to the sink's three-level taxonomy. The mapping
// is total: every severity has exactly one class.
func (s Severity) Class() core.Class {
	switch s {
	case SeverityEmergency, SeverityAlert, SeverityCritical, SeverityError:
		return core.ClassError
	case SeverityWarning:
		return core.ClassWarning
	default:
		return core.ClassInformation
	}
}
