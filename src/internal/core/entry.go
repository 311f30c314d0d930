// FILE: logbridge/src/internal/core/entry.go
package core

import "time"

// Class is the coarse severity taxonomy of the downstream event sink.
// The eight syslog severities fold into these three values.
type Class uint8

const (
	ClassInformation Class = iota
	ClassWarning
	ClassError
)

func (c Class) String() string {
	switch c {
	case ClassError:
		return "error"
	case ClassWarning:
		return "warning"
	default:
		return "information"
	}
}

// Record represents a single rewritten syslog message flowing through the bridge
type Record struct {
	Time       time.Time `json:"time"`
	Source     string    `json:"source"`
	RemoteAddr string    `json:"remote_addr"`
	Message    string    `json:"message"`
	Class      Class     `json:"class"`
	RawSize    int64     `json:"-"`
}
