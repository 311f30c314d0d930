// FILE: logbridge/src/internal/core/const.go
package core

const (
	// DefaultSyslogPort is the standard RFC 3164 UDP port
	DefaultSyslogPort = 514

	// MaxDatagramSize is the RFC 3164 message size bound; longer
	// datagrams are truncated to this before decoding
	MaxDatagramSize = 1024

	// DefaultSourceName is the sink source the bridge registers its
	// records under
	DefaultSourceName = "syslogd"

	// DefaultCategory is the sink category sources are registered in
	DefaultCategory = "application"
)
