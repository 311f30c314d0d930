// FILE: logbridge/src/internal/priority/priority_test.go
package priority

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logbridge/src/internal/core"
)

func TestParse_RoundTrip(t *testing.T) {
	// Every named facility/severity combination decodes back to itself
	for f := 0; f < 24; f++ {
		for s := 0; s < 8; s++ {
			value := strconv.Itoa(f*8 + s)
			p, err := Parse(value)
			require.NoError(t, err, "value %s", value)
			assert.Equal(t, Facility(f), p.Facility, "value %s", value)
			assert.Equal(t, Severity(s), p.Severity, "value %s", value)
		}
	}
}

func TestParse_Known(t *testing.T) {
	testCases := []struct {
		value    string
		expected string
	}{
		{"0", "kernel.emergency"},
		{"13", "user.notice"},
		{"34", "security.critical"},
		{"165", "local4.notice"},
		{"191", "local7.debug"},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			p, err := Parse(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{"Empty", ""},
		{"NonNumeric", "abc"},
		{"Negative", "-1"},
		{"FirstUnnamedFacility", "192"}, // facility 24, reserved and unnamed
		{"UnmappedFacility", "999"},     // facility 124
		{"Huge", "65535"},
		{"TrailingGarbage", "13x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPriValue)
		})
	}
}

func TestFacilityNames(t *testing.T) {
	expected := []string{
		"kernel", "user", "mail", "system", "security", "internal",
		"printer", "news", "uucp", "cron", "security2", "ftp",
		"ntp", "audit", "alert", "clock2", "local0", "local1",
		"local2", "local3", "local4", "local5", "local6", "local7",
	}
	for code, name := range expected {
		assert.Equal(t, name, Facility(code).String())
	}
}

func TestSeverityNames(t *testing.T) {
	expected := []string{
		"emergency", "alert", "critical", "error",
		"warning", "notice", "info", "debug",
	}
	for code, name := range expected {
		assert.Equal(t, name, Severity(code).String())
	}
}

func TestSeverityClass(t *testing.T) {
	// The mapping is total: all eight severities land in exactly one of
	// the three sink classes
	expected := map[Severity]core.Class{
		SeverityEmergency: core.ClassError,
		SeverityAlert:     core.ClassError,
		SeverityCritical:  core.ClassError,
		SeverityError:     core.ClassError,
		SeverityWarning:   core.ClassWarning,
		SeverityNotice:    core.ClassInformation,
		SeverityInfo:      core.ClassInformation,
		SeverityDebug:     core.ClassInformation,
	}
	require.Len(t, expected, int(numSeverities))
	for sev, class := range expected {
		assert.Equal(t, class, sev.Class(), "severity %s", sev)
	}
}
