// FILE: logbridge/src/internal/format/format_test.go
package format

import (
	"testing"
	"time"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logbridge/src/internal/config"
	"logbridge/src/internal/core"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestNew(t *testing.T) {
	logger := newTestLogger()

	testCases := []struct {
		name        string
		formatName  string
		expected    string
		expectError bool
	}{
		{
			name:       "TextFormatter",
			formatName: "txt",
			expected:   "txt",
		},
		{
			name:       "RawFormatter",
			formatName: "raw",
			expected:   "raw",
		},
		{
			name:       "DefaultToRaw",
			formatName: "",
			expected:   "raw",
		},
		{
			name:        "UnknownFormatter",
			formatName:  "xml",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatter, err := New(tc.formatName, nil, logger)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, formatter)
			} else {
				require.NoError(t, err)
				require.NotNil(t, formatter)
				assert.Equal(t, tc.expected, formatter.Name())
			}
		})
	}
}

func TestRawFormatter(t *testing.T) {
	f, err := NewRawFormatter(newTestLogger())
	require.NoError(t, err)

	out, err := f.Format(core.Record{Message: "10.0.0.1:40000 : user.notice hello"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:40000 : user.notice hello\n", string(out))
}

func TestTextFormatter(t *testing.T) {
	logger := newTestLogger()

	rec := core.Record{
		Time:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:     "syslogd",
		RemoteAddr: "10.0.0.1:40000",
		Message:    "10.0.0.1:40000 : user.notice hello",
		Class:      core.ClassInformation,
	}

	t.Run("DefaultTemplate", func(t *testing.T) {
		f, err := NewTextFormatter(nil, logger)
		require.NoError(t, err)

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t,
			"2025-06-01T12:00:00Z [INFORMATION] syslogd 10.0.0.1:40000 : user.notice hello\n",
			string(out))
	})

	t.Run("CustomTemplate", func(t *testing.T) {
		f, err := NewTextFormatter(&config.TextFormatterOptions{
			Template: "{{.Class}}|{{.Message}}",
		}, logger)
		require.NoError(t, err)

		out, err := f.Format(rec)
		require.NoError(t, err)
		assert.Equal(t, "information|10.0.0.1:40000 : user.notice hello\n", string(out))
	})

	t.Run("InvalidTemplate", func(t *testing.T) {
		_, err := NewTextFormatter(&config.TextFormatterOptions{
			Template: "{{.Message",
		}, logger)
		assert.Error(t, err)
	})
}
