// FILE: logbridge/src/internal/sink/eventlog_test.go
package sink

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logbridge/src/internal/core"
	"logbridge/src/internal/format"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

// fakeEventWriter records calls instead of touching a real backing store
type fakeEventWriter struct {
	mu           sync.Mutex
	ensureCalls  []string
	writes       []fakeWrite
	sourceValid  bool
	writeErr     error
}

type fakeWrite struct {
	source string
	text   string
	class  core.Class
}

func newFakeEventWriter() *fakeEventWriter {
	return &fakeEventWriter{sourceValid: true}
}

func (f *fakeEventWriter) EnsureSource(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureCalls = append(f.ensureCalls, name)
	return f.sourceValid
}

func (f *fakeEventWriter) Write(source, text string, class core.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, fakeWrite{source: source, text: text, class: class})
	return nil
}

func (f *fakeEventWriter) snapshot() ([]string, []fakeWrite) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ensureCalls...), append([]fakeWrite(nil), f.writes...)
}

func startTestSink(t *testing.T, writer EventWriter) *EventLogSink {
	t.Helper()
	formatter, err := format.NewRawFormatter(newTestLogger())
	require.NoError(t, err)

	s := NewEventLogSinkWriter(writer, 10, newTestLogger(), formatter)
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(s.Stop)
	return s
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestEventLogSink_RegistrationCheckedPerWrite(t *testing.T) {
	writer := newFakeEventWriter()
	s := startTestSink(t, writer)

	for i := 0; i < 3; i++ {
		s.Input() <- core.Record{
			Source:  "syslogd",
			Message: "10.0.0.1:1000 : user.notice hello",
			Class:   core.ClassInformation,
		}
	}

	waitFor(t, func() bool {
		_, writes := writer.snapshot()
		return len(writes) == 3
	})

	ensures, writes := writer.snapshot()
	// One EnsureSource call per write, never cached
	assert.Equal(t, []string{"syslogd", "syslogd", "syslogd"}, ensures)
	for _, w := range writes {
		assert.Equal(t, "syslogd", w.source)
		assert.Equal(t, "10.0.0.1:1000 : user.notice hello", w.text)
		assert.Equal(t, core.ClassInformation, w.class)
	}
}

func TestEventLogSink_UnavailableDropsSilently(t *testing.T) {
	writer := newFakeEventWriter()
	writer.writeErr = ErrSinkUnavailable
	s := startTestSink(t, writer)

	s.Input() <- core.Record{Source: "syslogd", Message: "msg", Class: core.ClassError}

	waitFor(t, func() bool { return s.GetStats().DroppedRecords == 1 })

	_, writes := writer.snapshot()
	assert.Empty(t, writes)
	assert.EqualValues(t, 1, s.GetStats().TotalProcessed)
}

func TestEventLogSink_InvalidSourceDropsSilently(t *testing.T) {
	writer := newFakeEventWriter()
	writer.sourceValid = false
	s := startTestSink(t, writer)

	s.Input() <- core.Record{Source: "syslogd", Message: "msg", Class: core.ClassWarning}

	waitFor(t, func() bool { return s.GetStats().DroppedRecords == 1 })

	_, writes := writer.snapshot()
	assert.Empty(t, writes)
}

func TestFileEventWriter_Registry(t *testing.T) {
	logger := newTestLogger()
	dir := t.TempDir()

	w := &fileEventWriter{
		category:     "application",
		registryPath: dir + "/events.sources.json",
		logger:       logger,
	}

	t.Run("RegistersNewSource", func(t *testing.T) {
		assert.True(t, w.EnsureSource("syslogd"))

		registry, err := w.loadRegistry()
		require.NoError(t, err)
		assert.Equal(t, "application", registry["syslogd"])
	})

	t.Run("IdempotentWhenCorrect", func(t *testing.T) {
		assert.True(t, w.EnsureSource("syslogd"))
		assert.True(t, w.EnsureSource("syslogd"))
	})

	t.Run("RecreatesUnderWrongCategory", func(t *testing.T) {
		// Corrupt the registration externally
		require.NoError(t, w.saveRegistry(map[string]string{"syslogd": "system"}))

		assert.True(t, w.EnsureSource("syslogd"))

		registry, err := w.loadRegistry()
		require.NoError(t, err)
		assert.Equal(t, "application", registry["syslogd"])
	})

	t.Run("CorruptRegistryRebuilt", func(t *testing.T) {
		require.NoError(t, os.WriteFile(w.registryPath, []byte("{not json"), 0o644))
		assert.True(t, w.EnsureSource("syslogd"))

		registry, err := w.loadRegistry()
		require.NoError(t, err)
		assert.Equal(t, "application", registry["syslogd"])
	})
}
