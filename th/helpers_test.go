package th

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

type testReporter struct {
	*Reporter
	console *bytes.Buffer
	log     *bytes.Buffer
	fatals  []error
}

func newTestReporter(t *testing.T) *testReporter {
	t.Helper()

	tr := &testReporter{
		console: &bytes.Buffer{},
		log:     &bytes.Buffer{},
	}
	tr.Reporter = New(&Options{
		Console: tr.console,
		Logger:  slog.New(slog.NewTextHandler(tr.log, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Fatal:   func(err error) { tr.fatals = append(tr.fatals, err) },
	})
	return tr
}

func (tr *testReporter) lines() []string {
	return splitLines(tr.console.String())
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// bufferSink is an in-memory Sink that counts flushes.
type bufferSink struct {
	bytes.Buffer
	flushes int
}

func (s *bufferSink) Flush() error {
	s.flushes++
	return nil
}
