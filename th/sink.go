package th

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// EnvResultsFile names the environment variable read by InitFromEnvironment.
const EnvResultsFile = "TH_RESULTS_FILE"

//go:generate go tool mockgen -source=sink.go -destination=mock_sink_test.go -package=th

// Sink is a secondary destination for report lines. Flush is called after
// every line.
type Sink interface {
	io.Writer
	Flush() error
}

// FileSink is a Sink backed by a results file.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// OpenFileSink creates or truncates the file at path.
func OpenFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening results file %q: %w", path, err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *FileSink) Flush() error {
	return s.w.Flush()
}

// Close flushes any buffered lines and closes the file.
func (s *FileSink) Close() error {
	flushErr := s.w.Flush()
	if err := s.f.Close(); err != nil {
		return err
	}
	return flushErr
}

// Name returns the path the sink was opened with.
func (s *FileSink) Name() string {
	return s.f.Name()
}

// SetSink replaces the sink of r. A nil sink disables mirroring. The
// previous sink is returned and left open.
func (r *Reporter) SetSink(sink Sink) Sink {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.sink
	r.sink = sink
	return prev
}

// Sink returns the current sink of r, or nil.
func (r *Reporter) Sink() Sink {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sink
}

// SetResultsFile opens path for writing, truncating it, and mirrors every
// subsequent report line into it. An empty path leaves r unchanged and
// returns true. If the file cannot be opened a diagnostic is logged, r is
// left unchanged and false is returned.
func (r *Reporter) SetResultsFile(path string) bool {
	if path == "" {
		return true
	}

	sink, err := OpenFileSink(path)
	if err != nil {
		r.logger.Error("unable to open results file for writing", "path", path, "error", err)
		return false
	}

	if prev, ok := r.SetSink(sink).(*FileSink); ok {
		if err := prev.Close(); err != nil {
			r.logger.Warn("unable to close previous results file", "path", prev.Name(), "error", err)
		}
	}
	r.logger.Debug("writing results to file", "path", path)
	return true
}

// InitFromEnvironment configures the results file from the TH_RESULTS_FILE
// environment variable. Call it once near the start of the test program. A
// failure is logged and reported as false; console reporting is unaffected.
func (r *Reporter) InitFromEnvironment() bool {
	return r.SetResultsFile(os.Getenv(EnvResultsFile))
}

// Close detaches the sink from r, flushing it and closing it if it
// implements io.Closer. r keeps reporting to the console.
func (r *Reporter) Close() error {
	sink := r.SetSink(nil)
	if sink == nil {
		return nil
	}
	if c, ok := sink.(io.Closer); ok {
		return c.Close()
	}
	return sink.Flush()
}

// SetResultsFile configures the results file of the default Reporter.
func SetResultsFile(path string) bool {
	return std.SetResultsFile(path)
}

// SetSink replaces the sink of the default Reporter.
func SetSink(sink Sink) Sink {
	return std.SetSink(sink)
}

// InitFromEnvironment configures the default Reporter from TH_RESULTS_FILE.
func InitFromEnvironment() bool {
	return std.InitFromEnvironment()
}

// Close detaches and closes the sink of the default Reporter.
func Close() error {
	return std.Close()
}
