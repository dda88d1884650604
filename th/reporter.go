package th

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Tags written at the start of every report line.
const (
	TagPass = "PASS"
	TagFail = "FAIL"
)

// Options configures a Reporter. Nil or zero fields take their defaults.
type Options struct {
	// Console receives every report line. Defaults to os.Stderr.
	Console io.Writer

	// Sink, if set, receives a copy of every report line.
	Sink Sink

	// Capacity bounds the length of a rendered message. Defaults to DefaultCapacity.
	Capacity int

	// Logger receives diagnostics. Defaults to a text handler on Console.
	Logger *slog.Logger

	// Fatal is called when a message does not fit in Capacity. Defaults to os.Exit(1).
	Fatal func(err error)
}

// Reporter writes one PASS or FAIL line per check to the console and, when
// configured, to a sink. It is safe for concurrent use: each line is written
// to both destinations under a single lock.
type Reporter struct {
	mu       sync.Mutex
	console  io.Writer
	sink     Sink
	capacity int
	logger   *slog.Logger
	fatal    func(err error)
}

// New creates a Reporter. opts may be nil.
func New(opts *Options) *Reporter {
	if opts == nil {
		opts = &Options{}
	}

	r := &Reporter{
		console:  opts.Console,
		sink:     opts.Sink,
		capacity: opts.Capacity,
		logger:   opts.Logger,
		fatal:    opts.Fatal,
	}

	if r.console == nil {
		r.console = os.Stderr
	}
	if r.capacity <= 0 {
		r.capacity = DefaultCapacity
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(r.console, nil))
	}
	if r.fatal == nil {
		r.fatal = func(error) { os.Exit(1) }
	}

	return r
}

// Capacity returns the message capacity of r.
func (r *Reporter) Capacity() int {
	return r.capacity
}

// Check renders format and args and reports the result of cond. It returns
// cond unchanged so results can be combined by the caller.
//
// Line breaks in the message are written as the two-character escapes \n and
// \r so every check stays on a single tagged line.
//
// If the rendered message does not fit in the capacity the fatal handler
// runs and nothing is reported.
func (r *Reporter) Check(cond bool, format string, args ...any) bool {
	return r.Report(cond, fmt.Sprintf(format, args...))
}

// Report is like Check for a message that is already rendered; % verbs in
// message are written as-is. Line breaks are escaped as in Check.
func (r *Reporter) Report(cond bool, message string) bool {
	if err := fits(message, r.capacity); err != nil {
		r.logger.Error("ran out of message buffer space", "error", err)
		r.fatal(err)
		return cond
	}

	message = lineBreaks.Replace(message)
	line := TagFail + ": " + message + "\n"
	if cond {
		line = TagPass + ": " + message + "\n"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// console failures have nowhere else to be reported
	_, _ = io.WriteString(r.console, line)

	if r.sink != nil {
		if _, err := io.WriteString(r.sink, line); err != nil {
			r.logger.Error("unable to write to results sink", "error", err)
		} else if err := r.sink.Flush(); err != nil {
			r.logger.Error("unable to flush results sink", "error", err)
		}
	}

	return cond
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`)

var std = New(nil)

// Default returns the process-wide Reporter used by the package-level functions.
func Default() *Reporter {
	return std
}

// Check reports cond on the default Reporter. See [Reporter.Check].
func Check(cond bool, format string, args ...any) bool {
	return std.Check(cond, format, args...)
}

// Report reports cond with a pre-rendered message on the default Reporter.
func Report(cond bool, message string) bool {
	return std.Report(cond, message)
}
