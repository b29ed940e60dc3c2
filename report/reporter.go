package report

import (
	"fmt"
	"io"
	"sync"
)

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors, warnings and informational output (DEFAULT)
)

// ParseLogLevel converts the name of a log level to its enumerated value.  The
// returned boolean is false if the name is not recognized in which case the
// verbose level is returned.
func ParseLogLevel(name string) (int, bool) {
	switch name {
	case "silent":
		return LogLevelSilent, true
	case "error":
		return LogLevelError, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "verbose":
		return LogLevelVerbose, true
	}

	return LogLevelVerbose, false
}

// -----------------------------------------------------------------------------

// Reporter is the sink for all diagnostics produced while processing a
// source.  Reporters are created once per session: the parser, the generator
// and the driver of a session all share the same reporter.
type Reporter struct {
	// out is where all messages are written.
	out io.Writer

	// logLevel determines which messages are displayed.
	logLevel int

	// absPath is the absolute path to the source file used to display source
	// text below errors.  It is empty when the source is not a file.
	absPath string

	// reprPath is the path printed at the front of diagnostics.
	reprPath string

	errorCount, warnCount int

	// m synchronizes writes to out.
	m *sync.Mutex
}

// NewReporter creates a new reporter writing to out with the given log level.
func NewReporter(out io.Writer, logLevel int) *Reporter {
	return &Reporter{
		out:      out,
		logLevel: logLevel,
		m:        &sync.Mutex{},
	}
}

// SetSource sets the source that diagnostics refer to.  absPath may be empty
// if the source is not a file on disk (eg. standard input).
func (r *Reporter) SetSource(absPath, reprPath string) {
	r.m.Lock()
	defer r.m.Unlock()

	r.absPath = absPath
	r.reprPath = reprPath
}

// -----------------------------------------------------------------------------

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The error is always counted even if it is not displayed.
func (r *Reporter) ReportCompileError(cerr *LocalCompileError) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.displayCompileMessage("error", cerr.Span, cerr.Message)
	}
}

// ReportCompileWarning reports a compilation warning.
func (r *Reporter) ReportCompileWarning(span *TextSpan, message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warnCount++

	if r.logLevel > LogLevelError {
		r.displayCompileMessage("warning", span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func (r *Reporter) ReportStdError(err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.displayStdError(err)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// processing to stop immediately: missing files, invalid configuration, etc.
// It is the caller's responsibility to actually stop.
func (r *Reporter) ReportFatal(message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.displayFatal(fmt.Sprintf(message, args...))
	}
}

// ReportInfo reports an informational message with a tag.  These are only
// displayed at the verbose log level.
func (r *Reporter) ReportInfo(tag, message string) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		r.displayInfo(tag, message)
	}
}

// -----------------------------------------------------------------------------

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}

// WarningCount returns the number of warnings reported so far.
func (r *Reporter) WarningCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.warnCount
}

// AnyErrors returns whether or not any errors were reported.
func (r *Reporter) AnyErrors() bool {
	return r.ErrorCount() > 0
}
