package log

import (
	"fmt"
	"io"
	"os"

	"github.com/gur-shatz/hashburger/internal/color"
)

// Logger is an instance-based logger with its own prefix and verbosity.
// Everything goes to one writer (stderr by default) so that stdout only
// carries hashburgers.
type Logger struct {
	prefix  string
	verbose bool
	out     io.Writer
}

// New creates a new Logger writing to stderr.
func New(prefix string, verbose bool) *Logger {
	return &Logger{prefix: prefix, verbose: verbose, out: os.Stderr}
}

// WithOutput returns a copy of the logger writing to w.
func (this *Logger) WithOutput(w io.Writer) *Logger {
	return &Logger{prefix: this.prefix, verbose: this.verbose, out: w}
}

func (this *Logger) println(s string) {
	fmt.Fprintln(this.out, s)
}

// Error prints a red error message.
func (this *Logger) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	this.println(this.prefix + " " + color.Red("Error:") + " " + msg)
}

// Warn prints a yellow warning message.
func (this *Logger) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	this.println(this.prefix + " " + color.Yellow(msg))
}

// Success prints a green success message.
func (this *Logger) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	this.println(this.prefix + " " + color.Green(msg))
}

// Status prints a bold status message.
func (this *Logger) Status(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	this.println(color.Bold(this.prefix + " " + msg))
}

// Verbose prints a dim message, only if verbose mode is enabled.
func (this *Logger) Verbose(format string, args ...any) {
	if !this.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	this.println(color.Dim(this.prefix + " " + msg))
}

// --- Global convenience functions ---

var defaultLogger = New("[hburger]", false)

// Init sets the verbosity of the global logger and detects color support.
func Init(v bool) {
	defaultLogger.verbose = v
	color.Init()
}

// Default returns the global logger.
func Default() *Logger { return defaultLogger }

func Error(format string, args ...any)   { defaultLogger.Error(format, args...) }
func Warn(format string, args ...any)    { defaultLogger.Warn(format, args...) }
func Success(format string, args ...any) { defaultLogger.Success(format, args...) }
func Status(format string, args ...any)  { defaultLogger.Status(format, args...) }
func Verbose(format string, args ...any) { defaultLogger.Verbose(format, args...) }
