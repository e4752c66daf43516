package app

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the component-tagged logger shared by every package.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Warnf(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one timestamped line per entry. It is safe for
// concurrent use; the preview server logs from request goroutines.
type FileLogger struct {
	mu *sync.Mutex
	w  io.Writer
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{mu: &sync.Mutex{}, w: w} }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Warnf(component string, format string, args ...interface{}) {
	l.write("WARN", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	writeLog(l.w, level, component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// ConsoleLogger prints warnings and errors without timestamps, plus info
// lines when Verbose is set. It is what the CLI shows on stderr.
type ConsoleLogger struct {
	W       io.Writer
	Verbose bool
}

func (l ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	if l.Verbose {
		fmt.Fprintf(l.W, "%s: %s\n", component, fmt.Sprintf(format, args...))
	}
}

func (l ConsoleLogger) Warnf(component string, format string, args ...interface{}) {
	fmt.Fprintf(l.W, "warning: %s: %s\n", component, fmt.Sprintf(format, args...))
}

func (l ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	fmt.Fprintf(l.W, "error: %s: %s\n", component, fmt.Sprintf(format, args...))
}

// MultiLogger fans every entry out to each logger.
type MultiLogger []Logger

func (m MultiLogger) Infof(component string, format string, args ...interface{}) {
	for _, l := range m {
		l.Infof(component, format, args...)
	}
}

func (m MultiLogger) Warnf(component string, format string, args ...interface{}) {
	for _, l := range m {
		l.Warnf(component, format, args...)
	}
}

func (m MultiLogger) Errorf(component string, format string, args ...interface{}) {
	for _, l := range m {
		l.Errorf(component, format, args...)
	}
}
