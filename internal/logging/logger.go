// Package logging writes structured JSON logs for userdeck commands.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/userdeck/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a child logger that adds the given key-value pairs.
	With(args ...any) Logger
	// Shutdown closes the log file owned by this logger, if any.
	Shutdown() error
}

// jsonLogger redacts key-value pairs before handing them to clog.
type jsonLogger struct {
	out      *clog.Logger
	redactor *redactor
	file     *os.File
	path     string
}

// Init returns a file-backed Logger for cfg, or a discarding one when
// logging is disabled. Old log files are pruned before the new one is
// created.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return discard{}, nil
	}
	f, err := openLogFile(cfg)
	if err != nil {
		return nil, err
	}
	l := newJSONLogger(f, cfg)
	l.file = f
	l.path = f.Name()
	return l, nil
}

// New returns a logger that writes JSON entries to w. Shutdown does not
// close w.
func New(w io.Writer, level string) Logger {
	cfg := DefaultConfig()
	cfg.Level = level
	return newJSONLogger(w, cfg)
}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return discard{}
}

func newJSONLogger(w io.Writer, cfg Config) *jsonLogger {
	out := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	return &jsonLogger{
		out:      out.With("pid", cfg.PID, "command", cfg.Command),
		redactor: newRedactor(),
	}
}

// parseLevel accepts clog level names plus "warning". Anything else is info.
func parseLevel(level string) clog.Level {
	if strings.EqualFold(level, "warning") {
		return clog.WarnLevel
	}
	parsed, err := clog.ParseLevel(level)
	if err != nil || parsed == clog.FatalLevel {
		return clog.InfoLevel
	}
	return parsed
}

func (l *jsonLogger) Debug(msg string, args ...any) { l.log(clog.DebugLevel, msg, args) }
func (l *jsonLogger) Info(msg string, args ...any)  { l.log(clog.InfoLevel, msg, args) }
func (l *jsonLogger) Warn(msg string, args ...any)  { l.log(clog.WarnLevel, msg, args) }
func (l *jsonLogger) Error(msg string, args ...any) { l.log(clog.ErrorLevel, msg, args) }

func (l *jsonLogger) log(level clog.Level, msg string, args []any) {
	l.out.Log(level, msg, l.redactor.redact(args)...)
}

// With shares the parent's output. The child does not own the file.
func (l *jsonLogger) With(args ...any) Logger {
	return &jsonLogger{
		out:      l.out.With(l.redactor.redact(args)...),
		redactor: l.redactor,
		path:     l.path,
	}
}

func (l *jsonLogger) Shutdown() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (d discard) With(...any) Logger { return d }
func (discard) Shutdown() error      { return nil }

var (
	globalMu sync.RWMutex
	global   Logger = discard{}
)

// InitGlobal builds the process logger from the loaded configuration and
// mirrors console output into it. A previous process logger is shut down.
func InitGlobal() error {
	l, err := Init(FromGlobalConfig())
	if err != nil {
		return err
	}

	globalMu.Lock()
	prev := global
	global = l
	globalMu.Unlock()
	_ = prev.Shutdown()

	colors.SetLogger(l)
	if path := CurrentLogFile(); path != "" {
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// GetGlobal returns the process logger.
func GetGlobal() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Debug logs to the process logger.
func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }

// Info logs to the process logger.
func Info(msg string, args ...any) { GetGlobal().Info(msg, args...) }

// Warn logs to the process logger.
func Warn(msg string, args ...any) { GetGlobal().Warn(msg, args...) }

// Error logs to the process logger.
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With returns a child of the process logger.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal closes the process logger and stops mirroring console
// output. Later calls log nowhere until InitGlobal runs again.
func ShutdownGlobal() error {
	globalMu.Lock()
	prev := global
	global = discard{}
	globalMu.Unlock()

	colors.SetLogger(nil)
	return prev.Shutdown()
}

// CurrentLogFile returns the path of the process log file, or "" when file
// logging is off.
func CurrentLogFile() string {
	if l, ok := GetGlobal().(*jsonLogger); ok {
		return l.path
	}
	return ""
}
