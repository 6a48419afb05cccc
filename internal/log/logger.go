package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger writes warnings and errors to the console, debug and info lines to
// the console only in debug mode, and everything to the optional log file.
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	logJSON bool
	debug   bool
}

// New creates a logger. An empty logFilePath disables the log file.
func New(console io.Writer, logFilePath string, logJSON, debug bool) (*Logger, error) {
	l := &Logger{
		console: console,
		logJSON: logJSON,
		debug:   debug,
	}
	if l.console == nil {
		l.console = os.Stdout
	}
	if logFilePath == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.file = file

	return l, nil
}

// NewConsole creates a logger without a log file.
func NewConsole(console io.Writer, debug bool) *Logger {
	l, _ := New(console, "", false, debug)
	return l
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) DebugEnabled() bool {
	return l.debug
}

type LogEntry struct {
	Timestamp time.Time            `json:"timestamp"`
	Level     string               `json:"level"`
	Message   string               `json:"message"`
	Source    string               `json:"source,omitempty"`
	Dest      string               `json:"dest,omitempty"`
	Action    types.TransferAction `json:"action,omitempty"`
	Error     string               `json:"error,omitempty"`
}

func (l *Logger) LogResult(result types.TransferResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     LevelInfo,
		Message:   fmt.Sprintf("%s: %s -> %s", result.Action, result.Source, result.DestPath),
		Source:    result.Source,
		Dest:      result.DestPath,
		Action:    result.Action,
	}

	if result.Error != "" {
		entry.Level = LevelError
		entry.Error = result.Error
	}

	l.writeEntry(entry)
}

func (l *Logger) Debug(msg string) {
	l.log(LevelDebug, msg, nil)
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug && l.file == nil {
		return
	}
	l.log(LevelDebug, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Info(msg string) {
	l.log(LevelInfo, msg, nil)
}

func (l *Logger) Warn(msg string) {
	l.log(LevelWarn, msg, nil)
}

func (l *Logger) Error(msg string, err error) {
	l.log(LevelError, msg, err)
}

func (l *Logger) log(level, msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.writeEntry(entry)
}

func (l *Logger) writeEntry(entry LogEntry) {
	l.writeConsole(entry)

	if l.file == nil {
		return
	}

	if l.logJSON {
		data, _ := json.Marshal(entry)
		l.file.Write(data)
		l.file.Write([]byte("\n"))
		return
	}

	line := fmt.Sprintf("[%s] %s %s\n",
		entry.Timestamp.Format("2006-01-02 15:04:05"),
		entry.Level,
		entry.Message,
	)
	if entry.Error != "" {
		line = fmt.Sprintf("[%s] %s %s - Error: %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Level,
			entry.Message,
			entry.Error,
		)
	}
	l.file.WriteString(line)
}

func (l *Logger) writeConsole(entry LogEntry) {
	switch entry.Level {
	case LevelWarn:
		fmt.Fprintf(l.console, "Warning: %s\n", entry.Message)
	case LevelError:
		if entry.Error != "" {
			fmt.Fprintf(l.console, "Error: %s: %s\n", entry.Message, entry.Error)
		} else {
			fmt.Fprintf(l.console, "Error: %s\n", entry.Message)
		}
	default:
		if l.debug {
			fmt.Fprintf(l.console, "> %s\n", entry.Message)
		}
	}
}

// Mark prints the single-character progress indicator for kind.
func (l *Logger) Mark(kind types.MediaKind) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch kind {
	case types.MediaKindImage:
		fmt.Fprint(l.console, ".")
	case types.MediaKindVideo:
		fmt.Fprint(l.console, "+")
	}
}

// EndMarks terminates the progress line.
func (l *Logger) EndMarks() {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
}

func (l *Logger) Summary(summary types.RunSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, "=== ShutterStamp Summary ===")
	fmt.Fprintf(l.console, "Total files:    %d\n", summary.TotalFiles)
	fmt.Fprintf(l.console, "Images:         %d (resized %d, copied %d)\n", summary.Images, summary.Resized, summary.Fallback)
	fmt.Fprintf(l.console, "Videos:         %d\n", summary.Videos)
	fmt.Fprintf(l.console, "Missing:        %d\n", summary.Missing)
	fmt.Fprintf(l.console, "Unrecognized:   %d\n", summary.Unrecognized)
	fmt.Fprintf(l.console, "Skipped:        %d\n", summary.Skipped)
	fmt.Fprintf(l.console, "Failed:         %d\n", summary.Failed)
	if summary.Stopped {
		fmt.Fprintln(l.console, "Stopped early:  yes")
	}
	fmt.Fprintf(l.console, "Duration:       %s\n", summary.Duration.Round(time.Millisecond))
	if summary.BytesCopied > 0 {
		fmt.Fprintf(l.console, "Bytes copied:   %.2f MB\n", float64(summary.BytesCopied)/1024/1024)
	}
	fmt.Fprintln(l.console, "============================")
}
