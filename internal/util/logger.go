package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents logging severity levels.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Logger provides structured logging with levels.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	logger   *log.Logger
	file     *os.File
	filePath string
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// GetLogger returns the default logger instance.
func GetLogger() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewLogger(LevelInfo, "", os.Stderr)
	}
	return defaultLogger
}

// NewLogger creates a logger writing to console (may be nil) and, when
// filePath is set, appending to that file.
func NewLogger(level LogLevel, filePath string, console io.Writer) *Logger {
	l := &Logger{
		level:    level,
		filePath: filePath,
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	if filePath != "" {
		if err := EnsureDir(filepath.Dir(filePath)); err == nil {
			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				l.file = file
				writers = append(writers, file)
			}
		}
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	l.logger = log.New(io.MultiWriter(writers...), "", 0)

	return l
}

// ParseLevel parses a string log level.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Close closes the log file if open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	levelName := levelNames[level]
	msg := fmt.Sprintf(format, args...)

	l.logger.Printf("[%s] %s: %s", timestamp, levelName, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

// Info logs an info message using the default logger.
func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}

// InitLogger replaces the default logger. The terminal dashboard passes a
// nil console so log lines never land on the alternate screen.
func InitLogger(level string, filePath string, console io.Writer) {
	l := NewLogger(ParseLevel(level), filePath, console)

	defaultMu.Lock()
	old := defaultLogger
	defaultLogger = l
	defaultMu.Unlock()

	if old != nil {
		old.Close()
	}
}
