// Package log implements the leveled logger used throughout ember.
package log

import (
	"fmt"
	"io"
	"os"
)

type LogLevel int

// The level of visibility of the log output.
// ERROR is the lowest level, VERBOSE is the highest and it increases in the
// order that it is written.
const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	VERBOSE
)

var levelNames = map[string]LogLevel{
	"error":   ERROR,
	"warn":    WARN,
	"info":    INFO,
	"debug":   DEBUG,
	"verbose": VERBOSE,
}

// FromName returns the log level with the given name, if any.
func FromName(name string) (LogLevel, bool) {
	level, ok := levelNames[name]
	return level, ok
}

// Logger writes formatted log entries to a log file and, optionally, to the
// console. All logging in ember goes through a Logger.
type Logger struct {
	level     LogLevel
	formatter Formatter
	logFile   *os.File
	logWriter io.Writer
}

// The process-wide logger used by the package-level functions. Assigned once
// at startup with SetDefault.
var defaultLogger *Logger

// NewLogger creates a Logger which writes to the file at filePath and to
// stdout. Passing filePath as a blank string makes the file output go to
// /dev/null.
func NewLogger(level LogLevel, filePath string) (Logger, error) {
	if filePath == "" {
		filePath = os.DevNull
	}
	logFile, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return Logger{}, fmt.Errorf("open log file: %w", err)
	}
	return Logger{
		level:     level,
		formatter: DefaultFormatter(),
		logFile:   logFile,
		logWriter: io.MultiWriter(logFile, os.Stdout),
	}, nil
}

// SetDefault assigns the logger used by the package-level functions.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// SetLevel sets the log visibility level of the Logger instance.
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

// Close closes the log file.
func (l *Logger) Close() {
	if l.logFile != nil {
		_ = l.logFile.Close()
	}
}

// write formats the message and flushes it to the log outputs.
func (l *Logger) write(level string, message string) {
	formatted, err := l.formatter.Format(level, message)
	if err != nil {
		fmt.Printf("Format failed: %s\n", err)
		return
	}
	if _, err = l.logWriter.Write([]byte(formatted)); err != nil {
		fmt.Printf("Failed to write logs: %s\n", err)
	}
}

// Error prints out the error message passed to the log outputs.
func (l *Logger) Error(message string, args ...any) {
	l.write("ERROR", fmt.Sprintf(message, args...))
}

// Warn prints out the warning message passed to the log outputs.
// It also checks if the log level allows for the log to be printed.
func (l *Logger) Warn(message string, args ...any) {
	if l.level < WARN {
		return
	}
	l.write("WARN", fmt.Sprintf(message, args...))
}

// Info prints out the information passed to the log outputs.
// It also checks if the log level allows for the log to be printed.
func (l *Logger) Info(message string, args ...any) {
	if l.level < INFO {
		return
	}
	l.write("INFO", fmt.Sprintf(message, args...))
}

// Debug prints out the debug message passed to the log outputs.
// It also checks if the log level allows for the log to be printed.
func (l *Logger) Debug(message string, args ...any) {
	if l.level < DEBUG {
		return
	}
	l.write("DEBUG", fmt.Sprintf(message, args...))
}

// Verbose prints out the message passed to the log outputs.
// It also checks if the log level allows for the log to be printed.
func (l *Logger) Verbose(message string, args ...any) {
	if l.level < VERBOSE {
		return
	}
	l.write("VERBOSE", fmt.Sprintf(message, args...))
}

// Error writes through the default logger.
func Error(message string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(message, args...)
	}
}

// Warn writes through the default logger.
func Warn(message string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(message, args...)
	}
}

// Info writes through the default logger.
func Info(message string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(message, args...)
	}
}

// Debug writes through the default logger.
func Debug(message string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(message, args...)
	}
}

// Verbose writes through the default logger.
func Verbose(message string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Verbose(message, args...)
	}
}
