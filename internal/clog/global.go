package clog

import (
	"io"
)

// std is the global logger instance used by package-level functions.
var std = NewLogger()

// Configure sets up the global logger. An empty logPath disables file
// logging. Debug mode lowers both outputs to LevelDebug.
func Configure(level Level, logPath string, debug bool) error {
	errLevel := LevelWarn
	if debug {
		level = LevelDebug
		errLevel = LevelDebug
	}
	std.SetLevel(level)
	std.SetErrLevel(errLevel)

	if logPath == "" {
		return nil
	}
	f, err := OpenLogFile(logPath)
	if err != nil {
		return err
	}
	std.SetFileOutput(f)
	return nil
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Close closes the file writer if it implements io.Closer.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if closer, ok := std.fileWriter.(io.Closer); ok {
		std.fileWriter = nil
		return closer.Close()
	}
	return nil
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Caller should restore the previous logger after the test.
func ReplaceGlobal(l *Logger) *Logger {
	old := std
	std = l
	return old
}

// Reset restores the default global logger.
func Reset() {
	std = NewLogger()
}
