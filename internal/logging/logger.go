package logging

// Leveled logging for IndustrialScanner-Lite

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// Logger provides leveled logging to stdout/stderr and an optional file
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a new logger. logFile may be empty for console-only output.
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(os.Stdout, "", 0),
		stderr: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and its file sink
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.write(fmt.Sprintf("ERROR: "+format, v...), true)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.write(fmt.Sprintf("INFO: "+format, v...), false)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.write(fmt.Sprintf("VERBOSE: "+format, v...), false)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.write(fmt.Sprintf("DEBUG: "+format, v...), false)
	}
}

// write writes a message to the appropriate outputs
func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	// Errors go to stderr, everything else to stdout.
	if isError {
		l.stderr.Println(msg)
	} else {
		l.stdout.Println(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// LogProbe logs the outcome of one Modbus probe
func (l *Logger) LogProbe(host string, port int, reachable bool, latencyMS float64, errCount int) {
	status := "UNREACHABLE"
	if reachable {
		status = "REACHABLE"
	}
	if errCount > 0 {
		l.Verbose("%s %s:%d (latency: %.2fms, errors: %d)", status, host, port, latencyMS, errCount)
	} else {
		l.Verbose("%s %s:%d (latency: %.2fms)", status, host, port, latencyMS)
	}
}

// LogCapture logs the outcome of one passive capture analysis
func (l *Logger) LogCapture(path string, total, matched, suspect int) {
	l.Info("Analyzed %s: %d packets, %d protocol packets, %d suspect", path, total, matched, suspect)
}

// LogScanStart logs the parameters of an active scan
func (l *Logger) LogScanStart(targets int, port int, unitID uint8, workers int) {
	l.Info("Starting Modbus read-only scan")
	l.Verbose("  Targets: %d", targets)
	l.Verbose("  Port: %d (unit %d)", port, unitID)
	l.Verbose("  Workers: %d", workers)
}
