package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	setWriters(ERROR, nullWriter, nullWriter)
	currentLevel = ERROR
}

// IsLogLevel tells if messages of the given level are written. Use it to
// skip building expensive trace messages.
func IsLogLevel(logLevel LogLevel) bool {
	return logLevel <= currentLevel
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	setWriters(logLevel, os.Stderr, os.Stdout)
}

// InitializeWithWriter sends every enabled level to the same writer.
func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	setWriters(logLevel, writer, writer)
}

func setWriters(logLevel LogLevel, errorOut io.Writer, out io.Writer) {
	var errorWriter io.Writer = nullWriter
	var warnWriter io.Writer = nullWriter
	var infoWriter io.Writer = nullWriter
	var debugWriter io.Writer = nullWriter
	var traceWriter io.Writer = nullWriter
	if logLevel >= ERROR {
		errorWriter = errorOut
	}
	if logLevel >= WARN {
		warnWriter = out
	}
	if logLevel >= INFO {
		infoWriter = out
	}
	if logLevel >= DEBUG {
		debugWriter = out
	}
	if logLevel >= TRACE {
		traceWriter = out
	}

	currentLevel = logLevel
	Error = log.New(errorWriter, "ERROR: ", logFlags)
	Warn = log.New(warnWriter, "WARN:  ", logFlags)
	Info = log.New(infoWriter, "INFO:  ", logFlags)
	Debug = log.New(debugWriter, "DEBUG: ", logFlags)
	Trace = log.New(traceWriter, "TRACE: ", logFlags)
}
