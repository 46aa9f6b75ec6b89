package logger

import (
	"log"
	"os"
	"path"
	"runtime"

	"github.com/fatih/color"
)

const knownFrames = 2

// Logger writes messages at five severities, each with an optional *LogContext.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// SkipLogger is a Logger whose reported call site can be pushed further up the stack,
// so wrappers such as the resp package report their callers instead of themselves.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

// LogLevel orders severities; a Logger drops messages below its own level.
type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

var levelNames = [...]string{
	LogLevelUnk:   "UNK",
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
	LogLevelFatal: "FATAL",
}

var levelColors = map[LogLevel]func(string, ...any) string{
	LogLevelDebug: color.WhiteString,
	LogLevelInfo:  color.BlueString,
	LogLevelWarn:  color.YellowString,
	LogLevelError: color.RedString,
	LogLevelFatal: color.MagentaString,
}

// NewLogLevel matches val, case-sensitively, against the level names, e.g. "WARN".
// Anything else is LogLevelUnk.
func NewLogLevel(val string) LogLevel {
	for ll, name := range levelNames {
		if ll != int(LogLevelUnk) && name == val {
			return LogLevel(ll)
		}
	}

	return LogLevelUnk
}

// String brackets the level name, e.g. "[WARN]".
func (ll LogLevel) String() string {
	if ll < LogLevelUnk || int(ll) >= len(levelNames) {
		ll = LogLevelUnk
	}

	return "[" + levelNames[ll] + "]"
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Unknown values resolve to LogLevelInfo.
func (ll *LogLevel) UnmarshalText(b []byte) error {
	*ll = NewLogLevel(string(b))
	if *ll == LogLevelUnk {
		*ll = LogLevelInfo
	}

	return nil
}

// TextLogger implements Logger using log, colorizing each level.
type TextLogger struct {
	env       string
	l         *log.Logger
	ll        LogLevel
	sentryDSN string
	skip      int
}

// New builds a *TextLogger printing INFO and above to os.Stdout for DEVELOPMENT.
// With a DSN from WithSentryDSN, the *TextLogger is wrapped in a *SentryLogger.
func New(opts ...LoggerOptFn) Logger {
	l := &TextLogger{
		env: "DEVELOPMENT",
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.sentryDSN != "" {
		l.Info("reporting errors to sentry", nil)
		return NewSentryLogger(l, l.sentryDSN)
	}

	return l
}

// AddSkip returns a copy reporting the call site i frames further up.
func (l *TextLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

func (l *TextLogger) Debug(msg string, ctx *LogContext) { l.log(LogLevelDebug, msg, ctx) }
func (l *TextLogger) Error(msg string, ctx *LogContext) { l.log(LogLevelError, msg, ctx) }
func (l *TextLogger) Fatal(msg string, ctx *LogContext) { l.log(LogLevelFatal, msg, ctx) }
func (l *TextLogger) Info(msg string, ctx *LogContext) { l.log(LogLevelInfo, msg, ctx) }
func (l *TextLogger) Warn(msg string, ctx *LogContext) { l.log(LogLevelWarn, msg, ctx) }

func (l *TextLogger) LogLevel() LogLevel { return l.ll }

func (l *TextLogger) Skip() int { return l.skip }

// log prints "<level> <file:line> '<msg>'" in the level's color, followed by ctx when present.
// Messages below the configured level are dropped.
func (l *TextLogger) log(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	caller := ctx.caller()
	if caller == "" {
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		caller = callerString(file, line)
	}

	msg = levelColors[level]("%s %s '%s'", level, caller, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// shortPath keeps the last directory of file, e.g. /src/app/http/resp/resp.go becomes resp/resp.go.
func shortPath(file string) string {
	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
