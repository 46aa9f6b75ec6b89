package logger

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/xy-planning-network/rest"
)

// sentryFrames are the frames a SentryLogger adds between calling code and its TextLogger.
const sentryFrames = 2

// A SentryLogger logs through a SkipLogger and ships warnings and errors to Sentry.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger constructs a SentryLogger based off the provided TextLogger.
//
// If Sentry cannot be initialized, the error is logged and tl returns.
func NewSentryLogger(tl *TextLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  tl.env,
		IgnoreErrors: []string{"write: broken pipe", "context canceled"},
	})
	if err != nil {
		tl.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return tl
	}

	return &SentryLogger{l: tl.AddSkip(sentryFrames + tl.Skip())}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (sl *SentryLogger) AddSkip(i int) SkipLogger { return &SentryLogger{l: sl.l.AddSkip(i)} }

func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.report(LogLevelDebug, msg, ctx) }
func (sl *SentryLogger) Info(msg string, ctx *LogContext)  { sl.report(LogLevelInfo, msg, ctx) }
func (sl *SentryLogger) Warn(msg string, ctx *LogContext)  { sl.report(LogLevelWarn, msg, ctx) }
func (sl *SentryLogger) Error(msg string, ctx *LogContext) { sl.report(LogLevelError, msg, ctx) }

// Fatal writes a fatal log, sends it to Sentry and waits for Sentry to receive it.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.report(LogLevelFatal, msg, ctx)
	sentry.Flush(2 * time.Second)
}

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (sl *SentryLogger) Skip() int { return sl.l.Skip() }

// report logs msg at level, sending warnings and above to Sentry.
func (sl *SentryLogger) report(level LogLevel, msg string, ctx *LogContext) {
	if sl.l.LogLevel() > level {
		return
	}

	switch level {
	case LogLevelDebug:
		sl.l.Debug(msg, ctx)
	case LogLevelInfo:
		sl.l.Info(msg, ctx)
	case LogLevelWarn:
		sl.l.Warn(msg, ctx)
		sl.send(sentry.LevelWarning, msg, ctx)
	case LogLevelError:
		sl.l.Error(msg, ctx)
		sl.send(sentry.LevelError, msg, ctx)
	case LogLevelFatal:
		sl.l.Fatal(msg, ctx)
		sl.send(sentry.LevelFatal, msg, ctx)
	}
}

// send ships LogContext.Error to Sentry, tagged with the request ID
// and, for a *rest.Error, its kind and status code.
func (sl *SentryLogger) send(level sentry.Level, msg string, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		scope.SetExtra("message", msg)

		if ctx.Caller != "" {
			scope.SetTag("caller", ctx.Caller)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
		}

		if r := ctx.Request; r != nil {
			scope.SetRequest(r)
			if id, ok := r.Context().Value(rest.RequestIDKey).(string); ok {
				scope.SetTag("request_id", id)
			}
		}

		var re *rest.Error
		if errors.As(ctx.Error, &re) {
			scope.SetTag("kind", string(re.Kind))
			scope.SetTag("status", strconv.Itoa(re.StatusCode()))
		}

		sentry.CaptureException(ctx.Error)
	})
}
