package logger

import "log"

// A LoggerOptFn is a functional option configuring a TextLogger when constructing a new one.
type LoggerOptFn func(*TextLogger)

// WithEnv sets the environment TextLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *TextLogger) {
		l.env = env
	}
}

// WithLevel sets the log level TextLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *TextLogger) {
		if level != LogLevelUnk {
			l.ll = level
		}
	}
}

// WithLogger sets the log.Logger TextLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *TextLogger) {
		l.l = log
	}
}

// WithSentryDSN configures New to ship errors to the Sentry project identified by dsn.
func WithSentryDSN(dsn string) LoggerOptFn {
	return func(l *TextLogger) {
		l.sentryDSN = dsn
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *TextLogger) {
		l.skip = skip
	}
}
