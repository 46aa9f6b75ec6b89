package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/xy-planning-network/rest"
)

const callerTmpl = "%s:%d"

var (
	_ encoding.TextMarshaler = LogContext{}
	_ fmt.Stringer           = LogContext{}
)

// LogContext carries what a log line needs beyond its message.
type LogContext struct {
	Caller  string // replaces the computed file:line; never part of the text
	Data    map[string]any
	Error   error
	Request *http.Request
}

// MarshalText encodes the set fields as JSON.
// The request appears as its method, URL, Accept header and request ID.
// Data that encoding/json rejects is an error.
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := map[string]any{
			"method": lc.Request.Method,
			"url":    lc.Request.URL.String(),
		}

		if accept := lc.Request.Header.Get("Accept"); accept != "" {
			r["accept"] = accept
		}

		if id := lc.Request.Context().Value(rest.RequestIDKey); id != nil {
			r["id"] = id
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String is MarshalText, or a JSON object naming the encoding error.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf("{\"error\":%q}", err)
	}

	return string(b)
}

// CurrentCaller reports the call site of the function calling CurrentCaller,
// ready for LogContext.Caller.
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return callerString(file, line)
}

func callerString(file string, line int) string {
	return fmt.Sprintf(callerTmpl, shortPath(file), line)
}

func (lc *LogContext) caller() string {
	if lc == nil {
		return ""
	}

	return lc.Caller
}
