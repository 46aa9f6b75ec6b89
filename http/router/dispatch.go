package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/xy-planning-network/rest"
)

type ctxKey struct{}

// state tracks how the Route currently handling a request finished.
type state struct {
	failed bool
	next   bool
	onErr  ErrorHandlerFunc
}

func withState(r *http.Request, st *state) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, st))
}

func stateFrom(r *http.Request) *state {
	st, _ := r.Context().Value(ctxKey{}).(*state)
	return st
}

// NextRoute declines handling the request in the current Route;
// the Router tries the next Route matching the request.
// Calling code must not write to w before or after calling NextRoute.
//
// Outside of a Router, NextRoute responds with http.StatusNotFound.
func NextRoute(w http.ResponseWriter, r *http.Request) {
	st := stateFrom(r)
	if st == nil {
		http.NotFound(w, r)
		return
	}

	st.next = true
}

// Fail forwards err to the Router's error handler.
// No other Route is tried and the remaining middlewares of the current Route must not be called.
//
// Only the first call to Fail for a request responds; later calls are dropped.
//
// Outside of a Router, DefaultErrorHandler responds.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	st := stateFrom(r)
	if st == nil {
		DefaultErrorHandler(w, r, err)
		return
	}

	if st.failed {
		return
	}

	st.failed = true
	st.onErr(w, r, err)
}

// DefaultErrorHandler responds with the status code carried by err.
// The message of a public *rest.Error is shown; otherwise only the status text is.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	code := rest.ErrorStatus(err)
	msg := http.StatusText(code)

	var re *rest.Error
	if errors.As(err, &re) && re.Public {
		msg = re.Error()
	}

	http.Error(w, msg, code)
}
