package rest

import (
	"fmt"
	"strings"
)

var _ Enumerable = Handling(0)

// A Handling controls how a resource responds to a family of media types.
//
// The zero value is not a valid Handling;
// configuration leaving it unset falls back to a default through [Handling.Or].
type Handling int

const (
	// Enabled serves the media types.
	Enabled Handling = iota + 1

	// Disabled drops the media types from negotiation altogether.
	Disabled

	// Deferred matches the media types but hands the request to the next matching route.
	Deferred
)

// ParseHandling converts the text form of a Handling: "true", "false" or "route".
func ParseHandling(s string) (Handling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "enabled":
		return Enabled, nil
	case "false", "disabled":
		return Disabled, nil
	case "route", "deferred":
		return Deferred, nil
	default:
		return 0, fmt.Errorf("%w: handling %q", ErrNotValid, s)
	}
}

// Or returns h, or def if h is not a valid Handling.
func (h Handling) Or(def Handling) Handling {
	if h.Valid() != nil {
		return def
	}

	return h
}

func (h Handling) String() string {
	switch h {
	case Enabled:
		return "true"
	case Disabled:
		return "false"
	case Deferred:
		return "route"
	default:
		return "unknown"
	}
}

func (h Handling) Valid() error {
	switch h {
	case Enabled, Disabled, Deferred:
		return nil
	default:
		return fmt.Errorf("%w: handling %d", ErrNotValid, h)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (h Handling) MarshalText() ([]byte, error) {
	if err := h.Valid(); err != nil {
		return nil, err
	}

	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Handling) UnmarshalText(b []byte) error {
	parsed, err := ParseHandling(string(b))
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}
