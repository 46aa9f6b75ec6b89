package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/rest"
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return rest.ErrNotValid }

// toRestError translates a parsing failure into a *rest.Error clients can act on.
// Errors caused by calling code are returned as they are.
func toRestError(err error) error {
	var ve ValidationErrors
	switch {
	case errors.As(err, &ve):
		return &rest.Error{
			Message:        "Request failed validation.",
			Kind:           rest.KindValidation,
			Public:         true,
			HTTPStatusCode: http.StatusBadRequest,
			Details:        map[string]any{"errors": []ValidationError(ve)},
			Err:            err,
		}

	case errors.Is(err, rest.ErrBadFormat):
		return &rest.Error{
			Message:        "Request is malformed.",
			Kind:           rest.KindValidation,
			Public:         true,
			HTTPStatusCode: http.StatusBadRequest,
			Err:            err,
		}

	default:
		return err
	}
}
