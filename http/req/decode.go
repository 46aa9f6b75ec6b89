package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/rest"
)

type queryParamDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

// decode fills structPtr from params; unknown keys are ignored.
func (d queryParamDecoder) decode(structPtr any, params url.Values) error {
	if err := d.dec.Decode(structPtr, params); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError sorts *schema.Decoder failures.
// Values that do not fit their field are ValidationErrors the client can fix;
// a missing converter or "required" schema tag is a programming error.
func translateDecoderError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fmt.Errorf("%w: %s", rest.ErrBadFormat, err)
	}

	var errs ValidationErrors
	for _, e := range multi {
		switch e := e.(type) {
		case schema.ConversionError:
			// Index is -1 outside slices.
			errs = append(errs, ValidationError{
				Field: e.Key,
				Got:   fmt.Sprintf("bad value at index %d", max(0, e.Index)),
				Rule:  "must be " + e.Type.String(),
			})

		case schema.UnknownKeyError:
			errs = append(errs, ValidationError{Field: e.Key, Got: "value is set", Rule: "unexpected key should not be set"})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: mark required query params with a "validate" tag`, rest.ErrNotImplemented)

		default:
			// Unregistered converters only surface once a value arrives for the field.
			if strings.Contains(e.Error(), "converter not found for") {
				return fmt.Errorf("%w: no converter for %s", rest.ErrNotImplemented, e)
			}

			return fmt.Errorf("%w: %s", rest.ErrUnexpected, e)
		}
	}

	return errs
}
