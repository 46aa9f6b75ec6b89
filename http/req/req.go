package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"

	"github.com/xy-planning-network/rest"
)

// Parser decodes request bodies and query strings into structs and validates them.
// A Parser is safe for concurrent use.
type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// ParseBody decodes the JSON in body into structPtr and validates the result.
// A nil or empty body validates the zero value.
// Malformed JSON is rest.ErrBadFormat; failed rules are ValidationErrors.
//
// body is consumed.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	if err := checkStructPtr(structPtr); err != nil {
		return err
	}

	if body != nil {
		if err := json.NewDecoder(body).Decode(structPtr); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("rest/http/req: %w: request body: %s", rest.ErrBadFormat, err)
		}
	}

	return p.check(structPtr)
}

// ParseQueryParams decodes params into structPtr by its "schema" tags and validates the result.
// Values that do not convert are ValidationErrors alongside any failed rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := checkStructPtr(structPtr); err != nil {
		return err
	}

	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("rest/http/req: query params: %w", err)
	}

	return p.check(structPtr)
}

func (p *Parser) check(structPtr any) error {
	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("rest/http/req: %T: %w", structPtr, err)
	}

	return nil
}

func checkStructPtr(structPtr any) error {
	v := reflect.ValueOf(structPtr)
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		return nil
	}

	return fmt.Errorf("rest/http/req: %w: want pointer to struct, got %T", rest.ErrBadAny, structPtr)
}
