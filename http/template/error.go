package template

import "errors"

var (
	ErrNoFiles = errors.New("no files provided")
	ErrParse   = errors.New("cannot parse templates")
)
