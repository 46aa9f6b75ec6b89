package resp

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/rest"
)

var (
	ErrBadConfig   = fmt.Errorf("resp: %w", rest.ErrBadConfig)
	ErrDone        = errors.New("resp: request ctx done")
	ErrInvalid     = fmt.Errorf("resp: %w", rest.ErrNotValid)
	ErrMissingData = fmt.Errorf("resp: %w", rest.ErrMissingData)
)
