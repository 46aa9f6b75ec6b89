package ranger

import (
	"fmt"

	"github.com/xy-planning-network/rest"
)

var ErrBadConfig = fmt.Errorf("ranger: %w", rest.ErrBadConfig)
