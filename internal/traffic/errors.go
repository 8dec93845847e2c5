package traffic

import "errors"

var (
	ErrUnknownDensity = errors.New("unknown traffic density")
)
