package opponent

import "errors"

var (
	ErrUnknownTier = errors.New("unknown difficulty tier")
)
