package pathing

import "errors"

var (
	ErrPathUnresolved = errors.New("no clear path from current position")
)
