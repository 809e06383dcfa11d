package detect

import "errors"

var (
	// ErrUnknownAxis is returned when a skip list names an axis that does not exist
	ErrUnknownAxis = errors.New("unknown detection axis")
)
