package navigator

import "errors"

var (
	// ErrMalformedSnapshot is returned when a snapshot payload cannot be decoded
	ErrMalformedSnapshot = errors.New("malformed navigator snapshot")

	// ErrInvalidSnapshot is returned when a decoded snapshot fails validation
	ErrInvalidSnapshot = errors.New("invalid navigator snapshot")

	// ErrSnapshotFile is returned when a snapshot file cannot be loaded
	ErrSnapshotFile = errors.New("failed to load navigator snapshot file")
)
