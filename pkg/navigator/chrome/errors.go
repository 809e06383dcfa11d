package chrome

import "errors"

var (
	// ErrStart is returned when the browser cannot be launched
	ErrStart = errors.New("failed to start chrome")

	// ErrNavigate is returned when the page cannot be loaded
	ErrNavigate = errors.New("failed to navigate")

	// ErrCapture is returned when navigator data cannot be read from the page
	ErrCapture = errors.New("failed to capture navigator snapshot")

	// ErrInject is returned when classes cannot be added to the page
	ErrInject = errors.New("failed to inject classes")
)
