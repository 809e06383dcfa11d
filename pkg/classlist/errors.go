package classlist

import "errors"

var (
	// ErrInvalidToken is returned when a class is empty or contains whitespace
	ErrInvalidToken = errors.New("invalid class token")

	// ErrNoRootElement is returned when a document has no <html> element to annotate
	ErrNoRootElement = errors.New("document has no html element")

	// ErrRewrite is returned when an HTML document cannot be rewritten
	ErrRewrite = errors.New("failed to rewrite html document")
)
