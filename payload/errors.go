package payload

import "errors"

// Sentinel errors for request validation.
var (
	// ErrUnsupportedLanguage indicates a language outside the enumerated set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrUnsupportedOutputMode indicates an output mode outside the enumerated set.
	ErrUnsupportedOutputMode = errors.New("unsupported output mode")
)
