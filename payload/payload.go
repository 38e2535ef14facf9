package payload

import "fmt"

// Request is the user's intent for a single submission.
type Request struct {
	// Language selects the backend runtime.
	Language Language `json:"language"`

	// OutputMode is the rendering hint written into the directive line.
	OutputMode OutputMode `json:"output_mode"`

	// Code is the user's source, submitted verbatim. May be empty.
	Code string `json:"code"`
}

// Final is the outbound request body sent to the remote service.
type Final struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Directive returns the mode-assignment line prepended to submitted code,
// without a trailing newline.
//
// The mode is not escaped. Only enumerated modes reach this function through
// [Build], none of which contain a quote.
func Directive(mode OutputMode) string {
	return "output_mode = '" + string(mode) + "'"
}

// Build validates the enumerated fields of req and derives the final payload.
//
// The returned code is the directive line, a newline, and req.Code unchanged.
// The language is passed through as-is.
func Build(req Request) (Final, error) {
	if !req.Language.Valid() {
		return Final{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}
	if !req.OutputMode.Valid() {
		return Final{}, fmt.Errorf("%w: %q", ErrUnsupportedOutputMode, req.OutputMode)
	}
	return Final{
		Language: string(req.Language),
		Code:     Directive(req.OutputMode) + "\n" + req.Code,
	}, nil
}
