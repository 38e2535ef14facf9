package session

import (
	"errors"

	"github.com/jonwraymond/vizexec/remote"
)

// Sentinel errors.
var (
	// ErrConfiguration indicates an invalid or incomplete configuration.
	ErrConfiguration = errors.New("session: configuration error")

	// ErrSuperseded is returned by a submission that was replaced by a newer one
	// before it completed.
	ErrSuperseded = errors.New("submission superseded")
)

// User-visible messages.
const (
	MissingVisualizationMessage = "No visualization output returned by backend."
	GenericErrorMessage         = "Error generating visualization"
)

// ErrorMessage returns the user-visible message for a failed submission.
//
// A non-2xx response with a body uses the normalized body. A success without
// an artifact uses MissingVisualizationMessage. Everything else, including
// unreachable services and empty error bodies, uses GenericErrorMessage.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *remote.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	if errors.Is(err, remote.ErrMissingVisualization) {
		return MissingVisualizationMessage
	}
	return GenericErrorMessage
}
