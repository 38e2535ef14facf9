// Package session coordinates visualization submissions for one interactive
// user.
//
// The user's form and its outcome live in an explicit [State] value that is
// passed to and returned from [Session.Submit]; there is no ambient mutable
// state outside the [Session].
//
// # Submission lifecycle
//
// Submit clears the previous result and error, marks the state busy, builds
// the payload, and calls the remote client. On completion exactly one of
// State.Visualization or State.Error is set and Busy is cleared. Failures are
// local: the session stays usable for the next submission.
//
// # Overlapping submissions
//
// A new submission cancels the one in flight (cancel-and-replace). The
// replaced call returns [ErrSuperseded] and its outcome is discarded, so a
// late completion can never overwrite a newer result.
//
// # Error messages
//
// Transport failures are normalized into user-visible text by
// [ErrorMessage]. An artifact whose format is not recognized is not an error;
// it renders as an "unsupported format" notice.
package session
