// Package payload turns a visualization request into the code string that is
// submitted to the remote execution service.
//
// A request pairs a [Language], an [OutputMode], and arbitrary user code. The
// output mode is communicated to the backend by prepending a single directive
// line to the code:
//
//	output_mode = 'interactive'
//	<user code, verbatim>
//
// [Build] performs this derivation. It never inspects, validates, or rewrites
// the user code; only the enumerated fields are checked.
//
// # Enumerations
//
// Languages are "python" and "R". Output modes are "static", "interactive",
// and "3d". [ParseLanguage] and [ParseOutputMode] accept any casing and return
// the canonical value, matching the backend's case-insensitive comparison.
package payload
