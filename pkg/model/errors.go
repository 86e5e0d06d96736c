package model

import "errors"

// Kind classifies an SDK failure. The set is closed: every error raised by the
// SDK carries exactly one of these values.
type Kind string

const (
	// KindConnectionFailed covers DNS failures, refused connections, and
	// WebSocket handshakes that do not complete.
	KindConnectionFailed Kind = "CONNECTION_FAILED"
	// KindTimeout is raised when a request or handshake exceeds the
	// configured timeout.
	KindTimeout Kind = "TIMEOUT"
	// KindNotFound maps a 404 response on endpoints without absent
	// semantics.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidEntry is raised when a response body is missing required
	// fields or carries mistyped ones.
	KindInvalidEntry Kind = "INVALID_ENTRY"
	// KindStorage maps 5xx responses from the node.
	KindStorage Kind = "STORAGE_ERROR"
	// KindNetwork covers transport failures and unclassified non-2xx
	// statuses.
	KindNetwork Kind = "NETWORK_ERROR"
	// KindAuth maps 401 and 403 responses.
	KindAuth Kind = "AUTH_ERROR"
)

// Error is the SDK error type: a kind from the closed taxonomy, a
// human-readable message, and an optional underlying cause for diagnostic
// chaining via errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewError constructs an *Error. cause may be nil.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is (or wraps) an SDK *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var aerr *Error
	return errors.As(err, &aerr) && aerr.Kind == kind
}
