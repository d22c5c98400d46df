package trivia

import "errors"

// Sentinel errors classifying every failure the service can surface.
// Handlers map these onto the 404/422 envelope; anything wrapping
// ErrUnprocessable includes validation failures, deliberately disallowed
// operations, and store failures during a mutation (never leaked raw).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable entity")
)
