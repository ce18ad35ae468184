package llm

import "errors"

// Typed upstream failures. The chat service maps these onto HTTP statuses
// (429 and 402); anything else is a generic upstream failure. No retries are
// made at this layer.
var (
	ErrRateLimited    = errors.New("completion API rate limited")
	ErrQuotaExhausted = errors.New("completion API quota exhausted")
)
