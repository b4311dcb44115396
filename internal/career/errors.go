package career

import "errors"

var (
	// ErrNoCredential means the service credential is missing or rejected.
	// Not retryable without user intervention.
	ErrNoCredential = errors.New("generation credential missing or invalid")

	// ErrNetwork is a transport failure or timeout. Retryable.
	ErrNetwork = errors.New("generation transport failure")

	// ErrQuotaExceeded is the upstream rate/quota signal. Retryable after
	// a pause, kept distinct from ErrNetwork so the UI can say so.
	ErrQuotaExceeded = errors.New("generation quota exhausted")

	// ErrMalformedResponse means no parseable JSON was found in the
	// response text. Retryable, generation is non-deterministic.
	ErrMalformedResponse = errors.New("no JSON value in response text")

	// ErrValidation means the parsed JSON lacks mandatory fields or has
	// the wrong fundamental shape. Retryable.
	ErrValidation = errors.New("response JSON failed validation")
)

// FailureKind is the user-facing classification of a pipeline failure.
type FailureKind string

const (
	FailConfiguration FailureKind = "configuration"
	FailNetwork       FailureKind = "network"
	FailQuota         FailureKind = "quota"
	FailMalformed     FailureKind = "malformed"
	FailValidation    FailureKind = "validation"
)

// Classify maps any pipeline error onto the failure taxonomy. Unrecognized
// errors are treated as transport failures, the retryable default.
func Classify(err error) FailureKind {
	switch {
	case errors.Is(err, ErrNoCredential):
		return FailConfiguration
	case errors.Is(err, ErrQuotaExceeded):
		return FailQuota
	case errors.Is(err, ErrMalformedResponse):
		return FailMalformed
	case errors.Is(err, ErrValidation):
		return FailValidation
	default:
		return FailNetwork
	}
}

// Retryable reports whether a failure kind can succeed on resubmission
// without the user first fixing their environment.
func (k FailureKind) Retryable() bool {
	return k != FailConfiguration
}
