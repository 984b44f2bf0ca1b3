package speech

import "fmt"

type Kind string

const (
	Unintelligible     Kind = "unintelligible"
	ServiceUnavailable Kind = "service_unavailable"
	Unknown            Kind = "unknown"
)

// Error is the only error Transcribe returns. Its Error text is safe to show
// to the end user as is.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Unintelligible:
		return "Error: Could not understand audio"
	case ServiceUnavailable:
		return "Error: Speech recognition API unavailable"
	default:
		return fmt.Sprintf("Error: %s", e.Detail)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func unintelligible() *Error {
	return &Error{Kind: Unintelligible}
}

func unavailable(err error) *Error {
	return &Error{Kind: ServiceUnavailable, Err: err}
}

func unknown(err error) *Error {
	return &Error{Kind: Unknown, Detail: err.Error(), Err: err}
}
