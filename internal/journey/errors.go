package journey

import (
	"errors"
	"fmt"
)

// Kind classifies why a generation attempt failed.
type Kind int

const (
	// KindService is a transport, auth or model failure (*generation.ServiceError).
	KindService Kind = iota
	// KindMalformed means the response text was not JSON.
	KindMalformed
	// KindShape means the JSON lacked a required field or had the wrong type.
	KindShape
	// KindRequest means the request could not be built.
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindMalformed:
		return "malformed"
	case KindShape:
		return "shape"
	case KindRequest:
		return "request"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText lets Kind appear as its name in JSON bodies.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// GenerationError is the only error Generate returns.
type GenerationError struct {
	Kind Kind
	Err  error
}

const generationFailed = "Failed to generate personalized journey"

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return generationFailed
	}
	return generationFailed + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of a GenerationError anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}

// ShapeError names the first JSON path that broke the response schema.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing required field %s", e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func fail(kind Kind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}
