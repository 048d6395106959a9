package services

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the HTTP layer can pick a status code.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnsupportedProvider
	KindNoModelsAvailable
	KindInvalidModel
	KindProviderUnavailable
	KindProviderRequestFailed
	KindOptimizationFailed
	KindTemplateNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindUnsupportedProvider:
		return "unsupported_provider"
	case KindNoModelsAvailable:
		return "no_models_available"
	case KindInvalidModel:
		return "invalid_model"
	case KindProviderUnavailable:
		return "provider_unavailable"
	case KindProviderRequestFailed:
		return "provider_request_failed"
	case KindOptimizationFailed:
		return "optimization_failed"
	case KindTemplateNotFound:
		return "template_not_found"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the optimizer pipeline.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// NewValidationError reports a malformed optimization request.
func NewValidationError(format string, args ...any) error {
	return newError(KindValidation, nil, format, args...)
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
