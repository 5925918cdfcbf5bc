package errx

import (
	"errors"
	"fmt"
)

const (
	// GatewayErrorMessage describes language-model call failures.
	GatewayErrorMessage = "language model request failed"
	// ExtractionErrorMessage describes parameter extraction failures.
	ExtractionErrorMessage = "could not extract search parameters"
	// SearchErrorMessage describes external search API failures.
	SearchErrorMessage = "travel search request failed"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
)

// Kind classifies a failure at a component boundary of the assistant.
type Kind int

const (
	KindUnknown Kind = iota
	// KindGateway: the language-model backend failed (network, auth, quota).
	KindGateway
	// KindExtraction: model output did not parse into the expected schema.
	KindExtraction
	// KindSearch: an external flight/hotel search call failed or returned
	// an unusable shape.
	KindSearch
	// KindStore: transcript storage failed.
	KindStore
)

// AppError wraps an underlying error with a failure kind and safe message.
type AppError struct {
	Err     error
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, kind Kind, message string) *AppError {
	return &AppError{
		Err:     err,
		Kind:    kind,
		Message: message,
	}
}

// IsKind reports whether err carries the given failure kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}

// WrapGateway marks a language-model call failure.
func WrapGateway(err error) error {
	if err == nil {
		return nil
	}
	return New(err, KindGateway, GatewayErrorMessage)
}

// WrapExtraction marks a parameter extraction failure.
func WrapExtraction(err error) error {
	if err == nil {
		return nil
	}
	return New(err, KindExtraction, ExtractionErrorMessage)
}

// WrapSearch marks an external search API failure.
func WrapSearch(err error) error {
	if err == nil {
		return nil
	}
	return New(err, KindSearch, SearchErrorMessage)
}
