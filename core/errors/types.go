// ABOUTME: Closed set of error types produced by the feed pipeline
// ABOUTME: Each type is mapped to a transport status only at the API boundary

package errors

import (
	"errors"
	"fmt"
)

// TokenError represents a failed credential exchange with the authorization server
type TokenError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *TokenError) Error() string {
	return fmt.Sprintf("token error: %s", e.Message)
}

// Unwrap returns the underlying upstream error
func (e *TokenError) Unwrap() error {
	return e.Err
}

// UnknownChannelError represents a handle that does not resolve to a platform user
type UnknownChannelError struct {
	Handle string
}

// Error implements the error interface
func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown channel: %s", e.Handle)
}

// UnauthorizedError represents an upstream rejection of the current access token
type UnauthorizedError struct {
	Operation string
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	if e.Operation == "" {
		return "unauthorized"
	}
	return fmt.Sprintf("unauthorized during %s", e.Operation)
}

// RequestError represents any other upstream communication or protocol failure
type RequestError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("request error during %s: %d - %s", e.Operation, e.StatusCode, msg)
	}
	return fmt.Sprintf("request error during %s: %s", e.Operation, msg)
}

// Unwrap returns the underlying transport error, if any
func (e *RequestError) Unwrap() error {
	return e.Err
}

// FeedBuildError represents a field value rejected while building or encoding a feed
type FeedBuildError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *FeedBuildError) Error() string {
	return fmt.Sprintf("feed build error on field '%s': %s", e.Field, e.Message)
}

// IsToken checks if an error is a TokenError
func IsToken(err error) bool {
	var tokenErr *TokenError
	return errors.As(err, &tokenErr)
}

// IsUnknownChannel checks if an error is an UnknownChannelError
func IsUnknownChannel(err error) bool {
	var unknownErr *UnknownChannelError
	return errors.As(err, &unknownErr)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var unauthorizedErr *UnauthorizedError
	return errors.As(err, &unauthorizedErr)
}

// IsRequest checks if an error is a RequestError
func IsRequest(err error) bool {
	var requestErr *RequestError
	return errors.As(err, &requestErr)
}

// IsFeedBuild checks if an error is a FeedBuildError
func IsFeedBuild(err error) bool {
	var buildErr *FeedBuildError
	return errors.As(err, &buildErr)
}

// IsClassified reports whether err already belongs to the pipeline taxonomy
func IsClassified(err error) bool {
	return IsToken(err) || IsUnknownChannel(err) || IsUnauthorized(err) || IsRequest(err) || IsFeedBuild(err)
}

// Classify returns err unchanged if it is already classified, otherwise
// it wraps err in a RequestError for the given operation.
func Classify(operation string, err error) error {
	if err == nil || IsClassified(err) {
		return err
	}
	return &RequestError{Operation: operation, Err: err}
}
