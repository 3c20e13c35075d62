package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeArtifact represents offline artifact errors
	ErrorTypeArtifact ErrorType = "artifact"
	// ErrorTypeProfile represents profile computation errors
	ErrorTypeProfile ErrorType = "profile"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when the Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// ErrGraphUserNotFound is returned when a user is not found in the graph
type ErrGraphUserNotFound struct {
	*BaseError
	UserID string
}

func NewGraphUserNotFound(userID string) *ErrGraphUserNotFound {
	return &ErrGraphUserNotFound{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("user not found: %s", userID), nil),
		UserID:    userID,
	}
}

// Artifact Errors

// ErrArtifactUnavailable is returned when a required offline artifact was not
// loaded at startup. This is the "prerequisite unavailable" condition: the
// process keeps running and only the dependent algorithms degrade.
type ErrArtifactUnavailable struct {
	*BaseError
	Artifact string
}

func NewArtifactUnavailable(artifact string) *ErrArtifactUnavailable {
	return &ErrArtifactUnavailable{
		BaseError: NewBaseError(ErrorTypeArtifact, fmt.Sprintf("artifact not loaded: %s", artifact), nil),
		Artifact:  artifact,
	}
}

// ErrArtifactLoadFailed is returned when an artifact file cannot be read or parsed
type ErrArtifactLoadFailed struct {
	*BaseError
	Artifact string
	Path     string
}

func NewArtifactLoadFailed(artifact, path string, err error) *ErrArtifactLoadFailed {
	return &ErrArtifactLoadFailed{
		BaseError: NewBaseError(ErrorTypeArtifact, fmt.Sprintf("failed to load %s from %s", artifact, path), err),
		Artifact:  artifact,
		Path:      path,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// errorType is promoted into every concrete error type through the embedded
// BaseError, so IsErrorType works without the BaseError itself appearing in
// the unwrap chain.
func (e *BaseError) errorType() ErrorType {
	return e.Type
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var typed interface{ errorType() ErrorType }
	if errors.As(err, &typed) {
		return typed.errorType() == errType
	}
	return false
}

// IsArtifactUnavailable reports whether err is a missing-artifact condition,
// as opposed to "no data" or a runtime failure.
func IsArtifactUnavailable(err error) bool {
	var unavailable *ErrArtifactUnavailable
	return errors.As(err, &unavailable)
}

// IsUserNotFound reports whether err means the requested user does not exist.
func IsUserNotFound(err error) bool {
	var notFound *ErrGraphUserNotFound
	return errors.As(err, &notFound)
}
