package tmdb

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTransport marks failed requests and non-200 responses.
	ErrTransport = errors.New("tmdb transport failure")
	// ErrShape marks responses that cannot be decoded or lack a required field.
	ErrShape = errors.New("tmdb payload shape mismatch")
	// ErrInvalidRequest marks calls rejected before any request is sent.
	ErrInvalidRequest = errors.New("invalid tmdb request")
)

// StatusError reports a response with a status other than 200.
type StatusError struct {
	Operation  string
	StatusCode int
	Latency    time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned %d (latency=%v)", e.Operation, e.StatusCode, e.Latency)
}

func (e *StatusError) Unwrap() error { return ErrTransport }

// ShapeError names the first required field missing from a payload.
type ShapeError struct {
	Resource string
	Field    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tmdb %s payload missing %s", e.Resource, e.Field)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

func missing(resource, field string) error {
	return &ShapeError{Resource: resource, Field: field}
}
