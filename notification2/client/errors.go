package client

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration            = errors.New("invalid configuration")
	ErrTransport                = errors.New("transport failure")
	ErrUnexpectedStatus         = errors.New("unexpected status code")
	ErrProtocolUnavailable      = errors.New("the Notification 2.0 API does not seem to be installed or active on the server")
	ErrReplaceFailed            = errors.New("cannot replace existing subscription")
	ErrSubscriptionCreateFailed = errors.New("subscription creation failed")
	ErrPageLimitReached         = errors.New("page limit reached before the last page")
	ErrNotInitialized           = errors.New("subscription is not initialized")
)

// TransportError is returned when the request does not produce a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %v: %v", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusError is returned when the server responds with a status code the operation does not accept.
type StatusError struct {
	Op         string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("%v: %v %v", e.Op, ErrUnexpectedStatus, e.StatusCode)
	}
	return fmt.Sprintf("%v: %v %v: %s", e.Op, ErrUnexpectedStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// CreateFailedError carries the status and the payload of the rejected create request.
type CreateFailedError struct {
	StatusCode int
	Payload    []byte
}

func (e *CreateFailedError) Error() string {
	return fmt.Sprintf("subscription with the following payload failed with error %v:\n%s", e.StatusCode, e.Payload)
}

func (e *CreateFailedError) Is(target error) bool {
	return target == ErrSubscriptionCreateFailed || target == ErrUnexpectedStatus
}

// kindError classifies err under kind and keeps err reachable for errors.Is and errors.As.
type kindError struct {
	kind error
	err  error
}

func withKind(kind, err error) error {
	return &kindError{kind: kind, err: err}
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.err
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}
