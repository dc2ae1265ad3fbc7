package github

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAliasCollision indicates two repository names in one batch reduced to
// the same query alias. The batch is rejected before any network call.
var ErrAliasCollision = errors.New("repository alias collision in batch")

// TransportError wraps a network-level failure: the request never completed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("github request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError indicates the request completed but GitHub signaled failure,
// either via a non-2xx status or a GraphQL-level errors array.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github upstream returned status %d: %s", e.StatusCode, e.Body)
}

// graphQLErrorsToErr converts a GraphQL errors array into an UpstreamError.
func graphQLErrorsToErr(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return &UpstreamError{StatusCode: 200, Body: strings.Join(messages, "; ")}
}
