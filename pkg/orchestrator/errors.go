package orchestrator

import (
	"errors"
	"fmt"
)

// ErrMissingCredential reports that no API key was supplied. The request
// fails before any network traffic.
var ErrMissingCredential = errors.New("orchestrator: missing API credential")

// ProviderError reports that the backend answered but rejected the request
// or returned no usable content. It carries the provider's message when one
// exists.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("orchestrator: provider rejected request: %s", e.Message)
}

// ConnectivityError reports that the backend could not be reached at all,
// after transport retries were exhausted.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("orchestrator: %s: backend unreachable: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }
