package node

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrServiceUnknown = errors.New("unknown service")
	ErrNodeStopped    = errors.New("node not started")
)

type DuplicateServiceError struct {
	Kind string
}

func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("duplicate service: %s", e.Kind)
}

// StopError is returned if a Node fails to stop either any of its registered
// services or itself.
type StopError struct {
	Services map[string]error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("services: %v", e.Services)
}
