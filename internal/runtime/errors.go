package runtime

import "fmt"

// DirectConstructionError is returned when a runtime is built or used
// without going through a Registry.
type DirectConstructionError struct {
	ID string
}

func (e *DirectConstructionError) Error() string {
	if e.ID == "" {
		return "runtime was constructed directly: use Registry.Get instead"
	}
	return fmt.Sprintf("runtime %q was constructed directly: use Registry.Get instead", e.ID)
}

// UnregisteredRuntimeError is returned by Registry.Get for an unknown identifier.
type UnregisteredRuntimeError struct {
	ID string
}

func (e *UnregisteredRuntimeError) Error() string {
	return fmt.Sprintf("runtime %q is not registered", e.ID)
}
