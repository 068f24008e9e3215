package domain

import "fmt"

// Entity is implemented by every record kept in a client-side store.
// Identity is the backend-assigned id.
type Entity interface {
	EntityID() int64
}

func invalid(kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidEntity, kind, fmt.Sprintf(format, args...))
}
