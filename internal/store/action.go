package store

import (
	"fmt"

	"campaignhub/internal/domain"
)

// Kind names a transition.
type Kind int

const (
	KindSetAll Kind = iota + 1
	KindAdd
	KindUpdate
	KindRemove
	KindSetLoading
	KindSetError
)

func (k Kind) String() string {
	switch k {
	case KindSetAll:
		return "SET_ALL"
	case KindAdd:
		return "ADD"
	case KindUpdate:
		return "UPDATE"
	case KindRemove:
		return "REMOVE"
	case KindSetLoading:
		return "SET_LOADING"
	case KindSetError:
		return "SET_ERROR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is a transition for a store of T. Build one with the constructors
// below; only the fields relevant to Kind are read.
type Action[T domain.Entity] struct {
	Kind    Kind
	Items   []T
	Item    T
	ID      int64
	Loading bool
	Err     *string
}

// SetAll replaces the whole collection, keeping the given order.
func SetAll[T domain.Entity](items []T) Action[T] {
	return Action[T]{Kind: KindSetAll, Items: items}
}

// Add appends a record. Identity is not checked for duplicates.
func Add[T domain.Entity](item T) Action[T] {
	return Action[T]{Kind: KindAdd, Item: item}
}

// Update replaces the record with the same id in place. An unknown id is a
// no-op; Update never inserts.
func Update[T domain.Entity](item T) Action[T] {
	return Action[T]{Kind: KindUpdate, Item: item}
}

// Remove drops the record with the given id, if present.
func Remove[T domain.Entity](id int64) Action[T] {
	return Action[T]{Kind: KindRemove, ID: id}
}

// SetLoading sets the loading flag.
func SetLoading[T domain.Entity](loading bool) Action[T] {
	return Action[T]{Kind: KindSetLoading, Loading: loading}
}

// SetError sets the error message; nil clears it.
func SetError[T domain.Entity](msg *string) Action[T] {
	return Action[T]{Kind: KindSetError, Err: msg}
}

// ClearError is SetError(nil).
func ClearError[T domain.Entity]() Action[T] {
	return SetError[T](nil)
}

// ErrorMessage returns a SetError action carrying msg.
func ErrorMessage[T domain.Entity](msg string) Action[T] {
	return SetError[T](&msg)
}
