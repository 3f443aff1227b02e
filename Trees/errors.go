package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every KeyError.
	ErrNotFound = errors.New("item not in tree")
	// ErrOrder is matched by every OrderError.
	ErrOrder = errors.New("item would violate ordering")
)

// KeyError is returned when removing or replacing an Item that isn't stored.
type KeyError[T any] struct {
	Item T
}

func (e KeyError[T]) Error() string {
	return fmt.Sprintf("%v: %s", e.Item, ErrNotFound)
}

func (e KeyError[T]) Unwrap() error {
	return ErrNotFound
}

// OrderError is returned by ReplaceChecked when New can't take the place of Old
// without breaking the search order.
type OrderError[T any] struct {
	Old, New T
}

func (e OrderError[T]) Error() string {
	return fmt.Sprintf("replacing %v with %v: %s", e.Old, e.New, ErrOrder)
}

func (e OrderError[T]) Unwrap() error {
	return ErrOrder
}
