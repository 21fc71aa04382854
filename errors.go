package lifo

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned when the top of an empty stack is requested.
	ErrEmpty = errors.New("Empty stack!")

	// ErrUnderflow is returned when popping from an empty stack.
	ErrUnderflow = errors.New("Pop from empty stack!")
)
