// Package lifo implements a generic last-in-first-out stack that manages its
// own slot buffer. Capacity grows geometrically, elements are constructed and
// destroyed explicitly, and structural changes are built aside and committed
// by swapping buffers.
package lifo

import "github.com/pkg/errors"

// Stack is a non-thread-safe LIFO stack. The zero value is an empty stack
// with no buffer.
type Stack[T any] struct {
	impl storage[T]
}

// New creates an empty stack without a buffer.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithCapacity creates an empty stack with room for capacity elements.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{impl: newStorage[T](capacity)}
}

// Of creates a stack holding copies of values, the last one on top. The
// capacity is exactly len(values).
func Of[T any](values ...T) (*Stack[T], error) {
	s := NewWithCapacity[T](len(values))
	for i := range values {
		if err := s.appendCopy(values[i]); err != nil {
			s.impl.releaseRelocated()
			return nil, errors.Wrapf(err, "copy element %d", i)
		}
	}
	return s, nil
}

// Clone returns a deep copy of s whose capacity equals the size of s. If an
// element copy fails, the partial copy is dropped and s is left as is.
func (s *Stack[T]) Clone() (*Stack[T], error) {
	if s == nil {
		return nil, nil
	}
	c := NewWithCapacity[T](s.impl.size)
	for c.impl.size < c.impl.capacity {
		pos := c.impl.size
		if err := c.appendCopy(s.impl.data[pos]); err != nil {
			c.impl.releaseRelocated()
			return nil, errors.Wrapf(err, "copy element %d", pos)
		}
	}
	return c, nil
}

// Assign replaces the contents of s with a deep copy of src. On failure s is
// unchanged.
func (s *Stack[T]) Assign(src *Stack[T]) error {
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	if tmp == nil {
		tmp = New[T]()
	}
	s.impl.swap(&tmp.impl)
	tmp.Release()
	return nil
}

// Move returns a stack that owns the buffer of s. s is left empty without a
// buffer.
func (s *Stack[T]) Move() *Stack[T] {
	m := &Stack[T]{}
	m.impl.take(&s.impl)
	return m
}

// MoveFrom releases the elements of s and takes over the buffer of src,
// leaving src empty without a buffer.
func (s *Stack[T]) MoveFrom(src *Stack[T]) {
	if s == src {
		return
	}
	s.impl.release()
	s.impl.take(&src.impl)
}

// Release destroys all elements bottom to top and drops the buffer. The stack
// stays usable as an empty stack.
func (s *Stack[T]) Release() {
	if s == nil {
		return
	}
	s.impl.release()
}

func (s *Stack[T]) Size() int {
	return s.impl.size
}

func (s *Stack[T]) Capacity() int {
	return s.impl.capacity
}

func (s *Stack[T]) IsEmpty() bool {
	return s.impl.size == 0
}

// Top returns a pointer to the top element, valid until the next mutation.
func (s *Stack[T]) Top() (*T, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}
	return &s.impl.data[s.impl.size-1], nil
}

// Peek returns the top element by value.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.impl.data[s.impl.size-1], nil
}

// Push places a copy of value on top. A full stack grows to 2*size+1 first.
// If any copy fails, s is unchanged.
func (s *Stack[T]) Push(value T) error {
	if !s.full() {
		return errors.Wrap(s.appendCopy(value), "push")
	}
	tmp, err := s.grow()
	if err != nil {
		return err
	}
	if err = tmp.appendCopy(value); err != nil {
		tmp.impl.releaseRelocated()
		return errors.Wrap(err, "push")
	}
	s.commit(tmp)
	return nil
}

// PushMove places *value on top without copying it and resets *value to the
// zero value. If growing fails, neither s nor *value is changed.
func (s *Stack[T]) PushMove(value *T) error {
	if value == nil {
		panic("nil value")
	}
	if !s.full() {
		constructMove(&s.impl.data[s.impl.size], value)
		s.impl.size++
		return nil
	}
	tmp, err := s.grow()
	if err != nil {
		return err
	}
	constructMove(&tmp.impl.data[tmp.impl.size], value)
	tmp.impl.size++
	s.commit(tmp)
	return nil
}

// Pop destroys the top element. The capacity is kept.
func (s *Stack[T]) Pop() error {
	if s.IsEmpty() {
		return ErrUnderflow
	}
	s.impl.size--
	destroy(&s.impl.data[s.impl.size])
	return nil
}

func (s *Stack[T]) full() bool {
	return s.impl.size == s.impl.capacity
}

func (s *Stack[T]) appendCopy(value T) error {
	if err := construct(&s.impl.data[s.impl.size], value); err != nil {
		return err
	}
	s.impl.size++
	return nil
}

func (s *Stack[T]) grow() (*Stack[T], error) {
	tmp := NewWithCapacity[T](2*s.impl.size + 1)
	for tmp.impl.size < s.impl.size {
		pos := tmp.impl.size
		if err := tmp.appendCopy(s.impl.data[pos]); err != nil {
			tmp.impl.releaseRelocated()
			return nil, errors.Wrapf(err, "relocate element %d", pos)
		}
	}
	return tmp, nil
}

func (s *Stack[T]) commit(tmp *Stack[T]) {
	s.impl.swap(&tmp.impl)
	tmp.impl.releaseRelocated()
}
