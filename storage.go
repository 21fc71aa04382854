package lifo

// storage owns the slot buffer of a Stack. Slots [0, size) hold live
// elements, slots [size, capacity) hold the zero value and are never read.
// storage never constructs elements itself, but release destroys whatever
// live range the owning Stack left behind.
type storage[T any] struct {
	data     []T
	capacity int
	size     int
}

func newStorage[T any](capacity int) storage[T] {
	if capacity < 0 {
		panic("negative capacity")
	}
	var data []T
	if capacity > 0 {
		data = make([]T, capacity)
	}
	return storage[T]{data: data, capacity: capacity}
}

func (s *storage[T]) release() {
	destroyRange(s.data[:s.size])
	s.data = nil
	s.capacity = 0
	s.size = 0
}

func (s *storage[T]) swap(other *storage[T]) {
	s.data, other.data = other.data, s.data
	s.capacity, other.capacity = other.capacity, s.capacity
	s.size, other.size = other.size, s.size
}

func (s *storage[T]) take(other *storage[T]) {
	*s = *other
	*other = storage[T]{}
}

func construct[T any](slot *T, value T) error {
	if c, ok := any(value).(Cloner[T]); ok {
		clone, err := c.Clone()
		if err != nil {
			return err
		}
		*slot = clone
		return nil
	}
	*slot = value
	return nil
}

func constructMove[T any](slot *T, value *T) {
	var zero T
	*slot = *value
	*value = zero
}

func destroy[T any](slot *T) {
	if r, ok := any(*slot).(Releaser); ok {
		r.Release()
	}
	var zero T
	*slot = zero
}

func destroyRange[T any](slots []T) {
	for i := range slots {
		destroy(&slots[i])
	}
}

// cloned elements are ours, carried ones still belong to the other side
func discard[T any](slot *T) {
	if _, ok := any(*slot).(Cloner[T]); ok {
		destroy(slot)
		return
	}
	var zero T
	*slot = zero
}

func (s *storage[T]) releaseRelocated() {
	for i := 0; i < s.size; i++ {
		discard(&s.data[i])
	}
	s.data = nil
	s.capacity = 0
	s.size = 0
}
