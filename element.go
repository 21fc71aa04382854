package lifo

// Cloner is implemented by element types whose copies must not share
// resources. Every copy a Stack makes of such an element goes through Clone.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Releaser is implemented by element types that own resources. A Stack calls
// Release exactly once on every element it constructed, when that element is
// destroyed.
type Releaser interface {
	Release()
}
