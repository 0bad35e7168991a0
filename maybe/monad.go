package maybe

type (
	// Maybe represents an optional value.
	// Some holds a value, None holds nothing.
	Maybe[T any] struct {
		val T
		has bool
	}
)

// Some returns a new Maybe holding a value.
func Some[T any](val T) Maybe[T] {
	return Maybe[T]{val, true}
}

// None returns a new empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Some of the pointed-to value or None for a nil pointer.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.has
}

// IsNone returns true if no value is present.
func (m Maybe[T]) IsNone() bool {
	return !m.has
}

// Get returns the held value and panics on None.
func (m Maybe[T]) Get() T {
	if !m.has {
		panic("Get called on None")
	}
	return m.val
}

// OrElse returns the held value or val if None.
func (m Maybe[T]) OrElse(val T) T {
	if m.has {
		return m.val
	}
	return val
}

// OrElseGet returns the held value or computes one if None.
func (m Maybe[T]) OrElseGet(f func() T) T {
	if f == nil {
		panic("f cannot be nil")
	}
	if m.has {
		return m.val
	}
	return f()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (m Maybe[T]) ToPtr() *T {
	if !m.has {
		return nil
	}
	v := m.val
	return &v
}

// Map (map/fmap)
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if f == nil {
		panic("f cannot be nil")
	}
	if m.has {
		return Some(f(m.val))
	}
	return None[U]()
}

// FlatMap (flatMap/bind/chain/liftM)
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if f == nil {
		panic("f cannot be nil")
	}
	if m.has {
		return f(m.val)
	}
	return None[U]()
}

// Filter keeps Some only when the predicate holds.
func Filter[T any](m Maybe[T], predicate func(T) bool) Maybe[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if m.has && !predicate(m.val) {
		return None[T]()
	}
	return m
}

// Fold (fold/maybe)
func Fold[T, A any](m Maybe[T], none func() A, some func(T) A) A {
	var a A
	if m.has {
		if some != nil {
			a = some(m.val)
		}
	} else if none != nil {
		a = none()
	}
	return a
}

// Match (fold/maybe)
func Match[T any](m Maybe[T], none func(), some func(T)) {
	if m.has {
		if some != nil {
			some(m.val)
		}
	} else if none != nil {
		none()
	}
}
