package maybe

// The functions below form the comprehension surface for Maybe: a host
// "from x in a ... select" chain desugars to exactly these calls.
//   select     -> Select   (Map)
//   from..from -> SelectMany / SelectManyWith (FlatMap)
//   where      -> Where    (Filter)

// Select projects the held value.
func Select[T, U any](m Maybe[T], projector func(T) U) Maybe[U] {
	if projector == nil {
		panic("projector cannot be nil")
	}
	return Map(m, projector)
}

// SelectMany chains a dependent binding.
func SelectMany[T, U any](m Maybe[T], binder func(T) Maybe[U]) Maybe[U] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	return FlatMap(m, binder)
}

// SelectManyWith chains a dependent binding and combines both values.
// The outer value stays in scope while the inner binding is projected,
// matching a two-clause chain where the second clause references the first.
func SelectManyWith[T, U, V any](
	m       Maybe[T],
	binder  func(T) Maybe[U],
	combine func(T, U) V,
) Maybe[V] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	if combine == nil {
		panic("combine cannot be nil")
	}
	return FlatMap(m, func(x T) Maybe[V] {
		return Map(binder(x), func(y U) V {
			return combine(x, y)
		})
	})
}

// Where filters the held value.
// Maybe has no error channel, so a false predicate yields None.
func Where[T any](m Maybe[T], predicate func(T) bool) Maybe[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	return Filter(m, predicate)
}
