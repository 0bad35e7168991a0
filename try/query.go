package try

// Comprehension surface for Try. A host "from x in a ... select" chain
// desugars to exactly these calls; a failure passes through every clause
// untouched.

// Select projects the success value.
func Select[T, U any](t Try[T], projector func(T) U) Try[U] {
	if projector == nil {
		panic("projector cannot be nil")
	}
	return Map(t, projector)
}

// SelectMany chains a dependent binding on the success channel.
func SelectMany[T, U any](t Try[T], binder func(T) Try[U]) Try[U] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	return FlatMap(t, binder)
}

// SelectManyWith chains a dependent binding and combines both success values.
// The outer value stays in scope while the inner binding is projected,
// matching a two-clause chain where the second clause references the first.
func SelectManyWith[T, U, V any](
	t       Try[T],
	binder  func(T) Try[U],
	combine func(T, U) V,
) Try[V] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	if combine == nil {
		panic("combine cannot be nil")
	}
	return FlatMap(t, func(x T) Try[V] {
		return Map(binder(x), func(y U) V {
			return combine(x, y)
		})
	})
}

// Where tests the success value. A failure passes through untouched; a
// success failing the predicate becomes a failure holding errIfFalse.
func Where[T any](t Try[T], predicate func(T) bool, errIfFalse error) Try[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if errIfFalse == nil {
		panic("errIfFalse cannot be nil")
	}
	return Filter(t, predicate, errIfFalse)
}

// WhereF is Where with a computed error. The factory receives the success
// value that failed the predicate and is invoked only in that case, which
// allows context-dependent error messages.
func WhereF[T any](t Try[T], predicate func(T) bool, errFn func(T) error) Try[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if errFn == nil {
		panic("errFn cannot be nil")
	}
	if t.err != nil || predicate(t.val) {
		return t
	}
	return Failure[T](errFn(t.val))
}
