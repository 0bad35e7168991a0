package either

// Comprehension surface for Either. A host "from x in a ... select" chain
// desugars to exactly these calls; Right is the bound channel, Left passes
// through untouched.

// Select projects the right value.
func Select[L, R, R2 any](e Either[L, R], projector func(R) R2) Either[L, R2] {
	if projector == nil {
		panic("projector cannot be nil")
	}
	return Map(e, projector)
}

// SelectMany chains a dependent binding on the right channel.
func SelectMany[L, R, R2 any](e Either[L, R], binder func(R) Either[L, R2]) Either[L, R2] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	return FlatMap(e, binder)
}

// SelectManyWith chains a dependent binding and combines both right values.
// The outer value stays in scope while the inner binding is projected,
// matching a two-clause chain where the second clause references the first.
func SelectManyWith[L, R, R2, V any](
	e       Either[L, R],
	binder  func(R) Either[L, R2],
	combine func(R, R2) V,
) Either[L, V] {
	if binder == nil {
		panic("binder cannot be nil")
	}
	if combine == nil {
		panic("combine cannot be nil")
	}
	return FlatMap(e, func(x R) Either[L, V] {
		return Map(binder(x), func(y R2) V {
			return combine(x, y)
		})
	})
}

// Where tests the right value. A left Either passes through untouched; a
// right value failing the predicate becomes Left holding leftIfFalse.
func Where[L, R any](e Either[L, R], predicate func(R) bool, leftIfFalse L) Either[L, R] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if !e.isRight || predicate(e.right) {
		return e
	}
	return Left[L, R](leftIfFalse)
}

// WhereF is Where with a computed left value. The factory receives the right
// value that failed the predicate and is invoked only in that case.
func WhereF[L, R any](e Either[L, R], predicate func(R) bool, leftFn func(R) L) Either[L, R] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if leftFn == nil {
		panic("leftFn cannot be nil")
	}
	if !e.isRight || predicate(e.right) {
		return e
	}
	return Left[L, R](leftFn(e.right))
}
