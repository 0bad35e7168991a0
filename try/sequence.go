package try

// Sequence transposes a slice of tries into one Try of a slice. It scans
// left to right and stops at the first failure, which becomes the overall
// result. With no failure it succeeds with every value in input order; an
// empty input succeeds with an empty slice.
func Sequence[T any](tries []Try[T]) Try[[]T] {
	if tries == nil {
		panic("tries cannot be nil")
	}
	vals := make([]T, 0, len(tries))
	for _, t := range tries {
		if t.err != nil {
			return Failure[[]T](t.err)
		}
		vals = append(vals, t.val)
	}
	return Success(vals)
}

// Traverse maps the selector over the source and sequences the results in a
// single pass. The selector is invoked left to right and is not invoked on
// any element past the first failure it produces.
func Traverse[T, U any](source []T, selector func(T) Try[U]) Try[[]U] {
	if source == nil {
		panic("source cannot be nil")
	}
	if selector == nil {
		panic("selector cannot be nil")
	}
	vals := make([]U, 0, len(source))
	for _, s := range source {
		u := selector(s)
		if u.err != nil {
			return Failure[[]U](u.err)
		}
		vals = append(vals, u.val)
	}
	return Success(vals)
}
