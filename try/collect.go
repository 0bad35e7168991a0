package try

import "iter"

// CollectSuccesses yields the value of every success in order, silently
// dropping failures. The returned sequence is lazy and holds no state: it is
// restartable exactly when the source sequence is.
func CollectSuccesses[T any](tries iter.Seq[Try[T]]) iter.Seq[T] {
	if tries == nil {
		panic("tries cannot be nil")
	}
	return func(yield func(T) bool) {
		for t := range tries {
			if t.err == nil && !yield(t.val) {
				return
			}
		}
	}
}

// CollectFailures yields the error of every failure in order, silently
// dropping successes. Lazy, mirror of CollectSuccesses.
func CollectFailures[T any](tries iter.Seq[Try[T]]) iter.Seq[error] {
	if tries == nil {
		panic("tries cannot be nil")
	}
	return func(yield func(error) bool) {
		for t := range tries {
			if t.err != nil && !yield(t.err) {
				return
			}
		}
	}
}

// Partition splits the tries into success values and failure errors in a
// single pass, preserving relative order on both sides. Every element lands
// on exactly one side.
func Partition[T any](tries []Try[T]) ([]T, []error) {
	if tries == nil {
		panic("tries cannot be nil")
	}
	// Sized for the common mostly-successful input.
	vals := make([]T, 0, len(tries))
	errs := make([]error, 0, len(tries)/4)
	for _, t := range tries {
		if t.err != nil {
			errs = append(errs, t.err)
		} else {
			vals = append(vals, t.val)
		}
	}
	return vals, errs
}
