package try

// FirstSuccess scans left to right and returns the first success, without
// looking at later elements. If every element is a failure it returns the
// last one seen, so the most recent failure context survives as the
// representative error. An empty input is a precondition violation.
func FirstSuccess[T any](tries []Try[T]) Try[T] {
	if tries == nil {
		panic("tries cannot be nil")
	}
	if len(tries) == 0 {
		panic("tries cannot be empty")
	}
	var last Try[T]
	for _, t := range tries {
		if t.err == nil {
			return t
		}
		last = t
	}
	return last
}
