package try

import "github.com/hashicorp/go-multierror"

// Combine is the accumulating counterpart of Sequence: it never stops early
// and gathers every failure into one aggregate error. With no failures it
// succeeds with every value in input order.
func Combine[T any](tries []Try[T]) Try[[]T] {
	if tries == nil {
		panic("tries cannot be nil")
	}
	vals := make([]T, 0, len(tries))
	var errs *multierror.Error
	for _, t := range tries {
		if t.err != nil {
			errs = multierror.Append(errs, t.err)
			continue
		}
		vals = append(vals, t.val)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Failure[[]T](err)
	}
	return Success(vals)
}
