package try

import "github.com/go-logr/logr"

// Tap invokes f on the success value and returns the Try unchanged.
func Tap[T any](t Try[T], f func(T)) Try[T] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err == nil {
		f(t.val)
	}
	return t
}

// TapFailure invokes f on the error and returns the Try unchanged.
func TapFailure[T any](t Try[T], f func(error)) Try[T] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		f(t.err)
	}
	return t
}

// Log reports a failure to the supplied logger and returns the Try
// unchanged. Successes are not logged.
func Log[T any](logger logr.Logger, t Try[T], msg string) Try[T] {
	if t.err != nil {
		logger.Error(t.err, msg)
	}
	return t
}
