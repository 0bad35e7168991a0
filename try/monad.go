package try

import (
	"github.com/fallible-go/fallible/either"
	"github.com/fallible-go/fallible/maybe"
)

type (
	// Try represents the outcome of a computation that can fail:
	// either a success holding a value or a failure holding an error.
	Try[T any] struct {
		val T
		err error
	}
)

// Success returns a new successful Try.
func Success[T any](val T) Try[T] {
	return Try[T]{val: val}
}

// Failure returns a new failed Try. The error must not be nil.
func Failure[T any](err error) Try[T] {
	if err == nil {
		panic("err cannot be nil")
	}
	return Try[T]{err: err}
}

// Of lifts a conventional (value, error) pair into a Try.
func Of[T any](val T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(val)
}

// IsSuccess returns true if the Try holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

// IsFailure returns true if the Try holds an error.
func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the held value and panics on a failure.
func (t Try[T]) Get() T {
	if t.err != nil {
		panic("Get called on a failure")
	}
	return t.val
}

// Err returns the held error and panics on a success.
func (t Try[T]) Err() error {
	if t.err == nil {
		panic("Err called on a success")
	}
	return t.err
}

// OrElse returns the held value or val on a failure.
func (t Try[T]) OrElse(val T) T {
	if t.err != nil {
		return val
	}
	return t.val
}

// OrElseGet returns the held value or computes one from the error.
func (t Try[T]) OrElseGet(f func(error) T) T {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return f(t.err)
	}
	return t.val
}

// ToMaybe drops the error channel.
func (t Try[T]) ToMaybe() maybe.Maybe[T] {
	if t.err != nil {
		return maybe.None[T]()
	}
	return maybe.Some(t.val)
}

// ToEither widens the failure into a left value.
func (t Try[T]) ToEither() either.Either[error, T] {
	if t.err != nil {
		return either.Left[error, T](t.err)
	}
	return either.Right[error](t.val)
}

// Map (map/fmap)
func Map[T, U any](t Try[T], f func(T) U) Try[U] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return Failure[U](t.err)
	}
	return Success(f(t.val))
}

// MapErr transforms the error of a failure.
func MapErr[T any](t Try[T], f func(error) error) Try[T] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return Failure[T](f(t.err))
	}
	return t
}

// FlatMap (flatMap/bind/chain/liftM)
func FlatMap[T, U any](t Try[T], f func(T) Try[U]) Try[U] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return Failure[U](t.err)
	}
	return f(t.val)
}

// Filter tests the success value. A failure passes through untouched; a
// success failing the predicate becomes a failure holding errIfFalse.
func Filter[T any](t Try[T], predicate func(T) bool, errIfFalse error) Try[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if errIfFalse == nil {
		panic("errIfFalse cannot be nil")
	}
	if t.err != nil || predicate(t.val) {
		return t
	}
	return Failure[T](errIfFalse)
}

// Recover replaces a failure with a value.
func Recover[T any](t Try[T], f func(error) T) Try[T] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return Success(f(t.err))
	}
	return t
}

// RecoverWith replaces a failure with another attempt.
func RecoverWith[T any](t Try[T], f func(error) Try[T]) Try[T] {
	if f == nil {
		panic("f cannot be nil")
	}
	if t.err != nil {
		return f(t.err)
	}
	return t
}

// Fold (fold/either)
func Fold[T, A any](t Try[T], fail func(error) A, succeed func(T) A) A {
	var a A
	if t.err == nil {
		if succeed != nil {
			a = succeed(t.val)
		}
	} else if fail != nil {
		a = fail(t.err)
	}
	return a
}

// Match (fold/either)
func Match[T any](t Try[T], fail func(error), succeed func(T)) {
	if t.err == nil {
		if succeed != nil {
			succeed(t.val)
		}
	} else if fail != nil {
		fail(t.err)
	}
}
