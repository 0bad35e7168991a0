// Package check bridges struct and value validation into the try channel.
package check

import (
	"errors"

	"github.com/asaskevich/govalidator"
	"github.com/hashicorp/go-multierror"

	"github.com/fallible-go/fallible/try"
)

// Struct validates the govalidator tags on target and returns it on the
// success channel, or a failure aggregating every field error.
func Struct[T any](target T) try.Try[T] {
	if ok, err := govalidator.ValidateStruct(target); !ok {
		if err == nil {
			err = errors.New("failed validation")
		}
		return try.Failure[T](flatten(err, nil).ErrorOrNil())
	}
	return try.Success(target)
}

// That lifts a predicate on a plain value into the try channel.
func That[T any](val T, predicate func(T) bool, errIfFalse error) try.Try[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}
	if errIfFalse == nil {
		panic("errIfFalse cannot be nil")
	}
	if !predicate(val) {
		return try.Failure[T](errIfFalse)
	}
	return try.Success(val)
}

func flatten(err error, agg *multierror.Error) *multierror.Error {
	switch e := err.(type) {
	case govalidator.Errors:
		for _, inner := range e.Errors() {
			agg = flatten(inner, agg)
		}
	default:
		agg = multierror.Append(agg, err)
	}
	return agg
}
