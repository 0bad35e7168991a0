package test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/fallible-go/fallible/try"
	"github.com/stretchr/testify/assert"
)

func Test_Select(t *testing.T) {
	assert.Equal(t, try.Success("5"),
		try.Select(try.Success(5), strconv.Itoa))
	assert.Equal(t, try.Failure[string](errNotANumber),
		try.Select(try.Failure[int](errNotANumber), strconv.Itoa))
	assert.PanicsWithValue(t, "projector cannot be nil", func() {
		try.Select[int, string](try.Success(5), nil)
	})
}

func Test_SelectMany(t *testing.T) {
	assert.Equal(t, try.Success(12), try.SelectMany(try.Success("12"), parseNat))
	assert.Equal(t, try.Failure[int](errNegative),
		try.SelectMany(try.Success("-12"), parseNat))
	assert.PanicsWithValue(t, "binder cannot be nil", func() {
		try.SelectMany[string, int](try.Success("12"), nil)
	})
}

// Two-clause chain equivalence: SelectManyWith(a, b, f) must match
// FlatMap(a, x => Map(b(x), y => f(x, y))) for every variant combination.
func Test_SelectManyWith(t *testing.T) {
	combine := func(s string, n int) string {
		return s + "=" + strconv.Itoa(n)
	}
	for _, a := range []try.Try[string]{
		try.Success("12"),
		try.Success("-12"),
		try.Success("abc"),
		try.Failure[string](errNotANumber),
	} {
		chained := try.SelectManyWith(a, parseNat, combine)
		nested := try.FlatMap(a, func(x string) try.Try[string] {
			return try.Map(parseNat(x), func(y int) string {
				return combine(x, y)
			})
		})
		assert.Equal(t, nested, chained)
	}
	assert.Equal(t, try.Success("12=12"),
		try.SelectManyWith(try.Success("12"), parseNat, combine))

	assert.PanicsWithValue(t, "combine cannot be nil", func() {
		try.SelectManyWith[string, int, string](try.Success("12"), parseNat, nil)
	})
}

func Test_Where(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	errOdd := errors.New("odd number")

	t.Run("SuccessHeld", func(t *testing.T) {
		assert.Equal(t, try.Success(4), try.Where(try.Success(4), even, errOdd))
	})

	t.Run("SuccessRejected", func(t *testing.T) {
		assert.Equal(t, try.Failure[int](errOdd), try.Where(try.Success(3), even, errOdd))
	})

	t.Run("FailurePassesThrough", func(t *testing.T) {
		assert.Equal(t, try.Failure[int](errNotANumber),
			try.Where(try.Failure[int](errNotANumber), even, errOdd))
	})

	t.Run("NilPredicate", func(t *testing.T) {
		assert.PanicsWithValue(t, "predicate cannot be nil", func() {
			try.Where(try.Success(4), nil, errOdd)
		})
	})
}

func Test_WhereF(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	t.Run("FactoryInvokedOnce", func(t *testing.T) {
		calls := 0
		describe := func(n int) error {
			calls++
			return fmt.Errorf("%v is odd", n)
		}
		got := try.WhereF(try.Success(3), even, describe)
		assert.True(t, got.IsFailure())
		assert.EqualError(t, got.Err(), "3 is odd")
		assert.Equal(t, 1, calls)
	})

	t.Run("FactoryNotInvokedOtherwise", func(t *testing.T) {
		describe := func(n int) error {
			panic("unexpected")
		}
		assert.Equal(t, try.Success(4), try.WhereF(try.Success(4), even, describe))
		assert.Equal(t, try.Failure[int](errNotANumber),
			try.WhereF(try.Failure[int](errNotANumber), even, describe))
	})

	t.Run("NilFactory", func(t *testing.T) {
		assert.PanicsWithValue(t, "errFn cannot be nil", func() {
			try.WhereF(try.Success(3), even, nil)
		})
	})
}
