package either

type (
	// Either represents one of two values (left or right).
	// Right is conventionally the success channel.
	Either[L, R any] struct {
		left    L
		right   R
		isRight bool
	}
)

// Left returns a new Either with a left value.
func Left[L, R any](val L) Either[L, R] {
	return Either[L, R]{left: val}
}

// Right returns a new Either with a right value.
func Right[L, R any](val R) Either[L, R] {
	return Either[L, R]{right: val, isRight: true}
}

// IsLeft returns true if the left side is populated.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the right side is populated.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value and panics on a right Either.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("LeftValue called on a right Either")
	}
	return e.left
}

// RightValue returns the right value and panics on a left Either.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("RightValue called on a left Either")
	}
	return e.right
}

// Swap exchanges the sides.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// Seq (seq)
func Seq[L, R, R2 any](_ Either[L, R], e Either[L, R2]) Either[L, R2] {
	return e
}

// Map (map/fmap)
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if f == nil {
		panic("f cannot be nil")
	}
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}

// Apply (apply/<*>/ap)
func Apply[L, R, R2 any](e Either[L, func(R) R2], f Either[L, R]) Either[L, R2] {
	if e.isRight {
		return Map(f, e.right)
	}
	return Left[L, R2](e.left)
}

// FlatMap (flatMap/bind/chain/liftM)
func FlatMap[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if f == nil {
		panic("f cannot be nil")
	}
	if e.isRight {
		return f(e.right)
	}
	return Left[L, R2](e.left)
}

// MapLeft (mapLeft)
func MapLeft[L, L2, R any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if f == nil {
		panic("f cannot be nil")
	}
	if !e.isRight {
		return Left[L2, R](f(e.left))
	}
	return Right[L2](e.right)
}

// Fold (fold/either)
func Fold[L, R, A any](e Either[L, R], l func(L) A, r func(R) A) A {
	var a A
	if e.isRight {
		if r != nil {
			a = r(e.right)
		}
	} else if l != nil {
		a = l(e.left)
	}
	return a
}

// Match (fold/either)
func Match[L, R any](e Either[L, R], l func(L), r func(R)) {
	if e.isRight {
		if r != nil {
			r(e.right)
		}
	} else if l != nil {
		l(e.left)
	}
}
