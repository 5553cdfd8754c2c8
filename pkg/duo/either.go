package duo

import "fmt"

// Either holds a value of L on its left side or a value of R on its right
// side. Neither side is privileged, though conversions to Result follow the
// usual convention of left for failure and right for success. The zero
// Either is Left holding L's zero value.
type Either[L any, R any] struct {
	left    L // zero whenever isRight is true
	right   R // zero whenever isRight is false
	isRight bool
}

// Left constructs an Either holding a left value.
func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs an Either holding a right value.
func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Tag returns TagLeft or TagRight.
func (e Either[L, R]) Tag() Tag {
	if e.isRight {
		return TagRight
	}
	return TagLeft
}

// IsLeft reports whether the left side is active.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right side is active.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeftAnd reports whether the left side is active and satisfies pred.
func (e Either[L, R]) IsLeftAnd(pred func(L) bool) bool {
	return !e.isRight && pred(e.left)
}

// IsRightAnd reports whether the right side is active and satisfies pred.
func (e Either[L, R]) IsRightAnd(pred func(R) bool) bool {
	return e.isRight && pred(e.right)
}

// UnwrapLeft returns the left value and panics when the right side is
// active.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic(fmt.Sprintf("called UnwrapLeft on a Right either: %v", e.right))
	}
	return e.left
}

// UnwrapRight returns the right value and panics when the left side is
// active.
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic(fmt.Sprintf("called UnwrapRight on a Left either: %v", e.left))
	}
	return e.right
}

// ExpectLeft returns the left value and panics with msg when the right side
// is active.
func (e Either[L, R]) ExpectLeft(msg string) L {
	if e.isRight {
		panic(msg)
	}
	return e.left
}

// ExpectRight returns the right value and panics with msg when the left
// side is active.
func (e Either[L, R]) ExpectRight(msg string) R {
	if !e.isRight {
		panic(msg)
	}
	return e.right
}

// LeftOr returns the left value when active, otherwise fallback.
func (e Either[L, R]) LeftOr(fallback L) L {
	if e.isRight {
		return fallback
	}
	return e.left
}

// RightOr returns the right value when active, otherwise fallback.
func (e Either[L, R]) RightOr(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// LeftOrElse returns the left value when active, otherwise derives one from
// the right value.
func (e Either[L, R]) LeftOrElse(fn func(R) L) L {
	if e.isRight {
		return fn(e.right)
	}
	return e.left
}

// RightOrElse returns the right value when active, otherwise derives one
// from the left value.
func (e Either[L, R]) RightOrElse(fn func(L) R) R {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// Left projects the left side into an Option, discarding any right value.
func (e Either[L, R]) Left() Option[L] {
	if e.isRight {
		return None[L]()
	}
	return Some(e.left)
}

// Right projects the right side into an Option, discarding any left value.
func (e Either[L, R]) Right() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// Flip swaps the sides, turning a Left into a Right holding the same value
// and vice versa.
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Match calls onLeft with the left value or onRight with the right value.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// String renders "Left(v)" or "Right(v)".
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft transforms the left side into a new type, passing a Right through
// untouched.
func MapLeft[L any, M any, R any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return Left[M, R](fn(e.left))
}

// MapRight transforms the right side into a new type, passing a Left
// through untouched.
func MapRight[L any, R any, S any](e Either[L, R], fn func(R) S) Either[L, S] {
	if e.isRight {
		return Right[L, S](fn(e.right))
	}
	return Left[L, S](e.left)
}

// MapEither transforms both sides at once. Only the function for the active
// side runs.
func MapEither[L any, M any, R any, S any](e Either[L, R], onLeft func(L) M, onRight func(R) S) Either[M, S] {
	if e.isRight {
		return Right[M, S](onRight(e.right))
	}
	return Left[M, S](onLeft(e.left))
}

// MapBoth applies one function to whichever side is active. It requires both
// sides to share a type and preserves which side the value is on.
func MapBoth[T any, U any](e Either[T, T], fn func(T) U) Either[U, U] {
	if e.isRight {
		return Right[U, U](fn(e.right))
	}
	return Left[U, U](fn(e.left))
}

// Fold collapses the Either into a single value by applying onLeft or
// onRight to the active side.
func Fold[L any, R any, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeftWith is MapLeft with a caller context forwarded into fn, for
// transforms that need request-scoped state without a closure.
func MapLeftWith[C any, L any, M any, R any](cx C, e Either[L, R], fn func(C, L) M) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return Left[M, R](fn(cx, e.left))
}

// MapRightWith is MapRight with a caller context forwarded into fn.
func MapRightWith[C any, L any, R any, S any](cx C, e Either[L, R], fn func(C, R) S) Either[L, S] {
	if e.isRight {
		return Right[L, S](fn(cx, e.right))
	}
	return Left[L, S](e.left)
}

// MapEitherWith is MapEither with a caller context forwarded into whichever
// function runs.
func MapEitherWith[C any, L any, M any, R any, S any](cx C, e Either[L, R], onLeft func(C, L) M, onRight func(C, R) S) Either[M, S] {
	if e.isRight {
		return Right[M, S](onRight(cx, e.right))
	}
	return Left[M, S](onLeft(cx, e.left))
}

// FoldWith is Fold with a caller context forwarded into whichever function
// runs.
func FoldWith[C any, L any, R any, U any](cx C, e Either[L, R], onLeft func(C, L) U, onRight func(C, R) U) U {
	if e.isRight {
		return onRight(cx, e.right)
	}
	return onLeft(cx, e.left)
}

// EitherToResult reads an Either under the left-failure, right-success
// convention.
func EitherToResult[R any, L error](e Either[L, R]) Result[R, L] {
	if e.isRight {
		return Ok[R, L](e.right)
	}
	return Err[R, L](e.left)
}

// ResultToEither writes a Result out as an Either, sending failures left
// and successes right.
func ResultToEither[T any, E error](r Result[T, E]) Either[E, T] {
	if r.isOk {
		return Right[E, T](r.value)
	}
	return Left[E, T](r.err)
}
