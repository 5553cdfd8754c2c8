package duo

import "fmt"

// Result holds either a success value of T or a failure value of E. E is
// constrained to error so failure payloads always carry error semantics.
// The zero Result is Err holding E's zero value.
type Result[T any, E error] struct {
	value T // zero whenever isOk is false
	err   E // zero whenever isOk is true
	isOk  bool
}

// Ok wraps a success value.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{value: value, isOk: true}
}

// Err wraps a failure value.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromTuple adapts Go's (value, error) return convention. A nil error yields
// Ok(value), anything else yields Err(err).
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Tag returns TagOk or TagErr.
func (r Result[T, E]) Tag() Tag {
	if r.isOk {
		return TagOk
	}
	return TagErr
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the Result holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// IsOkAnd reports whether the Result is Ok and its value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.isOk && pred(r.value)
}

// IsErrAnd reports whether the Result is Err and its error satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.isOk && pred(r.err)
}

// Unwrap returns the success value. On Err it panics with the failure value
// itself, not a wrapper, so a recover sees the original error.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(r.err)
	}
	return r.value
}

// Expect returns the success value. On Err it panics with msg annotated by
// the error; unlike Unwrap the panic value is the message, not the error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isOk {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// UnwrapErr returns the failure value and panics when the Result is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(fmt.Sprintf("called UnwrapErr on an Ok result: %v", r.value))
	}
	return r.err
}

// ExpectErr returns the failure value and panics with msg when the Result
// is Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isOk {
		panic(msg)
	}
	return r.err
}

// UnwrapOr returns the success value when present, otherwise fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value when present, otherwise fn(err).
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isOk {
		return r.value
	}
	return fn(r.err)
}

// UnwrapOrZero returns the success value when present, otherwise T's zero
// value. It never panics.
func (r Result[T, E]) UnwrapOrZero() T {
	return r.value
}

// ToTuple unpacks into Go's (value, error) convention. Exactly one side is
// its type's zero value.
func (r Result[T, E]) ToTuple() (T, E) {
	return r.value, r.err
}

// Ok projects the success side into an Option, discarding any error.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.value)
	}
	return None[T]()
}

// Err projects the failure side into an Option, discarding any value.
func (r Result[T, E]) Err() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

// Match calls onOk with the value or onErr with the error.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isOk {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// Inspect calls fn with the success value when present and returns the
// Result unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.isOk {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the failure value when present and returns the
// Result unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.isOk {
		fn(r.err)
	}
	return r
}

// Map applies fn to the success value, passing an Err through untouched.
// Transforms that change the value type live in the package-level Map.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if r.isOk {
		return Ok[T, E](fn(r.value))
	}
	return r
}

// MapErr applies fn to the failure value, passing an Ok through untouched.
func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	if r.isOk {
		return r
	}
	return Err[T, E](fn(r.err))
}

// MapOr applies fn to the success value and returns the result, or def on
// Err. def is built eagerly by the caller; use MapOrElse when it is
// expensive or needs the error.
func (r Result[T, E]) MapOr(def T, fn func(T) T) T {
	if r.isOk {
		return fn(r.value)
	}
	return def
}

// MapOrElse applies fn to the success value, or defFn to the failure value.
// Exactly one of the two functions runs.
func (r Result[T, E]) MapOrElse(defFn func(E) T, fn func(T) T) T {
	if r.isOk {
		return fn(r.value)
	}
	return defFn(r.err)
}

// And returns other when the Result is Ok, otherwise the original Err.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return other
	}
	return r
}

// AndThen returns fn(value) when the Result is Ok, otherwise the original
// Err without calling fn.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if r.isOk {
		return fn(r.value)
	}
	return r
}

// FlatMap is AndThen under its other common name.
func (r Result[T, E]) FlatMap(fn func(T) Result[T, E]) Result[T, E] {
	return r.AndThen(fn)
}

// Or returns the Result when it is Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return other
}

// OrElse returns the Result when it is Ok, otherwise fn(err).
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return fn(r.err)
}

// String renders "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map transforms the success side of a Result into a new value type,
// leaving an Err untouched.
func Map[T any, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the failure side of a Result into a new error type,
// leaving an Ok untouched.
func MapErr[T any, E error, F error](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// MapOr transforms the success value into a U, or returns def on Err.
func MapOr[T any, U any, E error](r Result[T, E], def U, fn func(T) U) U {
	if r.isOk {
		return fn(r.value)
	}
	return def
}

// MapOrElse transforms the success value into a U, or derives one from the
// failure value. Exactly one of the two functions runs.
func MapOrElse[T any, U any, E error](r Result[T, E], defFn func(E) U, fn func(T) U) U {
	if r.isOk {
		return fn(r.value)
	}
	return defFn(r.err)
}

// FlatMap chains a function that itself returns a Result, avoiding the
// Result[Result[U, E], E] nesting Map would produce.
func FlatMap[T any, U any, E error](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return fn(r.value)
	}
	return Err[U, E](r.err)
}

// Flatten removes one level of nesting: the inner Result is returned as is,
// so a doubly nested Ok comes back still wrapped once.
func Flatten[T any, E error](r Result[Result[T, E], E]) Result[T, E] {
	if r.isOk {
		return r.value
	}
	return Err[T, E](r.err)
}
