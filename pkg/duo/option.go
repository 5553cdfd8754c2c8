package duo

import "fmt"

// Option holds either a value of T or nothing. The zero Option is None.
type Option[T any] struct {
	value T // zero whenever some is false
	some  bool
}

// Some wraps a value. Any value counts, including a nil pointer of T's type;
// use OfNullable when nil should classify as absent.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNullable returns None when value is nil in any of Go's nil-able kinds,
// otherwise Some(value).
func OfNullable[T any](value T) Option[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// FromPtr dereferences p into Some when p is non-nil, otherwise None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Tag returns TagSome or TagNone.
func (o Option[T]) Tag() Tag {
	if o.some {
		return TagSome
	}
	return TagNone
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether a value is present and satisfies pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Unwrap returns the value and panics when there is none.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("called Unwrap on a None option")
	}
	return o.value
}

// Expect returns the value and panics with msg when there is none.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the value when present, otherwise fallback. The fallback
// is built eagerly by the caller; use UnwrapOrElse when it is expensive.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the value when present, otherwise fn().
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// UnwrapOrZero returns the value when present, otherwise T's zero value.
// It never panics.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Get returns the value and whether it is present, in the comma-ok shape.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Match calls onSome with the value when present, otherwise onNone.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Inspect calls fn with the value when present and returns the Option
// unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Map applies fn to the value when present. Transforms that change the
// payload type live in the package-level MapOption.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[T]()
}

// MapOr applies fn to the value and returns the result, or def when None.
// def is built eagerly by the caller; use MapOrElse when it is expensive.
func (o Option[T]) MapOr(def T, fn func(T) T) T {
	if o.some {
		return fn(o.value)
	}
	return def
}

// MapOrElse applies fn to the value, or returns defFn() when None. Exactly
// one of the two functions runs.
func (o Option[T]) MapOrElse(defFn func() T, fn func(T) T) T {
	if o.some {
		return fn(o.value)
	}
	return defFn()
}

// And returns other when a value is present, otherwise None. other is built
// eagerly by the caller; use AndThen when it is expensive.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return None[T]()
}

// AndThen returns fn(value) when present, otherwise None without calling fn.
// Chains that change the payload type live in FlatMapOption.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if o.some {
		return fn(o.value)
	}
	return None[T]()
}

// FlatMap is AndThen under its other common name.
func (o Option[T]) FlatMap(fn func(T) Option[T]) Option[T] {
	return o.AndThen(fn)
}

// Or returns the Option when a value is present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option when a value is present, otherwise fn().
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever Option is Some when exactly one of the two is,
// otherwise None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Filter keeps the value only when pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// OkOr converts to a Result, turning Some(v) into Ok(v) and None into
// Err(err). The package-level OkOr accepts error types other than the plain
// error interface.
func (o Option[T]) OkOr(err error) Result[T, error] {
	return OkOr(o, err)
}

// OkOrElse converts to a Result, calling fn for the error only when None.
func (o Option[T]) OkOrElse(fn func() error) Result[T, error] {
	return OkOrElse(o, fn)
}

// ToPtr returns a pointer to a copy of the value, or nil when None.
func (o Option[T]) ToPtr() *T {
	if o.some {
		v := o.value
		return &v
	}
	return nil
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption transforms Option[T] into Option[U], leaving None untouched.
func MapOption[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOptionOr transforms the value into a U, or returns def when None.
func MapOptionOr[T any, U any](o Option[T], def U, fn func(T) U) U {
	if o.some {
		return fn(o.value)
	}
	return def
}

// MapOptionOrElse transforms the value into a U, or returns defFn() when
// None. Exactly one of the two functions runs.
func MapOptionOrElse[T any, U any](o Option[T], defFn func() U, fn func(T) U) U {
	if o.some {
		return fn(o.value)
	}
	return defFn()
}

// FlatMapOption chains a function that itself returns an Option, avoiding
// the Option[Option[U]] nesting MapOption would produce.
func FlatMapOption[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// FlattenOption removes one level of nesting: the inner Option is returned
// as is, so a doubly nested Some comes back still wrapped once.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.some {
		return o.value
	}
	return None[T]()
}

// OkOr converts an Option into a Result with a typed failure side.
func OkOr[T any, E error](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err)
}

// OkOrElse converts an Option into a Result, invoking errFn only when the
// Option is None.
func OkOrElse[T any, E error](o Option[T], errFn func() E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](errFn())
}

// EqualOptions reports whether two Options hold the same variant and, when
// both are Some, equal values.
func EqualOptions[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
