package duo

import "fmt"

// PanicError carries a recovered panic value that was not an error. Value
// holds the recovered value verbatim.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}

// Try invokes fn once and adapts its (value, error) outcome, like FromTuple
// for a computation that has not run yet. Panics are not captured; they
// propagate to the caller.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return FromTuple(fn())
}

// Catch invokes fn and captures any panic as the failure side. A panic
// value that is an error is captured as is; any other value is wrapped in a
// *PanicError. Catch never sees failures fn reports by returning, since fn
// has no error return; use Try for those.
func Catch[T any](fn func() T) (res Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			res = Err[T, error](asError(v))
		}
	}()
	return Ok[T, error](fn())
}

// CatchOnly invokes fn and captures a panic only when its value is an error
// belonging to one of kinds, following wrapped chains the way errors.Is
// does. Any other panic, an unlisted error or a non-error value, is raised
// again unchanged and reaches the caller as if never caught.
func CatchOnly[T any](fn func() T, kinds ...error) (res Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			err, ok := v.(error)
			if !ok || !matchesKind(err, kinds) {
				panic(v)
			}
			res = Err[T, error](err)
		}
	}()
	return Ok[T, error](fn())
}

// outcome carries a settled Result or a panic value across the goroutine
// boundary, so the panic can be raised again on the caller's side.
type outcome[T any] struct {
	res      Result[T, error]
	panicked bool
	panicVal any
}

// TryAsync runs fn in its own goroutine and blocks until it returns,
// adapting the outcome like Try. A panic in fn is raised again in the
// caller's goroutine; raising it in the worker would tear the process down
// before the caller could see it.
func TryAsync[T any](fn func() (T, error)) Result[T, error] {
	ch := make(chan outcome[T], 1)
	go func() {
		var out outcome[T]
		defer func() {
			ch <- out
		}()
		defer func() {
			if v := recover(); v != nil {
				out.panicked = true
				out.panicVal = v
			}
		}()
		out.res = Try(fn)
	}()
	out := <-ch
	if out.panicked {
		panic(out.panicVal)
	}
	return out.res
}

// CatchAsync runs fn in its own goroutine and blocks until it settles,
// capturing panics exactly like Catch. There is no cancellation; the
// goroutine always runs to completion or panic.
func CatchAsync[T any](fn func() T) Result[T, error] {
	ch := make(chan Result[T, error], 1)
	go func() {
		ch <- Catch(fn)
	}()
	return <-ch
}

// CatchOnlyAsync runs fn in its own goroutine and blocks until it settles,
// capturing panics exactly like CatchOnly. A panic CatchOnly would let
// through is transported back and raised again in the caller's goroutine.
func CatchOnlyAsync[T any](fn func() T, kinds ...error) Result[T, error] {
	ch := make(chan outcome[T], 1)
	go func() {
		var out outcome[T]
		defer func() {
			ch <- out
		}()
		defer func() {
			if v := recover(); v != nil {
				err, ok := v.(error)
				if !ok || !matchesKind(err, kinds) {
					out.panicked = true
					out.panicVal = v
					return
				}
				out.res = Err[T, error](err)
			}
		}()
		out.res = Ok[T, error](fn())
	}()
	out := <-ch
	if out.panicked {
		panic(out.panicVal)
	}
	return out.res
}
