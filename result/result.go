/*
Package result provides a type for the outcome of a computation that may fail.

A Result is either Ok, carrying a value, or Err, carrying an error—never
both and never neither. Query evaluation in the sandbox produces a Result
of a node selection; the reporter matches on it to render either a list
of nodes or an error message.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

import "errors"

// ErrNilError is the error of an Err result constructed from a nil error.
var ErrNilError = errors.New("result: Err constructed with nil error")

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err must not be nil; a nil error is replaced by
// ErrNilError to keep Ok and Err mutually exclusive.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

// IsOk is true for results constructed with Ok.
func (r result[T]) IsOk() bool {
	return r.err == nil
}

// Get unpacks a result in the usual Go (value, error) fashion.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

// Map applies f to the value of an Ok result; Err results are passed through.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher is used for matching results in switch statements:
//
//    switch m := r.Match(); m {
//    case m.Ok(&v):
//        …
//    case m.Err(&err):
//        …
//    }
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher holds a pointer to keep matchers comparable for values of
// non-comparable type T (e.g., slices).
type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
