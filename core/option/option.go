package option

import (
	"errors"
	"fmt"
)

// ErrCannotUnwrapUnsetValue is the panic value of Unwrap on an unset option.
var ErrCannotUnwrapUnsetValue = errors.New("cannot unwrap unset value")

// Maybe is an optional value of type T. The zero value is unset.
type Maybe[T any] struct {
	value T
	isSet bool
}

// Some creates an optional with a value of x.
func Some[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, isSet: true}
}

// None creates an unset optional.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNone returns true if o is unset.
func (o Maybe[T]) IsNone() bool {
	return !o.isSet
}

// Get returns the value of o and whether it is set.
func (o Maybe[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// Unwrap returns the value of o. It panics if o is unset.
func (o Maybe[T]) Unwrap() T {
	if !o.isSet {
		panic(ErrCannotUnwrapUnsetValue)
	}
	return o.value
}

// OrElse returns the value of o, or dflt if o is unset.
func (o Maybe[T]) OrElse(dflt T) T {
	if o.isSet {
		return o.value
	}
	return dflt
}

// Map applies f to the value of o, if set.
func Map[T, U any](o Maybe[T], f func(T) U) Maybe[U] {
	if !o.isSet {
		return None[U]()
	}
	return Some(f(o.value))
}

func (o Maybe[T]) String() string {
	if !o.isSet {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
