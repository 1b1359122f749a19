// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds generic slice helpers used by the TUI layout code.
package slicest

// Reduce

// Reduce reduces slice S to type U, starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	result, _ := ReduceXDI(s, init, func(_ int, t T, u U) (U, error) {
		return fn(t, u), nil
	})
	return result
}

// ReduceXDI reduces slice S to type U with initial value and error propagation.
// - X: Stops on failure and returns error.
// - D: Uses init parameter as starting accumulator.
// - I: Provides index to callback.
func ReduceXDI[T any, S ~[]T, U any](s S, init U, fn func(int, T, U) (U, error)) (U, error) {
	var zero U
	for i, t := range s {
		var err error
		init, err = fn(i, t, init)
		if err != nil {
			return zero, err
		}
	}
	return init, nil
}

// Map

func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result, _ := MapXI(s, func(i int, t T) (U, error) {
		return fn(i, t), nil
	})
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}
