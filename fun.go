package fun

import (
	"fmt"
	"slices"

	"github.com/fnkit/fun/tuple"
)

// Func is a function from a value of type X to a value of type Y.
// Any func(X) Y can be used where a Func[X, Y] is expected.
type Func[X, Y any] func(X) Y

// Map returns the result of calling f on each element of xs,
// in order.
func Map[X, Y any](xs []X, f Func[X, Y]) []Y {
	out := make([]Y, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter returns the elements of xs for which f returns true,
// in their original order.
func Filter[X any](xs []X, f Func[X, bool]) []X {
	out := []X{}
	for _, x := range xs {
		if f(x) {
			out = append(out, x)
		}
	}
	return out
}

// ZipWith calls f on each pair of elements at the same index
// in xs and ys and returns the results.
// The result is as long as the shorter of xs and ys;
// the excess elements of the longer one are ignored.
func ZipWith[X, Y, Z any](xs []X, ys []Y, f Func[tuple.T2[X, Y], Z]) []Z {
	out := make([]Z, min(len(xs), len(ys)))
	for i := range out {
		out[i] = f(tuple.MkT2(xs[i], ys[i]))
	}
	return out
}

// TakeWhile returns the longest prefix of xs whose elements
// all satisfy f. f is not called on any element after
// the first one that fails.
func TakeWhile[X any](xs []X, f Func[X, bool]) []X {
	out := []X{}
	for _, x := range xs {
		if !f(x) {
			break
		}
		out = append(out, x)
	}
	return out
}

// All reports whether f returns true for every element of xs.
// It stops at the first element for which f returns false.
// All of an empty slice is true.
func All[X any](xs []X, f Func[X, bool]) bool {
	for _, x := range xs {
		if !f(x) {
			return false
		}
	}
	return true
}

// Any reports whether f returns true for at least one element of xs.
// It stops at the first element for which f returns true.
// Any of an empty slice is false.
func Any[X any](xs []X, f Func[X, bool]) bool {
	for _, x := range xs {
		if f(x) {
			return true
		}
	}
	return false
}

// Foldl reduces xs from left to right. Starting with acc,
// it calls f with each element paired with the current
// accumulator and uses the result as the next accumulator.
// It returns the final accumulator, or acc itself when
// xs is empty.
func Foldl[X, A any](acc A, xs []X, f Func[tuple.T2[X, A], A]) A {
	for _, x := range xs {
		acc = f(tuple.MkT2(x, acc))
	}
	return acc
}

// Foldr is like Foldl but visits the elements of xs
// from last to first. The element is still the
// first value of the tuple passed to f.
func Foldr[X, A any](acc A, xs []X, f Func[tuple.T2[X, A], A]) A {
	for _, x := range slices.Backward(xs) {
		acc = f(tuple.MkT2(x, acc))
	}
	return acc
}

// String returns the default textual form of x, as
// produced by fmt.Sprint. It is useful as an argument to Map:
//
//	fun.Map([]int{1, 2}, fun.String[int]) // []string{"1", "2"}
func String[X any](x X) string {
	return fmt.Sprint(x)
}
