// Package fun provides a small set of eager higher-order operations
// over slices: Map, Filter, ZipWith, TakeWhile, All, Any, Foldl and Foldr,
// along with the integer sequence generators Range and RangeStep.
//
// Every operation takes its function argument as a Func, a function
// from one value to one value. Operations that need two values per
// step, such as ZipWith and the folds, pass them packed into a
// tuple.T2; the tuple/tuplefunc package converts ordinary
// two-argument functions into that form:
//
//	sum := fun.Foldl(0, []int{1, 2, 3}, tuplefunc.ToA_2_1(func(x, acc int) int {
//		return acc + x
//	}))
//
// All operations run to completion before returning and never
// modify their input slices. A slice returned by an operation
// is always newly allocated and never nil.
package fun
