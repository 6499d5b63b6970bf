package fun

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the error that a function panics with,
// possibly wrapped, when it is called with arguments
// that it cannot work with.
var ErrInvalidArgument = errors.New("invalid argument")

// Range returns the integers from start to end inclusive,
// in ascending order. It returns an empty slice if start > end.
func Range(start, end int) []int {
	return RangeStep(start, end, 1)
}

// RangeStep returns start, start+step, start+2*step and so on,
// for as long as the values do not exceed end.
// It returns an empty slice if start > end or step is negative.
//
// RangeStep panics with an error wrapping ErrInvalidArgument
// if step is zero or if the range holds too many values
// to fit in a slice.
func RangeStep(start, end, step int) []int {
	if step == 0 {
		panic(fmt.Errorf("%w: zero step in RangeStep(%d, %d, %d)", ErrInvalidArgument, start, end, step))
	}
	if start > end || step < 0 {
		return []int{}
	}
	// The difference between end and start always fits
	// in a uint even when it overflows int.
	d := uint(end-start) / uint(step)
	if d >= math.MaxInt {
		panic(fmt.Errorf("%w: too many values in RangeStep(%d, %d, %d)", ErrInvalidArgument, start, end, step))
	}
	out := make([]int, int(d)+1)
	for i := range out {
		out[i] = start + i*step
	}
	return out
}
