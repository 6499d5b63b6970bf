package fun_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fun"
)

var rangeStepTests = []struct {
	testName         string
	start, end, step int
	want             []int
}{{
	testName: "StepOne",
	start:    1,
	end:      5,
	step:     1,
	want:     []int{1, 2, 3, 4, 5},
}, {
	testName: "StepThree",
	start:    0,
	end:      10,
	step:     3,
	want:     []int{0, 3, 6, 9},
}, {
	testName: "EndReached",
	start:    0,
	end:      9,
	step:     3,
	want:     []int{0, 3, 6, 9},
}, {
	testName: "SingleElement",
	start:    4,
	end:      4,
	step:     7,
	want:     []int{4},
}, {
	testName: "StartAfterEnd",
	start:    5,
	end:      1,
	step:     1,
	want:     []int{},
}, {
	testName: "NegativeStep",
	start:    0,
	end:      10,
	step:     -1,
	want:     []int{},
}, {
	testName: "NegativeStepStartAfterEnd",
	start:    10,
	end:      0,
	step:     -2,
	want:     []int{},
}, {
	testName: "Negative",
	start:    -3,
	end:      2,
	step:     2,
	want:     []int{-3, -1, 1},
}, {
	testName: "NearMaxInt",
	start:    math.MaxInt - 1,
	end:      math.MaxInt,
	step:     5,
	want:     []int{math.MaxInt - 1},
}, {
	testName: "HugeStep",
	start:    math.MinInt,
	end:      math.MaxInt,
	step:     math.MaxInt,
	want:     []int{math.MinInt, -1, math.MaxInt - 1},
}}

func TestRangeStep(t *testing.T) {
	for _, test := range rangeStepTests {
		t.Run(test.testName, func(t *testing.T) {
			qt.Assert(t, qt.DeepEquals(fun.RangeStep(test.start, test.end, test.step), test.want))
		})
	}
}

func TestRange(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(fun.Range(1, 5), []int{1, 2, 3, 4, 5}))
	qt.Assert(t, qt.DeepEquals(fun.Range(5, 1), []int{}))
	qt.Assert(t, qt.DeepEquals(fun.Range(-1, 1), []int{-1, 0, 1}))
	qt.Assert(t, qt.DeepEquals(fun.Range(math.MaxInt, math.MaxInt), []int{math.MaxInt}))
}

func TestRangeStepZero(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		fun.RangeStep(0, 10, 0)
	}, `invalid argument: zero step in RangeStep\(0, 10, 0\)`))

	// Even an empty range is rejected.
	err := recoverError(func() {
		fun.RangeStep(10, 0, 0)
	})
	qt.Assert(t, qt.ErrorIs(err, fun.ErrInvalidArgument))
}

func TestRangeStepTooLarge(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		fun.Range(math.MinInt, math.MaxInt)
	}, `invalid argument: too many values in RangeStep\(-[0-9]+, [0-9]+, 1\)`))

	err := recoverError(func() {
		fun.RangeStep(math.MinInt, math.MaxInt, 1)
	})
	qt.Assert(t, qt.ErrorIs(err, fun.ErrInvalidArgument))

	err = recoverError(func() {
		fun.RangeStep(-1, math.MaxInt, 1)
	})
	qt.Assert(t, qt.ErrorIs(err, fun.ErrInvalidArgument))
}

// recoverError calls f and returns the error it panics with.
func recoverError(f func()) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			err = errors.New("no panic")
			return
		}
		err = e.(error)
	}()
	f()
	return nil
}
