package tuplefunc_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fun/tuple"
	"github.com/fnkit/fun/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	f0 := tuplefunc.ToA_0_1(func() string { return "none" })
	qt.Assert(t, qt.Equals(f0(tuple.MkT0()), "none"))

	f2 := tuplefunc.ToA_2_1(strings.Repeat)
	qt.Assert(t, qt.Equals(f2(tuple.MkT2("ab", 3)), "ababab"))

	f3 := tuplefunc.ToA_3_1(strings.ReplaceAll)
	qt.Assert(t, qt.Equals(f3(tuple.MkT3("aaa", "a", "b")), "bbb"))

	f4 := tuplefunc.ToA_4_1(strings.Replace)
	qt.Assert(t, qt.Equals(f4(tuple.MkT4("aaa", "a", "b", 2)), "bba"))

	f10 := tuplefunc.ToA_10_1(func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9 int) int {
		return a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7 + a8 + a9
	})
	qt.Assert(t, qt.Equals(f10(tuple.MkT10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)), 55))
}

func TestFromA(t *testing.T) {
	sum := func(t tuple.T2[int, int]) int {
		return t.V0() + t.V1()
	}
	f := tuplefunc.FromA_2_1(sum)
	qt.Assert(t, qt.Equals(f(3, 4), 7))

	f0 := tuplefunc.FromA_0_1(func(t tuple.T0) string { return t.String() })
	qt.Assert(t, qt.Equals(f0(), "()"))

	f1 := tuplefunc.FromA_1_1(func(t tuple.T1[string]) string { return t.String() })
	qt.Assert(t, qt.Equals(f1("x"), "(x)"))
}

func TestRoundTrip(t *testing.T) {
	orig := func(s string, n int, b bool) string {
		return fmt.Sprint(s, n, b)
	}
	f := tuplefunc.FromA_3_1(tuplefunc.ToA_3_1(orig))
	qt.Assert(t, qt.Equals(f("a", 1, true), orig("a", 1, true)))
}

func TestToR(t *testing.T) {
	called := 0
	f0 := tuplefunc.ToR_1_0(func(int) { called++ })
	qt.Assert(t, qt.Equals(f0(1), tuple.MkT0()))
	qt.Assert(t, qt.Equals(called, 1))

	f1 := tuplefunc.ToR_1_1(strconv.Itoa)
	qt.Assert(t, qt.Equals(f1(12), tuple.MkT1("12")))

	divmod := func(x int) (int, int) {
		return x / 3, x % 3
	}
	f2 := tuplefunc.ToR_1_2(divmod)
	qt.Assert(t, qt.Equals(f2(7), tuple.MkT2(2, 1)))
}

func TestToRE(t *testing.T) {
	f := tuplefunc.ToRE_1_1(strconv.Atoi)
	got, err := f("42")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tuple.MkT1(42)))

	got, err = f("x")
	qt.Assert(t, qt.ErrorMatches(err, `strconv.Atoi: parsing "x": invalid syntax`))
	qt.Assert(t, qt.Equals(got, tuple.T1[int]{}))

	errCut := errors.New("no separator")
	cut := func(s string) (string, string, error) {
		before, after, ok := strings.Cut(s, "=")
		if !ok {
			return before, "", errCut
		}
		return before, after, nil
	}
	f2 := tuplefunc.ToRE_1_2(cut)
	kv, err := f2("a=b")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(kv, tuple.MkT2("a", "b")))

	kv, err = f2("ab")
	qt.Assert(t, qt.ErrorIs(err, errCut))
	// The partial results are discarded.
	qt.Assert(t, qt.Equals(kv, tuple.T2[string, string]{}))
}

func ExampleToA_2_1() {
	f := tuplefunc.ToA_2_1(strings.Repeat)
	fmt.Println(f(tuple.MkT2("ab", 3)))
	// Output:
	// ababab
}
