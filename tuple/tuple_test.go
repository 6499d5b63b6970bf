package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/fnkit/fun/tuple"
)

func TestString(t *testing.T) {
	tests := []struct {
		testName string
		t        fmt.Stringer
		want     string
	}{{
		testName: "T0",
		t:        tuple.MkT0(),
		want:     "()",
	}, {
		testName: "T1",
		t:        tuple.MkT1("a"),
		want:     "(a)",
	}, {
		testName: "T2",
		t:        tuple.MkT2(1, 2.5),
		want:     "(1, 2.5)",
	}, {
		testName: "T3",
		t:        tuple.MkT3(1, "x", true),
		want:     "(1, x, true)",
	}, {
		testName: "T4",
		t:        tuple.MkT4('a', "b", 3, false),
		want:     "(97, b, 3, false)",
	}, {
		testName: "T5",
		t:        tuple.MkT5(1, 2, 3, 4, 5),
		want:     "(1, 2, 3, 4, 5)",
	}, {
		testName: "T6",
		t:        tuple.MkT6(1, 2, 3, 4, 5, 6),
		want:     "(1, 2, 3, 4, 5, 6)",
	}, {
		testName: "T7",
		t:        tuple.MkT7(1, 2, 3, 4, 5, 6, 7),
		want:     "(1, 2, 3, 4, 5, 6, 7)",
	}, {
		testName: "T8",
		t:        tuple.MkT8(1, 2, 3, 4, 5, 6, 7, 8),
		want:     "(1, 2, 3, 4, 5, 6, 7, 8)",
	}, {
		testName: "T9",
		t:        tuple.MkT9(1, 2, 3, 4, 5, 6, 7, 8, 9),
		want:     "(1, 2, 3, 4, 5, 6, 7, 8, 9)",
	}, {
		testName: "T10",
		t:        tuple.MkT10("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"),
		want:     "(a, b, c, d, e, f, g, h, i, j)",
	}, {
		testName: "nested",
		t:        tuple.MkT2(tuple.MkT2(1, "x"), tuple.MkT0()),
		want:     "((1, x), ())",
	}, {
		testName: "nil",
		t:        tuple.MkT2[error, []int](nil, nil),
		want:     "(<nil>, [])",
	}}
	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			qt.Assert(t, qt.Equals(test.t.String(), test.want))
			qt.Assert(t, qt.Equals(fmt.Sprint(test.t), test.want))
		})
	}
}

func TestAccessors(t *testing.T) {
	t3 := tuple.MkT3(1, "x", true)
	qt.Assert(t, qt.Equals(t3.V0(), 1))
	qt.Assert(t, qt.Equals(t3.V1(), "x"))
	qt.Assert(t, qt.Equals(t3.V2(), true))

	t10 := tuple.MkT10(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	got := []int{
		t10.V0(), t10.V1(), t10.V2(), t10.V3(), t10.V4(),
		t10.V5(), t10.V6(), t10.V7(), t10.V8(), t10.V9(),
	}
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
}

func TestUnpack(t *testing.T) {
	a, b := tuple.MkT2("a", 2).Unpack()
	qt.Assert(t, qt.Equals(a, "a"))
	qt.Assert(t, qt.Equals(b, 2))

	qt.Assert(t, qt.Equals(tuple.MkT1(99).Unpack(), 99))

	v0, v1, v2, v3, v4 := tuple.MkT5(0, "1", 2.0, '3', uint8(4)).Unpack()
	qt.Assert(t, qt.Equals(v0, 0))
	qt.Assert(t, qt.Equals(v1, "1"))
	qt.Assert(t, qt.Equals(v2, 2.0))
	qt.Assert(t, qt.Equals(v3, '3'))
	qt.Assert(t, qt.Equals(v4, uint8(4)))
}

func TestFields(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(tuple.MkT0().Fields(), []any{}))
	qt.Assert(t, qt.DeepEquals(tuple.MkT3(1, "x", true).Fields(), []any{1, "x", true}))
	qt.Assert(t, qt.HasLen(tuple.MkT10(0, 0, 0, 0, 0, 0, 0, 0, 0, 0).Fields(), 10))
}

func TestEquality(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MkT2(1, "a"), tuple.MkT2(1, "a")))
	qt.Assert(t, qt.Not(qt.Equals(tuple.MkT2(1, "a"), tuple.MkT2(1, "b"))))
	qt.Assert(t, qt.Equals(tuple.MkT0(), tuple.T0{}))

	// The zero value holds zero values.
	var z tuple.T3[int, string, bool]
	qt.Assert(t, qt.Equals(z, tuple.MkT3(0, "", false)))

	// Tuples can be used as map keys.
	m := map[tuple.T2[string, int]]bool{
		tuple.MkT2("a", 1): true,
	}
	qt.Assert(t, qt.IsTrue(m[tuple.MkT2("a", 1)]))
	qt.Assert(t, qt.IsFalse(m[tuple.MkT2("a", 2)]))
}

func ExampleMkT3() {
	t := tuple.MkT3(1, "x", true)
	fmt.Println(t.V0(), t.V1(), t.V2())
	fmt.Println(t)
	// Output:
	// 1 x true
	// (1, x, true)
}

func ExampleT2_Unpack() {
	name, age := tuple.MkT2("gopher", 15).Unpack()
	fmt.Printf("%s is %d\n", name, age)
	// Output:
	// gopher is 15
}
