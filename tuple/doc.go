// Package tuple is a collection of generic struct types
// that hold a specific number of values, from T0 (no values)
// up to T10.
//
// A tuple is created with the matching MkT function
// and never changes afterwards: its fields are only
// available through the positional accessors V0, V1, etc.
// or all at once through Unpack.
//
//	t := tuple.MkT3(1, "x", true)
//	fmt.Println(t.V1()) // x
//	fmt.Println(t)      // (1, x, true)
//
// Tuples are ordinary structs, so two tuples of the same type
// can be compared with == when all their value types are comparable.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run generate.go
