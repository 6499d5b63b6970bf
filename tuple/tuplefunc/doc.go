// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and single-argument, single-return functions.
// This makes it trivial to pass ordinary Go functions to generic operations
// that are designed to operate on single-argument functions, such as
// fun.ZipWith and fun.Foldl.
//
// For functions with as many argument or return parameters as can be represented by
// the tuple package, this package provides a function to convert to that form.
//
// The names of most functions in this package match the following regular expression:
//
//	(To|From)(A|RE?)_[0-9]+_[0-9]+
//
// Each letter represents one aspect of the function that's being converted.
//
//	A - argument parameters
//	R - return parameters
//	E - error return
//
// The first number is the number of argument parameters;
// the second number is the number of return parameters (not including error for an E function).
//
// So, for example:
//
//	ToRE_1_3
//
// converts from (for some types A, R0, R1 and R2)
//
//	func(A) (R0, R1, R2, error)
//
// to:
//
//	func(A) (tuple.T3[R0, R1, R2], error)
//
// and
//
//	ToA_2_1
//
// converts from
//
//	func(A0, A1) R
//
// to:
//
//	func(tuple.T2[A0, A1]) R
//
// FromA functions do the reverse of the corresponding ToA functions.
package tuplefunc

//go:generate go run generate.go
