//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 10

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by generate.go; DO NOT EDIT.\n\npackage tuplefunc\n\nimport \"github.com/fnkit/fun/tuple\"\n")
	for n := 0; n <= maxArity; n++ {
		genToA(&buf, n)
		genFromA(&buf, n)
	}
	for m := 0; m <= maxArity; m++ {
		genToR(&buf, m)
	}
	for m := 1; m <= maxArity; m++ {
		genToRE(&buf, m)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuplefunc.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genToA(w *bytes.Buffer, n int) {
	tparams := typeParams(n, "A%d", "R")
	args := list(n, "A%d", ", ")
	tt := tupleType(n, args)
	fmt.Fprintf(w, "\n// ToA_%d_1 converts a function with %s to\n", n, plural(n, "argument"))
	fmt.Fprintf(w, "// a function that takes its arguments as a single %s.\n", tupleName(n))
	fmt.Fprintf(w, "func ToA_%d_1[%s any](f func(%s) R) func(%s) R {\n", n, tparams, args, tt)
	if n == 0 {
		fmt.Fprintf(w, "\treturn func(%s) R {\n\t\treturn f()\n\t}\n}\n", tt)
		return
	}
	fmt.Fprintf(w, "\treturn func(t %s) R {\n\t\treturn f(t.Unpack())\n\t}\n}\n", tt)
}

func genFromA(w *bytes.Buffer, n int) {
	tparams := typeParams(n, "A%d", "R")
	args := list(n, "A%d", ", ")
	tt := tupleType(n, args)
	fmt.Fprintf(w, "\n// FromA_%d_1 is the inverse of ToA_%d_1.\n", n, n)
	fmt.Fprintf(w, "func FromA_%d_1[%s any](f func(%s) R) func(%s) R {\n", n, tparams, tt, args)
	fmt.Fprintf(w, "\treturn func(%s) R {\n", list(n, "a%[1]d A%[1]d", ", "))
	fmt.Fprintf(w, "\t\treturn f(tuple.Mk%s(%s))\n\t}\n}\n", tupleName(n)[len("tuple."):], list(n, "a%d", ", "))
}

func genToR(w *bytes.Buffer, m int) {
	tparams := "A"
	if m > 0 {
		tparams += ", " + list(m, "R%d", ", ")
	}
	rets := list(m, "R%d", ", ")
	tt := tupleType(m, rets)
	fresults := ""
	switch {
	case m == 1:
		fresults = " " + rets
	case m > 1:
		fresults = " (" + rets + ")"
	}
	fmt.Fprintf(w, "\n// ToR_1_%d converts a function with %s to\n", m, plural(m, "result"))
	fmt.Fprintf(w, "// a function that returns its results as a single %s.\n", tupleName(m))
	fmt.Fprintf(w, "func ToR_1_%d[%s any](f func(A)%s) func(A) %s {\n", m, tparams, fresults, tt)
	fmt.Fprintf(w, "\treturn func(a A) %s {\n", tt)
	if m == 0 {
		fmt.Fprintf(w, "\t\tf(a)\n\t\treturn tuple.MkT0()\n\t}\n}\n")
		return
	}
	fmt.Fprintf(w, "\t\treturn tuple.MkT%d[%s](f(a))\n\t}\n}\n", m, rets)
}

func genToRE(w *bytes.Buffer, m int) {
	rets := list(m, "R%d", ", ")
	tt := tupleType(m, rets)
	fmt.Fprintf(w, "\n// ToRE_1_%d converts a function with %s and an error to\n", m, plural(m, "result"))
	fmt.Fprintf(w, "// a function that returns its non-error results as a single %s.\n", tupleName(m))
	fmt.Fprintf(w, "// When f fails, the zero tuple is returned along with the error.\n")
	fmt.Fprintf(w, "func ToRE_1_%d[A, %s any](f func(A) (%s, error)) func(A) (%s, error) {\n", m, rets, rets, tt)
	fmt.Fprintf(w, "\treturn func(a A) (%s, error) {\n", tt)
	fmt.Fprintf(w, "\t\t%s, err := f(a)\n", list(m, "r%d", ", "))
	fmt.Fprintf(w, "\t\tif err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n", tt)
	fmt.Fprintf(w, "\t\treturn tuple.MkT%d(%s), nil\n\t}\n}\n", m, list(m, "r%d", ", "))
}

func typeParams(n int, pattern, extra string) string {
	if n == 0 {
		return extra
	}
	return list(n, pattern, ", ") + ", " + extra
}

func tupleName(n int) string {
	return fmt.Sprintf("tuple.T%d", n)
}

func tupleType(n int, args string) string {
	if n == 0 {
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", n, args)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// list returns n copies of pattern, each formatted
// with its index, joined by sep.
func list(n int, pattern, sep string) string {
	elems := make([]string, n)
	for i := range elems {
		elems[i] = fmt.Sprintf(pattern, i)
	}
	return strings.Join(elems, sep)
}
