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
	buf.WriteString("// Code generated by generate.go; DO NOT EDIT.\n\npackage tuple\n")
	for n := 0; n <= maxArity; n++ {
		genTuple(&buf, n)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile("tuple.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genTuple(w *bytes.Buffer, n int) {
	typ := fmt.Sprintf("T%d", n)
	if n == 0 {
		fmt.Fprintf(w, "\n// T0 holds no values.\ntype T0 struct{}\n")
		fmt.Fprintf(w, "\n// MkT0 returns a T0.\nfunc MkT0() T0 {\n\treturn T0{}\n}\n")
		fmt.Fprintf(w, "\n// Fields returns an empty slice.\nfunc (t T0) Fields() []any {\n\treturn []any{}\n}\n")
		fmt.Fprintf(w, "\n// String returns \"()\".\nfunc (t T0) String() string {\n\treturn format(t.Fields())\n}\n")
		return
	}
	params := list(n, "A%d", ", ")
	inst := typ + "[" + params + "]"

	if n == 1 {
		fmt.Fprintf(w, "\n// T1 holds 1 value.\n")
	} else {
		fmt.Fprintf(w, "\n// %s holds %d values.\n", typ, n)
	}
	fmt.Fprintf(w, "type %s[%s any] struct {\n", typ, params)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "\tv%d A%d\n", i, i)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\n// Mk%s returns a %s holding the given values.\n", typ, typ)
	fmt.Fprintf(w, "func Mk%s[%s any](%s) %s {\n", typ, params, list(n, "v%[1]d A%[1]d", ", "), inst)
	fmt.Fprintf(w, "\treturn %s{\n", inst)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "\t\tv%d: v%d,\n", i, i)
	}
	fmt.Fprintf(w, "\t}\n}\n")

	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "\n// V%d returns the value at position %d.\n", i, i)
		fmt.Fprintf(w, "func (t %s) V%d() A%d {\n\treturn t.v%d\n}\n", inst, i, i, i)
	}

	results := params
	if n > 1 {
		results = "(" + params + ")"
	}
	fmt.Fprintf(w, "\n// Unpack returns all the values in t.\n")
	fmt.Fprintf(w, "func (t %s) Unpack() %s {\n\treturn %s\n}\n", inst, results, list(n, "t.v%d", ", "))

	fmt.Fprintf(w, "\n// Fields returns the values in t in order.\n")
	fmt.Fprintf(w, "func (t %s) Fields() []any {\n\treturn []any{%s}\n}\n", inst, list(n, "t.v%d", ", "))

	fmt.Fprintf(w, "\n// String returns t formatted as \"(%s)\".\n", list(n, "v%d", ", "))
	fmt.Fprintf(w, "func (t %s) String() string {\n\treturn format(t.Fields())\n}\n", inst)
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
