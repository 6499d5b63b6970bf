package tuple

import (
	"fmt"
	"strings"
)

// format renders vals as a parenthesized, comma-separated list.
// Each value is formatted as by fmt.Sprint.
func format(vals []any) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}
