package vector

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// TableLine frames Table and Print output.
const TableLine = "------------------------------------------------------------------"

// printRows limits how many components Print lists.
const printRows = 24

// Table formats v for display/logging: a title, then one component per line
// at full precision.
func (v BigVector) Table(title string) string {
	sb := &strings.Builder{}
	sb.WriteString(TableLine + "\n")
	sb.WriteString(title + "\n")
	for _, c := range v.values {
		fmt.Fprintf(sb, "%s\n", c.String())
	}
	sb.WriteString(TableLine)
	return sb.String()
}

// Print writes a trimmed, indexed view of v to w. Each line shows the decimal
// component next to the IEEE-754 bit pattern of its float64 approximation,
// which makes the precision lost by Float64s visible.
//
// When debug is true, output is colored (ANSI) to visually distinguish debug
// vectors.
func Print(w io.Writer, v BigVector, title string, debug bool) {
	if debug {
		fmt.Fprint(w, "\033[33m")
	}
	fmt.Fprintln(w, TableLine)
	fmt.Fprintln(w, title, " (", len(v.values), ")")
	max := len(v.values)
	if max > printRows {
		max = printRows
	}
	for i := 0; i < max; i++ {
		c := v.values[i]
		fmt.Fprintf(w, "[%03d]  %s  %016X\n", i, c.String(), math.Float64bits(c.InexactFloat64()))
	}
	if len(v.values) > max {
		fmt.Fprintln(w, "...")
	}
	fmt.Fprintln(w, TableLine)
	if debug {
		fmt.Fprint(w, "\033[0m")
	}
}
