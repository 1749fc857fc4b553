// File: view.go
// Role: Diagnostic text rendering of the adjacency rows.
//
// Format (one line per vertex, ascending index):
//
//	(i): b[N-1] ... b[1] b[0]
//
// Bits are written most-significant first, so the character for vertex 0
// is the last one on the line. The layout is for humans; it is not a
// stable interchange format.

package core

import (
	"io"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Print writes every adjacency row to w, one "(i): <bits>" line per vertex.
// Each line is a single unbuffered Write. Print stops at the first write
// error and returns it; the lines before it have already reached w.
func (g *Graph) Print(w io.Writer) error {
	for i, row := range g.rows {
		line := "(" + strconv.Itoa(i) + "): " + renderRow(row, g.n) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	return nil
}

// String renders the graph in Print's format.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Print(&sb)

	return sb.String()
}

// RowString renders the adjacency row of v (MSB first), or "" if v is out of range.
func (g *Graph) RowString(v int) string {
	if !g.inRange(v) {
		return ""
	}

	return renderRow(g.rows[v], g.n)
}

// renderRow writes the n low bits of row, highest index first.
func renderRow(row *bitset.BitSet, n int) string {
	buf := make([]byte, n)
	for j := 0; j < n; j++ {
		c := byte('0')
		if row.Test(uint(j)) {
			c = '1'
		}
		buf[n-1-j] = c
	}

	return string(buf)
}
