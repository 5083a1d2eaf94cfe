package pia

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Print writes a human-readable table of the unpacked contents of the
// array to w, one row per item with its index, value, and bit pattern.
func Print(w io.Writer, a *Array) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"index", "value", "bits"})

	pattern := make([]byte, 0, 8)
	for i, n := 0, a.Len(); i < n; i++ {
		v := a.Get(i)

		pattern = pattern[:0]
		for b := a.BitWidth() - 1; b >= 0; b-- {
			pattern = append(pattern, '0'+(v>>b)&1)
		}

		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(int(v)),
			string(pattern),
		})
	}

	table.Render()
}
