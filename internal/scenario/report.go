package scenario

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const labelPadding = 6

var separator = strings.Repeat("-", 48)

// Measurement is the average cost of one container variant.
type Measurement struct {
	Label  string
	Millis int64
}

// Report is the result block of one scenario.
type Report struct {
	Number      int
	Description string
	Rows        []Measurement
}

// WriteTo renders the report as a text block.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	width := 0
	for _, m := range r.Rows {
		width = max(width, len(m.Label))
	}
	width += labelPadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\nTest %d (%s) Result:\n", r.Number, r.Description)
	buf.WriteString(separator + "\n")
	for i, m := range r.Rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%-*s: %d\n", width, m.Label, m.Millis)
	}
	buf.WriteString(separator + "\n")

	return buf.WriteTo(w)
}
