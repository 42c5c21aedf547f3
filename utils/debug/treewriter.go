// Package debug renders indented trees for debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates indented lines, one per tree node.
type TreeWriter struct {
	sb    strings.Builder
	lines int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

// String returns everything written so far.
func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// Bytes is String for callers storing the result in the report.
func (tw *TreeWriter) Bytes() []byte {
	return []byte(tw.sb.String())
}

// Lines returns number of lines written.
func (tw *TreeWriter) Lines() int {
	return tw.lines
}

// Line writes formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.sb, format, args...)
	tw.end()
}

// TextBlock writes "label: value" with value quoted so whitespace and
// control characters stay visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	if value != "" {
		value = strconv.Quote(value)
	}
	tw.sb.WriteString(value)
	tw.end()
}

func (tw *TreeWriter) pad(depth int) {
	tw.sb.WriteString(strings.Repeat(indent, max(depth, 0)))
}

func (tw *TreeWriter) end() {
	tw.sb.WriteByte('\n')
	tw.lines++
}
