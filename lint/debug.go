package lint

import (
	"fncase/casing"
	"fncase/css"
	"fncase/utils/debug"
)

// dumpStylesheet renders parsed declarations and value trees of a checked
// stylesheet for the debug report.
func dumpStylesheet(sheet *css.Stylesheet, violations []casing.Violation) []byte {
	tw := debug.NewTreeWriter()

	tw.Line(0, "Stylesheet %q: %d declarations, %d problems", sheet.Source, len(sheet.Declarations), len(violations))
	for i := range sheet.Declarations {
		d := &sheet.Declarations[i]
		line, col := sheet.Position(d.ValueOffset)
		tw.Line(1, "Declaration %q @%d (%d:%d) important=%t", d.Property, d.ValueOffset, line, col, d.Important)
		tw.TextBlock(2, "value", d.Value)
		css.Dump(tw, 2, css.ParseValue(d.Value))
	}
	if len(violations) > 0 {
		tw.Line(0, "Problems")
		for _, v := range violations {
			tw.Line(1, "@%d (%d:%d) %s", v.Index, v.Line, v.Column, v.Message)
		}
	}
	return tw.Bytes()
}
