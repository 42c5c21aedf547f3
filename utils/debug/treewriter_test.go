package debug

import (
	"testing"
)

func TestTreeWriter_Empty(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Errorf("String() = %q, want empty", tw.String())
	}
	if tw.Lines() != 0 {
		t.Errorf("Lines() = %d, want 0", tw.Lines())
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "function", want: "function\n"},
		{name: "depth 1", depth: 1, format: "word", want: "  word\n"},
		{name: "depth 2", depth: 2, format: "space", want: "    space\n"},
		{name: "negative depth", depth: -3, format: "root", want: "root\n"},
		{name: "with formatting", depth: 1, format: "%s @%d", args: []any{"function", 7}, want: "  function @7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{name: "plain", depth: 0, label: "word @0", value: "10deg", want: "word @0: \"10deg\"\n"},
		{name: "empty value", depth: 1, label: "string @4", value: "", want: "  string @4: \n"},
		{name: "control characters", depth: 0, label: "comment @2", value: "a\tb\n", want: "comment @2: \"a\\tb\\n\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Accumulates(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "function @0 %q", "rgba")
	tw.TextBlock(1, "word @5", "0")
	tw.Line(1, "div @6")

	want := "function @0 \"rgba\"\n  word @5: \"0\"\n  div @6\n"
	if got := string(tw.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
	if tw.Lines() != 3 {
		t.Errorf("Lines() = %d, want 3", tw.Lines())
	}
}
