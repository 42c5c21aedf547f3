package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"fncase/casing"
	"fncase/common"
	"fncase/css"
)

func violation(actual, expected string, index int, sev common.Severity) casing.Violation {
	return casing.Violation{
		Rule:     casing.RuleName,
		Message:  casing.Message(actual, expected),
		Severity: sev,
		Actual:   actual,
		Expected: expected,
		Index:    index,
		Line:     1,
		Column:   index + 1,
	}
}

func sample() []Entry {
	decl := &css.Declaration{Property: "color"}
	v := violation("RGBA", "rgba", 9, common.SeverityError)
	v.Declaration = decl
	return []Entry{
		{Source: "ch10.css", Violation: violation("CALC", "calc", 3, common.SeverityError)},
		{Source: "ch2.css", Property: "width", Violation: violation("Max", "max", 20, common.SeverityWarning)},
		{Source: "ch2.css", Property: "color", Violation: v},
	}
}

func TestNewEntries(t *testing.T) {
	decl := &css.Declaration{Property: "transform"}
	v := violation("ROTATEX", "rotateX", 11, common.SeverityError)
	v.Declaration = decl

	entries := NewEntries("a.css", []casing.Violation{v, violation("X", "x", 1, common.SeverityError)})
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Source != "a.css" || entries[0].Property != "transform" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Property != "" {
		t.Errorf("entries[1].Property = %q, want empty", entries[1].Property)
	}
	if len(NewEntries("b.css", nil)) != 0 {
		t.Error("Expected no entries for no violations")
	}
}

func TestSort(t *testing.T) {
	entries := sample()
	Sort(entries)

	want := []struct {
		source string
		index  int
	}{
		{"ch2.css", 9},
		{"ch2.css", 20},
		{"ch10.css", 3},
	}
	for i, w := range want {
		if entries[i].Source != w.source || entries[i].Index != w.index {
			t.Errorf("entries[%d] = %s@%d, want %s@%d", i, entries[i].Source, entries[i].Index, w.source, w.index)
		}
	}
}

func TestCount(t *testing.T) {
	errs, warns := Count(sample())
	if errs != 2 || warns != 1 {
		t.Errorf("Count() = %d, %d, want 2, 1", errs, warns)
	}
	errs, warns = Count(nil)
	if errs != 0 || warns != 0 {
		t.Errorf("Count(nil) = %d, %d, want 0, 0", errs, warns)
	}
}

func TestWrite_Text(t *testing.T) {
	entries := sample()
	Sort(entries)

	var buf bytes.Buffer
	if err := Write(&buf, entries, common.OutputFmtText); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := `ch2.css:1:10  Expected "RGBA" to be "rgba"  (function-name-case)
ch2.css:1:21  warning: Expected "Max" to be "max"  (function-name-case)
ch10.css:1:4  Expected "CALC" to be "calc"  (function-name-case)
`
	if buf.String() != want {
		t.Errorf("Write() text =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample()[2:], common.OutputFmtJson); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	checks := map[string]any{
		"source":   "ch2.css",
		"property": "color",
		"rule":     "function-name-case",
		"message":  `Expected "RGBA" to be "rgba"`,
		"severity": "error",
		"actual":   "RGBA",
		"expected": "rgba",
		"index":    float64(9),
		"line":     float64(1),
		"column":   float64(10),
	}
	for k, want := range checks {
		if got[0][k] != want {
			t.Errorf("%s = %v, want %v", k, got[0][k], want)
		}
	}
	if _, ok := got[0]["Declaration"]; ok {
		t.Error("declaration should not be serialized")
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample()[1:2], common.OutputFmtYaml); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0]["severity"] != "warning" || got[0]["actual"] != "Max" || got[0]["index"] != 20 {
		t.Errorf("unexpected yaml entry: %v", got[0])
	}
}

func TestWrite_Empty(t *testing.T) {
	tests := []struct {
		format common.OutputFmt
		want   string
	}{
		{common.OutputFmtText, ""},
		{common.OutputFmtJson, "[]\n"},
		{common.OutputFmtYaml, "[]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, nil, tt.format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Write() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, nil, common.OutputFmt(42))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Write() error = %v, want unsupported format", err)
	}
}
