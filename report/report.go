// Package report collects function name case problems found in all checked
// sources and renders them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"fncase/casing"
	"fncase/common"
)

// Entry is a single problem together with its location.
type Entry struct {
	Source           string `json:"source" yaml:"source"`
	Property         string `json:"property" yaml:"property"`
	casing.Violation `yaml:",inline"`
}

// NewEntries attaches source name to violations.
func NewEntries(source string, violations []casing.Violation) []Entry {
	res := make([]Entry, 0, len(violations))
	for _, v := range violations {
		e := Entry{Source: source, Violation: v}
		if v.Declaration != nil {
			e.Property = v.Declaration.Property
		}
		res = append(res, e)
	}
	return res
}

// Sort orders entries by source name (natural order, so "ch2.css" goes
// before "ch10.css") and then by position in the source.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]
		if a.Source != b.Source {
			return natural.Less(a.Source, b.Source)
		}
		return a.Index < b.Index
	})
}

// Count returns number of problems for each severity.
func Count(entries []Entry) (errors, warnings int) {
	for i := range entries {
		switch entries[i].Severity {
		case common.SeverityError:
			errors++
		case common.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Write renders entries in requested format.
func Write(w io.Writer, entries []Entry, format common.OutputFmt) error {
	switch format {
	case common.OutputFmtText:
		return writeText(w, entries)
	case common.OutputFmtJson:
		if entries == nil {
			entries = []Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case common.OutputFmtYaml:
		if entries == nil {
			entries = []Entry{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeText(w io.Writer, entries []Entry) error {
	for i := range entries {
		e := &entries[i]
		sev := ""
		if e.Severity == common.SeverityWarning {
			sev = "warning: "
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d  %s%s  (%s)\n", e.Source, e.Line, e.Column, sev, e.Message, e.Rule); err != nil {
			return err
		}
	}
	return nil
}
