// Package casing implements "function-name-case" check: function names
// inside property values must be all lower case (keeping canonical camel case
// of known transform functions) or all upper case.
package casing

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"fncase/common"
	"fncase/css"
)

// RuleName identifies reported problems.
const RuleName = "function-name-case"

// Violation is a single function name which does not match expected case.
type Violation struct {
	Rule     string          `json:"rule" yaml:"rule"`
	Message  string          `json:"message" yaml:"message"`
	Severity common.Severity `json:"severity" yaml:"severity"`
	Actual   string          `json:"actual" yaml:"actual"`
	Expected string          `json:"expected" yaml:"expected"`
	// Index is byte offset of the function name in the stylesheet text:
	// declaration value offset plus node offset inside the value.
	Index  int `json:"index" yaml:"index"`
	Line   int `json:"line,omitempty" yaml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty"`

	Declaration *css.Declaration `json:"-" yaml:"-"`
}

// Message formats problem description.
func Message(actual, expected string) string {
	return fmt.Sprintf(`Expected "%s" to be "%s"`, actual, expected)
}

// Options are validated rule settings.
type Options struct {
	Expectation common.Expectation
	Severity    common.Severity
	Ignore      *Matcher
}

// NewOptions validates rule settings and returns ready to use options or
// all detected problems combined.
func NewOptions(expectation common.Expectation, severity common.Severity, ignoreFunctions []string) (*Options, error) {
	var err error
	if !expectation.IsValid() {
		err = multierr.Append(err, fmt.Errorf("%s: expectation must be one of %v, got %s", RuleName, common.ExpectationNames(), expectation))
	}
	if !severity.IsValid() {
		err = multierr.Append(err, fmt.Errorf("%s: severity must be one of %v, got %s", RuleName, common.SeverityNames(), severity))
	}
	ignore, e := NewMatcher(ignoreFunctions)
	if e != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", RuleName, e))
	}
	if err != nil {
		return nil, err
	}
	return &Options{Expectation: expectation, Severity: severity, Ignore: ignore}, nil
}

// Checker applies rule to declarations. It holds no mutable state and may
// be shared.
type Checker struct {
	opts Options
	log  *zap.Logger
}

// NewChecker creates checker for validated options.
func NewChecker(opts *Options, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{opts: *opts, log: log.Named("casing")}
}

// Check returns violations for every declaration of the stylesheet in
// document order, with line and column filled in.
func (c *Checker) Check(sheet *css.Stylesheet) []Violation {
	var res []Violation
	for i := range sheet.Declarations {
		for _, v := range c.CheckDeclaration(&sheet.Declarations[i]) {
			v.Line, v.Column = sheet.Position(v.Index)
			res = append(res, v)
		}
	}
	if len(res) > 0 {
		c.log.Debug("Function name case problems", zap.String("source", sheet.Source), zap.Int("count", len(res)))
	}
	return res
}

// CheckDeclaration walks parsed value of a single declaration depth first and
// reports function names with unexpected case.
func (c *Checker) CheckDeclaration(decl *css.Declaration) []Violation {
	var res []Violation
	css.Walk(css.ParseValue(decl.Value), func(n *css.Node) {
		if !IsStandardSyntaxFunction(n) {
			return
		}
		name := n.Value
		if c.opts.Ignore.Match(name) {
			c.log.Debug("Ignoring function", zap.String("name", name), zap.String("property", decl.Property))
			return
		}
		expected := Expected(name, c.opts.Expectation)
		if name == expected {
			return
		}
		res = append(res, Violation{
			Rule:        RuleName,
			Message:     Message(name, expected),
			Severity:    c.opts.Severity,
			Actual:      name,
			Expected:    expected,
			Index:       decl.ValueOffset + n.SourceIndex,
			Declaration: decl,
		})
	})
	return res
}
