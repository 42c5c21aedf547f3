package casing

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

// Matcher tests function names against ignore list. Entries are literal
// names or regular expressions written as "/re/" or "/re/i".
type Matcher struct {
	literals []string
	res      []*regexp.Regexp
}

// NewMatcher compiles ignore list. All bad expressions are reported in a
// single error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	var err error
	for i, p := range patterns {
		re, isRe, e := CompilePattern(p)
		switch {
		case e != nil:
			err = multierr.Append(err, fmt.Errorf("ignore pattern #%d (%s): %w", i, p, e))
		case isRe:
			m.res = append(m.res, re)
		default:
			m.literals = append(m.literals, p)
		}
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CompilePattern returns compiled expression when pattern is in "/re/" or
// "/re/i" form, otherwise isRe is false and pattern should be compared
// literally.
func CompilePattern(pattern string) (re *regexp.Regexp, isRe bool, err error) {
	var (
		source string
		flags  string
	)
	switch {
	case len(pattern) >= 2 && pattern[0] == '/' && pattern[len(pattern)-1] == '/':
		source = pattern[1 : len(pattern)-1]
	case len(pattern) >= 3 && pattern[0] == '/' && strings.HasSuffix(pattern, "/i"):
		source, flags = pattern[1:len(pattern)-2], "(?i)"
	default:
		return nil, false, nil
	}
	if re, err = regexp.Compile(flags + source); err != nil {
		return nil, true, err
	}
	return re, true, nil
}

// Len returns number of entries in the list.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.literals) + len(m.res)
}

// Match reports whether name is ignored. Empty or nil matcher never matches.
func (m *Matcher) Match(name string) bool {
	if m.Len() == 0 {
		return false
	}
	for _, l := range m.literals {
		if name == l {
			return true
		}
	}
	for _, re := range m.res {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
