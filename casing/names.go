package casing

import (
	"strings"

	"fncase/common"
	"fncase/css"
)

// Functions whose lower case form keeps camel case spelling.
var camelCaseFunctionNames = []string{
	"translateX", "translateY", "translateZ",
	"scaleX", "scaleY", "scaleZ",
	"rotateX", "rotateY", "rotateZ",
	"skewX", "skewY",
}

// lowercase name -> canonical spelling, never modified after init.
var canonicalNames = func() map[string]string {
	m := make(map[string]string, len(camelCaseFunctionNames))
	for _, name := range camelCaseFunctionNames {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Canonical returns known spelling for the lowercased function name.
func Canonical(lower string) (string, bool) {
	name, ok := canonicalNames[lower]
	return name, ok
}

// Expected returns spelling function name should have. For lower case
// expectation known camel case functions keep their canonical form, upper
// case is plain upper case for everything.
func Expected(name string, expectation common.Expectation) string {
	if expectation == common.ExpectationUpper {
		return strings.ToUpper(name)
	}
	lower := strings.ToLower(name)
	if canonical, ok := canonicalNames[lower]; ok {
		return canonical
	}
	return lower
}

// Markers which start preprocessor interpolation or escaping in the function
// name position (Sass, Less, CSS-in-JS templates).
var nonStandardPrefixes = []string{"#{", "${", "@{", "`", "~", "$", "@"}

// IsStandardSyntaxFunction reports whether node is a plain CSS function call.
// Bare parentheses (Sass lists, math grouping), interpolated names and
// namespaced module calls like "math.div" are not.
func IsStandardSyntaxFunction(n *css.Node) bool {
	if n.Type != css.NodeFunction || n.Value == "" {
		return false
	}
	for _, p := range nonStandardPrefixes {
		if strings.HasPrefix(n.Value, p) {
			return false
		}
	}
	return !strings.Contains(n.Value, ".")
}
