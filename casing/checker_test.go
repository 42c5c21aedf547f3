package casing_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"fncase/casing"
	"fncase/common"
	"fncase/css"
)

func newChecker(t *testing.T, expectation common.Expectation, ignore ...string) *casing.Checker {
	t.Helper()
	opts, err := casing.NewOptions(expectation, common.SeverityError, ignore)
	if err != nil {
		t.Fatalf("NewOptions() error = %v", err)
	}
	return casing.NewChecker(opts, zap.NewNop())
}

func check(t *testing.T, c *casing.Checker, input string) []casing.Violation {
	t.Helper()
	sheet := css.NewParser(zap.NewNop()).Parse([]byte(input), "test.css")
	return c.Check(sheet)
}

func messages(vs []casing.Violation) []string {
	var res []string
	for _, v := range vs {
		res = append(res, v.Message)
	}
	return res
}

func TestCheck_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectation common.Expectation
		ignore      []string
		want        []string
	}{
		{"canonical camel case", "translateX(10deg)", common.ExpectationLower, nil, nil},
		{"upper in lower mode", "RGBA(0,0,0,1)", common.ExpectationLower, nil, []string{`Expected "RGBA" to be "rgba"`}},
		{"lower in upper mode", "calc(1px + 2px)", common.ExpectationUpper, nil, []string{`Expected "calc" to be "CALC"`}},
		{"ignored literal", "RGBA(0,0,0,1)", common.ExpectationLower, []string{"RGBA"}, nil},
		{"nested function", "var(--x, MAX(1px,2px))", common.ExpectationLower, nil, []string{`Expected "MAX" to be "max"`}},
		{"lower cased camel name", "translatex(10deg)", common.ExpectationLower, nil, []string{`Expected "translatex" to be "translateX"`}},
		{"camel name in upper mode", "translateX(10deg)", common.ExpectationUpper, nil, []string{`Expected "translateX" to be "TRANSLATEX"`}},
		{"ignored regex", "RGBA(0,0,0,1) Calc(1px)", common.ExpectationLower, []string{"/^rgb/i"}, []string{`Expected "Calc" to be "calc"`}},
		{"ignored by raw name only", "rgba(0,0,0,1)", common.ExpectationUpper, []string{"RGBA"}, []string{`Expected "rgba" to be "RGBA"`}},
		{"preprocessor syntax skipped", "map.GET($m, k) $Fn(1) (1 + 2)", common.ExpectationLower, nil, nil},
		{"children of skipped nodes checked", "map.get(RGB(1,2,3))", common.ExpectationLower, nil, []string{`Expected "RGB" to be "rgb"`}},
		{"url function", "URL(a.png)", common.ExpectationLower, nil, []string{`Expected "URL" to be "url"`}},
		{"no functions", "1px solid RED", common.ExpectationLower, nil, nil},
		{"report order", "A(B(), C(D()))", common.ExpectationLower, nil, []string{
			`Expected "A" to be "a"`, `Expected "B" to be "b"`, `Expected "C" to be "c"`, `Expected "D" to be "d"`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecker(t, tt.expectation, tt.ignore...)
			got := messages(check(t, c, "a { prop: "+tt.value+"; }"))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("messages = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck_Index(t *testing.T) {
	c := newChecker(t, common.ExpectationLower)

	input := "a { width: var(--x, MAX(1px,2px)); }"
	vs := check(t, c, input)
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(vs))
	}
	v := vs[0]
	if v.Index != 20 {
		t.Errorf("Index = %d, want 20", v.Index)
	}
	if !strings.HasPrefix(input[v.Index:], "MAX(") {
		t.Errorf("Index does not point to function name: %q", input[v.Index:])
	}
	if v.Declaration == nil || v.Index != v.Declaration.ValueOffset+9 {
		t.Errorf("Index must be value offset plus node offset, got %d", v.Index)
	}
	if v.Line != 1 || v.Column != 21 {
		t.Errorf("position = %d:%d, want 1:21", v.Line, v.Column)
	}
	if v.Rule != casing.RuleName || v.Severity != common.SeverityError {
		t.Errorf("unexpected rule/severity: %s/%s", v.Rule, v.Severity)
	}
	if v.Actual != "MAX" || v.Expected != "max" {
		t.Errorf("Actual/Expected = %q/%q", v.Actual, v.Expected)
	}
}

func TestCheck_MultiLinePosition(t *testing.T) {
	c := newChecker(t, common.ExpectationLower)

	input := "a {\n  color: red;\n  background:\n    Linear-Gradient(red, blue);\n}\n"
	vs := check(t, c, input)
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(vs))
	}
	if vs[0].Line != 4 || vs[0].Column != 5 {
		t.Errorf("position = %d:%d, want 4:5", vs[0].Line, vs[0].Column)
	}
	if !strings.HasPrefix(input[vs[0].Index:], "Linear-Gradient(") {
		t.Errorf("Index points to %q", input[vs[0].Index:])
	}
}

func TestCheck_Idempotence(t *testing.T) {
	input := `a {
  transform: TRANSLATEX(1px) RotateY(2deg) scalez(3);
  color: RGBA(0, 0, 0, .5);
  width: Calc(100% - VAR(--gap));
}`
	for _, expectation := range common.ExpectationValues() {
		t.Run(expectation.String(), func(t *testing.T) {
			c := newChecker(t, expectation)
			vs := check(t, c, input)
			if len(vs) == 0 {
				t.Fatal("expected violations in mixed case input")
			}

			// rewrite from the end so earlier offsets stay valid
			fixed := input
			for i := len(vs) - 1; i >= 0; i-- {
				v := vs[i]
				fixed = fixed[:v.Index] + v.Expected + fixed[v.Index+len(v.Actual):]
			}
			if again := check(t, c, fixed); len(again) != 0 {
				t.Errorf("fixed input still has violations: %q\n%s", messages(again), fixed)
			}
		})
	}
}

func TestNewOptions_Errors(t *testing.T) {
	_, err := casing.NewOptions(common.Expectation(7), common.Severity(9), []string{"/(/"})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, part := range []string{"expectation", "severity", "ignore pattern #0"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error %q does not mention %q", msg, part)
		}
	}
}

func TestCheckDeclaration_EmptyValue(t *testing.T) {
	c := newChecker(t, common.ExpectationLower)
	if vs := c.CheckDeclaration(&css.Declaration{Property: "color"}); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}
