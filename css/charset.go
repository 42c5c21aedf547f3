package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DeclaredCharset returns label from @charset rule, which is only recognized
// as the very first statement of the stylesheet. Empty string is returned
// when there is none.
func DeclaredCharset(data []byte) string {
	l := css.NewLexer(parse.NewInputBytes(data))
	if tt, d := l.Next(); tt != css.AtKeywordToken || !strings.EqualFold(string(d), "@charset") {
		return ""
	}
	next := func() (css.TokenType, []byte) {
		tt, d := l.Next()
		for tt == css.WhitespaceToken {
			tt, d = l.Next()
		}
		return tt, d
	}
	tt, d := next()
	if tt != css.StringToken || len(d) < 2 {
		return ""
	}
	label := strings.TrimSpace(string(d[1 : len(d)-1]))
	if tt, _ = next(); tt != css.SemicolonToken {
		return ""
	}
	return label
}
