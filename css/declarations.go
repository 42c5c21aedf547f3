package css

import (
	"errors"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single "property: value" pair found in the stylesheet.
// All offsets are byte offsets in the stylesheet text.
type Declaration struct {
	Property    string
	Value       string // without surrounding whitespace and !important
	Important   bool
	Offset      int // start of the property name
	ValueOffset int // start of the value
}

// Stylesheet is the list of declarations of a single CSS text in document
// order.
type Stylesheet struct {
	Source       string
	Text         string
	Declarations []Declaration

	lines []int // offsets of line starts
}

// Position converts byte offset in the stylesheet text into 1-based line and
// column, column counts runes.
func (s *Stylesheet) Position(offset int) (line, column int) {
	if s.lines == nil {
		s.lines = lineStarts(s.Text)
	}
	offset = max(0, min(offset, len(s.Text)))
	i := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	return i + 1, utf8.RuneCountInString(s.Text[s.lines[i]:offset]) + 1
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Parser extracts declarations from CSS text.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// Parse extracts declarations from a complete stylesheet. Declarations are
// collected from every block including nested rules and at-rule blocks
// (@media, @supports, @font-face). Selectors, at-rule preludes and comments
// are never reported.
func (p *Parser) Parse(data []byte, source string) *Stylesheet {
	return p.scan(data, source, 0)
}

// ParseDeclarationList extracts declarations from a bare declaration list,
// such as the content of the HTML style attribute.
func (p *Parser) ParseDeclarationList(data []byte, source string) *Stylesheet {
	return p.scan(data, source, 1)
}

type token struct {
	tt     css.TokenType
	data   string
	offset int
}

func (p *Parser) scan(data []byte, source string, depth int) *Stylesheet {
	sheet := &Stylesheet{Source: source, Text: string(data)}

	l := css.NewLexer(parse.NewInputBytes(data))

	var (
		stmt   []token
		parens int
		offset int
		blocks int
	)
	finish := func() {
		if depth > 0 {
			if decl, ok := declaration(sheet.Text, stmt); ok {
				sheet.Declarations = append(sheet.Declarations, decl)
			}
		}
		stmt, parens = stmt[:0], 0
	}

	for {
		tt, raw := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS lexer error", zap.String("source", source), zap.Int("offset", offset), zap.Error(err))
			}
			break
		}
		t := token{tt: tt, data: string(raw), offset: offset}
		offset += len(raw)

		switch tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			parens++
		case css.RightParenthesisToken, css.RightBracketToken:
			if parens > 0 {
				parens--
			}
		case css.LeftBraceToken:
			if parens == 0 {
				// statement was a selector or at-rule prelude
				stmt, depth = stmt[:0], depth+1
				blocks++
				continue
			}
		case css.RightBraceToken:
			if parens == 0 {
				finish()
				if depth > 0 {
					depth--
				}
				continue
			}
		case css.SemicolonToken:
			if parens == 0 {
				finish()
				continue
			}
		case css.CommentToken, css.WhitespaceToken, css.CDOToken, css.CDCToken:
			if len(stmt) == 0 {
				continue
			}
		}
		stmt = append(stmt, t)
	}
	finish()

	p.log.Debug("Parsed CSS", zap.String("source", source), zap.Int("bytes", len(data)),
		zap.Int("blocks", blocks), zap.Int("declarations", len(sheet.Declarations)))
	return sheet
}

// declaration recognizes "ident ws* : value" statements, custom properties
// included.
func declaration(text string, stmt []token) (Declaration, bool) {
	if len(stmt) == 0 || (stmt[0].tt != css.IdentToken && stmt[0].tt != css.CustomPropertyNameToken) {
		return Declaration{}, false
	}
	i := 1
	for i < len(stmt) && (stmt[i].tt == css.WhitespaceToken || stmt[i].tt == css.CommentToken) {
		i++
	}
	if i == len(stmt) || stmt[i].tt != css.ColonToken {
		return Declaration{}, false
	}
	colon := stmt[i]
	i++
	for i < len(stmt) && (stmt[i].tt == css.WhitespaceToken || stmt[i].tt == css.CommentToken) {
		i++
	}

	decl := Declaration{
		Property:    stmt[0].data,
		Offset:      stmt[0].offset,
		ValueOffset: colon.offset + len(colon.data),
	}
	if i == len(stmt) {
		return decl, true
	}
	decl.ValueOffset = stmt[i].offset

	values := stmt[i:]
	values, decl.Important = trimImportant(values)
	for len(values) > 0 {
		if tt := values[len(values)-1].tt; tt != css.WhitespaceToken && tt != css.CommentToken {
			break
		}
		values = values[:len(values)-1]
	}
	if len(values) > 0 {
		last := values[len(values)-1]
		decl.Value = text[decl.ValueOffset : last.offset+len(last.data)]
	}
	return decl, true
}

// trimImportant cuts trailing "!important" (any case, whitespace allowed
// after "!") off the value tokens.
func trimImportant(values []token) ([]token, bool) {
	j := len(values) - 1
	for j >= 0 && values[j].tt == css.WhitespaceToken {
		j--
	}
	if j < 1 || values[j].tt != css.IdentToken || !strings.EqualFold(values[j].data, "important") {
		return values, false
	}
	j--
	for j >= 0 && values[j].tt == css.WhitespaceToken {
		j--
	}
	if j < 0 || values[j].tt != css.DelimToken || values[j].data != "!" {
		return values, false
	}
	return values[:j], true
}
