package css

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"fncase/utils/debug"
)

// NodeType identifies kind of the value node.
type NodeType int

const (
	NodeWord         NodeType = iota // identifiers, numbers, dimensions, hashes, operators
	NodeString                       // quoted string, Value has no quotes
	NodeDiv                          // ",", "/" or ":" with surrounding whitespace in Before/After
	NodeSpace                        // whitespace between other nodes
	NodeComment                      // comment, Value has no comment markers
	NodeFunction                     // name(...) or bare (...), children in Nodes
	NodeUnicodeRange                 // U+0025-00FF
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeWord:
		return "word"
	case NodeString:
		return "string"
	case NodeDiv:
		return "div"
	case NodeSpace:
		return "space"
	case NodeComment:
		return "comment"
	case NodeFunction:
		return "function"
	case NodeUnicodeRange:
		return "unicode-range"
	default:
		return "unknown"
	}
}

// Node is a single element of the parsed property value.
type Node struct {
	Type        NodeType
	Value       string // function name for functions, may be empty for bare parentheses
	SourceIndex int    // byte offset of the node relative to the start of the value
	Before      string // whitespace after "(" for functions, before divider for divs
	After       string // whitespace before ")" for functions, after divider for divs
	Quote       string // quote character for strings
	Unclosed    bool   // string or function was not terminated
	Nodes       []Node // function arguments
}

// ParseValue splits property value into a tree of nodes. Parsing never fails,
// malformed input produces whatever nodes could be recognized: unterminated
// functions are closed at the end of the value and marked Unclosed.
func ParseValue(value string) []Node {
	b := &valueBuilder{stack: []*Node{{Type: NodeFunction}}}

	l := css.NewLexer(parse.NewInputString(value))
	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		b.token(tt, string(data), offset)
		offset += len(data)
	}
	b.flushWord()

	for len(b.stack) > 1 {
		b.top().Unclosed = true
		b.closeFunction("")
	}
	return b.stack[0].Nodes
}

// Walk visits every node depth first in pre-order, descending into function
// arguments.
func Walk(nodes []Node, fn func(n *Node)) {
	for i := range nodes {
		fn(&nodes[i])
		if nodes[i].Type == NodeFunction {
			Walk(nodes[i].Nodes, fn)
		}
	}
}

// Stringify renders nodes back to the text they were parsed from.
func Stringify(nodes []Node) string {
	var sb strings.Builder
	for i := range nodes {
		stringifyNode(&sb, &nodes[i])
	}
	return sb.String()
}

func stringifyNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case NodeString:
		sb.WriteString(n.Quote)
		sb.WriteString(n.Value)
		if !n.Unclosed {
			sb.WriteString(n.Quote)
		}
	case NodeDiv:
		sb.WriteString(n.Before)
		sb.WriteString(n.Value)
		sb.WriteString(n.After)
	case NodeComment:
		sb.WriteString("/*")
		sb.WriteString(n.Value)
		if !n.Unclosed {
			sb.WriteString("*/")
		}
	case NodeFunction:
		sb.WriteString(n.Value)
		sb.WriteByte('(')
		sb.WriteString(n.Before)
		for i := range n.Nodes {
			stringifyNode(sb, &n.Nodes[i])
		}
		sb.WriteString(n.After)
		if !n.Unclosed {
			sb.WriteByte(')')
		}
	default:
		sb.WriteString(n.Value)
	}
}

// Dump writes node tree in human readable form, used for debugging.
func Dump(tw *debug.TreeWriter, depth int, nodes []Node) {
	for i := range nodes {
		n := &nodes[i]
		switch n.Type {
		case NodeFunction:
			tw.Line(depth, "%s @%d %q unclosed=%t", n.Type, n.SourceIndex, n.Value, n.Unclosed)
			Dump(tw, depth+1, n.Nodes)
		case NodeSpace:
			tw.Line(depth, "%s @%d", n.Type, n.SourceIndex)
		default:
			tw.TextBlock(depth, n.Type.String()+" @"+strconv.Itoa(n.SourceIndex), n.Value)
		}
	}
}

type valueBuilder struct {
	stack []*Node

	// pending word, adjacent tokens without separators are merged
	word      strings.Builder
	wordStart int
	inWord    bool
}

func (b *valueBuilder) top() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *valueBuilder) add(n Node) {
	t := b.top()
	t.Nodes = append(t.Nodes, n)
}

func (b *valueBuilder) flushWord() {
	if !b.inWord {
		return
	}
	b.add(Node{Type: NodeWord, Value: b.word.String(), SourceIndex: b.wordStart})
	b.word.Reset()
	b.inWord = false
}

// takeWord returns pending word so it can become part of function name, this
// is how preprocessor constructs like "map.get(" or "#{$fn}(" end up as
// single function node.
func (b *valueBuilder) takeWord() (string, int, bool) {
	if !b.inWord {
		return "", 0, false
	}
	w, start := b.word.String(), b.wordStart
	b.word.Reset()
	b.inWord = false
	return w, start, true
}

func (b *valueBuilder) openFunction(name string, offset int) {
	if prefix, start, ok := b.takeWord(); ok {
		name, offset = prefix+name, start
	}
	t := b.top()
	t.Nodes = append(t.Nodes, Node{Type: NodeFunction, Value: name, SourceIndex: offset})
	b.stack = append(b.stack, &t.Nodes[len(t.Nodes)-1])
}

// closeFunction pops current function moving trailing whitespace into After.
func (b *valueBuilder) closeFunction(ws string) {
	fn := b.top()
	if n := len(fn.Nodes); n > 0 && fn.Nodes[n-1].Type == NodeSpace {
		fn.After = fn.Nodes[n-1].Value + ws
		fn.Nodes = fn.Nodes[:n-1]
	} else {
		fn.After = ws
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *valueBuilder) token(tt css.TokenType, data string, offset int) {
	switch tt {
	case css.WhitespaceToken:
		b.flushWord()
		fn := b.top()
		if n := len(fn.Nodes); n > 0 && fn.Nodes[n-1].Type == NodeDiv && fn.Nodes[n-1].After == "" {
			fn.Nodes[n-1].After = data
			return
		}
		if len(fn.Nodes) == 0 && len(b.stack) > 1 {
			fn.Before = data
			return
		}
		b.add(Node{Type: NodeSpace, Value: data, SourceIndex: offset})

	case css.CommentToken:
		b.flushWord()
		text, closed := strings.CutPrefix(data, "/*")
		if !closed {
			text = data
		}
		text, closed = strings.CutSuffix(text, "*/")
		b.add(Node{Type: NodeComment, Value: text, SourceIndex: offset, Unclosed: !closed})

	case css.StringToken, css.BadStringToken:
		b.flushWord()
		n := Node{Type: NodeString, SourceIndex: offset, Unclosed: tt == css.BadStringToken}
		if len(data) > 0 {
			n.Quote = data[:1]
			n.Value = data[1:]
			if !n.Unclosed && len(n.Value) > 0 && strings.HasSuffix(n.Value, n.Quote) {
				n.Value = n.Value[:len(n.Value)-1]
			} else {
				n.Unclosed = true
			}
		}
		b.add(n)

	case css.CommaToken, css.ColonToken:
		b.divider(data, offset)

	case css.DelimToken:
		if data == "/" {
			b.divider(data, offset)
			return
		}
		b.appendWord(data, offset)

	case css.FunctionToken:
		b.openFunction(strings.TrimSuffix(data, "("), offset)

	case css.LeftParenthesisToken:
		b.openFunction("", offset)

	case css.RightParenthesisToken:
		b.flushWord()
		if len(b.stack) == 1 {
			// stray parenthesis
			b.add(Node{Type: NodeWord, Value: data, SourceIndex: offset})
			return
		}
		b.closeFunction("")

	case css.URLToken, css.BadURLToken:
		b.urlFunction(data, offset, tt == css.BadURLToken)

	case css.UnicodeRangeToken:
		b.flushWord()
		b.add(Node{Type: NodeUnicodeRange, Value: data, SourceIndex: offset})

	default:
		b.appendWord(data, offset)
	}
}

func (b *valueBuilder) appendWord(data string, offset int) {
	if !b.inWord {
		b.inWord = true
		b.wordStart = offset
	}
	b.word.WriteString(data)
}

// divider creates div node, whitespace preceding it becomes its Before.
func (b *valueBuilder) divider(data string, offset int) {
	b.flushWord()
	d := Node{Type: NodeDiv, Value: data, SourceIndex: offset}
	fn := b.top()
	if n := len(fn.Nodes); n > 0 && fn.Nodes[n-1].Type == NodeSpace {
		d.Before = fn.Nodes[n-1].Value
		d.SourceIndex = fn.Nodes[n-1].SourceIndex
		fn.Nodes = fn.Nodes[:n-1]
	}
	b.add(d)
}

// urlFunction splits unquoted url(...) token into function node with single
// word argument.
func (b *valueBuilder) urlFunction(data string, offset int, bad bool) {
	name, rest, found := strings.Cut(data, "(")
	if !found {
		b.appendWord(data, offset)
		return
	}
	b.openFunction(name, offset)
	fn := b.top()

	pos := offset + len(name) + 1
	closed := strings.HasSuffix(rest, ")") && !bad
	if closed {
		rest = rest[:len(rest)-1]
	}
	trimmed := strings.TrimLeft(rest, " \t\r\n\f")
	fn.Before = rest[:len(rest)-len(trimmed)]
	pos += len(fn.Before)
	arg := strings.TrimRight(trimmed, " \t\r\n\f")
	switch {
	case arg == "":
	case arg[0] == '"' || arg[0] == '\'':
		// lexer keeps quoted url as a single token too
		n := Node{Type: NodeString, Quote: arg[:1], Value: arg[1:], SourceIndex: pos}
		if len(n.Value) > 0 && strings.HasSuffix(n.Value, n.Quote) {
			n.Value = n.Value[:len(n.Value)-1]
		} else {
			n.Unclosed = true
		}
		fn.Nodes = append(fn.Nodes, n)
	default:
		fn.Nodes = append(fn.Nodes, Node{Type: NodeWord, Value: arg, SourceIndex: pos})
	}
	fn.Unclosed = !closed
	b.closeFunction(trimmed[len(arg):])
}
