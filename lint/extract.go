package lint

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"

	"fncase/css"
)

// fragment is a piece of CSS found in the source.
type fragment struct {
	name   string // how fragment is referred to in the report
	text   []byte
	inline bool // content of style attribute, declarations only
}

// extractStylesheets finds all CSS in the source. When transcoded is set data
// was already converted to UTF-8 and any declared encoding must be ignored.
func extractStylesheets(data []byte, name string, kind srcKind, transcoded bool, log *zap.Logger) ([]fragment, error) {
	switch kind {
	case kindCSS:
		if !transcoded {
			data = decodeDeclaredCharset(data, name, log)
		}
		return []fragment{{name: name, text: data}}, nil
	case kindFB2, kindHTML:
		doc := etree.NewDocument()
		doc.ReadSettings = etree.ReadSettings{
			CharsetReader: func(label string, input io.Reader) (io.Reader, error) {
				if transcoded {
					return input, nil
				}
				return charset.NewReaderLabel(label, input)
			},
			Permissive: kind == kindHTML,
		}
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, fmt.Errorf("unable to parse %s source: %w", kind, err)
		}
		if kind == kindFB2 {
			return fb2Stylesheets(doc, name), nil
		}
		return htmlStylesheets(doc, name), nil
	}
	return nil, fmt.Errorf("unsupported source kind: %s", kind)
}

func fb2Stylesheets(doc *etree.Document, name string) []fragment {
	var res []fragment
	for i, el := range doc.FindElements("//stylesheet") {
		if !isCSSType(el) {
			continue
		}
		res = append(res, fragment{
			name: fmt.Sprintf("%s#stylesheet[%d]", name, i+1),
			text: []byte(elementText(el)),
		})
	}
	return res
}

// htmlStylesheets returns content of <style> elements followed by style
// attributes in document order.
func htmlStylesheets(doc *etree.Document, name string) []fragment {
	var res []fragment
	for i, el := range doc.FindElements("//style") {
		if !isCSSType(el) {
			continue
		}
		res = append(res, fragment{
			name: fmt.Sprintf("%s#style[%d]", name, i+1),
			text: []byte(elementText(el)),
		})
	}

	count := 0
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if a := el.SelectAttr("style"); a != nil && len(strings.TrimSpace(a.Value)) > 0 {
			count++
			res = append(res, fragment{
				name:   fmt.Sprintf("%s#%s[%d]@style", name, el.GetPath(), count),
				text:   []byte(a.Value),
				inline: true,
			})
		}
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	for _, el := range doc.ChildElements() {
		walk(el)
	}
	return res
}

func isCSSType(el *etree.Element) bool {
	return strings.EqualFold(strings.TrimSpace(el.SelectAttrValue("type", "text/css")), "text/css")
}

// elementText collects all character data of the element, CDATA sections
// included.
func elementText(el *etree.Element) string {
	var sb strings.Builder
	for _, t := range el.Child {
		if cd, ok := t.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}

// decodeDeclaredCharset honors @charset rule of a stylesheet without byte
// order mark. Unknown charsets are left alone.
func decodeDeclaredCharset(data []byte, name string, log *zap.Logger) []byte {
	label := css.DeclaredCharset(data)
	if len(label) == 0 {
		return data
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		log.Warn("Unknown stylesheet character set. Ignoring...", zap.String("source", name), zap.String("charset", label), zap.Error(err))
		return data
	}
	if n, _ := ianaindex.IANA.Name(enc); strings.EqualFold(n, "UTF-8") {
		return data
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		log.Warn("Unable to decode stylesheet from declared character set", zap.String("source", name), zap.String("charset", label), zap.Error(err))
		return data
	}
	log.Debug("Stylesheet decoded", zap.String("source", name), zap.String("charset", label))
	return out
}
