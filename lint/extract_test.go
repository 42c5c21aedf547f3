package lint

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"
)

const sampleFB2 = `<?xml version="1.0" encoding="UTF-8"?>
<FictionBook xmlns="http://www.gribuser.ru/xml/fictionbook/2.0">
<stylesheet type="text/css">p { width: CALC(1px + 2px); }</stylesheet>
<description><title-info><book-title>Test</book-title></title-info></description>
<body><section><p>Content</p></section></body>
</FictionBook>`

const sampleXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<style type="text/css"><![CDATA[div { color: Rgb(1,2,3) }]]></style>
<style type="text/less">div { color: Rgb(1,2,3) }</style>
</head>
<body><p style="margin: Max(1px, 2px)">x</p><p style=" ">y</p><div><span style="color: red">z</span></div></body>
</html>`

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func TestExtractStylesheets_CSS(t *testing.T) {
	frags, err := extractStylesheets([]byte("a { b: c }"), "a.css", kindCSS, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if len(frags) != 1 || frags[0].name != "a.css" || string(frags[0].text) != "a { b: c }" || frags[0].inline {
		t.Errorf("unexpected fragments: %+v", frags)
	}
}

func TestExtractStylesheets_DeclaredCharset(t *testing.T) {
	body, err := charmap.Windows1251.NewEncoder().String(`a { content: "Привет"; }`)
	if err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	data := []byte(`@charset "windows-1251";` + "\n" + body)

	frags, err := extractStylesheets(data, "a.css", kindCSS, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if !strings.Contains(string(frags[0].text), "Привет") {
		t.Errorf("stylesheet was not decoded: %q", frags[0].text)
	}

	// already transcoded text must be left alone
	frags, err = extractStylesheets(data, "a.css", kindCSS, true, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if string(frags[0].text) != string(data) {
		t.Error("transcoded stylesheet should not be decoded again")
	}

	// unknown charset is ignored
	data = []byte(`@charset "no-such-charset"; a { b: c }`)
	frags, err = extractStylesheets(data, "a.css", kindCSS, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if string(frags[0].text) != string(data) {
		t.Error("stylesheet with unknown charset should be left as is")
	}
}

func TestExtractStylesheets_FB2(t *testing.T) {
	frags, err := extractStylesheets([]byte(sampleFB2), "book.fb2", kindFB2, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].name != "book.fb2#stylesheet[1]" {
		t.Errorf("name = %q", frags[0].name)
	}
	if string(frags[0].text) != "p { width: CALC(1px + 2px); }" {
		t.Errorf("text = %q", frags[0].text)
	}
}

func TestExtractStylesheets_FB2Encoding(t *testing.T) {
	body, err := charmap.Windows1251.NewEncoder().String(strings.Replace(sampleFB2, "Test", "Тест", 1))
	if err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	data := []byte(strings.Replace(body, `encoding="UTF-8"`, `encoding="windows-1251"`, 1))

	frags, err := extractStylesheets(data, "book.fb2", kindFB2, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
}

func TestExtractStylesheets_XHTML(t *testing.T) {
	frags, err := extractStylesheets([]byte(sampleXHTML), "ch1.xhtml", kindHTML, false, testLogger(t))
	if err != nil {
		t.Fatalf("extractStylesheets() error = %v", err)
	}
	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %+v", len(frags), frags)
	}

	if frags[0].name != "ch1.xhtml#style[1]" || frags[0].inline || string(frags[0].text) != "div { color: Rgb(1,2,3) }" {
		t.Errorf("style element fragment = %+v", frags[0])
	}
	if !frags[1].inline || string(frags[1].text) != "margin: Max(1px, 2px)" || !strings.HasSuffix(frags[1].name, "[1]@style") {
		t.Errorf("first style attribute fragment = %+v", frags[1])
	}
	if !frags[2].inline || string(frags[2].text) != "color: red" || !strings.HasSuffix(frags[2].name, "[2]@style") {
		t.Errorf("second style attribute fragment = %+v", frags[2])
	}
}

func TestExtractStylesheets_Errors(t *testing.T) {
	if _, err := extractStylesheets([]byte("<FictionBook><stylesheet>"), "bad.fb2", kindFB2, false, testLogger(t)); err == nil {
		t.Error("Expected error for broken xml")
	}
	if _, err := extractStylesheets([]byte("a{}"), "x", kindNone, false, testLogger(t)); err == nil {
		t.Error("Expected error for unknown source kind")
	}
}
