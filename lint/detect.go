package lint

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// headerSize is how much of the file we look at to detect its type.
const headerSize = 8192

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

type srcKind int

const (
	kindNone srcKind = iota
	kindCSS
	kindFB2
	kindHTML
)

func (k srcKind) String() string {
	switch k {
	case kindCSS:
		return "css"
	case kindFB2:
		return "fb2"
	case kindHTML:
		return "html"
	default:
		return "none"
	}
}

var fb2Type = filetype.NewType("fb2", "application/x-fictionbook+xml")

func init() {
	filetype.AddMatcher(fb2Type, func(buf []byte) bool {
		return bytes.Contains(buf, []byte("<?xml")) && bytes.Contains(buf, []byte("<FictionBook"))
	})
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks for byte order mark. UTF-32LE has to be checked before
// UTF-16LE since they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 without byte order mark.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	panic(fmt.Sprintf("unexpected source encoding %d", enc))
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

// detectKind decides what to look for in the source. Extension wins, files
// with unknown extensions are sniffed for FB2 content.
func detectKind(name string, head []byte, enc srcEncoding) srcKind {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(name, `\`, "/"))) {
	case ".css":
		return kindCSS
	case ".fb2":
		return kindFB2
	case ".html", ".htm", ".xhtml":
		return kindHTML
	}
	if enc != encUnknown {
		// truncated header may not decode completely, whatever we have is enough
		head, _ = io.ReadAll(selectReader(bytes.NewReader(head), enc))
	}
	if kind, err := filetype.Match(head); err == nil && kind == fb2Type {
		return kindFB2
	}
	return kindNone
}

// isArchiveFile checks file content, zip and epub containers are walked.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHeader(f)
	if err != nil {
		return false, err
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return false, nil
	}
	return kind == matchers.TypeZip || kind == matchers.TypeEpub, nil
}

func isSourceFile(path string) (srcKind, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return kindNone, encUnknown, err
	}
	defer f.Close()

	head, err := readHeader(f)
	if err != nil {
		return kindNone, encUnknown, err
	}
	enc := detectUTF(head)
	return detectKind(path, head, enc), enc, nil
}

func isSourceInArchive(f *zip.File) (srcKind, srcEncoding, error) {
	r, err := f.Open()
	if err != nil {
		return kindNone, encUnknown, err
	}
	defer r.Close()

	head, err := readHeader(r)
	if err != nil {
		return kindNone, encUnknown, err
	}
	enc := detectUTF(head)
	return detectKind(f.FileHeader.Name, head, enc), enc, nil
}
