package parser

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText normalizes raw survey file content to UTF-8. Survey exports
// frequently arrive in Windows-1252 or similar single-byte encodings; valid
// UTF-8 passes through untouched with any BOM stripped.
func DecodeText(content []byte) ([]byte, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	if utf8.Valid(content) {
		return content, nil
	}

	enc, _, _ := charset.DetermineEncoding(content, "")
	reader := transform.NewReader(bytes.NewReader(content), enc.NewDecoder())
	return io.ReadAll(reader)
}
