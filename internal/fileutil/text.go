package fileutil

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText converts file content to a UTF-8 string.
// A UTF-8 or UTF-16 byte order mark selects the encoding and is dropped;
// content without one is read as UTF-8, invalid sequences becoming U+FFFD.
func DecodeText(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
