package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character set of a source file.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingLatin1      Encoding = "iso-8859-1"
)

func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	case "iso-8859-1", "latin1":
		return EncodingLatin1, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", s)
}

// decode wraps r so it yields UTF-8.
func decode(r io.Reader, enc Encoding) io.Reader {
	switch enc {
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder().Reader(r)
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return r
	}
}
