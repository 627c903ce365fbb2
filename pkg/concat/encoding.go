package concat

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeContent interprets raw file bytes as text. Valid UTF-8 passes through
// verbatim; anything else is decoded as Latin-1, which maps every byte to a
// code point and so cannot reject arbitrary input.
func decodeContent(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
