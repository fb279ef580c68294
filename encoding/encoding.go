// Package encoding maps charset names onto golang.org/x/text encodings
// so that input in legacy charsets can be converted to UTF-8 before it
// is handed to the parser. The package names in x/text (such as
// "unicode") clash with the stdlib, so they are kept in here.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// names that the WHATWG index does not know, or knows differently
var aliases = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf-8":             unicode.UTF8,
	"utf16le":           unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be":           unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"euc-jp":            japanese.EUCJP,
	"shift_jis":         japanese.ShiftJIS,
	"shift-jis":         japanese.ShiftJIS,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"jis":               japanese.ISO2022JP,
	"iso-2022-jp":       japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euc-kr":            korean.EUCKR,
	"hz-gb2312":         simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"koi8r":             charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"iso-8859-1":        charmap.Windows1252,
	"windows1250":       charmap.Windows1250,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"windows1253":       charmap.Windows1253,
	"windows1254":       charmap.Windows1254,
	"windows1255":       charmap.Windows1255,
	"windows1256":       charmap.Windows1256,
	"windows1257":       charmap.Windows1257,
	"windows1258":       charmap.Windows1258,
	"windows874":        charmap.Windows874,
	"xuserdefined":      charmap.XUserDefined,
}

// Load returns the encoding registered under name, or nil. Names are
// matched case-insensitively; anything not in the local alias table is
// looked up in the WHATWG encoding index.
func Load(name string) enc.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := aliases[name]; ok {
		return e
	}
	if e, err := htmlindex.Get(name); err == nil {
		return e
	}
	return nil
}

// Decode converts b from the named encoding to a UTF-8 string.
func Decode(name string, b []byte) (string, error) {
	e := Load(name)
	if e == nil {
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedEncoding, name)
	}

	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
