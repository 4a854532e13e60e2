package resfmt

import (
	"bufio"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// widthUnprintable marks a character that cannot be written to the
// output directly and must be rendered as an escape sequence instead.
const widthUnprintable = -1

// decodeChar decodes exactly one character at the start of s, returning
// the rune, its encoded byte length, and its display width in terminal
// columns (0 for zero-width, 1 for normal, 2 for wide). The width is
// widthUnprintable when the character has to be escaped: control and
// other non-printable code points always, and every multi-byte
// character when asciiOnly is set.
func decodeChar(s []byte, asciiOnly bool) (r rune, size, width int, err error) {
	r, size = utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, 0, fmt.Errorf("%w: malformed UTF-8 sequence", ErrBadEncoding)
	}
	if asciiOnly && size > 1 {
		return r, size, widthUnprintable, nil
	}
	return r, size, displayWidth(r), nil
}

func displayWidth(r rune) int {
	switch {
	case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r), unicode.Is(unicode.Cf, r):
		return 0
	case !unicode.IsPrint(r):
		return widthUnprintable
	default:
		return runewidth.RuneWidth(r)
	}
}

// writeEscaped renders an unprintable character as the shortest of a
// two-character mnemonic escape, \uXXXX, or \UXXXXXXXX. At most budget
// characters are written, but the escape's full natural length is
// returned so callers can account for the columns the escape wanted.
func writeEscaped(bw *bufio.Writer, r rune, budget int) (int, error) {
	var esc string
	switch r {
	case '\a':
		esc = `\a`
	case '\b':
		esc = `\b`
	case '\f':
		esc = `\f`
	case '\n':
		esc = `\n`
	case '\r':
		esc = `\r`
	case '\t':
		esc = `\t`
	case '\v':
		esc = `\v`
	default:
		if r <= 0xFFFF {
			esc = fmt.Sprintf(`\u%04X`, r)
		} else {
			esc = fmt.Sprintf(`\U%08X`, r)
		}
	}
	n := len(esc)
	if budget < n {
		esc = esc[:budget]
	}
	if _, err := bw.WriteString(esc); err != nil {
		return 0, err
	}
	return n, nil
}
