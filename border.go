package resfmt

import (
	"os"
	"strings"
)

// borderGlyphs is one complete set of table border characters. The
// corner triples are ordered left, middle, right.
type borderGlyphs struct {
	horizontal string
	headLine   string
	vertical   string
	top        [3]string
	head       [3]string
	middle     [3]string
	bottom     [3]string
	overflow   string
}

var asciiGlyphs = borderGlyphs{
	horizontal: "-",
	headLine:   "-",
	vertical:   "|",
	top:        [3]string{"+", "+", "+"},
	head:       [3]string{"+", "+", "+"},
	middle:     [3]string{"+", "+", "+"},
	bottom:     [3]string{"+", "+", "+"},
	overflow:   "=",
}

var boxGlyphs = borderGlyphs{
	horizontal: "─",
	headLine:   "═",
	vertical:   "│",
	top:        [3]string{"┌", "┬", "┐"},
	head:       [3]string{"╞", "╪", "╡"},
	middle:     [3]string{"├", "┼", "┤"},
	bottom:     [3]string{"└", "┴", "┘"},
	overflow:   "…",
}

// normalizeFlags pins the border-art choice to the output capability,
// once per render call. Forcing ASCII cell rendering implies ASCII
// borders; an output encoding that cannot carry box-drawing glyphs
// forces both, since extended borders and extended cell passthrough
// share the same encoding assumption.
func normalizeFlags(flags Flag) Flag {
	if flags&FlagASCII != 0 {
		flags |= FlagASCIIArt
	} else if !utf8Locale() {
		flags |= FlagASCIIArt | FlagASCII
	}
	return flags
}

func glyphsFor(flags Flag) *borderGlyphs {
	if flags&FlagASCIIArt != 0 {
		return &asciiGlyphs
	}
	return &boxGlyphs
}

// utf8Locale reports whether the environment's character encoding is
// UTF-8, reading LC_ALL, LC_CTYPE, and LANG in POSIX precedence order.
func utf8Locale() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToUpper(v)
		return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
	}
	return false
}
