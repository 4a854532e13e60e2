package resfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownFlag       = errors.New("unknown render flag")
	ErrInvalidWidth      = errors.New("invalid render width")
	ErrBadEncoding       = errors.New("invalid character encoding")
)

// MaxWidth is the exclusive upper bound on the total width accepted by
// [RenderTable]. Widths outside (1, MaxWidth) fail fast with
// [ErrInvalidWidth] before anything is written.
const MaxWidth = 4096

// Format represents an output format.
type Format string

const (
	Table Format = "table"
	CSV   Format = "csv"
)

var formats = []Format{Table, CSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Flag is a bit-set of independent rendering options. Flags are
// normalized once per render call to pin the border-art choice to the
// actual output capability; see [RenderTable].
type Flag uint32

const (
	// FlagASCII forces ASCII-only rendering of cell contents: any
	// multi-byte character is written as an escape sequence.
	FlagASCII Flag = 1 << iota
	// FlagASCIIArt forces ASCII border glyphs. Normally the border set
	// is chosen from the locale's output encoding.
	FlagASCIIArt
	// FlagShowNulls renders null values through the value's text
	// form instead of leaving the cell (or CSV field) empty.
	FlagShowNulls
	// FlagQuoteStrings renders string values in a table through the
	// value's text form (typically quoted) instead of raw. Table only.
	FlagQuoteStrings
	// FlagWrapValues continues overflowing values on subsequent lines
	// within the same logical row. Table only.
	FlagWrapValues
	// FlagRowLines draws a horizontal rule between every pair of data
	// rows. Table only.
	FlagRowLines
)

var flagNames = []struct {
	name string
	flag Flag
}{
	{"ascii", FlagASCII},
	{"ascii-art", FlagASCIIArt},
	{"show-nulls", FlagShowNulls},
	{"quote-strings", FlagQuoteStrings},
	{"wrap", FlagWrapValues},
	{"row-lines", FlagRowLines},
}

// ParseFlags parses a comma-separated list of flag names, e.g.
// "ascii,wrap". An empty string yields the zero Flag.
func ParseFlags(s string) (Flag, error) {
	var flags Flag
	if s == "" {
		return 0, nil
	}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
		}
	}
	return flags, nil
}

// Kind discriminates value types for rendering purposes.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindOther
)

// Source supplies field names and rows on demand. It is consumed
// exactly once per render call, in the manner of [database/sql.Rows]:
// Next is called until it returns nil, then Err distinguishes natural
// exhaustion from upstream failure. Err is also consulted before the
// first row so a source that failed during execution is reported
// before any output is produced.
type Source interface {
	NumFields() int
	FieldName(i int) string
	Next() Row
	Err() error
}

// Row provides the values of a single result row.
type Row interface {
	Field(i int) Value
}

// Value is a single result value.
//
// StringBytes must return the raw, unescaped bytes of a string value
// without copying; for any other kind it returns nil. AppendText
// appends the value's rendered text to buf and returns the extended
// buffer, growing it as needed.
type Value interface {
	Kind() Kind
	StringBytes() []byte
	AppendText(buf []byte) ([]byte, error)
}

// Render writes src to w in the given format. Table rendering uses
// width as its total display width; CSV ignores it.
func Render(w io.Writer, f Format, src Source, width int, flags Flag) error {
	switch f {
	case Table:
		return RenderTable(w, src, width, flags)
	case CSV:
		return RenderCSV(w, src, flags)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
