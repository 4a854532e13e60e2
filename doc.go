// Package resfmt renders streaming query result sets as box-drawn
// fixed-width tables or as CSV.
//
// The package consumes a pull-based result cursor and writes one of
// two textual serializations to a caller-supplied stream. The central
// entry points are [RenderTable] and [RenderCSV]; [Render] dispatches
// on a [Format] value for CLI wiring. Rendering is single-pass and
// synchronous: each call fully drains its [Source] before returning,
// and no state persists between calls.
//
// # Sources and Values
//
// A [Source] supplies the field names and the rows, in the manner of
// [database/sql.Rows]: Next returns rows until exhaustion, then Err
// distinguishes natural completion from upstream failure. Each [Row]
// exposes its columns as [Value] implementations. A Value reports its
// [Kind], gives zero-copy access to a string's raw bytes, and renders
// every other kind through AppendText, an append-style stringifier
// that grows the shared staging buffer on demand.
//
// # Table rendering
//
// [RenderTable] lays an unknown number of columns into a fixed total
// width. Every column gets the same share of the width; a column costs
// its content width plus one border character and one padding space.
// When not every field can be given at least one content column, the
// trailing fields are elided and every output line ends with an
// overflow marker to signal the hidden columns.
//
// Cell content is measured character by character in display columns
// (zero-width combining marks, single-width, and double-width CJK are
// all handled), and truncation never splits a multi-byte character.
// Control and other unprintable characters render as short escapes
// such as \n, \u0007, or \U0001F600, truncated at the column edge if
// need be. A value too wide for its cell is cut at the last whole
// character and closed with the overflow marker; with [FlagWrapValues]
// the remainder continues on following lines of the same logical row.
//
// # Borders
//
// Two border glyph sets exist: Unicode box-drawing and plain ASCII.
// The choice is made once per call: [FlagASCIIArt] forces ASCII
// borders, [FlagASCII] additionally forces escaped rendering of all
// multi-byte cell content, and when the locale's encoding is not
// UTF-8 both are implied.
//
// # CSV
//
// [RenderCSV] ignores width constraints. Field names and string
// values are always double-quoted with embedded quotes doubled, so
// any standard CSV reader round-trips them exactly; booleans and
// numbers are written bare; null values produce empty fields unless
// [FlagShowNulls] is set.
//
// # Flags
//
// Rendering options are a [Flag] bit-set. [ParseFlags] converts a
// comma-separated CLI string such as "ascii,wrap" into a Flag, and
// [ParseFormat] does the same for format names:
//
//	f, err := resfmt.ParseFormat("table")
//	flags, err := resfmt.ParseFlags("ascii,row-lines")
//	err = resfmt.Render(os.Stdout, f, src, 80, flags)
//
// # Errors
//
// All errors abort the render; partial output already written is not
// rolled back. The package exports sentinel errors for programmatic
// handling:
//
//   - [ErrInvalidWidth] — table width outside (1, [MaxWidth])
//   - [ErrBadEncoding] — malformed UTF-8 in rendered content
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnknownFlag] — unknown flag name
//
// Write failures and source failures propagate verbatim.
package resfmt
