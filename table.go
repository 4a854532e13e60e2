package resfmt

import (
	"bufio"
	"fmt"
	"io"
)

// RenderTable draws src as a box-drawn table using width total display
// columns. The source is consumed in full; rows are fetched one at a
// time and never buffered. Any write or source failure aborts the
// render, leaving whatever was already written on the stream.
func RenderTable(w io.Writer, src Source, width int, flags Flag) error {
	if width <= 1 || width >= MaxWidth {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if err := src.Err(); err != nil {
		return err
	}
	nfields := src.NumFields()
	if nfields == 0 {
		return nil
	}
	flags = normalizeFlags(flags)

	columnWidth, nfields, undersize := sizeColumns(width, nfields)
	if nfields == 0 {
		// Not even one column fits at the minimum width.
		return nil
	}
	widths := make([]int, nfields)
	for i := range widths {
		widths[i] = columnWidth
	}

	bw := bufio.NewWriter(w)
	err := renderTableBody(bw, src, widths, undersize, flags)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// sizeColumns computes the shared per-column width for nfields fields
// in a total of width display columns. Each column costs one border
// character, plus one for the trailing border. While a column cannot
// hold at least one character beyond its border and padding, the last
// field is dropped and the division rerun; dropping the trailing field
// (rather than, say, the widest) keeps the set of surviving columns
// stable as the terminal narrows.
func sizeColumns(width, nfields int) (columnWidth, shown int, undersize bool) {
	columnWidth = perColumn(width, nfields)
	for columnWidth < 2 && nfields > 0 {
		undersize = true
		nfields--
		columnWidth = perColumn(width, nfields)
	}
	return columnWidth, nfields, undersize
}

func perColumn(width, nfields int) int {
	if nfields == 0 || width <= nfields+1 {
		return 0
	}
	return (width - nfields - 1) / nfields
}

func renderTableBody(bw *bufio.Writer, src Source, widths []int, undersize bool, flags Flag) error {
	if err := renderRule(bw, widths, ruleTop, undersize, flags); err != nil {
		return err
	}
	header := func(i int) ([]byte, bool, error) {
		return []byte(src.FieldName(i)), false, nil
	}
	if err := renderRow(bw, widths, undersize, flags, header); err != nil {
		return err
	}
	if err := renderRule(bw, widths, ruleHead, undersize, flags); err != nil {
		return err
	}

	// Staging buffer for stringified values, reused across cells and
	// rows; it only ever grows.
	staging := make([]byte, 0, widths[0])

	first := true
	for row := src.Next(); row != nil; row = src.Next() {
		if !first && flags&FlagRowLines != 0 {
			if err := renderRule(bw, widths, ruleMiddle, undersize, flags); err != nil {
				return err
			}
		}
		first = false
		cell := func(i int) ([]byte, bool, error) {
			return tableCell(row.Field(i), &staging, flags)
		}
		if err := renderRow(bw, widths, undersize, flags, cell); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return err
	}
	return renderRule(bw, widths, ruleBottom, undersize, flags)
}

// tableCell resolves one value to renderable bytes. String values pass
// through zero-copy unless quoting was requested; nulls are blank
// unless FlagShowNulls; everything else renders into the shared
// staging buffer, which is reused for the next cell and therefore
// flagged transient.
func tableCell(v Value, staging *[]byte, flags Flag) ([]byte, bool, error) {
	switch v.Kind() {
	case KindString:
		if flags&FlagQuoteStrings == 0 {
			return v.StringBytes(), false, nil
		}
	case KindNull:
		if flags&FlagShowNulls == 0 {
			return nil, false, nil
		}
	}
	buf, err := v.AppendText((*staging)[:0])
	if err != nil {
		return nil, false, err
	}
	*staging = buf
	return buf, true, nil
}
