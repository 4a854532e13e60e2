package resfmt

import (
	"bufio"
	"bytes"
	"io"
)

// csvBufferInitialCap is the starting capacity of the staging buffer
// used to stringify non-string values; it grows on demand and is
// reused for every field of every row.
const csvBufferInitialCap = 256

// RenderCSV writes src to w as CSV. Field names and string values are
// always double-quoted with embedded quotes doubled; booleans and
// numerics are written bare; null values produce an empty field unless
// FlagShowNulls is set; any other kind is stringified and quoted.
// Width constraints do not apply.
func RenderCSV(w io.Writer, src Source, flags Flag) error {
	if err := src.Err(); err != nil {
		return err
	}
	nfields := src.NumFields()
	if nfields == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	err := renderCSVBody(bw, src, nfields, flags)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

func renderCSVBody(bw *bufio.Writer, src Source, nfields int, flags Flag) error {
	for i := 0; i < nfields; i++ {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := writeCSVQuoted(bw, []byte(src.FieldName(i))); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	staging := make([]byte, 0, csvBufferInitialCap)
	for row := src.Next(); row != nil; row = src.Next() {
		for i := 0; i < nfields; i++ {
			if i > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			var err error
			if staging, err = writeCSVValue(bw, row.Field(i), staging, flags); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return src.Err()
}

// writeCSVQuoted writes s double-quoted, doubling embedded quotes.
func writeCSVQuoted(bw *bufio.Writer, s []byte) error {
	if err := bw.WriteByte('"'); err != nil {
		return err
	}
	for {
		i := bytes.IndexByte(s, '"')
		if i < 0 {
			if _, err := bw.Write(s); err != nil {
				return err
			}
			break
		}
		if _, err := bw.Write(s[:i]); err != nil {
			return err
		}
		if _, err := bw.WriteString(`""`); err != nil {
			return err
		}
		s = s[i+1:]
	}
	return bw.WriteByte('"')
}

// writeCSVValue writes one field and returns the (possibly grown)
// staging buffer for reuse.
func writeCSVValue(bw *bufio.Writer, v Value, staging []byte, flags Flag) ([]byte, error) {
	kind := v.Kind()
	if kind == KindString {
		return staging, writeCSVQuoted(bw, v.StringBytes())
	}
	if kind == KindNull && flags&FlagShowNulls == 0 {
		return staging, nil
	}
	buf, err := v.AppendText(staging[:0])
	if err != nil {
		return staging, err
	}
	switch kind {
	case KindNull, KindBool, KindInt, KindFloat:
		_, err = bw.Write(buf)
		return buf, err
	default:
		return buf, writeCSVQuoted(bw, buf)
	}
}
