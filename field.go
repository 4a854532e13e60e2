package resfmt

import "bufio"

// renderField fills exactly width display columns from s, consuming
// characters in source order and space-padding whatever remains. A
// character whose width would exceed the remaining budget is not
// consumed, so the output never contains a partial multi-byte
// character. Unprintable characters are written as escapes, truncated
// at the column edge.
//
// The return value is the number of source bytes consumed, which is
// always a character boundary. Callers compare it against len(s) to
// detect overflow and use it as the resume offset when wrapping.
func renderField(bw *bufio.Writer, s []byte, width int, flags Flag) (int, error) {
	ascii := flags&FlagASCII != 0
	used := 0
	pos := 0
	for used < width && pos < len(s) {
		r, size, cw, err := decodeChar(s[pos:], ascii)
		if err != nil {
			return 0, err
		}
		if cw == widthUnprintable {
			if cw, err = writeEscaped(bw, r, width-used); err != nil {
				return 0, err
			}
		} else {
			if used+cw > width {
				break
			}
			if _, err := bw.Write(s[pos : pos+size]); err != nil {
				return 0, err
			}
		}
		pos += size
		used += cw
	}
	for ; used < width; used++ {
		if err := bw.WriteByte(' '); err != nil {
			return 0, err
		}
	}
	return pos, nil
}
