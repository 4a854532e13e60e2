package resfmt

import (
	"bufio"
	"bytes"
)

// rulePos selects which corner triple a horizontal rule uses.
type rulePos int

const (
	ruleTop rulePos = iota
	ruleHead
	ruleMiddle
	ruleBottom
)

// renderRule draws one horizontal rule across every non-elided column.
// When the table is undersize, the rule ends with the middle corner
// and one extra line glyph to signal the hidden columns.
func renderRule(bw *bufio.Writer, widths []int, pos rulePos, undersize bool, flags Flag) error {
	g := glyphsFor(flags)
	var corners [3]string
	line := g.horizontal
	switch pos {
	case ruleTop:
		corners = g.top
	case ruleHead:
		corners = g.head
		line = g.headLine
	case ruleMiddle:
		corners = g.middle
	case ruleBottom:
		corners = g.bottom
	}

	corner := 0
	for _, cw := range widths {
		if cw == 0 {
			continue
		}
		if _, err := bw.WriteString(corners[corner]); err != nil {
			return err
		}
		corner = 1
		for n := 0; n < cw; n++ {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
		}
	}
	end := corners[2]
	if undersize {
		end = corners[1]
	}
	if _, err := bw.WriteString(end); err != nil {
		return err
	}
	if undersize {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}

// cellFunc yields the content of one column for the row being drawn.
// Transient content is only valid until the next call and is copied
// before being stashed for a wrap continuation pass.
type cellFunc func(col int) (content []byte, transient bool, err error)

// renderRow draws one logical row. Each non-elided column contributes
// a vertical border, one padding column, and widths[i]-2 columns of
// content. A cell whose content does not fit is closed with the
// overflow glyph; with FlagWrapValues set, its remainder is stashed
// and the column loop repeats, using the overflow glyph as the leading
// marker for columns that still have content, until every cell is
// drained.
func renderRow(bw *bufio.Writer, widths []int, undersize bool, flags Flag, cell cellFunc) error {
	g := glyphsFor(flags)
	var rem [][]byte
	if flags&FlagWrapValues != 0 {
		rem = make([][]byte, len(widths))
	}

	wrap := false
	for i, cw := range widths {
		if cw == 0 {
			continue
		}
		if _, err := bw.WriteString(g.vertical); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
		content, transient, err := cell(i)
		if err != nil {
			return err
		}
		consumed, err := renderField(bw, content, cw-2, flags)
		if err != nil {
			return err
		}
		if consumed >= len(content) {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			continue
		}
		if _, err := bw.WriteString(g.overflow); err != nil {
			return err
		}
		if rem != nil {
			left := content[consumed:]
			if transient {
				left = bytes.Clone(left)
			}
			rem[i] = left
			wrap = true
		}
	}
	if err := endRow(bw, g, undersize); err != nil {
		return err
	}

	for wrap {
		wrap = false
		for i, cw := range widths {
			if cw == 0 {
				continue
			}
			if _, err := bw.WriteString(g.vertical); err != nil {
				return err
			}
			lead := " "
			if len(rem[i]) > 0 {
				lead = g.overflow
			}
			if _, err := bw.WriteString(lead); err != nil {
				return err
			}
			consumed, err := renderField(bw, rem[i], cw-2, flags)
			if err != nil {
				return err
			}
			if consumed >= len(rem[i]) {
				rem[i] = nil
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
				continue
			}
			if _, err := bw.WriteString(g.overflow); err != nil {
				return err
			}
			rem[i] = rem[i][consumed:]
			wrap = true
		}
		if err := endRow(bw, g, undersize); err != nil {
			return err
		}
	}
	return nil
}

func endRow(bw *bufio.Writer, g *borderGlyphs, undersize bool) error {
	if _, err := bw.WriteString(g.vertical); err != nil {
		return err
	}
	if undersize {
		if _, err := bw.WriteString(g.overflow); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}
