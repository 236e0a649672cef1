package printer

import (
	"bytes"
	"strconv"
	"strings"
)

// ESC/POS control bytes.
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Document builds the ESC/POS byte stream for one till receipt.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized document. Width is the paper width in
// characters: 32 for 58mm rolls, 48 for 80mm.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = 32
	}
	d := &Document{width: width}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// Title prints a centered bold line, then restores left-aligned normal text.
func (d *Document) Title(s string) *Document {
	d.buf.Write([]byte{esc, 'a', 1})
	d.buf.Write([]byte{esc, 'E', 1})
	d.line(s)
	d.buf.Write([]byte{esc, 'E', 0})
	d.buf.Write([]byte{esc, 'a', 0})
	return d
}

// Line prints one plain line.
func (d *Document) Line(s string) *Document {
	d.line(s)
	return d
}

// Rule prints a full-width dashed separator.
func (d *Document) Rule() *Document {
	d.line(strings.Repeat("-", d.width))
	return d
}

// Item prints "<qty>x <name>" with the subtotal right-aligned on the same line.
func (d *Document) Item(qty int, name, subtotal string) *Document {
	d.keyValue(strconv.Itoa(qty)+"x "+name, subtotal)
	return d
}

// Amount prints a label with its value right-aligned, e.g. the total line.
func (d *Document) Amount(label, value string) *Document {
	d.keyValue(label, value)
	return d
}

// Feed advances the paper n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Cut sends the full paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func (d *Document) line(s string) {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
}

func (d *Document) keyValue(left, right string) {
	spaces := d.width - len(left) - len(right)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(right)
	d.buf.WriteByte(lf)
}
