package blockmtl

import (
	"bufio"
	"io"
	"strconv"
)

// writer writes material blocks to a writer.
type writer struct {
	w   io.Writer // Writer to write to
	num [32]byte  // Scratch buffer for numbers
}

// encode writes the fallback block followed by every defined id in ascending order.
func encode(w io.Writer, l *Library) error {
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw}

	if err := wr.writeUnknown(l.opt.UnknownName); err != nil {
		return err
	}
	for id := 0; id < l.opt.PaletteSize; id++ {
		c, ok := l.lookup(id)
		if !ok {
			continue
		}
		if err := wr.writeMaterial(l.opt.MaterialPrefix+strconv.Itoa(id), c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeUnknown writes the fallback material block.
func (w *writer) writeUnknown(name string) error {
	if err := w.writeNewMtl(name); err != nil {
		return err
	}

	return w.writeString("Kd 1 0 1\n\n")
}

// writeMaterial writes one material block with its diffuse color.
func (w *writer) writeMaterial(name string, c Color) error {
	if err := w.writeNewMtl(name); err != nil {
		return err
	}

	r, g, b := c.Normalized()
	if err := w.writeString("Kd "); err != nil {
		return err
	}
	if err := w.writeChannel(r); err != nil {
		return err
	}
	if err := w.writeString(" "); err != nil {
		return err
	}
	if err := w.writeChannel(g); err != nil {
		return err
	}
	if err := w.writeString(" "); err != nil {
		return err
	}
	if err := w.writeChannel(b); err != nil {
		return err
	}

	return w.writeString("\n\n")
}

// writeNewMtl writes a newmtl statement.
func (w *writer) writeNewMtl(name string) error {
	if err := w.writeString("newmtl "); err != nil {
		return err
	}
	if err := w.writeString(name); err != nil {
		return err
	}

	return w.writeString("\n")
}

// writeChannel writes a channel with two decimals, '.' separator and ties rounded up.
func (w *writer) writeChannel(v float64) error {
	b := strconv.AppendFloat(w.num[:0], roundHalfUp(v), 'f', 2, 64)
	_, err := w.w.Write(b)

	return err
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
