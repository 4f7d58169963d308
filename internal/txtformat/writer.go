package txtformat

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

const minSeparatorWidth = 2

// WriteOptions controls the layout of written step rows.
type WriteOptions struct {
	// SeparatorWidth is the number of spaces between cells (minimum 2)
	SeparatorWidth int
	// Align pads the cells of each case to common column widths
	Align bool
}

// DefaultWriteOptions returns the layout used when nothing is configured.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{SeparatorWidth: 4}
}

// WriteFile writes doc to path, replacing the file.
func WriteFile(path string, doc *Document, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders doc. Case rows are written in their rendered form, so
// trailing empty cells are dropped. Cell values are escaped so that Parse
// reads them back unchanged.
func Write(w io.Writer, doc *Document, opts WriteOptions) error {
	if opts.SeparatorWidth < minSeparatorWidth {
		opts.SeparatorWidth = minSeparatorWidth
	}
	sep := strings.Repeat(" ", opts.SeparatorWidth)

	bw := bufio.NewWriter(w)
	for _, s := range doc.Sections {
		if s.Header != "" {
			bw.WriteString(s.Header + "\n")
		}
		for _, l := range s.Lines {
			bw.WriteString(l + "\n")
		}
		for _, c := range s.Cases {
			writeCase(bw, c, sep, opts.Align)
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

func writeCase(w *bufio.Writer, c *Case, sep string, align bool) {
	w.WriteString(escapeCell(c.Name) + "\n")

	rows := make([][]string, 0, c.Table.Len())
	for _, r := range c.Table.Rows() {
		cells := r.AsList()
		if len(cells) == 0 {
			continue
		}
		for i, cell := range cells {
			cells[i] = escapeCell(cell)
		}
		rows = append(rows, cells)
	}

	var widths []int
	if align {
		widths = columnWidths(rows)
	}
	for _, cells := range rows {
		w.WriteString(sep)
		for i, cell := range cells {
			if i > 0 {
				w.WriteString(sep)
			}
			w.WriteString(cell)
			if align && i < len(cells)-1 {
				w.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			}
		}
		w.WriteString("\n")
	}
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, cells := range rows {
		for i, cell := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}
