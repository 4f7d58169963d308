package steptable

import "fmt"

// Growth rules for writes past the current extent of the table. Every
// write goes through ensureCell so that the rules live in one place:
//
//   - a negative row or column is rejected before anything changes
//   - a position at or past MaxRows or MaxColumns is rejected as well
//   - a row past the end appends empty rows up to and including it
//   - a column past the end of its row appends empty cells up to it

const (
	// MaxRows bounds the number of rows a write may grow the table to.
	MaxRows = 1 << 20
	// MaxColumns bounds the number of cells a write may grow a row to.
	MaxColumns = 1 << 12
)

// checkPosition reports whether (row, col) may be written.
func checkPosition(row, col int) error {
	if row < 0 || col < 0 || row >= MaxRows || col >= MaxColumns {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return nil
}

func (t *Table) ensureCell(row, col int) error {
	if err := checkPosition(row, col); err != nil {
		return err
	}
	t.ensureRows(row + 1)
	r := &t.rows[row]
	for len(r.cells) <= col {
		r.cells = append(r.cells, "")
	}
	return nil
}

// ensureRows pads the table with empty rows until it holds n rows.
func (t *Table) ensureRows(n int) {
	for len(t.rows) < n {
		t.rows = append(t.rows, NewRow())
	}
}
