package steptable

import (
	"github.com/google/uuid"
)

// Row is one line of a step table: an ordered list of raw cells plus a
// stable identity that survives edits and index shifts.
type Row struct {
	ID    string
	cells []string
}

// NewRow creates a row with a fresh identity holding the given cells.
func NewRow(cells ...string) Row {
	return Row{
		ID:    uuid.New().String(),
		cells: append([]string(nil), cells...),
	}
}

// Cells returns a copy of the raw cells, trailing empty cells included.
func (r Row) Cells() []string {
	return append([]string(nil), r.cells...)
}

// Cell returns the value at col, or "" when col is outside the row.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.cells) {
		return ""
	}
	return r.cells[col]
}

// Width is the number of cells in the rendered form of the row.
func (r Row) Width() int {
	return len(trimTrailingEmpty(r.cells))
}

// AsList returns the rendered form: the cells without trailing empty ones.
func (r Row) AsList() []string {
	return append([]string(nil), trimTrailingEmpty(r.cells)...)
}

// IsEmpty reports whether every cell of the row is blank.
func (r Row) IsEmpty() bool {
	for _, c := range r.cells {
		if !isBlank(c) {
			return false
		}
	}
	return true
}

func (r Row) clone() Row {
	return Row{ID: r.ID, cells: r.Cells()}
}

// isBlank reports an empty cell. Whitespace is data.
func isBlank(cell string) bool {
	return cell == ""
}

func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && isBlank(cells[end-1]) {
		end--
	}
	return cells[:end]
}
