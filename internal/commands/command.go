package commands

import (
	"fmt"

	"stepgrid/internal/steptable"
)

// Command is one named, self-contained edit of a step table.
type Command interface {
	// Name returns the command name used in history and logs
	Name() string

	// Apply mutates the table. It runs inside a batch scope opened by the
	// Executor, so it may call any number of table mutators.
	Apply(t *steptable.Table) error
}

// Cell addresses one cell of a table.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// area returns the inclusive rectangle spanned by two corners, ordered so
// that the first corner is the top-left one.
func area(a, b Cell) (Cell, Cell) {
	return Cell{Row: min(a.Row, b.Row), Col: min(a.Col, b.Col)},
		Cell{Row: max(a.Row, b.Row), Col: max(a.Col, b.Col)}
}
