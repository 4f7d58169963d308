package commands

import (
	"fmt"

	"stepgrid/internal/steptable"
)

// RowAdd inserts one empty row. A nil Index appends it.
type RowAdd struct {
	Index *int
}

// NewRowAdd returns a RowAdd that appends a row.
func NewRowAdd() RowAdd {
	return RowAdd{}
}

// NewRowAddAt returns a RowAdd that inserts a row at index.
func NewRowAddAt(index int) RowAdd {
	return RowAdd{Index: &index}
}

func (c RowAdd) Name() string {
	if c.Index == nil {
		return "add-row"
	}
	return fmt.Sprintf("add-row %d", *c.Index)
}

func (c RowAdd) Apply(t *steptable.Table) error {
	if c.Index == nil {
		return t.AppendRow()
	}
	return t.InsertRow(*c.Index)
}

// RowDelete removes exactly one row.
type RowDelete struct {
	Index int
}

func (c RowDelete) Name() string {
	return fmt.Sprintf("delete-row %d", c.Index)
}

func (c RowDelete) Apply(t *steptable.Table) error {
	return t.DeleteRow(c.Index)
}

// DeleteRows removes the inclusive range of rows [Start, End].
type DeleteRows struct {
	Start int
	End   int
}

func (c DeleteRows) Name() string {
	return fmt.Sprintf("delete-rows %d %d", c.Start, c.End)
}

func (c DeleteRows) Apply(t *steptable.Table) error {
	return t.DeleteRows(c.Start, c.End)
}

// Purify removes rows without data.
type Purify struct{}

func (Purify) Name() string {
	return "purify"
}

func (Purify) Apply(t *steptable.Table) error {
	return t.Purify()
}
