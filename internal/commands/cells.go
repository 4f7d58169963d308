package commands

import (
	"fmt"

	"stepgrid/internal/steptable"
)

// ChangeCellValue sets one cell, growing the table when the position is
// past its current extent.
type ChangeCellValue struct {
	Row   int
	Col   int
	Value string
}

func (c ChangeCellValue) Name() string {
	return fmt.Sprintf("set %d %d %q", c.Row, c.Col, c.Value)
}

func (c ChangeCellValue) Apply(t *steptable.Table) error {
	return t.SetCell(c.Row, c.Col, c.Value)
}

// ClearArea blanks every cell of the inclusive rectangle. Cell positions
// stay in place; only their values become empty. The part of the
// rectangle outside the table is already blank and is skipped.
type ClearArea struct {
	TopLeft     Cell
	BottomRight Cell
}

func (c ClearArea) Name() string {
	return fmt.Sprintf("clear %s-%s", c.TopLeft, c.BottomRight)
}

func (c ClearArea) Apply(t *steptable.Table) error {
	tl, br := area(c.TopLeft, c.BottomRight)
	if err := checkCorner(tl); err != nil {
		return err
	}
	for row := tl.Row; row <= min(br.Row, t.Len()-1); row++ {
		r, err := t.Row(row)
		if err != nil {
			return err
		}
		for col := tl.Col; col <= min(br.Col, r.Width()-1); col++ {
			if err := t.ClearCell(row, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// PasteArea writes a grid of values row-major starting at TopLeft. Every
// value of the grid overwrites its target, empty strings included; cells
// to the right of a pasted row keep their values.
type PasteArea struct {
	TopLeft Cell
	Data    [][]string
}

func (c PasteArea) Name() string {
	return fmt.Sprintf("paste %s %dx%d", c.TopLeft, len(c.Data), width(c.Data))
}

func (c PasteArea) Apply(t *steptable.Table) error {
	for r, values := range c.Data {
		for col, value := range values {
			if err := t.SetCell(c.TopLeft.Row+r, c.TopLeft.Col+col, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// InsertCells inserts empty cells in every row of the inclusive rectangle:
// as many cells as the rectangle is wide, at its left column. The
// rectangle may not be wider than steptable.MaxColumns.
type InsertCells struct {
	TopLeft     Cell
	BottomRight Cell
}

func (c InsertCells) Name() string {
	return fmt.Sprintf("insert %s-%s", c.TopLeft, c.BottomRight)
}

func (c InsertCells) Apply(t *steptable.Table) error {
	tl, br := area(c.TopLeft, c.BottomRight)
	if err := checkCorner(tl); err != nil {
		return err
	}
	if br.Col >= steptable.MaxColumns {
		return fmt.Errorf("insert up to column %d: %w", br.Col, steptable.ErrIndexOutOfRange)
	}
	count := br.Col - tl.Col + 1
	for row := tl.Row; row <= min(br.Row, t.Len()-1); row++ {
		if err := t.InsertCells(row, tl.Col, count); err != nil {
			return err
		}
	}
	return nil
}

func checkCorner(c Cell) error {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Errorf("cell %s: %w", c, steptable.ErrIndexOutOfRange)
	}
	return nil
}

func width(data [][]string) int {
	w := 0
	for _, r := range data {
		w = max(w, len(r))
	}
	return w
}
