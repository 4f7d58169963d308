package cli

import (
	"fmt"

	"github.com/atotto/clipboard"

	"stepgrid/internal/commands"
	"stepgrid/internal/steptable"
)

// For mocking in tests
var clipboardReadAll = clipboard.ReadAll
var clipboardWriteAll = clipboard.WriteAll

// CopyArea returns the cells of the inclusive rectangle as a grid. Cells
// outside the table are empty strings. The rectangle must lie within
// steptable.MaxRows and steptable.MaxColumns.
func CopyArea(t *steptable.Table, topLeft, bottomRight commands.Cell) ([][]string, error) {
	top, bottom := min(topLeft.Row, bottomRight.Row), max(topLeft.Row, bottomRight.Row)
	left, right := min(topLeft.Col, bottomRight.Col), max(topLeft.Col, bottomRight.Col)
	if top < 0 || left < 0 || bottom >= steptable.MaxRows || right >= steptable.MaxColumns {
		return nil, fmt.Errorf("area (%d, %d)-(%d, %d): %w", top, left, bottom, right, steptable.ErrIndexOutOfRange)
	}

	grid := make([][]string, 0, bottom-top+1)
	for r := top; r <= bottom; r++ {
		row, err := t.Row(r)
		if err != nil {
			return nil, err
		}
		cells := make([]string, 0, right-left+1)
		for c := left; c <= right; c++ {
			cells = append(cells, row.Cell(c))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// CopyToClipboard puts the rectangle on the system clipboard as
// tab-separated text.
func CopyToClipboard(t *steptable.Table, topLeft, bottomRight commands.Cell) error {
	grid, err := CopyArea(t, topLeft, bottomRight)
	if err != nil {
		return err
	}
	if err := clipboardWriteAll(commands.FormatTSV(grid)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// PasteFromClipboard builds a PasteArea command from tab-separated text on
// the system clipboard.
func PasteFromClipboard(topLeft commands.Cell) (commands.PasteArea, error) {
	content, err := clipboardReadAll()
	if err != nil {
		return commands.PasteArea{}, fmt.Errorf("failed to read clipboard: %w", err)
	}
	grid := commands.ParseTSV(content)
	if len(grid) == 0 {
		return commands.PasteArea{}, fmt.Errorf("clipboard is empty")
	}
	return commands.PasteArea{TopLeft: topLeft, Data: grid}, nil
}
