package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{"set keeps spacing of value", "set 0 1 Log  two words", ChangeCellValue{Row: 0, Col: 1, Value: "Log  two words"}},
		{"set empty value", "set 2 0", ChangeCellValue{Row: 2, Col: 0, Value: ""}},
		{"append row", "add-row", NewRowAdd()},
		{"insert row", "add-row 3", NewRowAddAt(3)},
		{"delete row", "delete-row 4", RowDelete{Index: 4}},
		{"delete rows", "delete-rows 1 2", DeleteRows{Start: 1, End: 2}},
		{"purify", "  purify  ", Purify{}},
		{"clear", "clear 0 1 1 2", ClearArea{TopLeft: Cell{0, 1}, BottomRight: Cell{1, 2}}},
		{"insert cells", "insert 0 1 0 1", InsertCells{TopLeft: Cell{0, 1}, BottomRight: Cell{0, 1}}},
		{"paste", "paste 0 0 A\t\t\\nB\t\tx", PasteArea{TopLeft: Cell{0, 0}, Data: [][]string{{"A", "", ""}, {"B", "", "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line    string
		unknown bool
	}{
		{"", true},
		{"frobnicate 1", true},
		{"set x 1 value", false},
		{"delete-rows 1", false},
		{"clear 0 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownCommand))
		})
	}
}

func TestTSVRoundTrip(t *testing.T) {
	grid := ParseTSV("a\tb\r\nc\t\td\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "", "d"}}, grid)
	assert.Equal(t, "a\tb\nc\t\td", FormatTSV(grid))
	assert.Nil(t, ParseTSV(""))
}
