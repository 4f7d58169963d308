package cli

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepgrid/internal/commands"
	"stepgrid/internal/steptable"
)

func mockClipboard(t *testing.T, content string, readErr error) *string {
	t.Helper()
	originalRead, originalWrite := clipboardReadAll, clipboardWriteAll
	t.Cleanup(func() {
		clipboardReadAll, clipboardWriteAll = originalRead, originalWrite
	})

	written := new(string)
	clipboardReadAll = func() (string, error) { return content, readErr }
	clipboardWriteAll = func(s string) error {
		*written = s
		return nil
	}
	return written
}

func baseTable() *steptable.Table {
	return steptable.New("T",
		[]string{"Step 1", "arg"},
		[]string{"Step 2", "a1", "a2", "a3"},
	)
}

func TestCopyArea(t *testing.T) {
	grid, err := CopyArea(baseTable(), commands.Cell{Row: 1, Col: 2}, commands.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"arg", ""}, {"a1", "a2"}}, grid)

	_, err = CopyArea(baseTable(), commands.Cell{Row: -1, Col: 0}, commands.Cell{Row: 0, Col: 0})
	assert.ErrorIs(t, err, steptable.ErrIndexOutOfRange)

	_, err = CopyArea(baseTable(), commands.Cell{Row: 0, Col: 0}, commands.Cell{Row: 0, Col: math.MaxInt})
	assert.ErrorIs(t, err, steptable.ErrIndexOutOfRange)
}

func TestCopyToClipboard(t *testing.T) {
	written := mockClipboard(t, "", nil)

	require.NoError(t, CopyToClipboard(baseTable(), commands.Cell{Row: 0, Col: 0}, commands.Cell{Row: 1, Col: 1}))

	assert.Equal(t, "Step 1\targ\nStep 2\ta1", *written)
}

func TestPasteFromClipboard(t *testing.T) {
	mockClipboard(t, "Changed Step 1\t\t\nChanged Step 2\t\tca2\n", nil)
	tbl := baseTable()

	cmd, err := PasteFromClipboard(commands.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	require.NoError(t, commands.NewExecutor(tbl).Execute(cmd))

	row1, _ := tbl.Row(1)
	assert.Equal(t, []string{"Changed Step 2", "", "ca2", "a3"}, row1.AsList())
}

func TestPasteFromClipboard_Errors(t *testing.T) {
	mockClipboard(t, "", nil)
	_, err := PasteFromClipboard(commands.Cell{})
	assert.Error(t, err)

	mockClipboard(t, "", errors.New("no xclip"))
	_, err = PasteFromClipboard(commands.Cell{})
	assert.ErrorContains(t, err, "no xclip")
}
