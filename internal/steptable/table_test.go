package steptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return New("Test With two Steps",
		[]string{"Step 1", "arg"},
		[]string{"Step 2", "a1", "a2", "a3"},
		[]string{"Foo", "# this is a comment"},
		[]string{": FOR", "${i}", "IN", "1", "2", "3"},
		[]string{"", "Log", "${i}"},
		[]string{"Step bar", "${variable}=", "some value"},
	)
}

func TestRow_NegativeIndexFails(t *testing.T) {
	tbl := sampleTable()

	_, err := tbl.Row(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = tbl.Step(-3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRow_PastEndIsEmptyAndDoesNotGrow(t *testing.T) {
	tbl := sampleTable()

	row, err := tbl.Row(42)
	require.NoError(t, err)
	assert.Empty(t, row.AsList())
	assert.Equal(t, 6, tbl.Len())
}

func TestSetCell_GrowsRowsAndColumns(t *testing.T) {
	tbl := sampleTable()

	require.NoError(t, tbl.SetCell(10, 3, "Hello"))

	assert.Equal(t, 11, tbl.Len())
	row, _ := tbl.Row(10)
	assert.Equal(t, []string{"", "", "", "Hello"}, row.Cells())
	for i := 6; i < 10; i++ {
		r, _ := tbl.Row(i)
		assert.True(t, r.IsEmpty(), "row %d should be empty", i)
	}
}

func TestSetCell_NegativeIsRejectedWithoutMutation(t *testing.T) {
	tbl := sampleTable()
	calls := 0
	tbl.AddChangeListener(func(Change) { calls++ })

	err := tbl.SetCell(-1, 0, "x")

	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 6, tbl.Len())
}

func TestSteps_DerivedViews(t *testing.T) {
	steps := sampleTable().Steps()
	require.Len(t, steps, 6)

	assert.Equal(t, KindStep, steps[0].Kind)
	assert.Equal(t, "Step 1", steps[0].Keyword)
	assert.Equal(t, []string{"arg"}, steps[0].Args)

	assert.Equal(t, "Foo", steps[2].Keyword)
	assert.Empty(t, steps[2].Args)
	assert.Equal(t, []string{"# this is a comment"}, steps[2].Comment)

	assert.Equal(t, KindBlockHeader, steps[3].Kind)
	assert.Equal(t, []string{"${i}", "IN", "1", "2", "3"}, steps[3].Args)

	assert.Equal(t, KindBlockMember, steps[4].Kind)
	assert.Equal(t, 1, steps[4].Indent)
	assert.Equal(t, "Log", steps[4].Keyword)
	assert.Equal(t, []string{"", "Log", "${i}"}, steps[4].AsList())

	assert.Equal(t, KindStep, steps[5].Kind)
	assert.Equal(t, 0, steps[5].Indent)
}

func TestSteps_CommentIsRecomputedOnRead(t *testing.T) {
	tbl := sampleTable()

	require.NoError(t, tbl.SetCell(2, 1, "plain arg"))
	step, _ := tbl.Step(2)
	assert.Equal(t, []string{"plain arg"}, step.Args)
	assert.False(t, step.HasComment())

	require.NoError(t, tbl.SetCell(2, 1, "# back again"))
	step, _ = tbl.Step(2)
	assert.Empty(t, step.Args)
	assert.Equal(t, []string{"# back again"}, step.Comment)
}

func TestSteps_BlankKeywordBeforeCommentIsComment(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.SetCell(2, 0, ""))

	step, _ := tbl.Step(2)
	assert.Equal(t, KindComment, step.Kind)
	assert.Equal(t, "", step.Keyword)
}

func TestSteps_BackslashContinuesBlock(t *testing.T) {
	tbl := New("loop",
		[]string{":FOR", "${x}", "IN RANGE", "3"},
		[]string{`\`, "Log", "${x}"},
		[]string{"After"},
	)
	steps := tbl.Steps()
	assert.Equal(t, KindBlockMember, steps[1].Kind)
	assert.Equal(t, "Log", steps[1].Keyword)
	assert.Equal(t, KindStep, steps[2].Kind)
}

func TestInsertRow(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"first", 0},
		{"middle", 1},
		{"last", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := sampleTable()
			before := tbl.Rows()

			require.NoError(t, tbl.InsertRow(tt.index))

			assert.Equal(t, 7, tbl.Len())
			row, _ := tbl.Row(tt.index)
			assert.Empty(t, row.AsList())

			rows := tbl.Rows()
			rest := append(append([]Row{}, rows[:tt.index]...), rows[tt.index+1:]...)
			for i := range before {
				assert.Equal(t, before[i].ID, rest[i].ID)
			}
		})
	}
}

func TestInsertRow_PastEndPads(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.InsertRow(9))
	assert.Equal(t, 10, tbl.Len())
}

func TestDeleteRows(t *testing.T) {
	tbl := sampleTable()

	require.NoError(t, tbl.DeleteRows(1, 3))

	assert.Equal(t, 3, tbl.Len())
	first, _ := tbl.Row(0)
	second, _ := tbl.Row(1)
	assert.Equal(t, []string{"Step 1", "arg"}, first.AsList())
	assert.Equal(t, []string{"", "Log", "${i}"}, second.AsList())
}

func TestDeleteRows_RangePastEndIsClamped(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.DeleteRows(4, 100))
	assert.Equal(t, 4, tbl.Len())

	require.NoError(t, tbl.DeleteRow(50))
	assert.Equal(t, 4, tbl.Len())

	assert.ErrorIs(t, tbl.DeleteRow(-1), ErrIndexOutOfRange)
}

func TestInsertCells(t *testing.T) {
	tbl := sampleTable()

	require.NoError(t, tbl.InsertCells(0, 1, 2))
	require.NoError(t, tbl.InsertCells(0, 10, 1))
	require.NoError(t, tbl.InsertCells(2, 1, 1))

	row0, _ := tbl.Row(0)
	assert.Equal(t, []string{"Step 1", "", "", "arg"}, row0.AsList())
	step2, _ := tbl.Step(2)
	assert.Equal(t, []string{""}, step2.Args)
	assert.Equal(t, []string{"# this is a comment"}, step2.Comment)
}

func TestPurify(t *testing.T) {
	tbl := sampleTable()
	require.NoError(t, tbl.InsertRow(0))
	require.NoError(t, tbl.AppendRow())
	require.NoError(t, tbl.SetCell(3, 0, ""))
	require.NoError(t, tbl.SetCell(9, 0, ""))

	require.NoError(t, tbl.Purify())

	assert.Equal(t, 6, tbl.Len())
	step, _ := tbl.Step(2)
	assert.Equal(t, []string{"# this is a comment"}, step.AsList())

	once := tbl.Rows()
	require.NoError(t, tbl.Purify())
	assert.Equal(t, once, tbl.Rows())
}

func TestPurify_KeepsBlankKeywordWithArguments(t *testing.T) {
	tbl := New("t", []string{"", "arg"}, []string{"", ""})

	require.NoError(t, tbl.Purify())

	require.Equal(t, 1, tbl.Len())
	row, _ := tbl.Row(0)
	assert.Equal(t, []string{"", "arg"}, row.AsList())
}

func TestPurify_KeepsIndentOfCommentInsideBlock(t *testing.T) {
	tbl := New("t",
		[]string{": FOR", "${i}", "IN", "1"},
		[]string{"", "# inside"},
	)

	require.NoError(t, tbl.Purify())

	row, _ := tbl.Row(1)
	assert.Equal(t, []string{"", "# inside"}, row.AsList())
}

func TestBatch_NotifiesOnceWhenOutermostScopeCloses(t *testing.T) {
	tbl := sampleTable()
	var changes []Change
	tbl.AddChangeListener(func(c Change) { changes = append(changes, c) })

	err := tbl.Batch(func() error {
		for i := 0; i < 3; i++ {
			if err := tbl.DeleteRow(0); err != nil {
				return err
			}
		}
		return tbl.Batch(func() error { return tbl.SetCell(0, 0, "x") })
	})

	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Len(t, changes[0].Steps, 3)
	assert.Equal(t, "x", changes[0].Steps[0].Keyword)
}

func TestBatch_NoNotificationWithoutMutation(t *testing.T) {
	tbl := sampleTable()
	calls := 0
	tbl.AddChangeListener(func(Change) { calls++ })

	require.NoError(t, tbl.Batch(func() error { return nil }))
	assert.Equal(t, 0, calls)
}

func TestRemoveChangeListener(t *testing.T) {
	tbl := sampleTable()
	calls := 0
	id := tbl.AddChangeListener(func(Change) { calls++ })

	require.NoError(t, tbl.SetCell(0, 0, "a"))
	tbl.RemoveChangeListener(id)
	require.NoError(t, tbl.SetCell(0, 0, "b"))

	assert.Equal(t, 1, calls)
}

func TestSnapshotRestore_KeepsIdentity(t *testing.T) {
	tbl := sampleTable()
	snap := tbl.Snapshot()

	require.NoError(t, tbl.SetCell(0, 0, "changed"))
	require.NoError(t, tbl.DeleteRow(1))
	require.NoError(t, tbl.Restore(snap))

	assert.Equal(t, snap, tbl.Rows())
}

func TestPurify_KeepsWhitespaceCells(t *testing.T) {
	tbl := New("t", []string{" ", ""}, []string{"", ""})

	require.NoError(t, tbl.Purify())

	require.Equal(t, 1, tbl.Len())
	row, _ := tbl.Row(0)
	assert.Equal(t, []string{" "}, row.AsList())
}

func TestSetCell_PastLimitsIsRejected(t *testing.T) {
	tbl := sampleTable()
	before := tbl.Rows()

	assert.ErrorIs(t, tbl.SetCell(0, MaxColumns, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, tbl.SetCell(MaxRows, 0, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, tbl.InsertRow(MaxRows), ErrIndexOutOfRange)
	assert.Equal(t, before, tbl.Rows())
}

func TestInsertCells_PastLimitIsRejected(t *testing.T) {
	tbl := sampleTable()

	err := tbl.InsertCells(0, 1, MaxColumns)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	row, _ := tbl.Row(0)
	assert.Equal(t, []string{"Step 1", "arg"}, row.AsList())
}

func TestTouch_NotifiesWithoutChange(t *testing.T) {
	tbl := sampleTable()
	calls := 0
	tbl.AddChangeListener(func(Change) { calls++ })

	require.NoError(t, tbl.Batch(func() error {
		tbl.Touch()
		return nil
	}))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 6, tbl.Len())
}
