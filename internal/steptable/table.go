package steptable

import (
	"errors"
	"fmt"

	"stepgrid/pkg/logging"
)

// ErrIndexOutOfRange is returned for negative row or column positions and
// for writes past MaxRows or MaxColumns.
// Positions past the end of the table are never an error: reads see empty
// rows and writes grow the table.
var ErrIndexOutOfRange = errors.New("index out of range")

// Change is delivered to listeners once per closed batch.
type Change struct {
	Steps []Step
}

// ChangeListener receives the post-mutation view of the table.
type ChangeListener func(Change)

// ListenerID identifies a registered listener for removal.
type ListenerID int

type listenerEntry struct {
	id ListenerID
	fn ChangeListener
}

// Table is the ordered sequence of rows of one test case or keyword.
// It is not safe for concurrent use; one editing session owns it.
type Table struct {
	name      string
	rows      []Row
	listeners []listenerEntry
	nextID    ListenerID

	depth int
	dirty bool
}

// New creates a table holding the given rows in order.
func New(name string, rows ...[]string) *Table {
	t := &Table{name: name}
	for _, cells := range rows {
		t.rows = append(t.rows, NewRow(cells...))
	}
	return t
}

// Name returns the name of the test case or keyword the table belongs to.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns a copy of the row at index. Indexes past the end yield an
// empty row without growing the table.
func (t *Table) Row(index int) (Row, error) {
	if index < 0 {
		return Row{}, fmt.Errorf("row %d: %w", index, ErrIndexOutOfRange)
	}
	if index >= len(t.rows) {
		return Row{}, nil
	}
	return t.rows[index].clone(), nil
}

// Rows returns copies of all rows.
func (t *Table) Rows() []Row {
	return cloneRows(t.rows)
}

// Step returns the derived view of the row at index.
func (t *Table) Step(index int) (Step, error) {
	if index < 0 {
		return Step{}, fmt.Errorf("step %d: %w", index, ErrIndexOutOfRange)
	}
	if index >= len(t.rows) {
		return newStep(index, Row{}, false), nil
	}
	return buildSteps(t.rows)[index], nil
}

// Steps returns the derived views of all rows.
func (t *Table) Steps() []Step {
	return buildSteps(t.rows)
}

// AddChangeListener registers fn to be called after every batch of
// mutations. Listeners run synchronously in registration order.
func (t *Table) AddChangeListener(fn ChangeListener) ListenerID {
	t.nextID++
	t.listeners = append(t.listeners, listenerEntry{id: t.nextID, fn: fn})
	return t.nextID
}

// RemoveChangeListener unregisters a listener. Unknown ids are ignored.
func (t *Table) RemoveChangeListener(id ListenerID) {
	for i, l := range t.listeners {
		if l.id == id {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Batch runs fn as one transaction scope. Mutations inside fn do not notify
// listeners individually; a single notification fires when the outermost
// scope closes, if anything was mutated and fn succeeded.
func (t *Table) Batch(fn func() error) error {
	t.depth++
	err := fn()
	t.depth--
	if t.depth > 0 {
		return err
	}

	dirty := t.dirty
	t.dirty = false
	if err != nil || !dirty {
		return err
	}
	t.notify()
	return nil
}

func (t *Table) notify() {
	change := Change{Steps: t.Steps()}
	logging.Debug("StepTable", "notifying %d listener(s) of change to %q (%d rows)", len(t.listeners), t.name, len(t.rows))
	for _, l := range append([]listenerEntry(nil), t.listeners...) {
		l.fn(change)
	}
}

// mutate applies fn inside its own scope and marks the table dirty.
func (t *Table) mutate(fn func() error) error {
	return t.Batch(func() error {
		if err := fn(); err != nil {
			return err
		}
		t.dirty = true
		return nil
	})
}

// Touch marks the table changed without modifying it, so the enclosing
// scope notifies its listeners.
func (t *Table) Touch() {
	_ = t.mutate(func() error { return nil })
}

// SetCell writes value at (row, col), growing the table as needed.
func (t *Table) SetCell(row, col int, value string) error {
	return t.mutate(func() error {
		if err := t.ensureCell(row, col); err != nil {
			return err
		}
		t.rows[row].cells[col] = value
		return nil
	})
}

// ClearCell blanks the cell at (row, col). Cells outside the table are
// already blank and are left alone.
func (t *Table) ClearCell(row, col int) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return t.mutate(func() error {
		if row < len(t.rows) && col < len(t.rows[row].cells) {
			t.rows[row].cells[col] = ""
		}
		return nil
	})
}

// InsertRow inserts an empty row at index. An index past the end pads
// the table with empty rows first.
func (t *Table) InsertRow(index int) error {
	if index < 0 || index >= MaxRows {
		return fmt.Errorf("row %d: %w", index, ErrIndexOutOfRange)
	}
	return t.mutate(func() error {
		t.ensureRows(index)
		t.rows = append(t.rows, Row{})
		copy(t.rows[index+1:], t.rows[index:])
		t.rows[index] = NewRow()
		return nil
	})
}

// AppendRow adds an empty row at the end of the table.
func (t *Table) AppendRow() error {
	return t.InsertRow(len(t.rows))
}

// DeleteRow removes the row at index. Block headers and block members are
// removed on their own; neighbouring rows are not touched.
func (t *Table) DeleteRow(index int) error {
	return t.DeleteRows(index, index)
}

// DeleteRows removes the inclusive range [start, end]. The part of the
// range past the end of the table is ignored.
func (t *Table) DeleteRows(start, end int) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		return fmt.Errorf("rows %d..%d: %w", start, end, ErrIndexOutOfRange)
	}
	return t.mutate(func() error {
		if start >= len(t.rows) {
			return nil
		}
		end = min(end, len(t.rows)-1)
		t.rows = append(t.rows[:start], t.rows[end+1:]...)
		return nil
	})
}

// InsertCells inserts count empty cells at col in the given row, shifting
// the following cells (a comment included) to the right. Rows whose
// rendered width does not reach col are left unchanged. A row may not grow
// past MaxColumns.
func (t *Table) InsertCells(row, col, count int) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("cell (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return t.mutate(func() error {
		if count <= 0 || row >= len(t.rows) || col >= t.rows[row].Width() {
			return nil
		}
		r := &t.rows[row]
		if count > MaxColumns-len(r.cells) {
			return fmt.Errorf("insert %d cells into row %d: %w", count, row, ErrIndexOutOfRange)
		}
		cells := make([]string, 0, len(r.cells)+count)
		cells = append(cells, r.cells[:col]...)
		cells = append(cells, make([]string, count)...)
		cells = append(cells, r.cells[col:]...)
		r.cells = cells
		return nil
	})
}

// Purify removes rows without data and turns rows whose only content is a
// comment into comment-only rows. Rows with a blank keyword but arguments
// are kept as they are. Applying it twice equals applying it once.
func (t *Table) Purify() error {
	return t.mutate(func() error {
		steps := buildSteps(t.rows)
		kept := make([]Row, 0, len(t.rows))
		removed := 0
		for i, r := range t.rows {
			if r.IsEmpty() {
				removed++
				continue
			}
			if steps[i].Kind == KindComment {
				r.cells = trimLeadingEmpty(r.cells)
			}
			kept = append(kept, r)
		}
		t.rows = kept
		logging.Debug("StepTable", "purified %q: removed %d empty row(s)", t.name, removed)
		return nil
	})
}

// Snapshot returns a deep copy of the rows for later Restore.
func (t *Table) Snapshot() []Row {
	return cloneRows(t.rows)
}

// Restore replaces the rows with a copy of a previous snapshot.
func (t *Table) Restore(rows []Row) error {
	return t.mutate(func() error {
		t.rows = cloneRows(rows)
		return nil
	})
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.clone()
	}
	return out
}

func trimLeadingEmpty(cells []string) []string {
	start := 0
	for start < len(cells) && isBlank(cells[start]) {
		start++
	}
	return append([]string(nil), cells[start:]...)
}
