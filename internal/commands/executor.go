package commands

import (
	"errors"
	"fmt"

	"stepgrid/internal/steptable"
	"stepgrid/pkg/logging"
)

var (
	// ErrNothingToUndo is returned by Undo when no command has been applied.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo when no command has been undone.
	ErrNothingToRedo = errors.New("nothing to redo")
)

type historyEntry struct {
	name   string
	before []steptable.Row
	after  []steptable.Row
}

// Executor applies commands to the table it is bound to. Each Execute,
// Undo and Redo fires exactly one change notification on success.
type Executor struct {
	table  *steptable.Table
	done   []historyEntry
	undone []historyEntry
}

// NewExecutor binds an executor to a table.
func NewExecutor(t *steptable.Table) *Executor {
	return &Executor{table: t}
}

// AddChangeListener registers fn on the bound table.
func (e *Executor) AddChangeListener(fn steptable.ChangeListener) steptable.ListenerID {
	return e.table.AddChangeListener(fn)
}

// Execute applies cmd inside one batch scope. A successful command
// notifies once even when it found nothing to change. A failing command
// leaves the table as it was and notifies nobody.
func (e *Executor) Execute(cmd Command) error {
	before := e.table.Snapshot()
	err := e.table.Batch(func() error {
		if err := cmd.Apply(e.table); err != nil {
			if rerr := e.table.Restore(before); rerr != nil {
				return errors.Join(err, rerr)
			}
			return err
		}
		e.table.Touch()
		return nil
	})
	if err != nil {
		logging.Warn("Executor", "command %s on %q failed: %v", cmd.Name(), e.table.Name(), err)
		return fmt.Errorf("failed to execute %s: %w", cmd.Name(), err)
	}

	e.done = append(e.done, historyEntry{name: cmd.Name(), before: before, after: e.table.Snapshot()})
	e.undone = nil
	logging.Debug("Executor", "executed %s on %q", cmd.Name(), e.table.Name())
	return nil
}

// Undo reverts the most recently executed command.
func (e *Executor) Undo() error {
	if len(e.done) == 0 {
		return ErrNothingToUndo
	}
	entry := e.done[len(e.done)-1]
	if err := e.table.Restore(entry.before); err != nil {
		return err
	}
	e.done = e.done[:len(e.done)-1]
	e.undone = append(e.undone, entry)
	logging.Debug("Executor", "undid %s on %q", entry.name, e.table.Name())
	return nil
}

// Redo re-applies the most recently undone command.
func (e *Executor) Redo() error {
	if len(e.undone) == 0 {
		return ErrNothingToRedo
	}
	entry := e.undone[len(e.undone)-1]
	if err := e.table.Restore(entry.after); err != nil {
		return err
	}
	e.undone = e.undone[:len(e.undone)-1]
	e.done = append(e.done, entry)
	logging.Debug("Executor", "redid %s on %q", entry.name, e.table.Name())
	return nil
}

// CanUndo reports whether Undo has something to revert.
func (e *Executor) CanUndo() bool {
	return len(e.done) > 0
}

// CanRedo reports whether Redo has something to re-apply.
func (e *Executor) CanRedo() bool {
	return len(e.undone) > 0
}

// History returns the names of the applied commands, oldest first.
func (e *Executor) History() []string {
	names := make([]string, len(e.done))
	for i, h := range e.done {
		names[i] = h.name
	}
	return names
}
