package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stepgrid/internal/cli"
	"stepgrid/internal/color"
	"stepgrid/internal/commands"
	"stepgrid/internal/steptable"
	"stepgrid/internal/txtformat"
	"stepgrid/pkg/logging"
)

var (
	// ErrExit is returned by Handle when the session should end.
	ErrExit = errors.New("exit")
	// ErrUnsavedChanges is returned by "exit" while edits are not saved.
	ErrUnsavedChanges = errors.New("unsaved changes, use 'save' or 'exit!'")
)

// Session is one editing session over a single test case or keyword of a
// document. It is independent of the terminal so it can be driven by tests.
type Session struct {
	doc       *txtformat.Document
	tc        *txtformat.Case
	path      string
	writeOpts txtformat.WriteOptions
	exec      *commands.Executor
	renderer  *cli.Renderer
	out       io.Writer
	dirty     bool
}

// NewSession binds a session to the case tc of doc, loaded from path.
func NewSession(doc *txtformat.Document, tc *txtformat.Case, path string, opts txtformat.WriteOptions, renderer *cli.Renderer, out io.Writer) *Session {
	s := &Session{
		doc:       doc,
		tc:        tc,
		path:      path,
		writeOpts: opts,
		exec:      commands.NewExecutor(tc.Table),
		renderer:  renderer,
		out:       out,
	}
	s.exec.AddChangeListener(s.tableChanged)
	return s
}

// Dirty reports whether the table changed since the last save.
func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) tableChanged(c steptable.Change) {
	s.dirty = true
	fmt.Fprintln(s.out, color.MutedStyle.Render(fmt.Sprintf("%s: %d rows", s.tc.Name, len(c.Steps))))
}

// Handle runs one line of input.
func (s *Session) Handle(input string) error {
	input = strings.TrimSpace(input)
	word, rest, _ := strings.Cut(input, " ")
	switch strings.ToLower(word) {
	case "":
		return nil
	case "help", "?":
		s.showHelp()
		return nil
	case "show":
		return s.renderer.RenderSteps(s.tc.Name, s.tc.Table.Steps())
	case "undo":
		return s.exec.Undo()
	case "redo":
		return s.exec.Redo()
	case "history":
		for i, name := range s.exec.History() {
			fmt.Fprintf(s.out, "%3d  %s\n", i+1, name)
		}
		return nil
	case "save":
		return s.save()
	case "copy":
		tl, br, err := area(rest)
		if err != nil {
			return fmt.Errorf("usage: copy <row1> <col1> <row2> <col2>: %w", err)
		}
		return cli.CopyToClipboard(s.tc.Table, tl, br)
	case "paste-clipboard":
		n, err := numbers(rest, 2)
		if err != nil {
			return fmt.Errorf("usage: paste-clipboard <row> <col>: %w", err)
		}
		cmd, err := cli.PasteFromClipboard(commands.Cell{Row: n[0], Col: n[1]})
		if err != nil {
			return err
		}
		return s.exec.Execute(cmd)
	case "exit", "quit":
		if s.dirty {
			return ErrUnsavedChanges
		}
		return ErrExit
	case "exit!":
		return ErrExit
	default:
		cmd, err := commands.Parse(input)
		if err != nil {
			return fmt.Errorf("%w. Type 'help' for available commands", err)
		}
		return s.exec.Execute(cmd)
	}
}

func (s *Session) save() error {
	if err := txtformat.WriteFile(s.path, s.doc, s.writeOpts); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.path, err)
	}
	s.dirty = false
	logging.Info("REPL", "Saved %s", s.path)
	fmt.Fprintln(s.out, color.SuccessStyle.Render("saved "+s.path))
	return nil
}

func (s *Session) showHelp() {
	fmt.Fprintln(s.out, "Edit commands:")
	for _, u := range commands.Usage {
		fmt.Fprintf(s.out, "  %s\n", u)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Session commands:")
	fmt.Fprintln(s.out, "  show                          - Print the steps")
	fmt.Fprintln(s.out, "  undo, redo                    - Revert or re-apply the last command")
	fmt.Fprintln(s.out, "  history                       - List applied commands")
	fmt.Fprintln(s.out, "  copy <r1> <c1> <r2> <c2>      - Copy an area to the clipboard")
	fmt.Fprintln(s.out, "  paste-clipboard <row> <col>   - Paste the clipboard at a cell")
	fmt.Fprintln(s.out, "  save                          - Write the file")
	fmt.Fprintln(s.out, "  exit, quit, exit!             - Leave (exit! discards changes)")
}

func area(s string) (commands.Cell, commands.Cell, error) {
	n, err := numbers(s, 4)
	if err != nil {
		return commands.Cell{}, commands.Cell{}, err
	}
	return commands.Cell{Row: n[0], Col: n[1]}, commands.Cell{Row: n[2], Col: n[3]}, nil
}

func numbers(s string, want int) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = n
	}
	return out, nil
}
