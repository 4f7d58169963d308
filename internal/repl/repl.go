package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"stepgrid/internal/color"
	"stepgrid/internal/commands"
	"stepgrid/pkg/logging"
)

// REPL is the Read-Eval-Print Loop driving a Session from a terminal.
type REPL struct {
	session     *Session
	prompt      string
	historyFile string
	rl          *readline.Instance
}

// New creates a REPL for the session. An empty historyFile disables history.
func New(session *Session, prompt, historyFile string) *REPL {
	return &REPL{
		session:     session,
		prompt:      prompt,
		historyFile: historyFile,
	}
}

// Run starts the REPL and returns when the user exits or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          r.prompt,
		HistoryFile:     r.historyFile,
		AutoComplete:    createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	logging.Info("REPL", "Editing %q. Type 'help' for available commands. Use TAB for completion.", r.session.tc.Name)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			if r.session.Dirty() {
				fmt.Fprintln(rl.Stderr(), color.ErrorStyle.Render("leaving with unsaved changes"))
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		err = r.session.Handle(line)
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case err != nil:
			fmt.Fprintln(rl.Stderr(), color.ErrorStyle.Render("Error: "+err.Error()))
		}
	}
}

func createCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, u := range commands.Usage {
		word, _, _ := strings.Cut(u, " ")
		items = append(items, readline.PcItem(word))
	}
	for _, word := range []string{"help", "show", "undo", "redo", "history", "copy", "paste-clipboard", "save", "exit", "quit"} {
		items = append(items, readline.PcItem(word))
	}
	return readline.NewPrefixCompleter(items...)
}

// filterInput blocks Ctrl+Z, which would suspend the process mid-edit.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
