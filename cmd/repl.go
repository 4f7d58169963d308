package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stepgrid/internal/config"
	"stepgrid/internal/repl"
)

var replCase string

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl FILE",
		Short: "Edit a test case or keyword interactively",
		Long: `Start an interactive session over one test case or keyword.

Editing commands are applied as they are typed and can be undone and
redone. Use 'save' to write the file and 'exit' to leave. Type 'help'
inside the session for the full list of commands.`,
		Args: cobra.ExactArgs(1),
		RunE: runRepl,
	}
	cmd.Flags().StringVarP(&replCase, "case", "c", "", "Name of the test case or keyword")
	return cmd
}

func runRepl(cmd *cobra.Command, args []string) error {
	doc, tc, err := loadCase(args[0], replCase)
	if err != nil {
		return err
	}

	historyFile, err := config.ExpandHome(appConfig.REPL.HistoryFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	session := repl.NewSession(doc, tc, args[0], writeOptions(), newRenderer(out), out)
	err = repl.New(session, appConfig.REPL.Prompt, historyFile).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
