package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepgrid/internal/commands"
	"stepgrid/internal/txtformat"
	"stepgrid/pkg/logging"
)

var (
	editCase   string
	editDryRun bool
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE COMMAND...",
		Short: "Apply editing commands to a test case or keyword",
		Long: `Apply one or more editing commands to a test case or keyword and
write the file back. Each COMMAND argument is a full command line, for
example:

  stepgrid edit login.robot --case Login 'set 0 1 Open Browser' 'purify'

Commands are applied in order. If any of them fails the file is left
untouched. With --dry-run the result is printed instead of saved.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runEdit,
	}
	cmd.Flags().StringVarP(&editCase, "case", "c", "", "Name of the test case or keyword")
	cmd.Flags().BoolVar(&editDryRun, "dry-run", false, "Print the result without saving the file")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, tc, err := loadCase(path, editCase)
	if err != nil {
		return err
	}

	exec := commands.NewExecutor(tc.Table)
	for _, line := range args[1:] {
		c, err := commands.Parse(line)
		if err != nil {
			return err
		}
		if err := exec.Execute(c); err != nil {
			return err
		}
		logging.Debug("Edit", "Applied %s to %s", c.Name(), tc.Name)
	}

	if editDryRun {
		return newRenderer(cmd.OutOrStdout()).RenderSteps(tc.Name, tc.Table.Steps())
	}

	if err := txtformat.WriteFile(path, doc, writeOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d command(s) to %s in %s\n", len(exec.History()), tc.Name, path)
	return nil
}
