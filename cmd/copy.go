package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepgrid/internal/cli"
)

var copyCase string

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy FILE ROW1 COL1 ROW2 COL2",
		Short: "Copy an area of cells to the clipboard",
		Long: `Copy the inclusive rectangle of cells between two corners to the
system clipboard as tab-separated text. Cells beyond the end of the table
are copied as empty cells.`,
		Args: cobra.ExactArgs(5),
		RunE: runCopy,
	}
	cmd.Flags().StringVarP(&copyCase, "case", "c", "", "Name of the test case or keyword")
	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	topLeft, bottomRight, err := parseArea(args[1:])
	if err != nil {
		return err
	}
	_, tc, err := loadCase(args[0], copyCase)
	if err != nil {
		return err
	}
	if err := cli.CopyToClipboard(tc.Table, topLeft, bottomRight); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s-%s of %s\n", topLeft, bottomRight, tc.Name)
	return nil
}
