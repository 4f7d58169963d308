package cmd

import (
	"github.com/spf13/cobra"

	"stepgrid/internal/txtformat"
)

var showCase string

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Show the steps of a test case or keyword",
		Long: `Show the steps of a test case or keyword as a grid of cells.

Without --case, files holding a single test case or keyword show its
steps and files holding several list their names and sizes.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.Flags().StringVarP(&showCase, "case", "c", "", "Name of the test case or keyword")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	renderer := newRenderer(cmd.OutOrStdout())

	if showCase == "" {
		doc, err := txtformat.LoadFile(args[0])
		if err != nil {
			return err
		}
		if cases := doc.Cases(); len(cases) != 1 {
			names := make([]string, len(cases))
			sizes := make([]int, len(cases))
			for i, c := range cases {
				names[i] = c.Name
				sizes[i] = c.Table.Len()
			}
			return renderer.RenderCases(names, sizes)
		}
	}

	_, tc, err := loadCase(args[0], showCase)
	if err != nil {
		return err
	}
	return renderer.RenderSteps(tc.Name, tc.Table.Steps())
}
