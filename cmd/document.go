package cmd

import (
	"fmt"
	"io"
	"strconv"

	"stepgrid/internal/cli"
	"stepgrid/internal/commands"
	"stepgrid/internal/txtformat"
)

// loadCase parses the file at path and picks the case called name. With an
// empty name a file holding exactly one case yields that case.
func loadCase(path, name string) (*txtformat.Document, *txtformat.Case, error) {
	doc, err := txtformat.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if name == "" {
		cases := doc.Cases()
		if len(cases) != 1 {
			return nil, nil, fmt.Errorf("%s holds %d test cases and keywords, choose one with --case", path, len(cases))
		}
		return doc, cases[0], nil
	}

	tc, ok := doc.Case(name)
	if !ok {
		return nil, nil, fmt.Errorf("no test case or keyword named %q in %s", name, path)
	}
	return doc, tc, nil
}

func writeOptions() txtformat.WriteOptions {
	return txtformat.WriteOptions{
		SeparatorWidth: appConfig.Format.SeparatorWidth,
		Align:          appConfig.Format.AlignEnabled(),
	}
}

func newRenderer(out io.Writer) *cli.Renderer {
	return cli.NewRenderer(appConfig.Output.Format, out)
}

func parseArea(args []string) (commands.Cell, commands.Cell, error) {
	if len(args) != 4 {
		return commands.Cell{}, commands.Cell{}, fmt.Errorf("expected 4 numbers, got %d", len(args))
	}
	n := make([]int, 4)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return commands.Cell{}, commands.Cell{}, fmt.Errorf("invalid number %q", a)
		}
		n[i] = v
	}
	return commands.Cell{Row: n[0], Col: n[1]}, commands.Cell{Row: n[2], Col: n[3]}, nil
}
