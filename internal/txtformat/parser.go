package txtformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"stepgrid/internal/steptable"
)

// EmptyCell is how an empty cell in the middle of a row is written.
const EmptyCell = `\`

// LoadFile parses the file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

type caseBuilder struct {
	name string
	rows [][]string
}

// Parse reads a document. Leading whitespace on a line marks a step row;
// "\" cells stand for empty cells and are read as "". Other cell values
// are unescaped as described in escape.go.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	current := &Section{Kind: SectionOther}
	var open *caseBuilder

	closeCase := func() {
		if open != nil {
			current.Cases = append(current.Cases, &Case{
				Name:  open.name,
				Table: steptable.New(open.name, open.rows...),
			})
			open = nil
		}
	}
	closeSection := func() {
		closeCase()
		if current.Header != "" || len(current.Lines) > 0 || len(current.Cases) > 0 {
			doc.Sections = append(doc.Sections, current)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if strings.HasPrefix(line, "*") {
			closeSection()
			current = &Section{Header: line, Kind: sectionKind(line)}
			continue
		}

		if !current.HasSteps() {
			current.Lines = append(current.Lines, line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		cells := splitCells(strings.TrimLeft(line, " \t"))
		switch {
		case !indented && steptable.IsComment(cells[0]) && open == nil:
			current.Lines = append(current.Lines, line)
		case (indented || steptable.IsComment(cells[0])) && open != nil:
			open.rows = append(open.rows, cells)
		case indented:
			return nil, fmt.Errorf("step %q outside of a test case or keyword", strings.TrimSpace(line))
		default:
			closeCase()
			open = &caseBuilder{name: cells[0]}
			if len(cells) > 1 {
				open.rows = append(open.rows, cells[1:])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	closeSection()
	return doc, nil
}
