package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned by Parse for an unrecognised command word.
var ErrUnknownCommand = errors.New("unknown command")

// Usage lists the textual command forms accepted by Parse.
var Usage = []string{
	"set <row> <col> <value...>",
	"add-row [index]",
	"delete-row <index>",
	"delete-rows <start> <end>",
	"purify",
	"clear <row1> <col1> <row2> <col2>",
	"paste <row> <col> <tsv>",
	"insert <row1> <col1> <row2> <col2>",
}

// Parse turns one textual command into a Command. Arguments are separated
// by whitespace; the value of "set" is the rest of the line and the data of
// "paste" is tab-separated cells with rows separated by newlines or "\n".
func Parse(line string) (Command, error) {
	word, rest := splitWord(strings.TrimSpace(line))
	switch word {
	case "set":
		fields, value := splitN(rest, 2)
		n, err := ints(fields, 2)
		if err != nil {
			return nil, fmt.Errorf("set: %w", err)
		}
		return ChangeCellValue{Row: n[0], Col: n[1], Value: value}, nil
	case "add-row":
		if rest == "" {
			return NewRowAdd(), nil
		}
		n, err := ints(strings.Fields(rest), 1)
		if err != nil {
			return nil, fmt.Errorf("add-row: %w", err)
		}
		return NewRowAddAt(n[0]), nil
	case "delete-row":
		n, err := ints(strings.Fields(rest), 1)
		if err != nil {
			return nil, fmt.Errorf("delete-row: %w", err)
		}
		return RowDelete{Index: n[0]}, nil
	case "delete-rows":
		n, err := ints(strings.Fields(rest), 2)
		if err != nil {
			return nil, fmt.Errorf("delete-rows: %w", err)
		}
		return DeleteRows{Start: n[0], End: n[1]}, nil
	case "purify":
		return Purify{}, nil
	case "clear", "insert":
		n, err := ints(strings.Fields(rest), 4)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", word, err)
		}
		tl, br := Cell{Row: n[0], Col: n[1]}, Cell{Row: n[2], Col: n[3]}
		if word == "clear" {
			return ClearArea{TopLeft: tl, BottomRight: br}, nil
		}
		return InsertCells{TopLeft: tl, BottomRight: br}, nil
	case "paste":
		fields, data := splitN(rest, 2)
		n, err := ints(fields, 2)
		if err != nil {
			return nil, fmt.Errorf("paste: %w", err)
		}
		return PasteArea{TopLeft: Cell{Row: n[0], Col: n[1]}, Data: ParseTSV(strings.ReplaceAll(data, `\n`, "\n"))}, nil
	case "":
		return nil, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
	}
}

// ParseTSV splits tab-separated text into a grid. A trailing newline does
// not add an empty row.
func ParseTSV(s string) [][]string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	var grid [][]string
	for _, line := range strings.Split(s, "\n") {
		grid = append(grid, strings.Split(line, "\t"))
	}
	return grid
}

// FormatTSV is the inverse of ParseTSV.
func FormatTSV(grid [][]string) string {
	lines := make([]string, len(grid))
	for i, r := range grid {
		lines[i] = strings.Join(r, "\t")
	}
	return strings.Join(lines, "\n")
}

func splitWord(s string) (string, string) {
	word, rest, _ := strings.Cut(s, " ")
	return word, strings.TrimLeft(rest, " ")
}

// splitN takes n whitespace-separated fields off the front of s and
// returns them with the remainder, which keeps its inner spacing.
func splitN(s string, n int) ([]string, string) {
	var fields []string
	for i := 0; i < n; i++ {
		var f string
		f, s = splitWord(strings.TrimLeft(s, " \t"))
		if f == "" {
			break
		}
		fields = append(fields, f)
	}
	return fields, s
}

func ints(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d numeric arguments, got %d", want, len(fields))
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
