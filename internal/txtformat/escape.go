package txtformat

import (
	"strconv"
	"strings"
)

// Cell values are escaped on write so that reading them back yields the
// same value:
//
//   - an empty cell is written as "\"
//   - a backslash is written as "\\"
//   - tab, newline and carriage return are written as "\t", "\n" and "\r"
//   - a space that starts the value or follows another space is written
//     as "\ ", and a space that ends the value as "\x20"
//
// A backslash directly before a separator is never an escape, so "\" in
// front of a separator stays an empty cell. Unknown backslash sequences
// are read back unchanged.

func escapeCell(value string) string {
	if value == "" {
		return EmptyCell
	}
	var b strings.Builder
	runes := []rune(value)
	for i, r := range runes {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == ' ' && i == len(runes)-1:
			b.WriteString(`\x20`)
		case r == ' ' && (i == 0 || runes[i-1] == ' '):
			b.WriteString(`\ `)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeCell(raw string) string {
	if raw == EmptyCell {
		return ""
	}
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i == len(raw)-1 {
			b.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case '\\':
			b.WriteByte('\\')
		case ' ':
			b.WriteByte(' ')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'x':
			if i+2 < len(raw) {
				if n, err := strconv.ParseUint(raw[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(n))
					i += 2
					continue
				}
			}
			b.WriteString(`\x`)
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// splitCells splits a line without its indentation into cell values. A
// tab or a run of two or more spaces separates cells; an escaped space
// never counts towards a run.
func splitCells(s string) []string {
	var cells []string
	start := 0
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && escapes(s, i):
			i += 2
		case s[i] == '\t':
			cells = append(cells, unescapeCell(s[start:i]))
			i++
			start = i
		case s[i] == ' ':
			end := i
			for end < len(s) && s[end] == ' ' {
				end++
			}
			if end-i >= 2 {
				cells = append(cells, unescapeCell(s[start:i]))
				start = end
			}
			i = end
		default:
			i++
		}
	}
	return append(cells, unescapeCell(s[start:]))
}

// escapes reports whether the backslash at i escapes the next byte rather
// than ending the cell in front of a separator or the end of the line.
func escapes(s string, i int) bool {
	if i+1 >= len(s) || s[i+1] == '\t' {
		return false
	}
	if s[i+1] != ' ' {
		return true
	}
	return i+2 < len(s) && s[i+2] != ' ' && s[i+2] != '\t'
}
