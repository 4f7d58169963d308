package steptable

import "strings"

// CommentMarker prefixes a cell that starts the trailing comment of a row.
const CommentMarker = "#"

// Kind classifies a row by what its cells currently say.
type Kind string

const (
	KindEmpty       Kind = "empty"
	KindStep        Kind = "step"
	KindComment     Kind = "comment"
	KindBlockHeader Kind = "block-header"
	KindBlockMember Kind = "block-member"
)

// Step is a read-only view over a Row, derived from its raw cells and its
// position relative to block headers. Views are recomputed on every read
// and never stored, so they cannot drift from the cells they describe.
type Step struct {
	Index   int
	RowID   string
	Kind    Kind
	Indent  int
	Keyword string
	Args    []string
	Comment []string

	cells []string
}

// AsList returns the rendered cells of the row: indentation, keyword,
// arguments and comment, without trailing empty cells.
func (s Step) AsList() []string {
	return append([]string(nil), s.cells...)
}

// HasComment reports whether the row carries a trailing comment.
func (s Step) HasComment() bool {
	return len(s.Comment) > 0
}

// IsComment reports whether a cell starts a comment.
func IsComment(cell string) bool {
	return strings.HasPrefix(strings.TrimSpace(cell), CommentMarker)
}

// IsBlockHeader reports whether a keyword opens a FOR-loop block.
// Both the old ": FOR" form and the plain "FOR" form are accepted.
func IsBlockHeader(keyword string) bool {
	k := strings.ToUpper(strings.ReplaceAll(keyword, " ", ""))
	return k == ":FOR" || k == "FOR"
}

func isIndentCell(cell string) bool {
	return isBlank(cell) || strings.TrimSpace(cell) == `\`
}

// continuesBlock reports whether a row can belong to an open block: its
// first cell is an indentation cell and it has some content after it.
func continuesBlock(r Row) bool {
	cells := trimTrailingEmpty(r.cells)
	return len(cells) > 1 && isIndentCell(cells[0])
}

func newStep(index int, r Row, member bool) Step {
	cells := r.AsList()
	s := Step{Index: index, RowID: r.ID, cells: cells, Kind: KindEmpty}
	if len(cells) == 0 {
		return s
	}

	start := 0
	if member {
		start = 1
		s.Indent = 1
	}

	commentAt := len(cells)
	for i := start; i < len(cells); i++ {
		if IsComment(cells[i]) {
			commentAt = i
			break
		}
	}

	body := cells[min(start, commentAt):commentAt]
	if len(body) > 0 {
		s.Keyword = body[0]
		s.Args = append([]string{}, body[1:]...)
	} else {
		s.Args = []string{}
	}
	if commentAt < len(cells) {
		s.Comment = append([]string(nil), cells[commentAt:]...)
	}

	switch {
	case member:
		s.Kind = KindBlockMember
	case IsBlockHeader(s.Keyword):
		s.Kind = KindBlockHeader
	case s.HasComment() && len(trimTrailingEmpty(body)) == 0:
		s.Kind = KindComment
	default:
		s.Kind = KindStep
	}
	return s
}

// buildSteps derives the views of all rows in order. A block header opens
// a block; the following rows that continue it become members; the first
// row with a non-empty first cell closes it. Empty rows keep it open.
func buildSteps(rows []Row) []Step {
	steps := make([]Step, len(rows))
	inBlock := false
	for i, r := range rows {
		member := inBlock && continuesBlock(r)
		steps[i] = newStep(i, r, member)
		switch {
		case steps[i].Kind == KindBlockHeader:
			inBlock = true
		case member, steps[i].Kind == KindEmpty:
		default:
			inBlock = false
		}
	}
	return steps
}
