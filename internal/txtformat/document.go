// Package txtformat reads and writes the space-separated plain text format
// of test data files: sections opened by "*** Name ***" headers, test
// cases and keywords whose steps are indented rows of cells separated by
// two or more spaces or tabs.
//
// Only the structure needed for editing steps is understood. Settings,
// variables and any other section are kept verbatim as raw lines.
package txtformat

import (
	"strings"

	"stepgrid/internal/steptable"
)

// SectionKind tells how the lines of a section are interpreted.
type SectionKind string

const (
	SectionTestCases SectionKind = "testcases"
	SectionKeywords  SectionKind = "keywords"
	SectionOther     SectionKind = "other"
)

// Document is a parsed test data file.
type Document struct {
	Sections []*Section
}

// Section is one "*** Name ***" block. The lines before the first header
// form a section with an empty Header.
type Section struct {
	Header string
	Kind   SectionKind
	Cases  []*Case
	Lines  []string
}

// Case is a test case or keyword: a name and its step table.
type Case struct {
	Name  string
	Table *steptable.Table
}

// HasSteps reports whether the section holds test cases or keywords.
func (s *Section) HasSteps() bool {
	return s.Kind == SectionTestCases || s.Kind == SectionKeywords
}

// Cases returns all test cases and keywords in file order.
func (d *Document) Cases() []*Case {
	var cases []*Case
	for _, s := range d.Sections {
		cases = append(cases, s.Cases...)
	}
	return cases
}

// Case finds a test case or keyword by name. An exact match wins over a
// case-insensitive one.
func (d *Document) Case(name string) (*Case, bool) {
	var folded *Case
	for _, c := range d.Cases() {
		if c.Name == name {
			return c, true
		}
		if folded == nil && strings.EqualFold(c.Name, name) {
			folded = c
		}
	}
	return folded, folded != nil
}

func sectionKind(header string) SectionKind {
	name := strings.ToLower(strings.Trim(header, "* \t"))
	switch {
	case strings.HasPrefix(name, "test case"), strings.HasPrefix(name, "task"):
		return SectionTestCases
	case strings.HasPrefix(name, "keyword"):
		return SectionKeywords
	default:
		return SectionOther
	}
}
