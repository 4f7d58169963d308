package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"stepgrid/internal/color"
	"stepgrid/internal/config"
	"stepgrid/internal/steptable"
)

// StepRecord is the serialisable form of a step used for JSON and YAML output.
type StepRecord struct {
	Index   int      `json:"index" yaml:"index"`
	Kind    string   `json:"kind" yaml:"kind"`
	Indent  int      `json:"indent,omitempty" yaml:"indent,omitempty"`
	Keyword string   `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`
	Comment []string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// CaseRecord is a named list of steps.
type CaseRecord struct {
	Name  string       `json:"name" yaml:"name"`
	Steps []StepRecord `json:"steps" yaml:"steps"`
}

// Renderer prints step tables and settings in the configured format.
type Renderer struct {
	Format config.OutputFormat
	Out    io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(format config.OutputFormat, out io.Writer) *Renderer {
	return &Renderer{Format: format, Out: out}
}

// Records converts step views into their serialisable form.
func Records(steps []steptable.Step) []StepRecord {
	out := make([]StepRecord, len(steps))
	for i, s := range steps {
		out[i] = StepRecord{
			Index:   s.Index,
			Kind:    string(s.Kind),
			Indent:  s.Indent,
			Keyword: s.Keyword,
			Args:    s.Args,
			Comment: s.Comment,
		}
	}
	return out
}

// RenderSteps prints the steps of one test case or keyword.
func (r *Renderer) RenderSteps(name string, steps []steptable.Step) error {
	switch r.Format {
	case config.OutputFormatJSON:
		return r.outputJSON(CaseRecord{Name: name, Steps: Records(steps)})
	case config.OutputFormatYAML:
		return r.outputYAML(CaseRecord{Name: name, Steps: Records(steps)})
	case config.OutputFormatTable, "":
		r.outputStepTable(name, steps)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", r.Format)
	}
}

// RenderCases lists the test cases and keywords of a file with their sizes.
func (r *Renderer) RenderCases(names []string, sizes []int) error {
	if r.Format != config.OutputFormatTable && r.Format != "" {
		type entry struct {
			Name  string `json:"name" yaml:"name"`
			Steps int    `json:"steps" yaml:"steps"`
		}
		entries := make([]entry, len(names))
		for i := range names {
			entries[i] = entry{Name: names[i], Steps: sizes[i]}
		}
		if r.Format == config.OutputFormatJSON {
			return r.outputJSON(entries)
		}
		return r.outputYAML(entries)
	}

	if len(names) == 0 {
		fmt.Fprintln(r.Out, text.FgYellow.Sprint("No test cases or keywords found"))
		return nil
	}
	t := r.newTable()
	t.AppendHeader(table.Row{header("name"), header("steps")})
	for i, n := range names {
		t.AppendRow(table.Row{n, sizes[i]})
	}
	t.Render()
	return nil
}

// RenderSettings prints the settings of a plugin as key-value pairs.
func (r *Renderer) RenderSettings(plugin string, values map[string]any, keys []string) error {
	switch r.Format {
	case config.OutputFormatJSON:
		return r.outputJSON(map[string]any{plugin: values})
	case config.OutputFormatYAML:
		return r.outputYAML(map[string]any{plugin: values})
	}

	if len(keys) == 0 {
		fmt.Fprintln(r.Out, text.FgYellow.Sprint("No settings found"))
		return nil
	}
	t := r.newTable()
	t.SetTitle(plugin)
	t.AppendHeader(table.Row{header("setting"), header("value")})
	for _, k := range keys {
		t.AppendRow(table.Row{k, fmt.Sprintf("%v", values[k])})
	}
	t.Render()
	return nil
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(col string) string {
	return text.FgHiCyan.Sprint(strings.ToUpper(col))
}

// outputStepTable formats steps as a table, one column per cell position.
func (r *Renderer) outputStepTable(name string, steps []steptable.Step) {
	if len(steps) == 0 {
		fmt.Fprintln(r.Out, text.FgYellow.Sprint("No steps found"))
		return
	}

	width := 0
	for _, s := range steps {
		width = max(width, len(s.AsList()))
	}

	t := r.newTable()
	t.SetTitle(name)
	headers := table.Row{header("#")}
	for col := 0; col < width; col++ {
		headers = append(headers, header(fmt.Sprintf("%d", col)))
	}
	t.AppendHeader(headers)

	for _, s := range steps {
		row := table.Row{color.MutedStyle.Render(fmt.Sprintf("%d", s.Index))}
		commentAt := len(s.AsList()) - len(s.Comment)
		for col, cell := range s.AsList() {
			row = append(row, formatCell(s, col, commentAt, cell))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// formatCell styles a cell by the role it plays in its step.
func formatCell(s steptable.Step, col, commentAt int, cell string) string {
	switch {
	case col >= commentAt:
		return color.CommentStyle.Render(cell)
	case cell == "":
		return color.MutedStyle.Render("·")
	case s.Kind == steptable.KindBlockHeader:
		return color.BlockHeaderStyle.Render(cell)
	case s.Kind == steptable.KindBlockMember:
		return color.BlockMemberStyle.Render(cell)
	default:
		return cell
	}
}

func (r *Renderer) outputJSON(v any) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) outputYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = r.Out.Write(data)
	return err
}
