package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Format int

const (
	FormatText Format = iota
	FormatCSV
	FormatMarkdown
	FormatHTML
)

var formatNames = []string{"text", "csv", "markdown", "html"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Extension is the file extension used when a report is attached.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	}
	return "txt"
}

func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "table":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown report format '%s' (expected one of %s)", name, strings.Join(formatNames, ", "))
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func NewWriter(out io.Writer, t Table) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleRounded)
	w.SetOutputMirror(out)
	w.SetTitle(t.Title)
	w.AppendHeader(toRow(t.Header))
	for _, r := range t.Rows {
		w.AppendRow(toRow(r))
	}
	return w
}

// Render writes the table to out in the given format.
func Render(out io.Writer, t Table, format Format) error {
	w := NewWriter(out, t)
	switch format {
	case FormatText:
		w.Render()
	case FormatCSV:
		// csv has no room for a title
		w.SetTitle("")
		w.RenderCSV()
	case FormatMarkdown:
		w.RenderMarkdown()
	case FormatHTML:
		w.RenderHTML()
	default:
		return fmt.Errorf("unknown report format %s", format)
	}
	return nil
}

// RenderString renders the table into a string.
func RenderString(t Table, format Format) (string, error) {
	var sb strings.Builder
	err := Render(&sb, t, format)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
