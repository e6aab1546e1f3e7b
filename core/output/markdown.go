package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a report as a markdown table
type MarkdownFormatter struct {
	Options Options
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, r *Report) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "## %s\n\n", r.Title)
	if r.Subtitle != "" {
		fmt.Fprintf(b, "_%s_\n\n", r.Subtitle)
	}

	if f.Options.ShowDetails {
		b.WriteString("| Item | Detail | Amount |\n|---|---|---:|\n")
	} else {
		b.WriteString("| Item | Amount |\n|---|---:|\n")
	}
	cells := func(l Line, bold bool) {
		label, amount := escape(l.Label), FormatAmount(l.Amount, l.Currency)
		if bold {
			label, amount = "**"+label+"**", "**"+amount+"**"
		}
		if f.Options.ShowDetails {
			fmt.Fprintf(b, "| %s | %s | %s |\n", label, escape(l.Detail), amount)
		} else {
			fmt.Fprintf(b, "| %s | %s |\n", label, amount)
		}
	}
	for _, l := range r.Lines {
		cells(l, false)
	}
	for _, l := range r.Totals {
		cells(l, true)
	}

	if len(r.Notes) > 0 {
		b.WriteString("\n")
		for _, n := range r.Notes {
			fmt.Fprintf(b, "> %s\n", n)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
