package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const boxInner = 73

// CLIFormatter prints a boxed summary table
type CLIFormatter struct {
	Options Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report as a box table
func (f *CLIFormatter) Render(w io.Writer, r *Report) error {
	b := &strings.Builder{}
	rule := func(l, m, rr string) {
		b.WriteString(l + strings.Repeat(m, boxInner) + rr + "\n")
	}
	row := func(label, amount string) {
		fmt.Fprintf(b, "│ %s %s │\n", pad(truncate(label, 50), 50), padLeft(amount, 20))
	}

	rule("┌", "─", "┐")
	b.WriteString("│" + center(r.Title, boxInner) + "│\n")
	if r.Subtitle != "" {
		b.WriteString("│" + center(r.Subtitle, boxInner) + "│\n")
	}
	rule("├", "─", "┤")

	for _, line := range r.Lines {
		row(line.Label, FormatAmount(line.Amount, line.Currency))
		if f.Options.ShowDetails && line.Detail != "" {
			row("  └─ "+line.Detail, "")
		}
	}

	rule("├", "─", "┤")
	for _, line := range r.Totals {
		label := line.Label
		if line.Detail != "" {
			label += " " + line.Detail
		}
		row(label, FormatAmount(line.Amount, line.Currency))
	}
	rule("└", "─", "┘")

	for _, note := range r.Notes {
		fmt.Fprintf(b, "Note: %s\n", note)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func center(s string, width int) string {
	s = truncate(s, width)
	n := utf8.RuneCountInString(s)
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
