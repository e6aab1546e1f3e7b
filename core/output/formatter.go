// Package output renders calculation results for humans and machines.
package output

import (
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"cargo-cost/core/types"
	cerrors "cargo-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatXLSX is an Excel workbook
	FormatXLSX Format = "xlsx"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Line is one labelled amount of a report
type Line struct {
	Label    string          `json:"label"`
	Detail   string          `json:"detail,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Currency types.Currency  `json:"currency"`
}

// Report is the format-neutral view of a result
type Report struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Lines    []Line   `json:"lines"`
	Totals   []Line   `json:"totals"`
	Notes    []string `json:"notes,omitempty"`

	// Result is the underlying result, emitted as-is by the JSON formatter
	Result interface{} `json:"result,omitempty"`
}

// Options tune human-readable formatters
type Options struct {
	// ShowDetails prints the detail row under each line
	ShowDetails bool
}

// Registry maps formats onto formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry holding every built-in formatter
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{Options: opts})
	r.Register(&JSONFormatter{Indent: "  "})
	r.Register(&MarkdownFormatter{Options: opts})
	r.Register(&XLSXFormatter{})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(format string) (Formatter, error) {
	f, ok := r.formatters[Format(format)]
	if !ok {
		return nil, cerrors.Newf(cerrors.TypeInput, "unsupported output format %q (supported: %v)", format, r.Formats())
	}
	return f, nil
}

// Formats lists the registered format names
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Binary reports whether a format should not be written to a terminal
func Binary(f Format) bool {
	return f == FormatXLSX
}
