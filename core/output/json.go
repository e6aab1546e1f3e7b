package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter emits the report as JSON
type JSONFormatter struct {
	Indent string
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report
func (f *JSONFormatter) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(r)
}
