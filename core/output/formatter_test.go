package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cargo-cost/core/customs"
	"cargo-cost/core/tariff"
	"cargo-cost/core/types"
	cerrors "cargo-cost/internal/errors"
)

func chargesReport(t *testing.T) *Report {
	t.Helper()
	res, err := tariff.ComputeCharges(tariff.CategoryFull, "40ft",
		[]string{"storage", "lift", "haulage", "crane"},
		tariff.WithStorageDays(3), tariff.WithQuantity(2))
	require.NoError(t, err)
	return FromCharges(res)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    string
		currency types.Currency
		want     string
	}{
		{"320400", types.CurrencyIDR, "Rp 320,400"},
		{"0", types.CurrencyIDR, "Rp 0"},
		{"1234.5", types.CurrencyIDR, "Rp 1,234.50"},
		{"6939.2125", types.CurrencyUSD, "$6,939.21"},
		{"-1500", types.CurrencyUSD, "$-1,500.00"},
		{"12.345", types.Currency("EUR"), "12.35 EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.value), tt.currency))
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "111,027,400", FormatDecimal(decimal.RequireFromString("111027400"), 0))
	assert.Equal(t, "16,000.00", FormatDecimal(decimal.NewFromInt(16000), 2))
	assert.Equal(t, "0.01", FormatDecimal(decimal.RequireFromString("0.005"), 2))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Options{})
	assert.Equal(t, []string{"cli", "json", "markdown", "xlsx"}, r.Formats())

	f, err := r.Get("markdown")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f.Format())

	_, err = r.Get("yaml")
	require.Error(t, err)
	assert.True(t, cerrors.IsType(err, cerrors.TypeInput))

	assert.True(t, Binary(FormatXLSX))
	assert.False(t, Binary(FormatCLI))
}

func TestFromCharges(t *testing.T) {
	r := chargesReport(t)

	require.Len(t, r.Lines, 3)
	assert.Equal(t, "Storage", r.Lines[0].Label)
	assert.Equal(t, "Rp 53,400 × 6", r.Lines[0].Detail)
	assert.Equal(t, "Lift", r.Lines[1].Label)
	assert.Equal(t, "Haulage", r.Lines[2].Label)

	require.Len(t, r.Totals, 1)
	assert.Equal(t, "TOTAL", r.Totals[0].Label)
	assert.Equal(t, []string{`ignored unknown service "crane"`}, r.Notes)
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{Options: Options{ShowDetails: true}}
	require.NoError(t, f.Render(&buf, chargesReport(t)))

	out := buf.String()
	assert.Contains(t, out, "PORT SERVICE CHARGES")
	assert.Contains(t, out, "Rp 320,400")
	assert.Contains(t, out, "└─ Rp 53,400 × 6")
	assert.Contains(t, out, `Note: ignored unknown service "crane"`)

	// every boxed row has the same width
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "Note:") {
			continue
		}
		assert.Equal(t, boxInner+2, len([]rune(line)), line)
	}
}

func TestCLIFormatterHidesDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{}).Render(&buf, chargesReport(t)))
	assert.NotContains(t, buf.String(), "└─")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{Indent: "  "}).Render(&buf, chargesReport(t)))

	var got struct {
		Title  string `json:"title"`
		Result struct {
			Total     string `json:"total"`
			Breakdown []struct {
				Service string `json:"service"`
			} `json:"breakdown"`
			Ignored []string `json:"ignored"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "PORT SERVICE CHARGES", got.Title)
	assert.Len(t, got.Result.Breakdown, 3)
	assert.Equal(t, []string{"crane"}, got.Result.Ignored)
	assert.NotEmpty(t, got.Result.Total)
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Render(&buf, chargesReport(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "## PORT SERVICE CHARGES\n"))
	assert.Contains(t, out, "| Item | Amount |")
	assert.Contains(t, out, "| **TOTAL** |")
	assert.Contains(t, out, "> ignored unknown service")
}

func TestXLSXFormatter(t *testing.T) {
	in := customs.DefaultInput()
	in.FOB = decimal.NewFromInt(5000)
	in.Freight = decimal.NewFromInt(600)
	in.Insurance = decimal.NewFromInt(50)
	in.DutyRate = decimal.RequireFromString("0.05")
	in.HasTaxID = true
	report := FromImportTax(customs.ComputeImportTax(in), nil, types.CurrencyUSD, types.CurrencyIDR)

	var buf bytes.Buffer
	require.NoError(t, (&XLSXFormatter{}).Render(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(XLSXSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "IMPORT TAX & LANDED COST", title)

	header, err := f.GetCellValue(XLSXSheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Amount", header)

	label, err := f.GetCellValue(XLSXSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "CIF", label)

	currency, err := f.GetCellValue(XLSXSheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
}
