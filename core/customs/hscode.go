package customs

import (
	"strings"

	"github.com/shopspring/decimal"

	cerrors "cargo-cost/internal/errors"
)

// HSCode is a Harmonized System reference entry with its import duty rate
type HSCode struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	DutyRate    decimal.Decimal `json:"duty_rate"`
}

var hsCodes = []HSCode{
	{
		Code:        "8517.12.00",
		Description: "Telepon untuk jaringan seluler atau untuk jaringan nirkabel lainnya",
		Category:    "Electronics",
		DutyRate:    decimal.RequireFromString("0.15"),
	},
	{
		Code:        "8471.30.00",
		Description: "Mesin pengolah data digital portabel dengan berat tidak melebihi 10 kg",
		Category:    "Computing",
		DutyRate:    decimal.RequireFromString("0.10"),
	},
	{
		Code:        "8543.70.90",
		Description: "Mesin dan pesawat listrik lainnya",
		Category:    "Electronics",
		DutyRate:    decimal.RequireFromString("0.075"),
	},
}

var hsIndex = func() map[string]int {
	m := make(map[string]int, len(hsCodes))
	for i, h := range hsCodes {
		m[normalizeHSCode(h.Code)] = i
	}
	return m
}()

// normalizeHSCode drops separators so "8517.12.00" and "85171200" match.
func normalizeHSCode(code string) string {
	return strings.NewReplacer(".", "", " ", "").Replace(strings.TrimSpace(code))
}

// LookupHSCode returns the reference entry for code
func LookupHSCode(code string) (HSCode, error) {
	i, ok := hsIndex[normalizeHSCode(code)]
	if !ok {
		return HSCode{}, cerrors.NotFound("hs_code", code)
	}
	return hsCodes[i], nil
}

// HSCodes lists the reference table
func HSCodes() []HSCode {
	return append([]HSCode(nil), hsCodes...)
}
