package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cargo-cost/core/customs"
	"cargo-cost/core/tariff"
	"cargo-cost/core/types"
)

var printer = message.NewPrinter(language.English)

// FormatDecimal groups thousands and rounds half away from zero to places.
func FormatDecimal(v decimal.Decimal, places int32) string {
	r := v.Round(places)
	neg := r.IsNegative()
	r = r.Abs()

	s := printer.Sprintf("%d", r.IntPart())
	if places > 0 {
		fixed := r.StringFixed(places)
		s += fixed[strings.Index(fixed, "."):]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FormatAmount renders an amount with its currency. Rupiah drop the
// fraction when it is zero.
func FormatAmount(v decimal.Decimal, c types.Currency) string {
	switch c {
	case types.CurrencyIDR:
		if v.Equal(v.Truncate(0)) {
			return "Rp " + FormatDecimal(v, 0)
		}
		return "Rp " + FormatDecimal(v, 2)
	case types.CurrencyUSD:
		return "$" + FormatDecimal(v, 2)
	default:
		return FormatDecimal(v, 2) + " " + c.String()
	}
}

func serviceLabel(s tariff.Service) string {
	label := strings.ReplaceAll(string(s), "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// FromCharges builds the report of a tariff calculation
func FromCharges(res *tariff.ChargeResult) *Report {
	r := &Report{
		Title:    "PORT SERVICE CHARGES",
		Subtitle: fmt.Sprintf("%s %s × %d", res.Category, res.Size, res.Quantity),
		Result:   res,
	}
	if res.StorageDays > 0 {
		r.Subtitle += fmt.Sprintf(", %d day(s) storage", res.StorageDays)
	}

	for _, li := range res.Breakdown {
		r.Lines = append(r.Lines, Line{
			Label:    serviceLabel(li.Service),
			Detail:   fmt.Sprintf("%s × %s", FormatAmount(li.UnitPrice, res.Currency), li.Multiplier),
			Amount:   li.Amount,
			Currency: res.Currency,
		})
	}
	r.Totals = []Line{{Label: "TOTAL", Amount: res.Total, Currency: res.Currency}}

	for _, name := range res.Ignored {
		r.Notes = append(r.Notes, fmt.Sprintf("ignored unknown service %q", name))
	}
	return r
}

// FromImportTax builds the report of an import tax calculation
func FromImportTax(res customs.Result, hs *customs.HSCode, foreign, local types.Currency) *Report {
	pct := func(rate decimal.Decimal) string {
		return rate.Mul(decimal.NewFromInt(100)).String() + "%"
	}

	r := &Report{
		Title:  "IMPORT TAX & LANDED COST",
		Result: res,
		Lines: []Line{
			{Label: "CIF", Detail: "FOB + freight + insurance", Amount: res.CIF, Currency: foreign},
			{Label: "Import duty", Detail: pct(res.DutyRate) + " of CIF", Amount: res.Duty, Currency: foreign},
			{Label: "Taxable base", Detail: "CIF + duty", Amount: res.TaxableBase, Currency: foreign},
			{Label: "VAT (PPN)", Detail: pct(res.VATRate) + " of taxable base", Amount: res.VAT, Currency: foreign},
			{Label: "Income tax (PPh 22)", Detail: pct(res.IncomeTaxRate) + " of taxable base", Amount: res.IncomeTax, Currency: foreign},
			{Label: "Fees", Detail: "clearance + trucking + storage", Amount: res.Fees, Currency: foreign},
		},
		Totals: []Line{
			{Label: "TOTAL TAX", Amount: res.TotalTax, Currency: foreign},
			{Label: "LANDED COST", Amount: res.LandedCostForeign, Currency: foreign},
			{Label: "LANDED COST", Detail: "@ " + FormatDecimal(res.FXRate, 2), Amount: res.LandedCostLocal, Currency: local},
		},
	}
	if hs != nil {
		r.Subtitle = fmt.Sprintf("HS %s (%s)", hs.Code, hs.Category)
		r.Notes = append(r.Notes, hs.Description)
	}
	return r
}
