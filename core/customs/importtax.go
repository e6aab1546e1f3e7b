// Package customs computes import duties, taxes and landed cost.
package customs

import (
	"github.com/shopspring/decimal"
)

var (
	// DefaultVATRate is the PPN rate
	DefaultVATRate = decimal.RequireFromString("0.11")

	// DefaultIncomeTaxRateWithID is the PPh 22 rate for importers with a tax ID
	DefaultIncomeTaxRateWithID = decimal.RequireFromString("0.025")

	// IncomeTaxRateWithoutID is the PPh 22 rate for importers without a tax ID
	IncomeTaxRateWithoutID = decimal.RequireFromString("0.075")

	// DefaultFXRate is the tax exchange rate, local units per foreign unit
	DefaultFXRate = decimal.NewFromInt(16000)
)

// Input holds the values of one import tax calculation. Amounts are in the
// foreign currency.
type Input struct {
	FOB       decimal.Decimal
	Freight   decimal.Decimal
	Insurance decimal.Decimal

	DutyRate            decimal.Decimal
	VATRate             decimal.Decimal
	IncomeTaxRateWithID decimal.Decimal
	FXRate              decimal.Decimal
	HasTaxID            bool

	ClearanceFee decimal.Decimal
	TruckingFee  decimal.Decimal
	StorageFee   decimal.Decimal
}

// DefaultInput returns an input carrying the default rates and no values
func DefaultInput() Input {
	return Input{
		VATRate:             DefaultVATRate,
		IncomeTaxRateWithID: DefaultIncomeTaxRateWithID,
		FXRate:              DefaultFXRate,
		HasTaxID:            true,
	}
}

// Result holds every derived figure. Values are exact; round for display.
type Result struct {
	CIF               decimal.Decimal `json:"cif"`
	Duty              decimal.Decimal `json:"duty"`
	TaxableBase       decimal.Decimal `json:"taxable_base"`
	VAT               decimal.Decimal `json:"vat"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	Fees              decimal.Decimal `json:"fees"`
	LandedCostForeign decimal.Decimal `json:"landed_cost_foreign"`
	LandedCostLocal   decimal.Decimal `json:"landed_cost_local"`

	DutyRate      decimal.Decimal `json:"duty_rate"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	IncomeTaxRate decimal.Decimal `json:"income_tax_rate"`
	FXRate        decimal.Decimal `json:"fx_rate"`
}

// ComputeImportTax applies the import tax formula:
//
//	CIF          = FOB + freight + insurance
//	duty         = CIF × duty rate
//	taxable base = CIF + duty
//	VAT          = taxable base × VAT rate
//	income tax   = taxable base × (PPh rate with ID, or 7.5% without)
//	total tax    = duty + VAT + income tax
//	landed cost  = CIF + total tax + clearance + trucking + storage
//
// and converts the landed cost with the FX rate. Inputs are not validated.
func ComputeImportTax(in Input) Result {
	cif := in.FOB.Add(in.Freight).Add(in.Insurance)
	duty := cif.Mul(in.DutyRate)
	base := cif.Add(duty)
	vat := base.Mul(in.VATRate)

	pphRate := IncomeTaxRateWithoutID
	if in.HasTaxID {
		pphRate = in.IncomeTaxRateWithID
	}
	incomeTax := base.Mul(pphRate)

	totalTax := duty.Add(vat).Add(incomeTax)
	fees := in.ClearanceFee.Add(in.TruckingFee).Add(in.StorageFee)
	landed := cif.Add(totalTax).Add(fees)

	return Result{
		CIF:               cif,
		Duty:              duty,
		TaxableBase:       base,
		VAT:               vat,
		IncomeTax:         incomeTax,
		TotalTax:          totalTax,
		Fees:              fees,
		LandedCostForeign: landed,
		LandedCostLocal:   landed.Mul(in.FXRate),
		DutyRate:          in.DutyRate,
		VATRate:           in.VATRate,
		IncomeTaxRate:     pphRate,
		FXRate:            in.FXRate,
	}
}
