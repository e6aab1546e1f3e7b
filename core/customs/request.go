package customs

import (
	"github.com/shopspring/decimal"

	"cargo-cost/internal/validation"
)

// Request is the boundary form of an import tax calculation. Nil rates fall
// back to the defaults passed to Input; HSCode may stand in for DutyRate.
type Request struct {
	FOB       decimal.Decimal `json:"fob"`
	Freight   decimal.Decimal `json:"freight"`
	Insurance decimal.Decimal `json:"insurance"`

	DutyRate *decimal.Decimal `json:"duty_rate,omitempty" validate:"required_without=HSCode"`
	HSCode   string           `json:"hs_code,omitempty" validate:"excluded_with=DutyRate"`

	VATRate       *decimal.Decimal `json:"vat_rate,omitempty"`
	IncomeTaxRate *decimal.Decimal `json:"income_tax_rate,omitempty"`
	FXRate        *decimal.Decimal `json:"fx_rate,omitempty"`
	HasTaxID      *bool            `json:"has_tax_id,omitempty"`

	ClearanceFee decimal.Decimal `json:"clearance_fee"`
	TruckingFee  decimal.Decimal `json:"trucking_fee"`
	StorageFee   decimal.Decimal `json:"storage_fee"`
}

// Validate checks that exactly one duty source is given
func (r Request) Validate() error {
	return validation.Struct(r)
}

// Input merges the request over defaults. The returned HSCode is set when
// the duty rate came from the reference table.
func (r Request) Input(defaults Input) (Input, *HSCode, error) {
	if err := r.Validate(); err != nil {
		return Input{}, nil, err
	}

	in := defaults
	in.FOB = r.FOB
	in.Freight = r.Freight
	in.Insurance = r.Insurance
	in.ClearanceFee = r.ClearanceFee
	in.TruckingFee = r.TruckingFee
	in.StorageFee = r.StorageFee

	var hs *HSCode
	if r.DutyRate != nil {
		in.DutyRate = *r.DutyRate
	} else {
		entry, err := LookupHSCode(r.HSCode)
		if err != nil {
			return Input{}, nil, err
		}
		in.DutyRate = entry.DutyRate
		hs = &entry
	}

	if r.VATRate != nil {
		in.VATRate = *r.VATRate
	}
	if r.IncomeTaxRate != nil {
		in.IncomeTaxRateWithID = *r.IncomeTaxRate
	}
	if r.FXRate != nil {
		in.FXRate = *r.FXRate
	}
	if r.HasTaxID != nil {
		in.HasTaxID = *r.HasTaxID
	}
	return in, hs, nil
}
