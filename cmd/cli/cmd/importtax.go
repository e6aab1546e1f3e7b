// Package cmd - import-tax command
package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cargo-cost/core/customs"
	"cargo-cost/core/output"
	cerrors "cargo-cost/internal/errors"
	"cargo-cost/internal/logging"
)

type importTaxOptions struct {
	fob, freight, insurance string
	dutyRate                string
	hsCode                  string
	vatRate                 string
	incomeTaxRate           string
	fxRate                  string
	noTaxID                 bool
	clearance               string
	trucking                string
	storage                 string
	render                  renderOptions
}

func newImportTaxCommand(root *rootOptions) *cobra.Command {
	o := &importTaxOptions{}

	cmd := &cobra.Command{
		Use:   "import-tax",
		Short: "Compute import duty, taxes and landed cost",
		Long: `Compute CIF, import duty, VAT (PPN), income tax (PPh 22) and the landed
cost of a shipment. Amounts are in the foreign currency; the landed cost is
also converted with the FX rate.

The duty rate comes from --duty-rate or from the HS code reference table
(see "cargo-cost hscodes").

Examples:
  cargo-cost import-tax --fob 5000 --freight 500 --insurance 50 --duty-rate 0.05 --clearance-fee 150
  cargo-cost import-tax --fob 1200 --hs-code 8471.30.00 --no-tax-id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.fob, "fob", "", "free on board value")
	f.StringVar(&o.freight, "freight", "0", "freight cost")
	f.StringVar(&o.insurance, "insurance", "0", "insurance cost")
	f.StringVar(&o.dutyRate, "duty-rate", "", "import duty rate, e.g. 0.05")
	f.StringVar(&o.hsCode, "hs-code", "", "HS code to take the duty rate from")
	f.StringVar(&o.vatRate, "vat-rate", "", "VAT rate (default from config)")
	f.StringVar(&o.incomeTaxRate, "income-tax-rate", "", "income tax rate with a tax ID (default from config)")
	f.StringVar(&o.fxRate, "fx-rate", "", "local units per foreign unit (default from config)")
	f.BoolVar(&o.noTaxID, "no-tax-id", false, "importer has no tax ID (higher income tax rate)")
	f.StringVar(&o.clearance, "clearance-fee", "0", "customs clearance fee")
	f.StringVar(&o.trucking, "trucking-fee", "0", "trucking fee")
	f.StringVar(&o.storage, "storage-fee", "0", "storage fee")
	_ = cmd.MarkFlagRequired("fob")
	cmd.MarkFlagsMutuallyExclusive("duty-rate", "hs-code")
	o.render.addFlags(cmd)
	return cmd
}

func (o *importTaxOptions) request() (customs.Request, error) {
	var req customs.Request
	var err error

	for _, p := range []struct {
		flag string
		raw  string
		dst  *decimal.Decimal
	}{
		{"fob", o.fob, &req.FOB},
		{"freight", o.freight, &req.Freight},
		{"insurance", o.insurance, &req.Insurance},
		{"clearance-fee", o.clearance, &req.ClearanceFee},
		{"trucking-fee", o.trucking, &req.TruckingFee},
		{"storage-fee", o.storage, &req.StorageFee},
	} {
		if *p.dst, err = parseDecimal(p.flag, p.raw); err != nil {
			return req, err
		}
	}

	for _, p := range []struct {
		flag string
		raw  string
		dst  **decimal.Decimal
	}{
		{"duty-rate", o.dutyRate, &req.DutyRate},
		{"vat-rate", o.vatRate, &req.VATRate},
		{"income-tax-rate", o.incomeTaxRate, &req.IncomeTaxRate},
		{"fx-rate", o.fxRate, &req.FXRate},
	} {
		if p.raw == "" {
			continue
		}
		v, err := parseDecimal(p.flag, p.raw)
		if err != nil {
			return req, err
		}
		*p.dst = &v
	}

	req.HSCode = o.hsCode
	if o.noTaxID {
		hasTaxID := false
		req.HasTaxID = &hasTaxID
	}
	return req, nil
}

func (o *importTaxOptions) run(cmd *cobra.Command, root *rootOptions) error {
	req, err := o.request()
	if err != nil {
		return err
	}

	taxCfg := root.cfg.ImportTax
	in, hs, err := req.Input(taxCfg.Defaults())
	if err != nil {
		return err
	}
	if hs != nil {
		logging.Debug("duty rate from HS code", zap.String("hs_code", hs.Code), zap.String("rate", hs.DutyRate.String()))
	}

	res := customs.ComputeImportTax(in)
	return o.render.render(cmd, root.cfg, output.FromImportTax(res, hs, taxCfg.ForeignCurrency, taxCfg.LocalCurrency))
}

func parseDecimal(flag, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, cerrors.Wrapf(cerrors.TypeInput, err, "--%s: %q is not a number", flag, raw)
	}
	return v, nil
}
