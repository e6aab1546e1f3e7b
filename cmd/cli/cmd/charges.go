// Package cmd - charges command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cargo-cost/core/output"
	"cargo-cost/core/tariff"
	"cargo-cost/internal/logging"
)

type chargesOptions struct {
	category    string
	size        string
	services    []string
	days        int
	quantity    int
	catalogFile string
	render      renderOptions
}

func newChargesCommand(root *rootOptions) *cobra.Command {
	o := &chargesOptions{}

	cmd := &cobra.Command{
		Use:   "charges",
		Short: "Compute port service charges",
		Long: `Price the requested services for one container category and size.

Storage is charged per day and container; lift, haulage and extra movement
per container. Unknown service names are skipped and reported.

Examples:
  cargo-cost charges --category "Full Container" --size 40ft -s storage -s lift --days 3 --quantity 2
  cargo-cost charges --category Uncontainerized --size "21-35 ton" -s haulage --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root)
		},
	}

	cmd.Flags().StringVarP(&o.category, "category", "c", "", "container category, e.g. \"Full Container\"")
	cmd.Flags().StringVar(&o.size, "size", "", "size class, e.g. 20ft or \"1-20 ton\"")
	cmd.Flags().StringArrayVarP(&o.services, "service", "s", nil, "service to price (storage, lift, haulage, extra_movement); repeatable")
	cmd.Flags().IntVar(&o.days, "days", 0, "storage days")
	cmd.Flags().IntVarP(&o.quantity, "quantity", "q", 1, "number of containers or items")
	cmd.Flags().StringVar(&o.catalogFile, "catalog", "", "HCL tariff file (overrides config)")
	o.render.addFlags(cmd)
	return cmd
}

func (o *chargesOptions) run(cmd *cobra.Command, root *rootOptions) error {
	tariffCfg := root.cfg.Tariff
	if o.catalogFile != "" {
		tariffCfg.CatalogPath = o.catalogFile
	}
	catalog, err := tariffCfg.Catalog()
	if err != nil {
		return err
	}

	res, err := catalog.Compute(tariff.ChargeRequest{
		Category:    o.category,
		Size:        o.size,
		Services:    o.services,
		StorageDays: o.days,
		Quantity:    o.quantity,
	})
	if err != nil {
		return err
	}
	if len(res.Ignored) > 0 {
		logging.Debug("ignored unknown services", zap.Strings("services", res.Ignored))
	}

	return o.render.render(cmd, root.cfg, output.FromCharges(res))
}
