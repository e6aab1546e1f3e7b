// Package cmd - tariffs and hscodes listings
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cargo-cost/core/customs"
	"cargo-cost/core/output"
	"cargo-cost/core/tariff"
	cerrors "cargo-cost/internal/errors"
)

func newTariffsCommand(root *rootOptions) *cobra.Command {
	var (
		service     string
		catalogFile string
	)

	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "List tariff categories, sizes and prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tariffCfg := root.cfg.Tariff
			if catalogFile != "" {
				tariffCfg.CatalogPath = catalogFile
			}
			catalog, err := tariffCfg.Catalog()
			if err != nil {
				return err
			}

			services := tariff.Services
			if service != "" {
				s, ok := tariff.ParseService(service)
				if !ok {
					return cerrors.NotFound("service", service)
				}
				services = []tariff.Service{s}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SERVICE\tCATEGORY\tSIZE\tPRICE")
			for _, s := range services {
				t, ok := catalog.Table(s)
				if !ok {
					continue
				}
				for _, r := range t.Rates() {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s, r.Category, r.Size,
						output.FormatAmount(r.Price, catalog.Currency()))
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "only list one service")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "HCL tariff file (overrides config)")
	return cmd
}

func newHSCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hscodes",
		Short: "List the HS code reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tDUTY\tCATEGORY\tDESCRIPTION")
			for _, h := range customs.HSCodes() {
				fmt.Fprintf(tw, "%s\t%s%%\t%s\t%s\n", h.Code,
					h.DutyRate.Shift(2).String(), h.Category, h.Description)
			}
			return tw.Flush()
		},
	}
}
