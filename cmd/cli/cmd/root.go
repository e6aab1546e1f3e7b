// Package cmd provides the CLI commands for cargo-cost.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cargo-cost/core/output"
	"cargo-cost/internal/config"
	cerrors "cargo-cost/internal/errors"
	"cargo-cost/internal/logging"
)

// Version is the CLI version
const Version = "1.0.0"

type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cargo-cost",
		Short: "Port service charges and import tax calculator",
		Long: `cargo-cost prices port services (storage, lift, haulage, extra movement)
from the published terminal tariff and computes import duty, VAT, income
tax and landed cost for a shipment.

Examples:
  cargo-cost charges --category "Full Container" --size 40ft -s storage -s lift --days 3 --quantity 2
  cargo-cost import-tax --fob 5000 --freight 500 --insurance 50 --duty-rate 0.05
  cargo-cost import-tax --fob 1200 --hs-code 8471.30.00 --format xlsx --out landed.xlsx
  cargo-cost tariffs --service lift`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.cargo-cost.json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newChargesCommand(opts))
	root.AddCommand(newImportTaxCommand(opts))
	root.AddCommand(newTariffsCommand(opts))
	root.AddCommand(newHSCodesCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *rootOptions) init() error {
	path := o.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.Set(cfg)
	o.cfg = cfg

	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// renderOptions select how a report is written
type renderOptions struct {
	format  string
	out     string
	details bool
}

func (r *renderOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.format, "format", "f", "", "output format (cli, json, markdown, xlsx)")
	cmd.Flags().StringVarP(&r.out, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVarP(&r.details, "details", "d", true, "show the detail of each line")
}

// render writes report in the chosen format; the config default applies
// when no format flag is given
func (r *renderOptions) render(cmd *cobra.Command, cfg *config.Config, report *output.Report) error {
	format := r.format
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	details := cfg.Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = r.details
	}

	f, err := output.NewRegistry(output.Options{ShowDetails: details}).Get(format)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if r.out != "" {
		file, err := os.Create(r.out)
		if err != nil {
			return cerrors.Wrap(cerrors.TypeInput, "create "+r.out, err)
		}
		defer file.Close()
		w = file
	} else if output.Binary(f.Format()) {
		return cerrors.Newf(cerrors.TypeInput, "%s output needs --out", format)
	}

	if err := f.Render(w, report); err != nil {
		return cerrors.Internal("render "+format, err)
	}
	if r.out != "" {
		logging.Info("report written", zap.String("path", r.out), zap.String("format", format))
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cargo-cost version %s\n", Version)
		},
	}
}
