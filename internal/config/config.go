// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"cargo-cost/core/customs"
	"cargo-cost/core/tariff"
	"cargo-cost/core/types"
	cerrors "cargo-cost/internal/errors"
	"cargo-cost/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CARGOCOST_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Tariff contains port tariff settings
	Tariff TariffConfig `json:"tariff"`

	// ImportTax contains default import tax rates
	ImportTax ImportTaxConfig `json:"import_tax"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// TariffConfig contains tariff catalog settings
type TariffConfig struct {
	// CatalogPath is an optional HCL tariff file; empty uses the built-in catalog
	CatalogPath string `json:"catalog_path,omitempty"`
}

// Catalog loads the configured tariff catalog
func (c TariffConfig) Catalog() (*tariff.Catalog, error) {
	if c.CatalogPath == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadCatalogFile(c.CatalogPath)
}

// ImportTaxConfig contains import tax defaults
type ImportTaxConfig struct {
	VATRate             decimal.Decimal `json:"vat_rate"`
	IncomeTaxRateWithID decimal.Decimal `json:"income_tax_rate_with_id"`
	FXRate              decimal.Decimal `json:"fx_rate"`
	ForeignCurrency     types.Currency  `json:"foreign_currency"`
	LocalCurrency       types.Currency  `json:"local_currency"`
}

// Defaults returns a customs input carrying the configured rates
func (c ImportTaxConfig) Defaults() customs.Input {
	in := customs.DefaultInput()
	in.VATRate = c.VATRate
	in.IncomeTaxRateWithID = c.IncomeTaxRateWithID
	in.FXRate = c.FXRate
	return in
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-service breakdown
	ShowDetails bool `json:"show_details"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr                   string `json:"addr"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		ImportTax: ImportTaxConfig{
			VATRate:             customs.DefaultVATRate,
			IncomeTaxRateWithID: customs.DefaultIncomeTaxRateWithID,
			FXRate:              customs.DefaultFXRate,
			ForeignCurrency:     types.CurrencyUSD,
			LocalCurrency:       types.CurrencyIDR,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Server: ServerConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.cargo-cost.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".cargo-cost.json")
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, cerrors.Config("parse "+path, err)
		}
	case !os.IsNotExist(err):
		return nil, cerrors.Config("read "+path, err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overlays CARGOCOST_* variables, reading .env first when present.
func (c *Config) applyEnv() error {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return cerrors.Config("load environment", err)
	}

	setString := func(key string, dst *string) {
		if k.Exists(key) {
			*dst = k.String(key)
		}
	}
	setDecimal := func(key string, dst *decimal.Decimal) error {
		if !k.Exists(key) {
			return nil
		}
		v, err := decimal.NewFromString(k.String(key))
		if err != nil {
			return cerrors.Config(EnvPrefix+strings.ToUpper(key), err)
		}
		*dst = v
		return nil
	}

	setString("tariff_catalog", &c.Tariff.CatalogPath)
	setString("output_format", &c.Output.DefaultFormat)
	setString("server_addr", &c.Server.Addr)
	setString("log_level", &c.Logging.Level)
	setString("log_format", &c.Logging.Format)
	setString("log_output", &c.Logging.Output)
	if k.Exists("server_shutdown_timeout") {
		c.Server.ShutdownTimeoutSeconds = k.Int("server_shutdown_timeout")
	}

	for key, dst := range map[string]*decimal.Decimal{
		"importtax_vat_rate":        &c.ImportTax.VATRate,
		"importtax_income_tax_rate": &c.ImportTax.IncomeTaxRateWithID,
		"importtax_fx_rate":         &c.ImportTax.FXRate,
	} {
		if err := setDecimal(key, dst); err != nil {
			return err
		}
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
