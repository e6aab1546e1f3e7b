// Package tariff holds the port-service tariff tables and the charge
// calculation built on them.
//
// Tables and catalogs are immutable once built and safe for concurrent use.
package tariff

import (
	"github.com/shopspring/decimal"

	cerrors "cargo-cost/internal/errors"
)

// Service identifies a billable port service
type Service string

const (
	ServiceStorage       Service = "storage"
	ServiceLift          Service = "lift"
	ServiceHaulage       Service = "haulage"
	ServiceExtraMovement Service = "extra_movement"
)

// Services lists every service in canonical order
var Services = []Service{ServiceStorage, ServiceLift, ServiceHaulage, ServiceExtraMovement}

// ParseService maps a name onto a known service
func ParseService(name string) (Service, bool) {
	for _, s := range Services {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// String returns the service name
func (s Service) String() string {
	return string(s)
}

// Rate is one catalog entry
type Rate struct {
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
}

// Table maps (category, size class) to a unit price for one service.
type Table struct {
	service    Service
	categories []string
	sizes      map[string][]string
	prices     map[string]map[string]decimal.Decimal
}

// Service returns the service this table prices
func (t *Table) Service() Service {
	return t.service
}

// Resolve returns the unit price for category and size.
// It fails with TypeUnknownCategory when the category is absent and with
// TypeUnknownSize when the category exists but the size does not.
func (t *Table) Resolve(category, size string) (decimal.Decimal, error) {
	bySize, ok := t.prices[category]
	if !ok {
		return decimal.Zero, cerrors.Newf(cerrors.TypeUnknownCategory,
			"category %q not found in %s tariff", category, t.service).
			WithContext("service", t.service.String()).
			WithContext("category", category)
	}

	price, ok := bySize[size]
	if !ok {
		return decimal.Zero, cerrors.Newf(cerrors.TypeUnknownSize,
			"size %q not found for %q in %s tariff", size, category, t.service).
			WithContext("service", t.service.String()).
			WithContext("category", category).
			WithContext("size", size)
	}
	return price, nil
}

// Categories returns the categories in listing order
func (t *Table) Categories() []string {
	return append([]string(nil), t.categories...)
}

// Sizes returns the size classes of a category, nil if unknown
func (t *Table) Sizes(category string) []string {
	sizes, ok := t.sizes[category]
	if !ok {
		return nil
	}
	return append([]string(nil), sizes...)
}

// Rates returns every entry in listing order
func (t *Table) Rates() []Rate {
	var rates []Rate
	for _, c := range t.categories {
		for _, s := range t.sizes[c] {
			rates = append(rates, Rate{Category: c, Size: s, Price: t.prices[c][s]})
		}
	}
	return rates
}

// tableBuilder accumulates rates in insertion order.
type tableBuilder struct {
	t *Table
}

func newTableBuilder(service Service) *tableBuilder {
	return &tableBuilder{t: &Table{
		service: service,
		sizes:   make(map[string][]string),
		prices:  make(map[string]map[string]decimal.Decimal),
	}}
}

func (b *tableBuilder) add(category, size string, price decimal.Decimal) error {
	if price.IsNegative() {
		return cerrors.Newf(cerrors.TypeConfig, "negative %s price for %q/%q: %s",
			b.t.service, category, size, price)
	}
	bySize, ok := b.t.prices[category]
	if !ok {
		bySize = make(map[string]decimal.Decimal)
		b.t.prices[category] = bySize
		b.t.categories = append(b.t.categories, category)
	}
	if _, dup := bySize[size]; dup {
		return cerrors.Newf(cerrors.TypeConfig, "duplicate %s price for %q/%q",
			b.t.service, category, size)
	}
	bySize[size] = price
	b.t.sizes[category] = append(b.t.sizes[category], size)
	return nil
}

func (b *tableBuilder) build() *Table {
	t := b.t
	b.t = nil
	return t
}
