package tariff

import (
	"github.com/shopspring/decimal"

	"cargo-cost/core/types"
	"cargo-cost/internal/validation"
)

// LineItem is the charge for one service
type LineItem struct {
	Service    Service         `json:"service"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
}

// ChargeResult is the outcome of ComputeCharges
type ChargeResult struct {
	Category    string          `json:"category"`
	Size        string          `json:"size"`
	StorageDays int             `json:"storage_days"`
	Quantity    int             `json:"quantity"`
	Currency    types.Currency  `json:"currency"`
	Total       decimal.Decimal `json:"total"`

	// Breakdown holds one item per requested service, in canonical order
	Breakdown []LineItem `json:"breakdown"`

	// Ignored lists requested names that are not services
	Ignored []string `json:"ignored,omitempty"`
}

// Amounts returns the breakdown keyed by service
func (r *ChargeResult) Amounts() map[Service]decimal.Decimal {
	m := make(map[Service]decimal.Decimal, len(r.Breakdown))
	for _, li := range r.Breakdown {
		m[li.Service] = li.Amount
	}
	return m
}

type chargeOptions struct {
	storageDays int
	quantity    int
}

// Option adjusts the multipliers of ComputeCharges
type Option func(*chargeOptions)

// WithStorageDays sets the storage duration in days (default 0)
func WithStorageDays(days int) Option {
	return func(o *chargeOptions) { o.storageDays = days }
}

// WithQuantity sets the number of containers or items (default 1)
func WithQuantity(n int) Option {
	return func(o *chargeOptions) { o.quantity = n }
}

// ComputeCharges prices the requested services for one category and size.
//
// Storage is charged unit price × days × quantity; the other services unit
// price × quantity. Names that are not services are skipped and listed in
// Ignored. A lookup failure for any requested service fails the whole call.
func (c *Catalog) ComputeCharges(category, size string, services []string, opts ...Option) (*ChargeResult, error) {
	o := chargeOptions{quantity: 1}
	for _, opt := range opts {
		opt(&o)
	}

	requested := make(map[Service]bool, len(services))
	var ignored []string
	for _, name := range services {
		s, ok := ParseService(name)
		if !ok {
			ignored = append(ignored, name)
			continue
		}
		requested[s] = true
	}

	result := &ChargeResult{
		Category:    category,
		Size:        size,
		StorageDays: o.storageDays,
		Quantity:    o.quantity,
		Currency:    c.currency,
		Total:       decimal.Zero,
		Breakdown:   []LineItem{},
		Ignored:     ignored,
	}

	qty := decimal.NewFromInt(int64(o.quantity))
	for _, s := range Services {
		if !requested[s] {
			continue
		}
		price, err := c.tables[s].Resolve(category, size)
		if err != nil {
			return nil, err
		}

		multiplier := qty
		if s == ServiceStorage {
			multiplier = decimal.NewFromInt(int64(o.storageDays)).Mul(qty)
		}
		amount := price.Mul(multiplier)

		result.Breakdown = append(result.Breakdown, LineItem{
			Service:    s,
			UnitPrice:  price,
			Multiplier: multiplier,
			Amount:     amount,
		})
		result.Total = result.Total.Add(amount)
	}

	return result, nil
}

// ComputeCharges prices services against the built-in catalog
func ComputeCharges(category, size string, services []string, opts ...Option) (*ChargeResult, error) {
	return Default().ComputeCharges(category, size, services, opts...)
}

// ChargeRequest is the boundary form of a charge calculation
type ChargeRequest struct {
	Category    string   `json:"category" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	Services    []string `json:"services" validate:"min=1"`
	StorageDays int      `json:"storage_days" validate:"gte=0"`
	Quantity    int      `json:"quantity" validate:"gte=1"`
}

// Validate checks the request shape; it does not consult the catalog
func (r ChargeRequest) Validate() error {
	return validation.Struct(r)
}

// Compute validates req and prices it
func (c *Catalog) Compute(req ChargeRequest) (*ChargeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.ComputeCharges(req.Category, req.Size, req.Services,
		WithStorageDays(req.StorageDays), WithQuantity(req.Quantity))
}
