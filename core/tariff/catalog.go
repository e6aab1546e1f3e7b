package tariff

import (
	"github.com/shopspring/decimal"

	"cargo-cost/core/types"
	cerrors "cargo-cost/internal/errors"
)

// Container categories of the published tariff
const (
	CategoryFull            = "Full Container"
	CategoryEmpty           = "Empty Container"
	CategoryDangerousGoods  = "DG Container (IMDG-CODE)"
	CategoryReefer          = "Reefer Container"
	CategoryOverdimension   = "Overdimension Container (OH/OW/OL)"
	CategoryLoadedChassis   = "Loaded Chassis"
	CategoryEmptyChassis    = "Empty Chassis"
	CategoryUncontainerized = "Uncontainerized"
)

var (
	containerSizes = []string{"20ft", "40ft", "45ft"}
	tonnageBands   = []string{"1-20 ton", "21-35 ton", ">35 ton"}
)

// Catalog groups one table per service.
type Catalog struct {
	currency types.Currency
	tables   map[Service]*Table
}

// NewCatalog assembles a catalog. Every service needs exactly one table.
func NewCatalog(currency types.Currency, tables ...*Table) (*Catalog, error) {
	c := &Catalog{
		currency: currency,
		tables:   make(map[Service]*Table, len(Services)),
	}
	for _, t := range tables {
		if _, dup := c.tables[t.service]; dup {
			return nil, cerrors.Newf(cerrors.TypeConfig, "duplicate %s tariff", t.service)
		}
		c.tables[t.service] = t
	}
	for _, s := range Services {
		if _, ok := c.tables[s]; !ok {
			return nil, cerrors.Newf(cerrors.TypeConfig, "missing %s tariff", s)
		}
	}
	return c, nil
}

// Currency returns the currency all prices are quoted in
func (c *Catalog) Currency() types.Currency {
	return c.currency
}

// Table returns the table for a service
func (c *Catalog) Table(s Service) (*Table, bool) {
	t, ok := c.tables[s]
	return t, ok
}

// Resolve looks up the unit price of one service
func (c *Catalog) Resolve(s Service, category, size string) (decimal.Decimal, error) {
	t, ok := c.tables[s]
	if !ok {
		return decimal.Zero, cerrors.Newf(cerrors.TypeInput, "unknown service %q", s)
	}
	return t.Resolve(category, size)
}

type priceRow struct {
	category string
	sizes    []string
	prices   []int64
}

var builtinRates = map[Service][]priceRow{
	ServiceStorage: {
		{CategoryFull, containerSizes, []int64{26700, 53400, 66800}},
		{CategoryEmpty, containerSizes, []int64{12000, 24000, 30000}},
		{CategoryDangerousGoods, containerSizes, []int64{36000, 72000, 90000}},
		{CategoryReefer, containerSizes, []int64{48000, 96000, 120000}},
		{CategoryOverdimension, containerSizes, []int64{48000, 96000, 120000}},
		{CategoryLoadedChassis, containerSizes, []int64{20000, 40000, 50000}},
		{CategoryEmptyChassis, containerSizes, []int64{20000, 40000, 50000}},
		{CategoryUncontainerized, tonnageBands, []int64{54000, 108000, 135000}},
	},
	ServiceLift: {
		{CategoryFull, containerSizes, []int64{196000, 295000, 369000}},
		{CategoryEmpty, containerSizes, []int64{83500, 125000, 156250}},
		{CategoryDangerousGoods, containerSizes, []int64{167000, 250000, 312500}},
		{CategoryReefer, containerSizes, []int64{196000, 295000, 369000}},
		{CategoryOverdimension, containerSizes, []int64{637000, 955000, 1115000}},
		{CategoryUncontainerized, tonnageBands, []int64{637000, 955000, 1115000}},
	},
	ServiceHaulage: {
		{CategoryFull, containerSizes, []int64{80000, 120000, 148000}},
		{CategoryEmpty, containerSizes, []int64{40000, 65000, 75000}},
		{CategoryDangerousGoods, containerSizes, []int64{60000, 90000, 110000}},
		{CategoryReefer, containerSizes, []int64{80000, 120000, 148000}},
		{CategoryOverdimension, containerSizes, []int64{240000, 360000, 440000}},
		{CategoryUncontainerized, tonnageBands, []int64{240000, 360000, 440000}},
	},
	ServiceExtraMovement: {
		{CategoryFull, containerSizes, []int64{472000, 710000, 886000}},
		{CategoryEmpty, containerSizes, []int64{207000, 315000, 387500}},
		{CategoryDangerousGoods, containerSizes, []int64{394000, 590000, 735000}},
		{CategoryReefer, containerSizes, []int64{472000, 710000, 886000}},
		{CategoryOverdimension, containerSizes, []int64{1514000, 2270000, 2670000}},
		{CategoryUncontainerized, tonnageBands, []int64{1514000, 2270000, 2670000}},
	},
}

func buildBuiltin() (*Catalog, error) {
	tables := make([]*Table, 0, len(Services))
	for _, s := range Services {
		b := newTableBuilder(s)
		for _, row := range builtinRates[s] {
			for i, size := range row.sizes {
				if err := b.add(row.category, size, decimal.NewFromInt(row.prices[i])); err != nil {
					return nil, err
				}
			}
		}
		tables = append(tables, b.build())
	}
	return NewCatalog(types.CurrencyIDR, tables...)
}

var defaultCatalog = mustBuiltin()

func mustBuiltin() *Catalog {
	c, err := buildBuiltin()
	if err != nil {
		panic("tariff: built-in catalog: " + err.Error())
	}
	return c
}

// Default returns the built-in catalog of published tariffs
func Default() *Catalog {
	return defaultCatalog
}
