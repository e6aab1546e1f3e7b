package tariff

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"cargo-cost/core/types"
	cerrors "cargo-cost/internal/errors"
)

// catalogFile is the HCL shape of a published tariff:
//
//	currency = "IDR"
//	tariff "storage" {
//	  category "Full Container" {
//	    rates = { "20ft" = 26700, "40ft" = 53400 }
//	  }
//	}
type catalogFile struct {
	Currency string        `hcl:"currency,optional"`
	Tariffs  []tariffBlock `hcl:"tariff,block"`
}

type tariffBlock struct {
	Service    string          `hcl:"service,label"`
	Categories []categoryBlock `hcl:"category,block"`
}

type categoryBlock struct {
	Name  string           `hcl:"name,label"`
	Rates map[string]int64 `hcl:"rates"`
}

// LoadCatalogFile reads a catalog from an .hcl (or .json HCL) file
func LoadCatalogFile(path string) (*Catalog, error) {
	var f catalogFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, cerrors.Config("decode tariff catalog "+path, err)
	}
	return f.build()
}

// ParseCatalog reads a catalog from source; filename picks the syntax
func ParseCatalog(filename string, src []byte) (*Catalog, error) {
	var f catalogFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, cerrors.Config("decode tariff catalog "+filename, err)
	}
	return f.build()
}

func (f *catalogFile) build() (*Catalog, error) {
	currency := types.Currency(f.Currency)
	if currency == "" {
		currency = types.CurrencyIDR
	}

	tables := make([]*Table, 0, len(f.Tariffs))
	for _, tb := range f.Tariffs {
		s, ok := ParseService(tb.Service)
		if !ok {
			return nil, cerrors.Newf(cerrors.TypeConfig, "unknown tariff service %q", tb.Service)
		}

		b := newTableBuilder(s)
		for _, cb := range tb.Categories {
			sizes := make([]string, 0, len(cb.Rates))
			for size := range cb.Rates {
				sizes = append(sizes, size)
			}
			sort.Strings(sizes)

			for _, size := range sizes {
				if err := b.add(cb.Name, size, decimal.NewFromInt(cb.Rates[size])); err != nil {
					return nil, err
				}
			}
		}
		tables = append(tables, b.build())
	}

	return NewCatalog(currency, tables...)
}
