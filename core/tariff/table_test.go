package tariff

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "cargo-cost/internal/errors"
)

func mustTable(t *testing.T, s Service) *Table {
	t.Helper()
	tbl, ok := Default().Table(s)
	require.True(t, ok, "missing %s table", s)
	return tbl
}

func TestResolveReturnsConfiguredPrice(t *testing.T) {
	tests := []struct {
		service  Service
		category string
		size     string
		want     int64
	}{
		{ServiceStorage, CategoryFull, "40ft", 53400},
		{ServiceStorage, CategoryEmptyChassis, "45ft", 50000},
		{ServiceStorage, CategoryUncontainerized, ">35 ton", 135000},
		{ServiceLift, CategoryFull, "40ft", 295000},
		{ServiceLift, CategoryEmpty, "45ft", 156250},
		{ServiceHaulage, CategoryDangerousGoods, "20ft", 60000},
		{ServiceHaulage, CategoryUncontainerized, "21-35 ton", 360000},
		{ServiceExtraMovement, CategoryOverdimension, "45ft", 2670000},
		{ServiceExtraMovement, CategoryReefer, "20ft", 472000},
	}

	for _, tt := range tests {
		t.Run(string(tt.service)+"/"+tt.category+"/"+tt.size, func(t *testing.T) {
			price, err := mustTable(t, tt.service).Resolve(tt.category, tt.size)
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.NewFromInt(tt.want)), "got %s", price)
		})
	}
}

func TestResolveEveryBuiltinRate(t *testing.T) {
	for _, s := range Services {
		for _, row := range builtinRates[s] {
			for i, size := range row.sizes {
				price, err := Default().Resolve(s, row.category, size)
				require.NoError(t, err)
				assert.Equal(t, row.prices[i], price.IntPart(), "%s %s %s", s, row.category, size)
			}
		}
	}
}

func TestResolveUnknownCategory(t *testing.T) {
	_, err := mustTable(t, ServiceLift).Resolve(CategoryLoadedChassis, "20ft")
	require.Error(t, err)
	assert.True(t, cerrors.IsType(err, cerrors.TypeUnknownCategory))
	assert.Contains(t, err.Error(), CategoryLoadedChassis)

	e, ok := cerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "lift", e.Context["service"])
}

func TestResolveUnknownSize(t *testing.T) {
	_, err := mustTable(t, ServiceStorage).Resolve(CategoryUncontainerized, "40ft")
	require.Error(t, err)
	assert.True(t, cerrors.IsType(err, cerrors.TypeUnknownSize))
	assert.False(t, cerrors.IsType(err, cerrors.TypeUnknownCategory))
	assert.Contains(t, err.Error(), "40ft")
	assert.Contains(t, err.Error(), CategoryUncontainerized)
}

func TestListingOrderAndCopies(t *testing.T) {
	storage := mustTable(t, ServiceStorage)
	cats := storage.Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, CategoryFull, cats[0])
	assert.Equal(t, CategoryUncontainerized, cats[7])

	cats[0] = "mutated"
	assert.Equal(t, CategoryFull, storage.Categories()[0])

	assert.Equal(t, []string{"1-20 ton", "21-35 ton", ">35 ton"}, storage.Sizes(CategoryUncontainerized))
	assert.Nil(t, storage.Sizes("Flat Rack"))

	lift := mustTable(t, ServiceLift)
	assert.NotContains(t, lift.Categories(), CategoryLoadedChassis)
	assert.Len(t, lift.Rates(), 18)
}

func TestParseService(t *testing.T) {
	s, ok := ParseService("extra_movement")
	assert.True(t, ok)
	assert.Equal(t, ServiceExtraMovement, s)

	_, ok = ParseService("Lift")
	assert.False(t, ok)
}

func TestNewCatalogRequiresAllServices(t *testing.T) {
	b := newTableBuilder(ServiceStorage)
	require.NoError(t, b.add(CategoryFull, "20ft", decimal.NewFromInt(1)))

	_, err := NewCatalog("IDR", b.build())
	require.Error(t, err)
	assert.True(t, cerrors.IsType(err, cerrors.TypeConfig))
	assert.Contains(t, err.Error(), "missing lift tariff")
}

func TestBuilderRejectsBadRows(t *testing.T) {
	b := newTableBuilder(ServiceHaulage)
	require.NoError(t, b.add(CategoryFull, "20ft", decimal.NewFromInt(80000)))
	assert.Error(t, b.add(CategoryFull, "20ft", decimal.NewFromInt(1)))
	assert.Error(t, b.add(CategoryFull, "40ft", decimal.NewFromInt(-5)))
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res, err := ComputeCharges(CategoryReefer, "40ft", []string{"storage", "lift", "haulage"}, WithStorageDays(2))
				if err != nil || !res.Total.Equal(decimal.NewFromInt(96000*2+295000+120000)) {
					t.Errorf("unexpected result %v %v", res, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
