package customs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "cargo-cost/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: want %s, got %s", field, want, got)
}

func exampleInput() Input {
	in := DefaultInput()
	in.FOB = d("5000")
	in.Freight = d("500")
	in.Insurance = d("50")
	in.DutyRate = d("0.05")
	in.ClearanceFee = d("150")
	in.TruckingFee = d("100")
	in.StorageFee = d("75")
	return in
}

func TestComputeImportTaxExample(t *testing.T) {
	res := ComputeImportTax(exampleInput())

	assertDec(t, "5550", res.CIF, "cif")
	assertDec(t, "277.5", res.Duty, "duty")
	assertDec(t, "5827.5", res.TaxableBase, "taxable base")
	assertDec(t, "641.025", res.VAT, "vat")
	assertDec(t, "145.6875", res.IncomeTax, "income tax")
	assertDec(t, "1064.2125", res.TotalTax, "total tax")
	assertDec(t, "325", res.Fees, "fees")
	assertDec(t, "6939.2125", res.LandedCostForeign, "landed foreign")
	assertDec(t, "111027400", res.LandedCostLocal, "landed local")

	assert.Equal(t, "641.03", res.VAT.StringFixed(2))
	assert.Equal(t, "145.69", res.IncomeTax.StringFixed(2))
	assertDec(t, "0.025", res.IncomeTaxRate, "pph rate")
}

func TestComputeImportTaxWithoutTaxID(t *testing.T) {
	in := exampleInput()
	in.HasTaxID = false
	res := ComputeImportTax(in)

	assertDec(t, "0.075", res.IncomeTaxRate, "pph rate")
	assertDec(t, "437.0625", res.IncomeTax, "income tax")
	// total tax differs from the with-ID case only by the income tax delta
	withID := ComputeImportTax(exampleInput())
	assert.True(t, res.TotalTax.Sub(withID.TotalTax).Equal(d("291.375")))
}

func TestComputeImportTaxAcceptsAnyValues(t *testing.T) {
	in := DefaultInput()
	in.FOB = d("-100")
	in.DutyRate = d("2")
	res := ComputeImportTax(in)

	assertDec(t, "-100", res.CIF, "cif")
	assertDec(t, "-200", res.Duty, "duty")
	assertDec(t, "-300", res.TaxableBase, "base")
}

func TestComputeImportTaxZeroInput(t *testing.T) {
	res := ComputeImportTax(DefaultInput())
	assert.True(t, res.LandedCostLocal.IsZero())
	assertDec(t, "16000", res.FXRate, "fx")
}

func TestLookupHSCode(t *testing.T) {
	entry, err := LookupHSCode("8517.12.00")
	require.NoError(t, err)
	assertDec(t, "0.15", entry.DutyRate, "duty")

	entry, err = LookupHSCode(" 84713000 ")
	require.NoError(t, err)
	assert.Equal(t, "8471.30.00", entry.Code)

	_, err = LookupHSCode("0101.21.00")
	require.Error(t, err)
	assert.True(t, cerrors.IsType(err, cerrors.TypeNotFound))

	all := HSCodes()
	require.Len(t, all, 3)
	all[0].Code = "changed"
	assert.Equal(t, "8517.12.00", HSCodes()[0].Code)
}

func ptr[T any](v T) *T {
	return &v
}

func TestRequestInput(t *testing.T) {
	t.Run("explicit duty rate and overrides", func(t *testing.T) {
		req := Request{
			FOB:       d("5000"),
			Freight:   d("500"),
			Insurance: d("50"),
			DutyRate:  ptr(d("0.05")),
			FXRate:    ptr(d("15000")),
			HasTaxID:  ptr(false),
		}
		in, hs, err := req.Input(DefaultInput())
		require.NoError(t, err)
		assert.Nil(t, hs)
		assertDec(t, "0.05", in.DutyRate, "duty")
		assertDec(t, "15000", in.FXRate, "fx")
		assertDec(t, "0.11", in.VATRate, "vat default")
		assert.False(t, in.HasTaxID)
	})

	t.Run("duty from hs code", func(t *testing.T) {
		req := Request{FOB: d("1000"), HSCode: "8543.70.90"}
		in, hs, err := req.Input(DefaultInput())
		require.NoError(t, err)
		require.NotNil(t, hs)
		assertDec(t, "0.075", in.DutyRate, "duty")

		res := ComputeImportTax(in)
		assertDec(t, "75", res.Duty, "duty amount")
	})

	t.Run("missing duty source", func(t *testing.T) {
		_, _, err := Request{FOB: d("1")}.Input(DefaultInput())
		require.Error(t, err)
		assert.True(t, cerrors.IsType(err, cerrors.TypeInput))
	})

	t.Run("both duty sources", func(t *testing.T) {
		_, _, err := Request{DutyRate: ptr(d("0.1")), HSCode: "8517.12.00"}.Input(DefaultInput())
		require.Error(t, err)
		assert.True(t, cerrors.IsType(err, cerrors.TypeInput))
	})

	t.Run("unknown hs code", func(t *testing.T) {
		_, _, err := Request{HSCode: "9999.99.99"}.Input(DefaultInput())
		assert.True(t, cerrors.IsType(err, cerrors.TypeNotFound))
	})
}
