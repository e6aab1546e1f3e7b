package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := Newf(TypeUnknownCategory, "category %q not found in %s tariff", "Flat Rack", "lift")
	assert.Equal(t, `[UNKNOWN_CATEGORY] category "Flat Rack" not found in lift tariff`, err.Error())

	wrapped := Config("read catalog", fmt.Errorf("open tariff.hcl: no such file"))
	assert.Equal(t, "[CONFIG_ERROR] read catalog: open tariff.hcl: no such file", wrapped.Error())
}

func TestIsTypeThroughWrapping(t *testing.T) {
	base := New(TypeUnknownSize, "size missing").WithContext("size", "60ft")
	outer := fmt.Errorf("compute charges: %w", base)

	assert.True(t, IsType(outer, TypeUnknownSize))
	assert.False(t, IsType(outer, TypeUnknownCategory))
	assert.Equal(t, TypeUnknownSize, TypeOf(outer))

	e, ok := As(outer)
	require.True(t, ok)
	assert.Equal(t, "60ft", e.Context["size"])
}

func TestTypeOfPlainError(t *testing.T) {
	assert.Equal(t, TypeInternal, TypeOf(fmt.Errorf("boom")))
	assert.False(t, IsType(nil, TypeInput))
}

func TestNotFoundCarriesIdentifier(t *testing.T) {
	err := NotFound("hs_code", "0000.00.00")
	assert.True(t, err.Is(TypeNotFound))
	assert.Equal(t, "0000.00.00", err.Context["hs_code"])
}
