package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAbbreviation(t *testing.T) {
	catalog := NewStaticCatalog()

	assert.Equal(t, "AL", catalog.StateAbbreviation("1000"))
	assert.Equal(t, "NY", catalog.StateAbbreviation("1032"))
	assert.Equal(t, "WY", catalog.StateAbbreviation("1050"))
}

func TestStateAbbreviation_PassthroughForUnknown(t *testing.T) {
	catalog := NewStaticCatalog()

	// Already-resolved abbreviations and foreign regions come back as-is
	assert.Equal(t, "TX", catalog.StateAbbreviation("TX"))
	assert.Equal(t, "9999", catalog.StateAbbreviation("9999"))
}

func TestCountryAlpha2(t *testing.T) {
	catalog := NewStaticCatalog()

	assert.Equal(t, "US", catalog.CountryAlpha2("1228"))
	assert.Equal(t, "CA", catalog.CountryAlpha2("1039"))
	assert.Equal(t, "FR", catalog.CountryAlpha2("FR"))
}
