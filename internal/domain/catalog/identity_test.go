package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/almacen-pro/internal/domain/catalog"
)

func TestFormatSKU(t *testing.T) {
	assert.Equal(t, "PROD-00001", catalog.FormatSKU(1))
	assert.Equal(t, "PROD-00042", catalog.FormatSKU(42))
	assert.Equal(t, "PROD-12345", catalog.FormatSKU(12345))
	// Ids más grandes que el padding no se truncan
	assert.Equal(t, "PROD-123456", catalog.FormatSKU(123456))
}

func TestFormatEAN(t *testing.T) {
	assert.Equal(t, "780000000001", catalog.FormatEAN(1))
	assert.Equal(t, "780000000042", catalog.FormatEAN(42))
	assert.Equal(t, "780000123456", catalog.FormatEAN(123456))
}

// El mismo id siempre produce la misma identidad (determinismo).
func TestIdentityDeterministic(t *testing.T) {
	assert.Equal(t, catalog.FormatSKU(7), catalog.FormatSKU(7))
	assert.Equal(t, catalog.FormatEAN(7), catalog.FormatEAN(7))
}
