// Package catalog contiene reglas puras del catálogo: asignación determinista
// de identidad (SKU y EAN) a partir del identificador numérico de storage.
package catalog

import "fmt"

// Prefijos de identidad. El SKU usa prefijo alfabético y el EAN embebe el id
// en un prefijo numérico fijo de la empresa.
const (
	skuPrefix = "PROD-"
	eanPrefix = "780000"
)

// FormatSKU genera el SKU determinista para un id: PROD-00042.
func FormatSKU(id int64) string {
	return fmt.Sprintf("%s%05d", skuPrefix, id)
}

// FormatEAN genera el EAN/UPC determinista para un id: 780000000042.
func FormatEAN(id int64) string {
	return fmt.Sprintf("%s%06d", eanPrefix, id)
}
