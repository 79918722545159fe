// Package excel exporta el libro de movimientos a planillas .xlsx.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var _ inventory.MovementExporter = (*MovementExporter)(nil)

// MovementExporter genera un .xlsx con una fila por movimiento.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter { return &MovementExporter{} }

// Export escribe el libro en una hoja: cabecera + una fila por movimiento con
// el efecto con signo ya resuelto.
func (e *MovementExporter) Export(movements []*entity.Movement, products map[int64]*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha",
		"tipo",
		"sku",
		"producto",
		"cantidad",
		"efecto",
		"lote",
		"serie",
		"doc_referencia",
		"motivo",
		"registrado_por",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	row := 2
	for _, m := range movements {
		sku, name := "", ""
		if p, ok := products[m.ProductID]; ok {
			sku, name = p.SKU, p.Name
		}
		excelRow := []interface{}{
			m.Date.Format("2006-01-02 15:04"),
			m.Type,
			sku,
			name,
			m.Quantity,
			m.SignedEffect(),
			m.Lot,
			m.Serial,
			m.RefDoc,
			m.Reason,
			m.CreatedBy,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
