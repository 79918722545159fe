package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/excel"
)

func TestExport_GeneraPlanillaLegible(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	movements := []*entity.Movement{
		{
			ID:        "a1",
			ProductID: 1,
			Type:      entity.MovementTypeReceipt,
			Quantity:  10,
			Date:      date,
			RefDoc:    "OC-1001",
			CreatedBy: "42",
		},
		{
			ID:        "a2",
			ProductID: 1,
			Type:      entity.MovementTypeIssue,
			Quantity:  4,
			Date:      date.Add(time.Hour),
			Reason:    "venta mostrador",
			CreatedBy: "42",
		},
	}
	products := map[int64]*entity.Product{
		1: {ID: 1, SKU: "PROD-00001", Name: "Harina 1kg"},
	}

	data, err := excel.NewMovementExporter().Export(movements, products)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Reabrir el archivo generado y verificar el contenido
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + dos movimientos")

	assert.Equal(t, "fecha", rows[0][0])
	assert.Equal(t, "efecto", rows[0][5])

	// Ingreso: efecto positivo
	assert.Equal(t, "2026-03-15 10:30", rows[1][0])
	assert.Equal(t, "IN", rows[1][1])
	assert.Equal(t, "PROD-00001", rows[1][2])
	assert.Equal(t, "Harina 1kg", rows[1][3])
	assert.Equal(t, "10", rows[1][4])
	assert.Equal(t, "10", rows[1][5])

	// Salida: efecto negativo aunque la cantidad almacenada es positiva
	assert.Equal(t, "OUT", rows[2][1])
	assert.Equal(t, "4", rows[2][4])
	assert.Equal(t, "-4", rows[2][5])
}

func TestExport_ProductoDesconocido_DejaColumnasVacias(t *testing.T) {
	movements := []*entity.Movement{
		{ID: "a1", ProductID: 99, Type: entity.MovementTypeReceipt, Quantity: 1, Date: time.Now()},
	}

	data, err := excel.NewMovementExporter().Export(movements, map[int64]*entity.Product{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	sku, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Empty(t, sku, "sin producto resoluble las columnas sku/nombre van vacías")
}

func TestExport_SinMovimientos_SoloCabecera(t *testing.T) {
	data, err := excel.NewMovementExporter().Export(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
