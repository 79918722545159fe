// Package pdf implementa la generación del kardex de producto en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto │ SKU + EAN                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock actual / Stock mínimo / Precio con IVA       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | Efecto | Saldo | Referencia    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.KardexGenerator = (*KardexGenerator)(nil)

// KardexGenerator genera el kardex de un producto usando Maroto v2.
type KardexGenerator struct{}

// NewKardexGenerator construye el generador.
func NewKardexGenerator() *KardexGenerator { return &KardexGenerator{} }

// Generate genera el PDF del kardex. movements debe venir en orden
// cronológico ascendente; el saldo acumulado se calcula fila a fila.
func (g *KardexGenerator) Generate(product *entity.Product, movements []*entity.Movement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+product.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	var balance int64
	for _, mov := range movements {
		balance += mov.SignedEffect()
		m.AddRows(movementRow(mov, balance))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Saldo final según libro: %d", balance), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del producto (izq) y SKU + EAN (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("SKU: "+product.SKU, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("EAN: "+nonEmpty(product.EAN, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: stock actual, mínimo y precio con IVA.
func summaryRow(product *entity.Product) core.Row {
	return row.New(10).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Stock actual: %d", product.CurrentStock), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Stock mínimo: %d", product.MinStock), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Precio c/IVA: $"+product.PriceWithTax().StringFixed(0), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Efecto", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Referencia", 4, align.Left),
	)
}

// movementRow: una fila por asiento con el saldo acumulado hasta ese punto.
func movementRow(m *entity.Movement, balance int64) core.Row {
	effect := m.SignedEffect()
	sign := ""
	if effect > 0 {
		sign = "+"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(
			m.Date.Format("02/01/2006 15:04"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			m.Type,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", m.Quantity),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprintf("%s%d", sign, effect),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", balance),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(4).Add(text.New(
			nonEmpty(m.RefDoc, m.Reason),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
