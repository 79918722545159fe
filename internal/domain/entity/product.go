package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CurrentStock es derivado: solo lo mutan los movimientos de inventario
// (nunca editable vía Update). AverageCost tampoco es editable por el usuario.
type Product struct {
	ID           int64
	SKU          string // único, inmutable una vez asignado
	EAN          string // EAN/UPC, único, opcional
	Name         string
	Description  string
	CategoryID   *int64
	BrandID      *int64
	Model        string
	StandardCost decimal.Decimal
	AverageCost  decimal.Decimal // derivado, no editable
	Price        decimal.Decimal // precio de venta neto, >= 0
	TaxRate      decimal.Decimal // IVA (%), por defecto 19
	CurrentStock int64           // derivado del libro de movimientos, nunca negativo
	MinStock     int64
	MaxStock     *int64 // debe ser >= MinStock cuando está definido
	ReorderPoint *int64
	Perishable   bool
	LotTracked   bool
	SerialTracked bool
	Vegan        bool
	GlutenFree   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PriceWithTax devuelve el precio de venta con IVA, redondeado al entero.
// Fórmula: round(precio_neto * (1 + iva/100)).
func (p *Product) PriceWithTax() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(p.TaxRate.Div(decimal.NewFromInt(100)))
	return p.Price.Mul(factor).Round(0)
}

// LowStock indica si el stock actual está en o bajo el mínimo.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// ExpiryAlert indica si el producto requiere revisión por vencimiento.
// Solo mira el flag de perecible; la lógica por lotes con fechas no existe aún.
func (p *Product) ExpiryAlert() bool {
	return p.Perishable
}
