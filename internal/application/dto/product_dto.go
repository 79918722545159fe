package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// SKU y EAN vacíos se autoasignan desde el identificador numérico.
type CreateProductRequest struct {
	SKU           string           `json:"sku" validate:"omitempty,max=50"`
	EAN           string           `json:"ean" validate:"omitempty,max=50"`
	Name          string           `json:"name" validate:"required,min=1,max=100"`
	Description   string           `json:"description"`
	CategoryID    *int64           `json:"category_id"`
	BrandID       *int64           `json:"brand_id"`
	Model         string           `json:"model" validate:"omitempty,max=100"`
	StandardCost  decimal.Decimal  `json:"standard_cost"`
	Price         decimal.Decimal  `json:"price"`
	TaxRate       *decimal.Decimal `json:"tax_rate"` // nil => 19%
	MinStock      int64            `json:"min_stock" validate:"min=0"`
	MaxStock      *int64           `json:"max_stock"`
	ReorderPoint  *int64           `json:"reorder_point"`
	Perishable    bool             `json:"perishable"`
	LotTracked    bool             `json:"lot_tracked"`
	SerialTracked bool             `json:"serial_tracked"`
	Vegan         bool             `json:"vegan"`
	GlutenFree    bool             `json:"gluten_free"`
}

// UpdateProductRequest entrada para actualizar un producto.
// SKU, stock actual y costo promedio no son editables.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string          `json:"description"`
	CategoryID    *int64           `json:"category_id"`
	BrandID       *int64           `json:"brand_id"`
	Model         *string          `json:"model" validate:"omitempty,max=100"`
	StandardCost  *decimal.Decimal `json:"standard_cost"`
	Price         *decimal.Decimal `json:"price"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	MinStock      *int64           `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock      *int64           `json:"max_stock"`
	ReorderPoint  *int64           `json:"reorder_point"`
	Perishable    *bool            `json:"perishable"`
	LotTracked    *bool            `json:"lot_tracked"`
	SerialTracked *bool            `json:"serial_tracked"`
	Vegan         *bool            `json:"vegan"`
	GlutenFree    *bool            `json:"gluten_free"`
}

// ProductResponse salida de un producto, con campos derivados.
type ProductResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	EAN           string          `json:"ean,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	BrandID       *int64          `json:"brand_id,omitempty"`
	Model         string          `json:"model,omitempty"`
	StandardCost  decimal.Decimal `json:"standard_cost"`
	AverageCost   decimal.Decimal `json:"average_cost"`
	Price         decimal.Decimal `json:"price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	PriceWithTax  decimal.Decimal `json:"price_with_tax"`
	CurrentStock  int64           `json:"current_stock"`
	MinStock      int64           `json:"min_stock"`
	MaxStock      *int64          `json:"max_stock,omitempty"`
	ReorderPoint  *int64          `json:"reorder_point,omitempty"`
	LowStock      bool            `json:"low_stock"`
	ExpiryAlert   bool            `json:"expiry_alert"`
	Perishable    bool            `json:"perishable"`
	LotTracked    bool            `json:"lot_tracked"`
	SerialTracked bool            `json:"serial_tracked"`
	Vegan         bool            `json:"vegan"`
	GlutenFree    bool            `json:"gluten_free"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
