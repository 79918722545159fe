package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	TaxID        string `json:"tax_id" validate:"required,min=1,max=20"`
	LegalName    string `json:"legal_name" validate:"required,min=1,max=255"`
	TradeName    string `json:"trade_name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Website      string `json:"website" validate:"omitempty,url"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	PaymentTerms string `json:"payment_terms"`
	Currency     string `json:"currency"` // vacío = CLP
	Notes        string `json:"notes"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
// TaxID es inmutable después de la creación.
type UpdateSupplierRequest struct {
	LegalName    *string `json:"legal_name" validate:"omitempty,min=1,max=255"`
	TradeName    *string `json:"trade_name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	PaymentTerms *string `json:"payment_terms"`
	Currency     *string `json:"currency"`
	Status       *string `json:"status" validate:"omitempty,oneof=ACTIVO INACTIVO BLOQUEADO"`
	Notes        *string `json:"notes"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	TaxID        string    `json:"tax_id"`
	LegalName    string    `json:"legal_name"`
	TradeName    string    `json:"trade_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LinkProductRequest body para vincular un producto suministrado.
type LinkProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}
