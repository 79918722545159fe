package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity siempre positiva; el signo lo determina Type (IN, OUT, AJ-P, AJ-N, DEV).
type RegisterMovementRequest struct {
	ProductID   int64      `json:"product_id" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Quantity    int64      `json:"quantity" validate:"required,gt=0"`
	SupplierID  *int64     `json:"supplier_id,omitempty"`
	WarehouseID *int64     `json:"warehouse_id,omitempty"`
	Date        *time.Time `json:"date,omitempty"` // vacío = ahora
	Lot         string     `json:"lot,omitempty"`
	Serial      string     `json:"serial,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	RefDoc      string     `json:"ref_doc,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento persistido.
type MovementResponse struct {
	ID           string     `json:"id"`
	ProductID    int64      `json:"product_id"`
	SupplierID   *int64     `json:"supplier_id,omitempty"`
	WarehouseID  *int64     `json:"warehouse_id,omitempty"`
	Type         string     `json:"type"`
	Quantity     int64      `json:"quantity"`
	SignedEffect int64      `json:"signed_effect"`
	Date         time.Time  `json:"date"`
	Lot          string     `json:"lot,omitempty"`
	Serial       string     `json:"serial,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	RefDoc       string     `json:"ref_doc,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by,omitempty"`
}

// RegisterMovementResponse movimiento registrado más el stock resultante.
type RegisterMovementResponse struct {
	Movement     MovementResponse `json:"movement"`
	CurrentStock int64            `json:"current_stock"`
}

// MovementListResponse lista paginada de movimientos (fecha descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementQuery filtros query-string para listar/exportar movimientos.
type MovementQuery struct {
	ProductID int64  `query:"product_id"`
	Type      string `query:"type"`
	From      string `query:"from"` // RFC 3339 o 2006-01-02
	To        string `query:"to"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
