package entity

import "time"

// Estados de un proveedor.
const (
	SupplierStatusActive  = "ACTIVO"
	SupplierStatusInactive = "INACTIVO"
	SupplierStatusBlocked = "BLOQUEADO"
)

// Supplier representa un proveedor. TaxID (RUT/NIF) es único e inmutable
// después de la creación. La relación con productos es muchos-a-muchos
// (productos suministrados).
type Supplier struct {
	ID           int64
	TaxID        string
	LegalName    string
	TradeName    string
	Email        string
	Phone        string
	Website      string
	Address      string
	City         string
	Country      string
	ContactName  string
	ContactPhone string
	PaymentTerms string
	Currency     string // por defecto CLP
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
