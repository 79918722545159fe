package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores y su relación
// muchos-a-muchos con productos suministrados.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	GetByTaxID(taxID string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	// Delete elimina el proveedor; los movimientos que lo referencian quedan
	// con supplier_id en NULL (ON DELETE SET NULL).
	Delete(id int64) error
	LinkProduct(supplierID, productID int64) error
	UnlinkProduct(supplierID, productID int64) error
	ListProducts(supplierID int64) ([]*entity.Product, error)
}
