package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	Delete(id int64) error
}
