package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// ProductFilter filtros para listar productos.
type ProductFilter struct {
	Search       string // busca en sku, ean y nombre
	CategoryID   *int64
	LowStockOnly bool
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// AdjustStock es la única vía de mutación de CurrentStock: aplica un delta
// con guardia condicional en el storage (stock nunca negativo) y devuelve el
// stock resultante. Retorna domain.ErrInsufficientStock si la guardia falla y
// domain.ErrNotFound si el producto no existe. Debe ejecutarse dentro de la
// misma transacción que inserta el movimiento.
type ProductRepository interface {
	NextID() (int64, error)
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustStock(productID, delta int64) (int64, error)
	List(f ProductFilter) ([]*entity.Product, error)
	Delete(id int64) error
}
