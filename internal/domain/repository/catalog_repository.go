package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// CatalogRepository puerto de persistencia para categorías y marcas.
type CatalogRepository interface {
	CreateCategory(category *entity.Category) error
	ListCategories() ([]*entity.Category, error)
	DeleteCategory(id int64) error
	CreateBrand(brand *entity.Brand) error
	ListBrands() ([]*entity.Brand, error)
	DeleteBrand(id int64) error
}
