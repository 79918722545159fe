package usecase

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CatalogUseCase categorías y marcas del catálogo.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// CreateCategory crea una categoría.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// DeleteCategory elimina una categoría; los productos quedan sin categoría.
func (uc *CatalogUseCase) DeleteCategory(id int64) error {
	return uc.repo.DeleteCategory(id)
}

// CreateBrand crea una marca.
func (uc *CatalogUseCase) CreateBrand(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	brand := &entity.Brand{Name: in.Name}
	if err := uc.repo.CreateBrand(brand); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: brand.ID, Name: brand.Name}, nil
}

// ListBrands lista todas las marcas.
func (uc *CatalogUseCase) ListBrands() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListBrands()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.CategoryResponse{ID: b.ID, Name: b.Name})
	}
	return items, nil
}

// DeleteBrand elimina una marca; los productos quedan sin marca.
func (uc *CatalogUseCase) DeleteBrand(id int64) error {
	return uc.repo.DeleteBrand(id)
}
