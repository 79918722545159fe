package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/catalog"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// defaultTaxRate IVA por defecto (%).
var defaultTaxRate = decimal.NewFromInt(19)

// ProductUseCase casos de uso CRUD del catálogo de productos.
// El stock actual y el costo promedio no se tocan aquí: solo los muta el
// libro de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Si no trae SKU, reserva el id de la secuencia y
// asigna SKU (PROD-00042) y EAN (780000000042) antes del único INSERT, de
// modo que la fila nunca es visible sin su identidad.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Message: "el precio neto no puede ser negativo"}
	}
	if in.MinStock < 0 {
		return nil, &domain.ValidationError{Field: "min_stock", Message: "el stock mínimo no puede ser negativo"}
	}
	if in.MaxStock != nil && *in.MaxStock < in.MinStock {
		return nil, &domain.ValidationError{Field: "max_stock", Message: "el stock máximo debe ser >= al mínimo"}
	}

	id, err := uc.repo.NextID()
	if err != nil {
		return nil, err
	}
	sku := in.SKU
	ean := in.EAN
	if sku == "" {
		sku = catalog.FormatSKU(id)
		if ean == "" {
			ean = catalog.FormatEAN(id)
		}
	}
	taxRate := defaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            id,
		SKU:           sku,
		EAN:           ean,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		BrandID:       in.BrandID,
		Model:         in.Model,
		StandardCost:  in.StandardCost,
		AverageCost:   decimal.Zero,
		Price:         in.Price,
		TaxRate:       taxRate,
		CurrentStock:  0,
		MinStock:      in.MinStock,
		MaxStock:      in.MaxStock,
		ReorderPoint:  in.ReorderPoint,
		Perishable:    in.Perishable,
		LotTracked:    in.LotTracked,
		SerialTracked: in.SerialTracked,
		Vegan:         in.Vegan,
		GlutenFree:    in.GlutenFree,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU. nil si no existe.
func (uc *ProductUseCase) GetBySKU(sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update actualiza campos editables. SKU, EAN, stock actual y costo promedio
// no cambian nunca por esta vía.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.BrandID != nil {
		product.BrandID = in.BrandID
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.StandardCost != nil {
		product.StandardCost = *in.StandardCost
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, &domain.ValidationError{Field: "price", Message: "el precio neto no puede ser negativo"}
		}
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		product.TaxRate = *in.TaxRate
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = in.ReorderPoint
	}
	if in.Perishable != nil {
		product.Perishable = *in.Perishable
	}
	if in.LotTracked != nil {
		product.LotTracked = *in.LotTracked
	}
	if in.SerialTracked != nil {
		product.SerialTracked = *in.SerialTracked
	}
	if in.Vegan != nil {
		product.Vegan = *in.Vegan
	}
	if in.GlutenFree != nil {
		product.GlutenFree = *in.GlutenFree
	}
	if product.MaxStock != nil && *product.MaxStock < product.MinStock {
		return nil, &domain.ValidationError{Field: "max_stock", Message: "el stock máximo debe ser >= al mínimo"}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(f repository.ProductFilter) (*dto.ProductListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Delete elimina un producto. Falla con ErrInUse si hay movimientos o
// vínculos de proveedor que lo referencian (FK RESTRICT en el storage).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// ToProductResponse convierte la entidad al DTO con campos derivados.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		EAN:           p.EAN,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		BrandID:       p.BrandID,
		Model:         p.Model,
		StandardCost:  p.StandardCost,
		AverageCost:   p.AverageCost,
		Price:         p.Price,
		TaxRate:       p.TaxRate,
		PriceWithTax:  p.PriceWithTax(),
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		ReorderPoint:  p.ReorderPoint,
		LowStock:      p.LowStock(),
		ExpiryAlert:   p.ExpiryAlert(),
		Perishable:    p.Perishable,
		LotTracked:    p.LotTracked,
		SerialTracked: p.SerialTracked,
		Vegan:         p.Vegan,
		GlutenFree:    p.GlutenFree,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
