package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de proveedores y productos suministrados.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor. TaxID único: ErrDuplicate si ya existe.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	currency := in.Currency
	if currency == "" {
		currency = "CLP"
	}
	now := time.Now()
	supplier := &entity.Supplier{
		TaxID:        in.TaxID,
		LegalName:    in.LegalName,
		TradeName:    in.TradeName,
		Email:        in.Email,
		Phone:        in.Phone,
		Website:      in.Website,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		PaymentTerms: in.PaymentTerms,
		Currency:     currency,
		Status:       entity.SupplierStatusActive,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. nil si no existe.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor. TaxID es inmutable.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.LegalName != nil {
		supplier.LegalName = *in.LegalName
	}
	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Website != nil {
		supplier.Website = *in.Website
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.City != nil {
		supplier.City = *in.City
	}
	if in.Country != nil {
		supplier.Country = *in.Country
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.ContactPhone != nil {
		supplier.ContactPhone = *in.ContactPhone
	}
	if in.PaymentTerms != nil {
		supplier.PaymentTerms = *in.PaymentTerms
	}
	if in.Currency != nil {
		supplier.Currency = *in.Currency
	}
	if in.Status != nil {
		supplier.Status = *in.Status
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor. Los movimientos que lo referencian conservan
// el producto y quedan con proveedor NULL (ON DELETE SET NULL).
func (uc *SupplierUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// LinkProduct vincula un producto suministrado.
func (uc *SupplierUseCase) LinkProduct(supplierID, productID int64) error {
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.LinkProduct(supplierID, productID)
}

// UnlinkProduct quita el vínculo.
func (uc *SupplierUseCase) UnlinkProduct(supplierID, productID int64) error {
	return uc.repo.UnlinkProduct(supplierID, productID)
}

// ListProducts lista los productos suministrados por el proveedor.
func (uc *SupplierUseCase) ListProducts(supplierID int64) ([]dto.ProductResponse, error) {
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListProducts(supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		TaxID:        s.TaxID,
		LegalName:    s.LegalName,
		TradeName:    s.TradeName,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Address:      s.Address,
		City:         s.City,
		Country:      s.Country,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		PaymentTerms: s.PaymentTerms,
		Currency:     s.Currency,
		Status:       s.Status,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
