package inventory

import (
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// MovementQueryUseCase proyecciones de solo lectura sobre el libro de
// movimientos: listado filtrado, exportación a Excel, kardex PDF y
// verificación contable contra el stock del producto.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	exporter     MovementExporter
	kardex       KardexGenerator
}

// NewMovementQueryUseCase construye el caso de uso de consultas.
func NewMovementQueryUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	exporter MovementExporter,
	kardex KardexGenerator,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		exporter:     exporter,
		kardex:       kardex,
	}
}

// List devuelve movimientos filtrados, ordenados por fecha descendente.
func (uc *MovementQueryUseCase) List(f repository.MovementFilter) (*dto.MovementListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	list, err := uc.movementRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Get devuelve un movimiento por su UUID. nil si no existe.
func (uc *MovementQueryUseCase) Get(id string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// ExportExcel genera el .xlsx del libro filtrado y un nombre de archivo.
func (uc *MovementQueryUseCase) ExportExcel(f repository.MovementFilter) ([]byte, string, error) {
	f.Limit = 10000 // tope de exportación
	f.Offset = 0
	list, err := uc.movementRepo.List(f)
	if err != nil {
		return nil, "", err
	}

	// Resolver los productos referenciados para mostrar SKU y nombre
	products := make(map[int64]*entity.Product)
	for _, m := range list {
		if _, ok := products[m.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(m.ProductID)
		if err != nil {
			return nil, "", err
		}
		if p != nil {
			products[m.ProductID] = p
		}
	}

	data, err := uc.exporter.Export(list, products)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("movimientos_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, name, nil
}

// Kardex genera el PDF del kardex del producto: historial cronológico con
// saldo acumulado desde la creación.
func (uc *MovementQueryUseCase) Kardex(productID int64) ([]byte, string, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	list, err := uc.movementRepo.List(repository.MovementFilter{
		ProductID: &productID,
		Limit:     10000,
	})
	if err != nil {
		return nil, "", err
	}
	// El repositorio entrega fecha descendente; el kardex se lee ascendente.
	asc := make([]*entity.Movement, len(list))
	for i, m := range list {
		asc[len(list)-1-i] = m
	}
	data, err := uc.kardex.Generate(product, asc)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("kardex_%s.pdf", product.SKU)
	return data, name, nil
}

// LedgerCheck compara la suma de efectos con signo del historial contra el
// stock actual del producto. Con toda mutación pasando por el libro, ambos
// valores coinciden siempre.
type LedgerCheckResult struct {
	ProductID    int64 `json:"product_id"`
	CurrentStock int64 `json:"current_stock"`
	LedgerSum    int64 `json:"ledger_sum"`
	Consistent   bool  `json:"consistent"`
}

// LedgerCheck ejecuta la verificación para un producto.
func (uc *MovementQueryUseCase) LedgerCheck(productID int64) (*LedgerCheckResult, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := uc.movementRepo.SumSignedByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &LedgerCheckResult{
		ProductID:    productID,
		CurrentStock: product.CurrentStock,
		LedgerSum:    sum,
		Consistent:   sum == product.CurrentStock,
	}, nil
}

// ToMovementResponse convierte la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		SupplierID:   m.SupplierID,
		WarehouseID:  m.WarehouseID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		SignedEffect: m.SignedEffect(),
		Date:         m.Date,
		Lot:          m.Lot,
		Serial:       m.Serial,
		ExpiryDate:   m.ExpiryDate,
		RefDoc:       m.RefDoc,
		Reason:       m.Reason,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}
