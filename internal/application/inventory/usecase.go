package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/internal/metrics"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional. La actualización de stock es un update condicional atómico
// en la fila del producto (current_stock + delta >= 0), no read-then-write,
// para evitar lost updates con escritores concurrentes.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// Quantity siempre positiva; el signo del efecto lo decide Type.
type MovementInput struct {
	ProductID   int64
	Type        string
	Quantity    int64
	SupplierID  *int64
	WarehouseID *int64
	Date        *time.Time // nil = ahora
	Lot         string
	Serial      string
	ExpiryDate  *time.Time
	RefDoc      string
	Reason      string
	Notes       string
	CreatedBy   string
}

// MovementResult movimiento persistido más el stock resultante del producto.
type MovementResult struct {
	Movement     *entity.Movement
	CurrentStock int64
}

// Register valida la entrada, abre una transacción y dentro de ella aplica el
// efecto sobre current_stock y persiste la fila del movimiento. Si la guardia
// de stock falla devuelve InsufficientStockError con las cantidades y no
// escribe nada. Cada llamada procesa exactamente un movimiento.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if err := uc.validate(input); err != nil {
		metrics.MovementRejected(input.Type, "validation")
		return nil, err
	}

	// Existencia de referencias antes de abrir la tx
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		metrics.MovementRejected(input.Type, "not_found")
		return nil, domain.ErrNotFound
	}
	if input.SupplierID != nil {
		sup, err := uc.supplierRepo.GetByID(*input.SupplierID)
		if err != nil {
			return nil, err
		}
		if sup == nil {
			metrics.MovementRejected(input.Type, "not_found")
			return nil, domain.ErrNotFound
		}
	}
	if input.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(*input.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			metrics.MovementRejected(input.Type, "not_found")
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   input.ProductID,
		SupplierID:  input.SupplierID,
		WarehouseID: input.WarehouseID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Date:        date,
		Lot:         input.Lot,
		Serial:      input.Serial,
		ExpiryDate:  input.ExpiryDate,
		RefDoc:      input.RefDoc,
		Reason:      input.Reason,
		Notes:       input.Notes,
		CreatedAt:   now,
		CreatedBy:   input.CreatedBy,
	}

	var result MovementResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		newStock, err := productRepo.AdjustStock(input.ProductID, mov.SignedEffect())
		if errors.Is(err, domain.ErrInsufficientStock) {
			// La guardia condicional falló: leer el stock vigente solo para
			// armar el mensaje; la tx se revierte sin efectos parciales.
			p, gerr := productRepo.GetByID(input.ProductID)
			if gerr != nil || p == nil {
				return err
			}
			return &domain.InsufficientStockError{Current: p.CurrentStock, Requested: input.Quantity}
		}
		if err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = MovementResult{Movement: mov, CurrentStock: newStock}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.MovementRejected(input.Type, "insufficient_stock")
		} else {
			metrics.MovementRejected(input.Type, "internal")
		}
		return nil, err
	}

	metrics.MovementRecorded(input.Type)
	return &result, nil
}

// validate rechaza la entrada antes de cualquier escritura.
func (uc *RegisterMovementUseCase) validate(input MovementInput) error {
	if !entity.IsValidMovementType(input.Type) {
		return &domain.ValidationError{Field: "type", Message: "tipo de movimiento no reconocido"}
	}
	if input.Quantity <= 0 {
		return &domain.ValidationError{Field: "quantity", Message: "la cantidad debe ser un entero positivo"}
	}
	if input.ExpiryDate != nil {
		today := time.Now().Truncate(24 * time.Hour)
		if input.ExpiryDate.Before(today) {
			return &domain.ValidationError{Field: "expiry_date", Message: "la fecha de vencimiento no puede estar en el pasado"}
		}
	}
	return nil
}
