package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock y la
// inserción del movimiento sean una sola unidad (Commit o Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// MovementExporter genera un archivo .xlsx con el libro de movimientos.
type MovementExporter interface {
	Export(movements []*entity.Movement, products map[int64]*entity.Product) ([]byte, error)
}

// KardexGenerator genera el PDF del kardex de un producto: historial de
// movimientos en orden cronológico con saldo acumulado.
type KardexGenerator interface {
	Generate(product *entity.Product, movements []*entity.Movement) ([]byte, error)
}
