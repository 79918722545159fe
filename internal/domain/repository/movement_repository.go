package repository

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos (rango de fechas, producto, tipo).
type MovementFilter struct {
	ProductID *int64
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository puerto de persistencia del libro de movimientos.
// Las filas son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve movimientos ordenados por fecha descendente.
	List(f MovementFilter) ([]*entity.Movement, error)
	// SumSignedByProduct suma los efectos con signo de todo el historial de un
	// producto (verificación contable contra CurrentStock).
	SumSignedByProduct(productID int64) (int64, error)
}
