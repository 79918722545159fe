package repository

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ReportRepository consultas de solo lectura sobre catálogo y libro de
// movimientos. No impone invariantes adicionales.
type ReportRepository interface {
	// TotalStock stock agregado de todos los productos.
	TotalStock(ctx context.Context) (int64, error)
	// CountProducts cantidad de productos distintos en el catálogo.
	CountProducts(ctx context.Context) (int64, error)
	// ListLowStock productos con stock actual <= stock mínimo.
	ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error)
}
