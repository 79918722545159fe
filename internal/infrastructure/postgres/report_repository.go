package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregados de solo lectura sobre el catálogo.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalStock stock agregado de todos los productos.
func (r *ReportRepo) TotalStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(current_stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

// CountProducts cantidad de productos distintos en el catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// ListLowStock productos con stock actual <= stock mínimo, los más críticos primero.
func (r *ReportRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE current_stock <= min_stock
		ORDER BY (min_stock - current_stock) DESC, name
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
