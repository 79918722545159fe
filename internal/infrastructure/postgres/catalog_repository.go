package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo categorías y marcas sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// CreateCategory persiste una categoría. ErrDuplicate si el nombre ya existe.
func (r *CatalogRepo) CreateCategory(c *entity.Category) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// ListCategories lista todas las categorías ordenadas por nombre.
func (r *CatalogRepo) ListCategories() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteCategory elimina una categoría; los productos quedan con category_id NULL.
func (r *CatalogRepo) DeleteCategory(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateBrand persiste una marca. ErrDuplicate si el nombre ya existe.
func (r *CatalogRepo) CreateBrand(b *entity.Brand) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO brands (name) VALUES ($1) RETURNING id`, b.Name,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// ListBrands lista todas las marcas ordenadas por nombre.
func (r *CatalogRepo) ListBrands() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// DeleteBrand elimina una marca; los productos quedan con brand_id NULL.
func (r *CatalogRepo) DeleteBrand(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
