package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega y asigna su ID.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO warehouses (name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		w.Name, w.Location, w.CreatedAt, w.UpdatedAt,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, location, created_at, updated_at FROM warehouses WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE warehouses SET name = $2, location = $3, updated_at = $4 WHERE id = $1`,
		w.ID, w.Name, w.Location, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista bodegas ordenadas por nombre.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, location, created_at, updated_at FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina una bodega. ErrInUse si hay movimientos que la referencian.
func (r *WarehouseRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
