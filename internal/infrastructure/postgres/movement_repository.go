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

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, supplier_id, warehouse_id, type, quantity, date,
	lot, serial, expiry_date, ref_doc, reason, notes, created_at, created_by`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Solo INSERT y SELECT: el libro es inmutable.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta una fila del libro.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, supplier_id, warehouse_id, type, quantity, date,
			lot, serial, expiry_date, ref_doc, reason, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.SupplierID, m.WarehouseID, m.Type, m.Quantity, m.Date,
		m.Lot, m.Serial, m.ExpiryDate, m.RefDoc, m.Reason, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.SupplierID, &m.WarehouseID, &m.Type, &m.Quantity, &m.Date,
		&m.Lot, &m.Serial, &m.ExpiryDate, &m.RefDoc, &m.Reason, &m.Notes, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista movimientos con filtros, ordenados por fecha descendente.
func (r *MovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	args := []any{}
	i := 1
	if f.ProductID != nil {
		query += fmt.Sprintf(" AND product_id = $%d", i)
		args = append(args, *f.ProductID)
		i++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", i)
		args = append(args, f.Type)
		i++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", i)
		args = append(args, *f.From)
		i++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", i)
		args = append(args, *f.To)
		i++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.SupplierID, &m.WarehouseID, &m.Type, &m.Quantity, &m.Date,
			&m.Lot, &m.Serial, &m.ExpiryDate, &m.RefDoc, &m.Reason, &m.Notes, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumSignedByProduct suma los efectos con signo de todo el historial del
// producto. Con un libro consistente coincide con products.current_stock.
func (r *MovementRepo) SumSignedByProduct(productID int64) (int64, error) {
	var sum int64
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(CASE WHEN type IN ('IN', 'AJ-P', 'DEV') THEN quantity ELSE -quantity END), 0)
		FROM movements WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
