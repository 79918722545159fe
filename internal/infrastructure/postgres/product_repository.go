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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, ean, name, description, category_id, brand_id, model,
	standard_cost, average_cost, price, tax_rate, current_stock, min_stock, max_stock,
	reorder_point, perishable, lot_tracked, serial_tracked, vegan, gluten_free,
	created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// NextID reserva el siguiente id de la secuencia sin insertar fila. Permite
// calcular SKU y EAN derivados antes del único INSERT.
func (r *ProductRepo) NextID() (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`SELECT nextval(pg_get_serial_sequence('products', 'id'))`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("next product id: %w", err)
	}
	return id, nil
}

// Create persiste un nuevo producto con su ID ya asignado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, ean, name, description, category_id, brand_id, model,
			standard_cost, average_cost, price, tax_rate, current_stock, min_stock, max_stock,
			reorder_point, perishable, lot_tracked, serial_tracked, vegan, gluten_free,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, nullString(product.EAN), product.Name, product.Description,
		product.CategoryID, product.BrandID, product.Model,
		product.StandardCost, product.AverageCost, product.Price, product.TaxRate,
		product.CurrentStock, product.MinStock, product.MaxStock, product.ReorderPoint,
		product.Perishable, product.LotTracked, product.SerialTracked, product.Vegan, product.GlutenFree,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update actualiza campos editables. SKU, EAN, current_stock y average_cost no
// se tocan: la identidad es inmutable y el stock solo lo muta el libro.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, brand_id = $5,
			model = $6, standard_cost = $7, price = $8, tax_rate = $9, min_stock = $10,
			max_stock = $11, reorder_point = $12, perishable = $13, lot_tracked = $14,
			serial_tracked = $15, vegan = $16, gluten_free = $17, updated_at = $18
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.BrandID,
		product.Model, product.StandardCost, product.Price, product.TaxRate, product.MinStock,
		product.MaxStock, product.ReorderPoint, product.Perishable, product.LotTracked,
		product.SerialTracked, product.Vegan, product.GlutenFree, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock aplica un delta al stock con guardia condicional: el UPDATE solo
// toma la fila si el saldo resultante no queda negativo, así la decisión se
// resuelve fila-a-fila en el storage aun con movimientos concurrentes.
func (r *ProductRepo) AdjustStock(productID, delta int64) (int64, error) {
	var newStock int64
	err := r.q.QueryRow(context.Background(), `
		UPDATE products
		SET current_stock = current_stock + $2, updated_at = now()
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING current_stock`,
		productID, delta,
	).Scan(&newStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// fila no tomada: producto inexistente o stock insuficiente
			var exists bool
			if err2 := r.q.QueryRow(context.Background(),
				`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err2 != nil {
				return 0, fmt.Errorf("check product: %w", err2)
			}
			if !exists {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInsufficientStock
		}
		if isCheckViolation(err) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return newStock, nil
}

// List lista productos con filtros y paginación, ordenados por nombre.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	i := 1
	if f.Search != "" {
		query += fmt.Sprintf(" AND (sku ILIKE $%d OR ean ILIKE $%d OR name ILIKE $%d)", i, i, i)
		args = append(args, "%"+f.Search+"%")
		i++
	}
	if f.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, *f.CategoryID)
		i++
	}
	if f.LowStockOnly {
		query += " AND current_stock <= min_stock"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
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

// Delete elimina un producto. ErrInUse si movimientos o vínculos de proveedor
// lo referencian (FK RESTRICT).
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var ean *string
	err := row.Scan(
		&p.ID, &p.SKU, &ean, &p.Name, &p.Description, &p.CategoryID, &p.BrandID, &p.Model,
		&p.StandardCost, &p.AverageCost, &p.Price, &p.TaxRate, &p.CurrentStock, &p.MinStock,
		&p.MaxStock, &p.ReorderPoint, &p.Perishable, &p.LotTracked, &p.SerialTracked,
		&p.Vegan, &p.GlutenFree, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ean != nil {
		p.EAN = *ean
	}
	return &p, nil
}

// nullString convierte "" a NULL para columnas con UNIQUE parcial sobre valor presente.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
