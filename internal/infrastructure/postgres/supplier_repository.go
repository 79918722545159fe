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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, tax_id, legal_name, trade_name, email, phone, website, address,
	city, country, contact_name, contact_phone, payment_terms, currency, status, notes,
	created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna su ID. ErrDuplicate si el tax_id ya existe.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (tax_id, legal_name, trade_name, email, phone, website, address,
			city, country, contact_name, contact_phone, payment_terms, currency, status, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.TaxID, s.LegalName, s.TradeName, s.Email, s.Phone, s.Website, s.Address,
		s.City, s.Country, s.ContactName, s.ContactPhone, s.PaymentTerms, s.Currency,
		s.Status, s.Notes, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByTaxID obtiene un proveedor por su RUT/NIF.
func (r *SupplierRepo) GetByTaxID(taxID string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE tax_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, taxID))
}

// Update actualiza un proveedor. tax_id no se toca: es inmutable.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET legal_name = $2, trade_name = $3, email = $4, phone = $5,
			website = $6, address = $7, city = $8, country = $9, contact_name = $10,
			contact_phone = $11, payment_terms = $12, currency = $13, status = $14,
			notes = $15, updated_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.LegalName, s.TradeName, s.Email, s.Phone, s.Website, s.Address, s.City,
		s.Country, s.ContactName, s.ContactPhone, s.PaymentTerms, s.Currency, s.Status,
		s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores ordenados por razón social.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY legal_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor. Los movimientos referenciados quedan con
// supplier_id NULL y los vínculos con productos se eliminan (CASCADE).
func (r *SupplierRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LinkProduct vincula un producto suministrado. Idempotente.
func (r *SupplierRepo) LinkProduct(supplierID, productID int64) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO supplier_products (supplier_id, product_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		supplierID, productID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link product: %w", err)
	}
	return nil
}

// UnlinkProduct quita el vínculo.
func (r *SupplierRepo) UnlinkProduct(supplierID, productID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM supplier_products WHERE supplier_id = $1 AND product_id = $2`,
		supplierID, productID,
	)
	if err != nil {
		return fmt.Errorf("unlink product: %w", err)
	}
	return nil
}

// ListProducts lista los productos suministrados por el proveedor.
func (r *SupplierRepo) ListProducts(supplierID int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN supplier_products sp ON sp.product_id = p.id
		WHERE sp.supplier_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier products: %w", err)
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

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.TaxID, &s.LegalName, &s.TradeName, &s.Email, &s.Phone, &s.Website,
		&s.Address, &s.City, &s.Country, &s.ContactName, &s.ContactPhone, &s.PaymentTerms,
		&s.Currency, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
