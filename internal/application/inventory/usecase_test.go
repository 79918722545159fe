package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]*entity.Product{}, nextID: 0}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProductRepo) NextID() (int64, error) {
	r.nextID++
	return r.nextID, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

// AdjustStock replica la guardia condicional del storage: el delta solo se
// aplica si el saldo resultante no queda negativo.
func (r *fakeProductRepo) AdjustStock(productID, delta int64) (int64, error) {
	p, ok := r.products[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.CurrentStock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.CurrentStock += delta
	return p.CurrentStock, nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if f.ProductID != nil && m.ProductID != *f.ProductID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		list = append(list, m)
	}
	return list, nil
}

func (r *fakeMovementRepo) SumSignedByProduct(productID int64) (int64, error) {
	var sum int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			sum += m.SignedEffect()
		}
	}
	return sum, nil
}

type fakeSupplierRepo struct {
	suppliers map[int64]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error         { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) GetByTaxID(taxID string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error                   { return nil }
func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) Delete(id int64) error                        { return nil }
func (r *fakeSupplierRepo) LinkProduct(supplierID, productID int64) error   { return nil }
func (r *fakeSupplierRepo) UnlinkProduct(supplierID, productID int64) error { return nil }
func (r *fakeSupplierRepo) ListProducts(supplierID int64) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Delete(id int64) error { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes. Si el
// callback falla, restaura el stock previo para emular el rollback.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := map[int64]int64{}
	for id, p := range r.productRepo.products {
		snapshot[id] = p.CurrentStock
	}
	if err := fn(r.movRepo, r.productRepo); err != nil {
		for id, stock := range snapshot {
			r.productRepo.products[id].CurrentStock = stock
		}
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
	products *fakeProductRepo
	ledger   *fakeMovementRepo
}

func newFixture(products ...*entity.Product) *fixture {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{movRepo: movRepo, productRepo: productRepo}
	supRepo := &fakeSupplierRepo{suppliers: map[int64]*entity.Supplier{}}
	whRepo := &fakeWarehouseRepo{warehouses: map[int64]*entity.Warehouse{}}
	return &fixture{
		uc:       inventory.NewRegisterMovementUseCase(tx, productRepo, supRepo, whRepo),
		query:    inventory.NewMovementQueryUseCase(movRepo, productRepo, nil, nil),
		products: productRepo,
		ledger:   movRepo,
	}
}

func productWithStock(id, stock int64) *entity.Product {
	return &entity.Product{
		ID:           id,
		SKU:          "PROD-00001",
		Name:         "Harina 1kg",
		CurrentStock: stock,
		MinStock:     2,
	}
}

func register(t *testing.T, f *fixture, movType string, qty int64) (*inventory.MovementResult, error) {
	t.Helper()
	return f.uc.Register(context.Background(), inventory.MovementInput{
		ProductID: 1,
		Type:      movType,
		Quantity:  qty,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos — efectos sobre el stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_IngresoSumaStock(t *testing.T) {
	f := newFixture(productWithStock(1, 10))

	res, err := register(t, f, entity.MovementTypeReceipt, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(15), res.CurrentStock, "10 + IN 5 debe dejar 15")
	assert.Equal(t, int64(5), res.Movement.SignedEffect())

	p, _ := f.products.GetByID(1)
	assert.Equal(t, int64(15), p.CurrentStock)
	assert.Len(t, f.ledger.movements, 1, "debe quedar exactamente un asiento")
}

func TestRegister_SalidaMayorAlStock_RechazadaSinEfectos(t *testing.T) {
	f := newFixture(productWithStock(1, 15))

	_, err := register(t, f, entity.MovementTypeIssue, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var serr *domain.InsufficientStockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, int64(15), serr.Current)
	assert.Equal(t, int64(20), serr.Requested)
	assert.Contains(t, err.Error(), "15", "el mensaje debe incluir el stock actual")
	assert.Contains(t, err.Error(), "20", "el mensaje debe incluir la cantidad pedida")

	p, _ := f.products.GetByID(1)
	assert.Equal(t, int64(15), p.CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, f.ledger.movements, "no debe quedar asiento del rechazo")
}

func TestRegister_AjusteNegativoHastaCero(t *testing.T) {
	f := newFixture(productWithStock(1, 15))

	res, err := register(t, f, entity.MovementTypeAdjNeg, 15)
	require.NoError(t, err, "vaciar exactamente el stock es válido")
	assert.Equal(t, int64(0), res.CurrentStock)

	// Con stock 0 cualquier salida, incluso de 1, se rechaza.
	_, err = register(t, f, entity.MovementTypeIssue, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegister_DevolucionReponeDesdecero(t *testing.T) {
	f := newFixture(productWithStock(1, 0))

	res, err := register(t, f, entity.MovementTypeReturn, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.CurrentStock, "DEV incrementa stock igual que IN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CantidadCero_RechazadaParaTodosLosTipos(t *testing.T) {
	for _, movType := range entity.MovementTypes {
		t.Run(movType, func(t *testing.T) {
			f := newFixture(productWithStock(1, 10))

			_, err := register(t, f, movType, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput,
				"cantidad cero debe rechazarse sin importar el tipo")
			assert.Empty(t, f.ledger.movements)
		})
	}
}

func TestRegister_CantidadNegativa_Rechazada(t *testing.T) {
	f := newFixture(productWithStock(1, 10))

	_, err := register(t, f, entity.MovementTypeReceipt, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el signo lo decide el tipo, nunca la cantidad")
}

func TestRegister_TipoDesconocido_Rechazado(t *testing.T) {
	f := newFixture(productWithStock(1, 10))

	_, err := f.uc.Register(context.Background(), inventory.MovementInput{
		ProductID: 1,
		Type:      "TRASPASO",
		Quantity:  5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
}

func TestRegister_VencimientoPasado_Rechazado(t *testing.T) {
	f := newFixture(productWithStock(1, 10))

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err := f.uc.Register(context.Background(), inventory.MovementInput{
		ProductID:  1,
		Type:       entity.MovementTypeReceipt,
		Quantity:   5,
		ExpiryDate: &yesterday,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProductoInexistente_Rechazado(t *testing.T) {
	f := newFixture()

	_, err := register(t, f, entity.MovementTypeReceipt, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ProveedorInexistente_Rechazado(t *testing.T) {
	f := newFixture(productWithStock(1, 10))

	missing := int64(99)
	_, err := f.uc.Register(context.Background(), inventory.MovementInput{
		ProductID:  1,
		Type:       entity.MovementTypeReceipt,
		Quantity:   5,
		SupplierID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad contable: stock == suma de efectos con signo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_LibroYStockSiempreCoinciden(t *testing.T) {
	f := newFixture(productWithStock(1, 0))

	steps := []struct {
		movType string
		qty     int64
	}{
		{entity.MovementTypeReceipt, 10},
		{entity.MovementTypeIssue, 4},
		{entity.MovementTypeAdjPos, 2},
		{entity.MovementTypeAdjNeg, 3},
		{entity.MovementTypeReturn, 1},
		{entity.MovementTypeIssue, 20}, // rechazado: 6 en stock
		{entity.MovementTypeIssue, 6},
	}

	for _, s := range steps {
		if _, err := register(t, f, s.movType, s.qty); err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}

	check, err := f.query.LedgerCheck(1)
	require.NoError(t, err)
	assert.True(t, check.Consistent,
		"la suma del libro debe coincidir con el stock tras cualquier secuencia")
	assert.Equal(t, int64(0), check.CurrentStock, "10-4+2-3+1-6 = 0")
	assert.Equal(t, check.CurrentStock, check.LedgerSum)
}

func TestRegister_FallaAlPersistirMovimiento_RevierteStock(t *testing.T) {
	productRepo := newFakeProductRepo(productWithStock(1, 10))
	movRepo := &failingMovementRepo{}
	tx := &fakeTxRunner{movRepo: &fakeMovementRepo{}, productRepo: productRepo}
	// El runner pasa el repo que falla dentro de la tx.
	uc := inventory.NewRegisterMovementUseCase(
		&failingTxRunner{inner: tx, movRepo: movRepo},
		productRepo,
		&fakeSupplierRepo{suppliers: map[int64]*entity.Supplier{}},
		&fakeWarehouseRepo{warehouses: map[int64]*entity.Warehouse{}},
	)

	_, err := uc.Register(context.Background(), inventory.MovementInput{
		ProductID: 1,
		Type:      entity.MovementTypeReceipt,
		Quantity:  5,
	})
	require.Error(t, err)

	p, _ := productRepo.GetByID(1)
	assert.Equal(t, int64(10), p.CurrentStock,
		"si el asiento no se persiste, el ajuste de stock se revierte")
}

type failingMovementRepo struct{ fakeMovementRepo }

func (r *failingMovementRepo) Create(m *entity.Movement) error {
	return errors.New("insert movement: conexión perdida")
}

type failingTxRunner struct {
	inner   *fakeTxRunner
	movRepo repository.MovementRepository
}

func (r *failingTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.inner.Run(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		return fn(r.movRepo, productRepo)
	})
}
