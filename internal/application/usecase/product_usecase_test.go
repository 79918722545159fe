package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[int64]*entity.Product
	lastID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*entity.Product{}}
}

func (r *memProductRepo) NextID() (int64, error) {
	r.lastID++
	return r.lastID, nil
}

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Como el storage real: el UPDATE no incluye sku, ean, current_stock
	// ni average_cost.
	cp := *p
	cp.SKU = stored.SKU
	cp.EAN = stored.EAN
	cp.CurrentStock = stored.CurrentStock
	cp.AverageCost = stored.AverageCost
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) AdjustStock(productID, delta int64) (int64, error) {
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

func (r *memProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if f.LowStockOnly && !p.LowStock() {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *memProductRepo) Delete(id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — asignación de identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SinSKU_AutoasignaSKUyEAN(t *testing.T) {
	repo := newMemProductRepo()
	repo.lastID = 41 // el siguiente id reservado será 42
	uc := usecase.NewProductUseCase(repo)

	res, err := uc.Create(dto.CreateProductRequest{
		Name:  "Harina 1kg",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, "PROD-00042", res.SKU, "SKU determinista desde el id")
	assert.Equal(t, "780000000042", res.EAN, "EAN determinista desde el id")
	assert.Equal(t, int64(42), res.ID)
}

func TestProductCreate_ConSKUPropio_SeRespeta(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	res, err := uc.Create(dto.CreateProductRequest{
		SKU:   "HARINA-1KG",
		Name:  "Harina 1kg",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, "HARINA-1KG", res.SKU)
	assert.Empty(t, res.EAN, "con SKU propio el EAN no se autoasigna")
}

func TestProductCreate_EANPropioSinSKU(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	res, err := uc.Create(dto.CreateProductRequest{
		EAN:   "7891234567890",
		Name:  "Harina 1kg",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, "PROD-00001", res.SKU, "el SKU sí se autoasigna")
	assert.Equal(t, "7891234567890", res.EAN, "el EAN entregado se conserva")
}

func TestProductCreate_ValoresPorDefecto(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	res, err := uc.Create(dto.CreateProductRequest{
		Name:  "Harina 1kg",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.True(t, res.TaxRate.Equal(decimal.NewFromInt(19)), "IVA por defecto 19")
	assert.Equal(t, int64(0), res.CurrentStock, "todo producto nace con stock 0")
	assert.True(t, res.AverageCost.IsZero())
	assert.True(t, res.PriceWithTax.Equal(decimal.NewFromInt(1190)), "1000 neto → 1190 con IVA")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Harina 1kg",
		Price: decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestProductCreate_MaxStockMenorQueMin_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	max := int64(5)
	_, err := uc.Create(dto.CreateProductRequest{
		Name:     "Harina 1kg",
		Price:    decimal.NewFromInt(1000),
		MinStock: 10,
		MaxStock: &max,
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max_stock", verr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — campos protegidos e invariantes
// ──────────────────────────────────────────────────────────────────────────────

func seedProduct(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	res, err := uc.Create(dto.CreateProductRequest{
		Name:     "Harina 1kg",
		Price:    decimal.NewFromInt(1000),
		MinStock: 2,
	})
	require.NoError(t, err)
	return res
}

func TestProductUpdate_CamposEditables(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc)

	name := "Harina integral 1kg"
	price := decimal.NewFromInt(1200)
	res, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Harina integral 1kg", res.Name)
	assert.True(t, res.Price.Equal(price))
	assert.Equal(t, created.SKU, res.SKU, "el SKU nunca cambia por Update")
}

func TestProductUpdate_MaxStockMenorQueMinResultante_Rechazado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc)

	// La combinación resultante se valida, no cada campo aislado:
	// min sube a 10 con max 5 en la misma petición.
	min := int64(10)
	max := int64(5)
	_, err := uc.Update(created.ID, dto.UpdateProductRequest{
		MinStock: &min,
		MaxStock: &max,
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max_stock", verr.Field)
}

func TestProductUpdate_PrecioNegativo_Rechazado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc)

	negative := decimal.NewFromInt(-100)
	_, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaStockNiCostoPromedio(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc)

	// Simular stock acumulado por movimientos
	_, err := repo.AdjustStock(created.ID, 7)
	require.NoError(t, err)

	name := "Harina premium"
	res, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.CurrentStock,
		"Update no debe pisar el stock derivado del libro")
}

func TestProductUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	name := "lo que sea"
	res, err := uc.Update(999, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, res, "producto inexistente: nil, nil y el handler resuelve 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivados en la respuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestProductResponse_LowStockDerivado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created := seedProduct(t, uc) // MinStock = 2, stock 0

	res, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, res.LowStock, "stock 0 <= mínimo 2")

	_, err = repo.AdjustStock(created.ID, 2)
	require.NoError(t, err)
	res, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, res.LowStock, "en el límite exacto también alerta")

	_, err = repo.AdjustStock(created.ID, 1)
	require.NoError(t, err)
	res, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, res.LowStock, "sobre el mínimo no alerta")
}
