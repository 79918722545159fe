package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// PriceWithTax
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceWithTax(t *testing.T) {
	cases := []struct {
		name    string
		price   int64
		taxRate int64
		want    int64
	}{
		{"IVA 19 estándar", 1000, 19, 1190},
		{"redondeo hacia arriba", 999, 19, 1189}, // 999 * 1.19 = 1188.81 → 1189
		{"precio cero", 0, 19, 0},
		{"exento de IVA", 1000, 0, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{
				Price:   decimal.NewFromInt(tc.price),
				TaxRate: decimal.NewFromInt(tc.taxRate),
			}
			got := p.PriceWithTax()
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
				"precio con IVA: esperado %d, obtenido %s", tc.want, got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock — el límite es inclusivo
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_LimiteInclusivo(t *testing.T) {
	p := &entity.Product{MinStock: 5}

	p.CurrentStock = 6
	assert.False(t, p.LowStock())

	p.CurrentStock = 5
	assert.True(t, p.LowStock(), "stock igual al mínimo ya es alerta")

	p.CurrentStock = 0
	assert.True(t, p.LowStock())
}

func TestExpiryAlert_SoloPerecibles(t *testing.T) {
	assert.True(t, (&entity.Product{Perishable: true}).ExpiryAlert())
	assert.False(t, (&entity.Product{Perishable: false}).ExpiryAlert())
}

// ──────────────────────────────────────────────────────────────────────────────
// Movement — efecto con signo por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestSignedEffect_PorTipo(t *testing.T) {
	cases := []struct {
		movType string
		want    int64
	}{
		{entity.MovementTypeReceipt, 10},
		{entity.MovementTypeAdjPos, 10},
		{entity.MovementTypeReturn, 10},
		{entity.MovementTypeIssue, -10},
		{entity.MovementTypeAdjNeg, -10},
	}
	for _, tc := range cases {
		t.Run(tc.movType, func(t *testing.T) {
			m := &entity.Movement{Type: tc.movType, Quantity: 10}
			assert.Equal(t, tc.want, m.SignedEffect())
		})
	}
}

func TestIsValidMovementType(t *testing.T) {
	for _, valid := range entity.MovementTypes {
		assert.True(t, entity.IsValidMovementType(valid))
	}
	assert.False(t, entity.IsValidMovementType("TRASPASO"))
	assert.False(t, entity.IsValidMovementType(""))
	assert.False(t, entity.IsValidMovementType("in"), "los códigos distinguen mayúsculas")
}
