package entity

import "time"

// Tipos de movimiento de inventario (códigos del sistema original).
const (
	MovementTypeReceipt = "IN"   // ingreso
	MovementTypeIssue   = "OUT"  // salida
	MovementTypeAdjPos  = "AJ-P" // ajuste positivo
	MovementTypeAdjNeg  = "AJ-N" // ajuste negativo
	MovementTypeReturn  = "DEV"  // devolución
)

// MovementTypes todos los tipos reconocidos.
var MovementTypes = []string{
	MovementTypeReceipt,
	MovementTypeIssue,
	MovementTypeAdjPos,
	MovementTypeAdjNeg,
	MovementTypeReturn,
}

// IsValidMovementType indica si el código de tipo es reconocido.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeReceipt, MovementTypeIssue, MovementTypeAdjPos, MovementTypeAdjNeg, MovementTypeReturn:
		return true
	}
	return false
}

// IsInboundMovement indica si el tipo incrementa stock (IN, AJ-P, DEV).
func IsInboundMovement(t string) bool {
	switch t {
	case MovementTypeReceipt, MovementTypeAdjPos, MovementTypeReturn:
		return true
	}
	return false
}

// Movement es una fila inmutable del libro de movimientos de inventario.
// Quantity siempre es positiva; el signo del efecto sobre el stock lo
// determina el tipo, no la cantidad almacenada. No existe update ni delete:
// las correcciones se hacen con asientos compensatorios (AJ-P / AJ-N).
type Movement struct {
	ID          string // UUID
	ProductID   int64
	SupplierID  *int64 // se anula si el proveedor se elimina
	WarehouseID *int64
	Type        string
	Quantity    int64 // siempre > 0
	Date        time.Time
	Lot         string
	Serial      string
	ExpiryDate  *time.Time
	RefDoc      string
	Reason      string
	Notes       string
	CreatedAt   time.Time
	CreatedBy   string
}

// SignedEffect devuelve el efecto del movimiento sobre el stock:
// +Quantity para IN/AJ-P/DEV, -Quantity para OUT/AJ-N.
func (m *Movement) SignedEffect() int64 {
	if IsInboundMovement(m.Type) {
		return m.Quantity
	}
	return -m.Quantity
}
