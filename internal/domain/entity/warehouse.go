package entity

import "time"

// Warehouse representa una bodega o ubicación de almacenamiento.
// Entidad de referencia simple usada por los movimientos.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
