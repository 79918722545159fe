package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInUse             = errors.New("no se puede eliminar, está en uso")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que un movimiento de salida pidió más unidades
// de las disponibles. Conserva las cantidades para el mensaje al usuario.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente. Stock actual: %d, se intentó sacar: %d", e.Current, e.Requested)
}

// Is permite comparar contra el centinela con errors.Is.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError error de validación con el campo que lo provocó.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is permite comparar contra el centinela con errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
