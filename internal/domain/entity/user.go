package entity

import "time"

// Roles del sistema.
const (
	RoleRoot     = "ROOT"
	RoleAdmin    = "ADMIN"
	RoleAuditor  = "AUDITOR"
	RoleOperador = "OPERADOR"
)

// Estados de un usuario.
const (
	UserStatusActive   = "ACTIVO"
	UserStatusInactive = "INACTIVO"
	UserStatusBlocked  = "BLOQUEADO"
)

// User usuario de la aplicación con rol para el control de acceso.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	Status       string
	MFAEnabled   bool
	CreatedAt    time.Time
}
