package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste el usuario y asigna su ID.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
