package auth

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/jwt"
)

// TokenConfig parámetros de emisión de tokens JWT.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	users repository.UserRepository
	token TokenConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, token TokenConfig) *UseCase {
	return &UseCase{users: users, token: token}
}

// Register crea un usuario con la contraseña hasheada (bcrypt). Si no se
// indica rol, queda como OPERADOR. username y email deben ser únicos.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if existing, err := uc.users.GetByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.users.GetByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite un JWT con el rol del usuario.
// Solo usuarios ACTIVO pueden autenticarse.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.token.Secret, strconv.FormatInt(user.ID, 10), user.Role, uc.token.Issuer, uc.token.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me devuelve el usuario autenticado.
func (uc *UseCase) Me(userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt,
	}
}
