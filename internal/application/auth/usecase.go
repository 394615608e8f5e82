package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/jwt"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// Credenciales del admin inicial. Solo se crean cuando la tabla de usuarios
// está vacía y el seed está habilitado por configuración; deben cambiarse
// tras el primer inicio de sesión.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login valida credenciales y devuelve token JWT + usuario.
//
// Orden de validación: (1) recortar espacios y rechazar vacíos; (2) búsqueda
// por username exacto; (3) usuario activo; (4) verificación bcrypt. Cada fallo
// se registra a nivel error con su causa exacta; el handler HTTP los presenta
// con un único mensaje genérico, así que el motivo solo queda en el log.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.logFailedLogin(username, domain.ErrUserNotFound)
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		uc.logFailedLogin(username, domain.ErrUserDisabled)
		return nil, domain.ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.logFailedLogin(username, domain.ErrInvalidPassword)
		return nil, domain.ErrInvalidPassword
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("inicio de sesión correcto")
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// logFailedLogin deja la causa exacta del fallo en el log del servidor, la
// única parte del sistema donde es visible.
func (uc *AuthUseCase) logFailedLogin(username string, cause error) {
	uc.log.Error().Str("username", username).Err(cause).Msg("inicio de sesión fallido")
}

// SeedInitialAdmin crea el usuario admin por defecto si no existe ningún
// usuario. Idempotente: si ya hay usuarios no hace nada.
func (uc *AuthUseCase) SeedInitialAdmin() error {
	count, err := uc.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.AuthUser{
		ID:           uuid.New().String(),
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return err
	}

	uc.log.Warn().
		Str("username", defaultAdminUsername).
		Msg("usuario admin inicial creado con contraseña por defecto; cámbiala de inmediato")
	return nil
}

// CreateUser crea un usuario nuevo. El nombre de usuario debe ser único; el
// duplicado se rechaza antes del insert y además lo respalda la constraint
// única de la tabla.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	// Mismo recorte que aplica Login: una contraseña guardada con espacios
	// alrededor jamás podría autenticarse.
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleCashier {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	user := &entity.AuthUser{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", username).Str("role", in.Role).Msg("usuario creado")
	return toUserResponse(user), nil
}

// ChangePassword reemplaza la contraseña de un usuario por su hash bcrypt.
// Recorta espacios alrededor igual que Login y CreateUser.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	password := strings.TrimSpace(in.NewPassword)
	if password == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return uc.userRepo.Update(user)
}

// SetActive activa o desactiva un usuario.
func (uc *AuthUseCase) SetActive(userID string, isActive bool) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	user.IsActive = isActive
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.log.Info().Str("username", user.Username).Bool("is_active", isActive).Msg("estado de usuario actualizado")
	return nil
}

// ListUsers lista usuarios con paginación.
func (uc *AuthUseCase) ListUsers(limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.AuthUser) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
