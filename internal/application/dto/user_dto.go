package dto

import "time"

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea con bcrypt en el caso de uso).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
	IsActive *bool  `json:"is_active,omitempty"` // nil = activo
}

// ChangePasswordRequest entrada para cambiar la contraseña de un usuario.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// SetActiveRequest entrada para activar/desactivar un usuario.
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MeResponse rol y secciones alcanzables del usuario autenticado.
type MeResponse struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Role     string   `json:"role"`
	Sections []string `json:"sections"`
}
