package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para AuthUser (DIP).
type UserRepository interface {
	Create(user *entity.AuthUser) error
	GetByID(id string) (*entity.AuthUser, error)
	// GetByUsername busca por nombre de usuario exacto (sensible a mayúsculas).
	// Devuelve nil, nil si no existe.
	GetByUsername(username string) (*entity.AuthUser, error)
	Update(user *entity.AuthUser) error
	List(limit, offset int) ([]*entity.AuthUser, error)
	// Count número total de usuarios; usado por el seed inicial.
	Count() (int, error)
	Delete(id string) error
}
