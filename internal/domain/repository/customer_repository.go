package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// List devuelve clientes ordenados por nombre; search filtra por
	// subcadena (insensible a mayúsculas) sobre nombre, teléfono y email.
	List(search string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
