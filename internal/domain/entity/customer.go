package entity

import "time"

// Customer representa un cliente del negocio (persona o empresa).
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
