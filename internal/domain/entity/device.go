package entity

import "time"

// Device representa un equipo que llega al taller para diagnóstico o reparación.
type Device struct {
	ID           string
	Nickname     string // identificador corto: "Laptop HP", "PC Gamer"
	Brand        string
	Model        string
	SerialNumber string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
