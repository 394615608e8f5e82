package entity

import "time"

// Roles válidos para AuthUser.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Secciones de la aplicación alcanzables según el rol.
const (
	SectionDashboard  = "dashboard"
	SectionWorkOrders = "work_orders"
	SectionCustomers  = "customers"
	SectionInventory  = "inventory"
	SectionBilling    = "billing"
	SectionSettings   = "settings"
	SectionUsers      = "users"
)

// AllSections todas las secciones definidas.
var AllSections = []string{
	SectionDashboard,
	SectionWorkOrders,
	SectionCustomers,
	SectionInventory,
	SectionBilling,
	SectionSettings,
	SectionUsers,
}

// SectionsForRole tabla estática de capacidades por rol: admin ve todo,
// cashier solo facturación, cualquier otro rol no ve nada.
func SectionsForRole(role string) []string {
	switch role {
	case RoleAdmin:
		return AllSections
	case RoleCashier:
		return []string{SectionBilling}
	default:
		return nil
	}
}

// AuthUser representa un usuario del sistema para inicio de sesión.
type AuthUser struct {
	ID           string
	Username     string // único, sensible a mayúsculas
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin | cashier
	IsActive     bool
	CreatedAt    time.Time
}
