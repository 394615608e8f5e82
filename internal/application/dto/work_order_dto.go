package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest entrada para crear una orden de trabajo.
// Status vacío equivale a "received". EstimatedCost debe ser >= 0.
type CreateWorkOrderRequest struct {
	CustomerName       string          `json:"customer_name" validate:"required,min=1,max=200"`
	DeviceDescription  string          `json:"device_description" validate:"required,min=1,max=500"`
	ProblemDescription string          `json:"problem_description" validate:"required,min=1"`
	Status             string          `json:"status" validate:"omitempty"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
}

// UpdateWorkOrderRequest entrada para editar una orden existente.
type UpdateWorkOrderRequest struct {
	CustomerName       string          `json:"customer_name"`
	DeviceDescription  string          `json:"device_description"`
	ProblemDescription string          `json:"problem_description"`
	Status             string          `json:"status"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
}

// FilterWorkOrdersRequest criterios de filtrado de órdenes. Los criterios
// estructurados se combinan con AND; SearchText busca subcadena (insensible
// a mayúsculas) en cliente, equipo y problema con OR entre los tres campos.
type FilterWorkOrdersRequest struct {
	Status     string     `query:"status"`
	MinDate    *time.Time `query:"min_date"`
	MaxDate    *time.Time `query:"max_date"`
	SearchText string     `query:"q"`
}

// WorkOrderResponse salida de una orden de trabajo.
type WorkOrderResponse struct {
	ID                 string          `json:"id"`
	CustomerName       string          `json:"customer_name"`
	DeviceDescription  string          `json:"device_description"`
	ProblemDescription string          `json:"problem_description"`
	Status             string          `json:"status"`
	EstimatedCost      decimal.Decimal `json:"estimated_cost"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}
