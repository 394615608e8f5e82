package entity

import (
	"fmt"
	"time"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
)

// Estados de una orden de trabajo dentro del taller, en orden de progresión
// típica. Solo el cierre impone una regla (la entrega es terminal e
// idempotente); el resto de transiciones son libres: el taller puede saltar
// o regresar estados según el flujo real de la reparación.
const (
	StatusReceived     = "received"
	StatusInDiagnosis  = "in_diagnosis"
	StatusInRepair     = "in_repair"
	StatusWaitingParts = "waiting_parts"
	StatusReady        = "ready"
	StatusDelivered    = "delivered"
)

// WorkOrderStatuses lista cerrada de estados válidos, en orden de progresión.
var WorkOrderStatuses = []string{
	StatusReceived,
	StatusInDiagnosis,
	StatusInRepair,
	StatusWaitingParts,
	StatusReady,
	StatusDelivered,
}

// ParseWorkOrderStatus valida un estado textual contra la lista cerrada.
// Un valor desconocido es un error explícito, no un fallback silencioso:
// un dato corrupto en la base debe verse, no enmascararse.
func ParseWorkOrderStatus(s string) (string, error) {
	for _, v := range WorkOrderStatuses {
		if s == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("estado de orden desconocido: %q", s)
}

// StatusTitle texto amigable por estado (para tickets y PDF).
func StatusTitle(status string) string {
	switch status {
	case StatusReceived:
		return "Recibido"
	case StatusInDiagnosis:
		return "En diagnóstico"
	case StatusInRepair:
		return "En reparación"
	case StatusWaitingParts:
		return "Esperando refacciones"
	case StatusReady:
		return "Listo para entregar"
	case StatusDelivered:
		return "Entregado"
	default:
		return status
	}
}

// WorkOrder representa una orden de trabajo registrada en el taller.
type WorkOrder struct {
	ID                 string
	CustomerName       string
	DeviceDescription  string
	ProblemDescription string
	Status             string
	EstimatedCost      money.Money // nunca negativo
	CreatedAt          time.Time
	UpdatedAt          *time.Time // nil hasta la primera mutación; siempre >= CreatedAt
}

// IsDelivered indica si la orden ya fue entregada (estado terminal del cierre).
func (o *WorkOrder) IsDelivered() bool {
	return o.Status == StatusDelivered
}

// IsInvoiceable indica si la orden está en un estado facturable.
// Solo se facturan órdenes listas o entregadas.
func (o *WorkOrder) IsInvoiceable() bool {
	return o.Status == StatusReady || o.Status == StatusDelivered
}
