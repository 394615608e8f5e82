package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/workorder"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
)

// WorkOrderHandler maneja las peticiones HTTP de órdenes de trabajo.
type WorkOrderHandler struct {
	uc *workorder.UseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorder.UseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create registra una orden de trabajo nueva.
// POST /api/work-orders
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return workOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List filtra órdenes por estado, rango de fechas (RFC 3339) y texto libre.
// GET /api/work-orders?status=&min_date=&max_date=&q=
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	in := dto.FilterWorkOrdersRequest{
		Status:     c.Query("status"),
		SearchText: c.Query("q"),
	}
	var err error
	if in.MinDate, err = parseTimeQuery(c.Query("min_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_date inválida (RFC 3339)"})
	}
	if in.MaxDate, err = parseTimeQuery(c.Query("max_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_date inválida (RFC 3339)"})
	}
	orders, err := h.uc.Filter(in)
	if err != nil {
		return workOrderError(c, err)
	}
	return c.JSON(orders)
}

// parseTimeQuery acepta RFC 3339 completo o solo fecha (yyyy-mm-dd).
func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse("2006-01-02", raw); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// GetByID obtiene una orden por ID.
// GET /api/work-orders/:id
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return workOrderError(c, err)
	}
	return c.JSON(order)
}

// Update edita una orden existente.
// PUT /api/work-orders/:id
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return workOrderError(c, err)
	}
	return c.JSON(order)
}

// Close marca una orden como entregada. La operación es idempotente: cerrar
// una orden ya entregada devuelve la orden sin cambios.
// POST /api/work-orders/:id/close
func (h *WorkOrderHandler) Close(c *fiber.Ctx) error {
	order, err := h.uc.Close(c.Params("id"))
	if err != nil {
		return workOrderError(c, err)
	}
	return c.JSON(order)
}

// Delete elimina una orden.
// DELETE /api/work-orders/:id
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return workOrderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func workOrderError(c *fiber.Ctx, err error) error {
	switch {
	case err == domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden de trabajo no encontrada"})
	case err == domain.ErrInvalidStatus:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de orden desconocido"})
	case err == domain.ErrNegativeAmount:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el costo estimado no puede ser negativo"})
	case err == domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
