package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/usecase"
)

// DeviceHandler maneja las peticiones HTTP de equipos registrados.
type DeviceHandler struct {
	uc *usecase.DeviceUseCase
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(uc *usecase.DeviceUseCase) *DeviceHandler {
	return &DeviceHandler{uc: uc}
}

// Create registra un equipo.
// POST /api/devices
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	device, err := h.uc.Create(in)
	if err != nil {
		return crudError(c, err, "equipo no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(device)
}

// List lista equipos.
// GET /api/devices?limit=&offset=
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	devices, err := h.uc.List(page)
	if err != nil {
		return crudError(c, err, "equipo no encontrado")
	}
	return c.JSON(devices)
}

// GetByID obtiene un equipo por ID.
// GET /api/devices/:id
func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	device, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return crudError(c, err, "equipo no encontrado")
	}
	return c.JSON(device)
}

// Update edita un equipo.
// PUT /api/devices/:id
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	device, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return crudError(c, err, "equipo no encontrado")
	}
	return c.JSON(device)
}

// Delete elimina un equipo.
// DELETE /api/devices/:id
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return crudError(c, err, "equipo no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
