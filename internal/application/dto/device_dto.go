package dto

// CreateDeviceRequest entrada para registrar un equipo.
type CreateDeviceRequest struct {
	Nickname     string `json:"nickname" validate:"required,min=1,max=200"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// UpdateDeviceRequest entrada para editar un equipo.
type UpdateDeviceRequest = CreateDeviceRequest

// DeviceResponse salida de un equipo.
type DeviceResponse struct {
	ID           string `json:"id"`
	Nickname     string `json:"nickname"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}
