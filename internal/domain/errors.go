package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Autenticación. El handler HTTP colapsa los tres en un mismo mensaje
	// genérico para no revelar cuál fue la causa (enumeración de usuarios);
	// la causa exacta solo queda en los logs del servidor.
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidPassword = errors.New("contraseña incorrecta")
	ErrUserDisabled    = errors.New("usuario deshabilitado")

	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")

	// Órdenes de trabajo y facturación.
	ErrInvalidStatus       = errors.New("estado de orden inválido")
	ErrOrderNotInvoiceable = errors.New("la orden no está lista para facturar")
	ErrNegativeAmount      = errors.New("monto negativo")
	ErrNegativeTaxRate     = errors.New("tasa de impuesto negativa")
)
