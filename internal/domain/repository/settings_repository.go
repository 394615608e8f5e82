package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la configuración
// del negocio (registro único).
type SettingsRepository interface {
	// Get devuelve la configuración actual, o nil si aún no se ha guardado.
	Get() (*entity.Settings, error)
	// Save inserta o reemplaza la configuración.
	Save(settings *entity.Settings) error
}
