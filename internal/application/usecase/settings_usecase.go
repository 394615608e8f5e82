package usecase

import (
	"strings"
	"time"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización del perfil del negocio.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual; si nunca se ha guardado, los valores
// por defecto (sin persistirlos todavía).
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return toSettingsResponse(settings), nil
}

// Update guarda el perfil del negocio. La tasa por defecto no puede ser
// negativa.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DefaultTaxRate.IsNegative() {
		return nil, domain.ErrNegativeTaxRate
	}
	settings := &entity.Settings{
		BusinessName:   name,
		TaxID:          in.TaxID,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		DefaultTaxRate: in.DefaultTaxRate,
		UpdatedAt:      time.Now(),
	}
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName:   s.BusinessName,
		TaxID:          s.TaxID,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		DefaultTaxRate: s.DefaultTaxRate,
		UpdatedAt:      s.UpdatedAt,
	}
}
