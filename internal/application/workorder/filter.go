package workorder

import (
	"strings"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

// Filter devuelve las órdenes que cumplen los criterios, ordenadas por fecha
// de creación descendente (orden fijo, no configurable).
//
// Los criterios estructurados (estado exacto, fecha mínima y máxima, ambas
// inclusivas) se combinan con AND y los resuelve el repositorio. El texto
// libre se aplica después como un AND adicional: subcadena insensible a
// mayúsculas sobre cliente, equipo y problema, con OR entre los tres campos.
func (uc *UseCase) Filter(in dto.FilterWorkOrdersRequest) ([]*dto.WorkOrderResponse, error) {
	filter := repository.WorkOrderFilter{
		MinDate: in.MinDate,
		MaxDate: in.MaxDate,
	}
	if in.Status != "" {
		status, err := entity.ParseWorkOrderStatus(in.Status)
		if err != nil {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &status
	}

	orders, err := uc.repo.Filter(filter)
	if err != nil {
		return nil, err
	}

	if text := strings.TrimSpace(in.SearchText); text != "" {
		lower := strings.ToLower(text)
		matched := orders[:0]
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.CustomerName), lower) ||
				strings.Contains(strings.ToLower(o.DeviceDescription), lower) ||
				strings.Contains(strings.ToLower(o.ProblemDescription), lower) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	out := make([]*dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toWorkOrderResponse(o))
	}

	uc.log.Debug().Int("count", len(out)).Msg("filtrado de órdenes de trabajo")
	return out, nil
}
