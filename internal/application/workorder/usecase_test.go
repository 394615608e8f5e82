package workorder

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// fakeWorkOrderRepo repositorio en memoria que replica la semántica de
// filtrado del adaptador de PostgreSQL: criterios con AND y orden por fecha
// de creación descendente.
type fakeWorkOrderRepo struct {
	orders map[string]*entity.WorkOrder
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{orders: map[string]*entity.WorkOrder{}}
}

func (r *fakeWorkOrderRepo) Create(order *entity.WorkOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeWorkOrderRepo) Update(order *entity.WorkOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) Filter(filter repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.MinDate != nil && o.CreatedAt.Before(*filter.MinDate) {
			continue
		}
		if filter.MaxDate != nil && o.CreatedAt.After(*filter.MaxDate) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeWorkOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func newTestUseCase(repo *fakeWorkOrderRepo) *UseCase {
	return NewUseCase(repo, logger.Nop())
}

func seedOrder(t *testing.T, repo *fakeWorkOrderRepo, id, customer, device, problem, status string, createdAt time.Time) *entity.WorkOrder {
	t.Helper()
	o := &entity.WorkOrder{
		ID:                 id,
		CustomerName:       customer,
		DeviceDescription:  device,
		ProblemDescription: problem,
		Status:             status,
		EstimatedCost:      money.New(decimal.RequireFromString("500.00")),
		CreatedAt:          createdAt,
	}
	require.NoError(t, repo.Create(o))
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EstadoInicialPorDefecto(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	out, err := uc.Create(dto.CreateWorkOrderRequest{
		CustomerName:       "Laura Méndez",
		DeviceDescription:  "Laptop Dell Latitude",
		ProblemDescription: "No enciende",
		EstimatedCost:      decimal.RequireFromString("1500.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)
	assert.NotEmpty(t, out.ID)
	assert.Nil(t, out.UpdatedAt, "una orden recién creada no tiene UpdatedAt")
}

func TestCreate_CamposVacios(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	_, err := uc.Create(dto.CreateWorkOrderRequest{
		CustomerName:       "   ",
		DeviceDescription:  "Laptop",
		ProblemDescription: "No enciende",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CostoNegativo(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	_, err := uc.Create(dto.CreateWorkOrderRequest{
		CustomerName:       "Laura",
		DeviceDescription:  "Laptop",
		ProblemDescription: "No enciende",
		EstimatedCost:      decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestCreate_EstadoDesconocido(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	// Un estado no reconocido es un error, nunca un fallback silencioso.
	_, err := uc.Create(dto.CreateWorkOrderRequest{
		CustomerName:       "Laura",
		DeviceDescription:  "Laptop",
		ProblemDescription: "No enciende",
		Status:             "en_proceso_de_algo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// Close
// ──────────────────────────────────────────────────────────────────────────────

func TestClose_MarcaEntregadaYAsignaUpdatedAt(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedOrder(t, repo, "wo-1", "Laura", "Laptop", "No enciende", entity.StatusReady, time.Now().Add(-time.Hour))
	uc := newTestUseCase(repo)

	out, err := uc.Close("wo-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, out.Status)
	require.NotNil(t, out.UpdatedAt)
}

func TestClose_IdempotenteSinTocarUpdatedAt(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedOrder(t, repo, "wo-1", "Laura", "Laptop", "No enciende", entity.StatusReady, time.Now().Add(-time.Hour))
	uc := newTestUseCase(repo)

	first, err := uc.Close("wo-1")
	require.NoError(t, err)
	require.NotNil(t, first.UpdatedAt)

	// El segundo cierre no es error y conserva el UpdatedAt del primero.
	second, err := uc.Close("wo-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, second.Status)
	require.NotNil(t, second.UpdatedAt)
	assert.True(t, first.UpdatedAt.Equal(*second.UpdatedAt),
		"cerrar una orden ya entregada no debe mover UpdatedAt")
}

func TestClose_OrdenInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	_, err := uc.Close("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_CombinaCriteriosConAND(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, repo, "a", "Laura", "Laptop HP", "No enciende", entity.StatusInRepair, base)
	seedOrder(t, repo, "b", "Pedro", "PC Gamer", "Pantalla azul", entity.StatusInRepair, base.Add(48*time.Hour))
	seedOrder(t, repo, "c", "Laura", "Impresora", "Atasco", entity.StatusReceived, base.Add(24*time.Hour))
	uc := newTestUseCase(repo)

	minDate := base.Add(12 * time.Hour)
	out, err := uc.Filter(dto.FilterWorkOrdersRequest{
		Status:  entity.StatusInRepair,
		MinDate: &minDate,
	})
	require.NoError(t, err)
	require.Len(t, out, 1, "solo la orden que cumple estado Y fecha")
	assert.Equal(t, "b", out[0].ID)
}

func TestFilter_OrdenPorFechaDescendente(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, repo, "vieja", "Laura", "Laptop", "No enciende", entity.StatusReceived, base)
	seedOrder(t, repo, "nueva", "Pedro", "PC", "Pantalla azul", entity.StatusReceived, base.Add(time.Hour))
	uc := newTestUseCase(repo)

	out, err := uc.Filter(dto.FilterWorkOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "nueva", out[0].ID)
	assert.Equal(t, "vieja", out[1].ID)
}

func TestFilter_TextoLibreSobreTresCampos(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, repo, "a", "Laura Méndez", "Laptop HP", "No enciende", entity.StatusReceived, base)
	seedOrder(t, repo, "b", "Pedro", "PC Gamer", "la laptop se apaga", entity.StatusReceived, base.Add(time.Hour))
	seedOrder(t, repo, "c", "Carlos", "Impresora Epson", "Atasco de papel", entity.StatusReceived, base.Add(2*time.Hour))
	uc := newTestUseCase(repo)

	// "LAPTOP" coincide en el equipo de "a" y en el problema de "b";
	// la búsqueda es insensible a mayúsculas y con OR entre campos.
	out, err := uc.Filter(dto.FilterWorkOrdersRequest{SearchText: "LAPTOP"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
}

func TestFilter_TextoRestringeResultadoEstructurado(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, repo, "a", "Laura", "Laptop HP", "No enciende", entity.StatusInRepair, base)
	seedOrder(t, repo, "b", "Pedro", "Laptop Lenovo", "Pantalla azul", entity.StatusReceived, base.Add(time.Hour))
	uc := newTestUseCase(repo)

	// El texto aplica como AND sobre lo que ya pasó el filtro estructurado.
	out, err := uc.Filter(dto.FilterWorkOrdersRequest{
		Status:     entity.StatusInRepair,
		SearchText: "laptop",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilter_EstadoDesconocido(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())

	_, err := uc.Filter(dto.FilterWorkOrdersRequest{Status: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_TransicionLibreDeEstado(t *testing.T) {
	repo := newFakeWorkOrderRepo()
	seedOrder(t, repo, "wo-1", "Laura", "Laptop", "No enciende", entity.StatusDelivered, time.Now())
	uc := newTestUseCase(repo)

	// El taller puede regresar una orden entregada a reparación.
	out, err := uc.Update("wo-1", dto.UpdateWorkOrderRequest{
		CustomerName:       "Laura",
		DeviceDescription:  "Laptop",
		ProblemDescription: "Volvió a fallar",
		Status:             entity.StatusInRepair,
		EstimatedCost:      decimal.RequireFromString("200.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInRepair, out.Status)
	assert.NotNil(t, out.UpdatedAt)
}

func TestDelete_OrdenInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeWorkOrderRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
