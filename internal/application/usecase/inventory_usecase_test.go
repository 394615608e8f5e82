package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// fakeInventoryRepo repositorio en memoria con la misma regla que el
// adaptador real: un ajuste que dejaría stock negativo se rechaza.
type fakeInventoryRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: map[string]*entity.InventoryItem{}}
}

func (r *fakeInventoryRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInventoryRepo) Update(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) List(search string, limit, offset int) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInventoryRepo) AdjustQuantity(id string, delta int) (*entity.InventoryItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if i.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	i.Quantity += delta
	cp := *i
	return &cp, nil
}

func (r *fakeInventoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func seedItem(t *testing.T, repo *fakeInventoryRepo, id string, quantity int) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.InventoryItem{
		ID:        id,
		Name:      "RAM DDR4 8GB",
		Quantity:  quantity,
		UnitCost:  money.New(decimal.RequireFromString("350.00")),
		UnitPrice: money.New(decimal.RequireFromString("550.00")),
	}))
}

func TestAdjustStock_SumaYResta(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "item-1", 5)
	uc := NewInventoryUseCase(repo, logger.Nop())

	out, err := uc.AdjustStock("item-1", dto.AdjustStockRequest{Delta: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantity)

	out, err = uc.AdjustStock("item-1", dto.AdjustStockRequest{Delta: -8})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
}

func TestAdjustStock_RechazaStockNegativo(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "item-1", 2)
	uc := NewInventoryUseCase(repo, logger.Nop())

	_, err := uc.AdjustStock("item-1", dto.AdjustStockRequest{Delta: -3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, err := repo.GetByID("item-1")
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity, "el rechazo no debe tocar las existencias")
}

func TestAdjustStock_DeltaCero(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(t, repo, "item-1", 2)
	uc := NewInventoryUseCase(repo, logger.Nop())

	_, err := uc.AdjustStock("item-1", dto.AdjustStockRequest{Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

type fakeSettingsStore struct {
	settings *entity.Settings
}

func (r *fakeSettingsStore) Get() (*entity.Settings, error) { return r.settings, nil }
func (r *fakeSettingsStore) Save(s *entity.Settings) error  { r.settings = s; return nil }

func TestSettingsGet_DevuelveDefaultsSinGuardar(t *testing.T) {
	uc := NewSettingsUseCase(&fakeSettingsStore{})

	out, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, "CompuGestion", out.BusinessName)
	assert.True(t, out.DefaultTaxRate.Equal(decimal.RequireFromString("0.16")))
}

func TestSettingsUpdate_RechazaTasaNegativa(t *testing.T) {
	uc := NewSettingsUseCase(&fakeSettingsStore{})

	_, err := uc.Update(dto.UpdateSettingsRequest{
		BusinessName:   "Mi Taller",
		DefaultTaxRate: decimal.RequireFromString("-0.01"),
	})
	assert.ErrorIs(t, err, domain.ErrNegativeTaxRate)
}

func TestSettingsUpdate_GuardaYPersiste(t *testing.T) {
	store := &fakeSettingsStore{}
	uc := NewSettingsUseCase(store)

	out, err := uc.Update(dto.UpdateSettingsRequest{
		BusinessName:   "Mi Taller",
		TaxID:          "XAXX010101000",
		DefaultTaxRate: decimal.RequireFromString("0.08"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mi Taller", out.BusinessName)
	require.NotNil(t, store.settings)
	assert.True(t, store.settings.DefaultTaxRate.Equal(decimal.RequireFromString("0.08")))
}
