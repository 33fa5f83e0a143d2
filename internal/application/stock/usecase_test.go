package stock

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// estado en memoria compartido por los fakes
type memStore struct {
	products  map[string]*entity.Product
	movements map[string]*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		movements: make(map[string]*entity.StockMovement),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, m := range s.movements {
		cp := *m
		c.movements[id] = &cp
	}
	return c
}

// fakeTxRunner descarta los cambios si fn falla, como un Rollback real.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	backup := r.store.clone()
	err := fn(&fakeProductRepo{store: r.store}, &fakeMovementRepo{store: r.store})
	if err != nil {
		r.store.products = backup.products
		r.store.movements = backup.movements
	}
	return err
}

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	all, _ := r.List()
	var out []*entity.Product
	for _, p := range all {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, qty int) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.StockQty = qty
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeMovementRepo struct {
	store *memStore
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.store.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	var out []*repository.MovementWithProduct
	for _, m := range r.store.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		name := ""
		if p, ok := r.store.products[m.ProductID]; ok {
			name = p.Name
		}
		out = append(out, &repository.MovementWithProduct{StockMovement: *m, ProductName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMovementRepo) Update(m *entity.StockMovement) error {
	existing, ok := r.store.movements[m.ID]
	if !ok {
		return domain.ErrMovementNotFound
	}
	existing.Quantity = m.Quantity
	existing.Reason = m.Reason
	existing.Notes = m.Notes
	return nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	if _, ok := r.store.movements[id]; !ok {
		return domain.ErrMovementNotFound
	}
	delete(r.store.movements, id)
	return nil
}

func newTestUseCase(store *memStore) *UseCase {
	return NewUseCase(&fakeTxRunner{store: store}, &fakeMovementRepo{store: store})
}

func seedProduct(store *memStore, id, name string, stock, threshold int) {
	store.products[id] = &entity.Product{
		ID:             id,
		Name:           name,
		SalePrice:      decimal.RequireFromString("5.00"),
		PurchasePrice:  decimal.RequireFromString("3.00"),
		StockQty:       stock,
		AlertThreshold: threshold,
	}
}

// ── AdjustStock ──

func TestAdjustStock_Entry(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 10, 2)
	uc := newTestUseCase(store)

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID:   "p1",
		Type:        entity.MovementTypeEntry,
		Quantity:    5,
		Counterpart: "Proveedor SA",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, out.OldQty)
	assert.Equal(t, 15, out.NewQty)
	assert.Equal(t, 15, store.products["p1"].StockQty)
	require.Len(t, store.movements, 1)
	assert.NotEmpty(t, out.MovementID)
}

func TestAdjustStock_Exit(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 10, 2)
	uc := newTestUseCase(store)

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeExit,
		Quantity:  4,
		Reason:    "merma",
	})
	require.NoError(t, err)

	assert.Equal(t, 6, out.NewQty)
	assert.Equal(t, 6, store.products["p1"].StockQty)
}

func TestAdjustStock_ExitBelowZeroFailsAndRollsBack(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 3, 2)
	uc := newTestUseCase(store)

	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeExit,
		Quantity:  4,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, store.products["p1"].StockQty)
	assert.Empty(t, store.movements, "el movimiento no se persiste")
}

func TestAdjustStock_Validation(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	cases := []dto.AdjustStockRequest{
		{ProductID: "", Type: entity.MovementTypeEntry, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 0},
		{ProductID: "p1", Type: "transfer", Quantity: 1},
	}
	for _, in := range cases {
		_, err := uc.AdjustStock(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAdjustStock_UnknownProduct(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "nope",
		Type:      entity.MovementTypeEntry,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ── UpdateMovement ──

func TestUpdateMovement_ReappliesDelta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 10, 2)
	uc := newTestUseCase(store)

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 5,
	})
	require.NoError(t, err)
	require.Equal(t, 15, store.products["p1"].StockQty)

	// la entrada era de 3, no de 5: el stock baja 2
	err = uc.UpdateMovement(context.Background(), out.MovementID, dto.UpdateMovementRequest{
		Quantity: 3,
		Reason:   "corrección de conteo",
	})
	require.NoError(t, err)

	assert.Equal(t, 13, store.products["p1"].StockQty)
	assert.Equal(t, 3, store.movements[out.MovementID].Quantity)
	assert.Equal(t, "corrección de conteo", store.movements[out.MovementID].Reason)
}

func TestUpdateMovement_RejectsNegativeResultingStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 0, 2)
	uc := newTestUseCase(store)

	// entrada de 5 deja stock en 5
	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 5,
	})
	require.NoError(t, err)

	// reducir la entrada a 2 dejaría el stock en -3 si ya se vendió; aquí
	// el stock es 5, bajar a 2 da 2, válido. Forzamos el caso inválido:
	// salida manual de 4 primero.
	_, err = uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.products["p1"].StockQty)

	err = uc.UpdateMovement(context.Background(), out.MovementID, dto.UpdateMovementRequest{Quantity: 2})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, store.products["p1"].StockQty, "nada cambió")
	assert.Equal(t, 5, store.movements[out.MovementID].Quantity)
}

func TestUpdateMovement_NotFound(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	err := uc.UpdateMovement(context.Background(), "nope", dto.UpdateMovementRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

// ── DeleteMovement ──

func TestDeleteMovement_RevertsEffect(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 10, 2)
	uc := newTestUseCase(store)

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 4,
	})
	require.NoError(t, err)
	require.Equal(t, 6, store.products["p1"].StockQty)

	require.NoError(t, uc.DeleteMovement(context.Background(), out.MovementID))

	assert.Equal(t, 10, store.products["p1"].StockQty, "la salida borrada devuelve el stock")
	assert.Empty(t, store.movements)
}

func TestDeleteMovement_EntryRevertBlockedByStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 0, 2)
	uc := newTestUseCase(store)

	out, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 5,
	})
	require.NoError(t, err)

	// ya salieron 3 unidades de esa entrada
	_, err = uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 3,
	})
	require.NoError(t, err)

	err = uc.DeleteMovement(context.Background(), out.MovementID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, store.products["p1"].StockQty)
	assert.Len(t, store.movements, 2, "nada se borró")
}

// ── History ──

func TestHistory_Filters(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", 10, 2)
	seedProduct(store, "p2", "Lápiz", 10, 2)
	uc := newTestUseCase(store)

	mustAdjust := func(productID, typ string, qty int) {
		_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
			ProductID: productID, Type: typ, Quantity: qty,
		})
		require.NoError(t, err)
	}
	mustAdjust("p1", entity.MovementTypeEntry, 5)
	mustAdjust("p1", entity.MovementTypeExit, 2)
	mustAdjust("p2", entity.MovementTypeEntry, 1)

	all, err := uc.History(dto.MovementHistoryQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	entries, err := uc.History(dto.MovementHistoryQuery{Type: entity.MovementTypeEntry})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	p1Only, err := uc.History(dto.MovementHistoryQuery{ProductID: "p1"})
	require.NoError(t, err)
	assert.Len(t, p1Only, 2)
	for _, m := range p1Only {
		assert.Equal(t, "Cuaderno", m.ProductName)
	}
}

func TestHistory_BadDates(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	_, err := uc.History(dto.MovementHistoryQuery{From: "31-12-2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.History(dto.MovementHistoryQuery{To: "no-date"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
