package sales

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// memStore estado en memoria compartido por los repos fake.
type memStore struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
	lines    []*entity.SaleLine
	payments []*entity.Payment
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		sales:    make(map[string]*entity.Sale),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, sl := range s.sales {
		cp := *sl
		c.sales[id] = &cp
	}
	for _, l := range s.lines {
		cp := *l
		c.lines = append(c.lines, &cp)
	}
	for _, p := range s.payments {
		cp := *p
		c.payments = append(c.payments, &cp)
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.sales = from.sales
	s.lines = from.lines
	s.payments = from.payments
}

// fakeTxRunner ejecuta el callback contra un snapshot del estado y lo
// descarta si fn falla, igual que un Rollback real.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	payRepo repository.PaymentRepository,
) error) error {
	backup := r.store.clone()
	err := fn(
		&fakeProductRepo{store: r.store},
		&fakeSaleRepo{store: r.store},
		&fakePaymentRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(backup)
	}
	return err
}

// ── fakes de repositorio ──

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
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
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
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
		return fmt.Errorf("producto %s no existe", id)
	}
	p.StockQty = qty
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeSaleRepo struct {
	store *memStore
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	cp := *s
	r.store.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) UpdateTotals(id string, net, tax, grand decimal.Decimal) error {
	s, ok := r.store.sales[id]
	if !ok {
		return fmt.Errorf("venta %s no existe", id)
	}
	s.NetTotal = net
	s.TaxTotal = tax
	s.GrandTotal = grand
	return nil
}

func (r *fakeSaleRepo) UpdatePaymentTotals(id string, paid, outstanding decimal.Decimal) error {
	s, ok := r.store.sales[id]
	if !ok {
		return fmt.Errorf("venta %s no existe", id)
	}
	s.Paid = paid
	s.Outstanding = outstanding
	return nil
}

func (r *fakeSaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithClient, error) {
	var out []*repository.SaleWithClient
	for _, s := range r.store.sales {
		out = append(out, &repository.SaleWithClient{Sale: *s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeSaleRepo) Delete(id string) (bool, error) {
	if _, ok := r.store.sales[id]; !ok {
		return false, nil
	}
	delete(r.store.sales, id)
	return true, nil
}

func (r *fakeSaleRepo) CreateLine(l *entity.SaleLine) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	cp := *l
	r.store.lines = append(r.store.lines, &cp)
	return nil
}

func (r *fakeSaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.store.lines {
		if l.SaleID == saleID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListLinesWithProduct(saleID string) ([]*repository.SaleLineWithProduct, error) {
	lines, _ := r.ListLines(saleID)
	var out []*repository.SaleLineWithProduct
	for _, l := range lines {
		name := ""
		if p, ok := r.store.products[l.ProductID]; ok {
			name = p.Name
		}
		out = append(out, &repository.SaleLineWithProduct{SaleLine: *l, ProductName: name})
	}
	return out, nil
}

func (r *fakeSaleRepo) DeleteLines(saleID string) error {
	kept := r.store.lines[:0]
	for _, l := range r.store.lines {
		if l.SaleID != saleID {
			kept = append(kept, l)
		}
	}
	r.store.lines = kept
	return nil
}

type fakePaymentRepo struct {
	store *memStore
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	cp := *p
	r.store.payments = append(r.store.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if p.SaleID == saleID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SumBySale(saleID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.store.payments {
		if p.SaleID == saleID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) DeleteBySale(saleID string) error {
	kept := r.store.payments[:0]
	for _, p := range r.store.payments {
		if p.SaleID != saleID {
			kept = append(kept, p)
		}
	}
	r.store.payments = kept
	return nil
}

// ── helpers de construcción ──

func newTestUseCase(store *memStore) *UseCase {
	return NewUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakeSaleRepo{store: store},
		&fakePaymentRepo{store: store},
	)
}

func seedProduct(store *memStore, id, name string, salePrice, purchasePrice string, stock int) {
	store.products[id] = &entity.Product{
		ID:            id,
		Name:          name,
		SalePrice:     decimal.RequireFromString(salePrice),
		PurchasePrice: decimal.RequireFromString(purchasePrice),
		StockQty:      stock,
	}
}
