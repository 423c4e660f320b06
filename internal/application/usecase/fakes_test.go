package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso (sin PostgreSQL).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
	for _, p := range products {
		cp := *p
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.products[cp.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(id, delta int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.StockQty+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.StockQty += delta
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.IsLowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountLowStock() (int64, error) {
	rows, _ := r.ListLowStock()
	return int64(len(rows)), nil
}

type fakeSaleRepo struct {
	sales  []entity.Sale
	nextID int64
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{nextID: 1} }

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	s.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, *s)
	return nil
}

func (r *fakeSaleRepo) ListByDateRange(from, to time.Time) ([]repository.SaleWithProduct, error) {
	var out []repository.SaleWithProduct
	for _, s := range r.sales {
		if s.SaleDate.Before(from) || s.SaleDate.After(to) {
			continue
		}
		out = append(out, repository.SaleWithProduct{
			SaleID:     s.ID,
			Quantity:   s.Quantity,
			TotalPrice: s.TotalPrice,
			SaleDate:   s.SaleDate,
		})
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes (sin transacción real).
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(t.products, t.sales)
}

// fakeReportRepo devuelve filas predefinidas y captura la query recibida.
type fakeReportRepo struct {
	productRows []reporting.SaleReportRow
	dateRows    []reporting.DateReportRow
	lastQuery   repository.ReportQuery
	err         error
}

func (r *fakeReportRepo) GroupByProduct(_ context.Context, q repository.ReportQuery) ([]reporting.SaleReportRow, error) {
	r.lastQuery = q
	return r.productRows, r.err
}

func (r *fakeReportRepo) GroupByDate(_ context.Context, q repository.ReportQuery) ([]reporting.DateReportRow, error) {
	r.lastQuery = q
	return r.dateRows, r.err
}
