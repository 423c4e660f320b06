package http_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los handlers (sin base de datos)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
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
	r.products[p.ID] = &cp
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
	all, _ := r.List()
	var out []*entity.Product
	for _, p := range all {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountLowStock() (int64, error) {
	low, _ := r.ListLowStock()
	return int64(len(low)), nil
}

type fakeSaleRepo struct {
	sales  []entity.Sale
	byName map[int64]string
	nextID int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{byName: map[int64]string{}, nextID: 1}
}

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
			SaleID:      s.ID,
			ProductName: r.byName[s.ProductID],
			Quantity:    s.Quantity,
			TotalPrice:  s.TotalPrice,
			SaleDate:    s.SaleDate,
		})
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	return fn(t.products, t.sales)
}

type fakeReportRepo struct {
	byProduct []reporting.SaleReportRow
	byDate    []reporting.DateReportRow
}

func (r *fakeReportRepo) GroupByProduct(context.Context, repository.ReportQuery) ([]reporting.SaleReportRow, error) {
	return r.byProduct, nil
}

func (r *fakeReportRepo) GroupByDate(context.Context, repository.ReportQuery) ([]reporting.DateReportRow, error) {
	return r.byDate, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUserAlreadyExists
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
