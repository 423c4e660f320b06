package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y asigna su ID.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity, total_price, sale_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.ProductID, sale.Quantity, sale.TotalPrice, sale.SaleDate,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByDateRange lista ventas con nombre de producto dentro de [from, to] inclusive.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]repository.SaleWithProduct, error) {
	query := `
		SELECT s.id, p.name, s.quantity, s.total_price, s.sale_date
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_date >= $1 AND s.sale_date <= $2
		ORDER BY s.sale_date, s.id`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []repository.SaleWithProduct
	for rows.Next() {
		var s repository.SaleWithProduct
		if err := rows.Scan(&s.SaleID, &s.ProductName, &s.Quantity, &s.TotalPrice, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("list sales scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
