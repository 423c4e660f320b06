package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, category, size, price, stock_qty, min_stock"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, size, price, stock_qty, min_stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Category, product.Size, product.Price,
		product.StockQty, product.MinStock,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product by id")
}

// GetByName obtiene un producto por nombre exacto; nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get product by name")
}

// List lista todo el catálogo ordenado por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.scanMany(query, "list products")
}

// Update reemplaza los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, size = $4, price = $5, stock_qty = $6, min_stock = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Size,
		product.Price, product.StockQty, product.MinStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock aplica el delta en una sola sentencia condicional: el stock nunca
// queda negativo aunque haya ventas concurrentes.
func (r *ProductRepo) AdjustStock(id, delta int64) (*entity.Product, error) {
	query := `
		UPDATE products
		SET stock_qty = stock_qty + $2
		WHERE id = $1 AND stock_qty + $2 >= 0
		RETURNING ` + productColumns
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id, delta), "adjust stock")
	if err != nil {
		return nil, err
	}
	if p == nil {
		// Sin fila actualizada: o el producto no existe, o el delta dejaría stock negativo.
		existing, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}
	return p, nil
}

// Delete elimina el producto; las ventas asociadas caen en cascada (FK).
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLowStock lista productos con stock en o por debajo de su umbral.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock_qty <= min_stock ORDER BY id`
	return r.scanMany(query, "list low stock")
}

// CountLowStock cuenta productos en alerta de stock bajo.
func (r *ProductRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE stock_qty <= min_stock`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Size, &p.Price, &p.StockQty, &p.MinStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(query, op string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Size, &p.Price, &p.StockQty, &p.MinStock); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
