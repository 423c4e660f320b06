package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo tal como lo sirve la API.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	StockQty int64           `json:"stock_qty"`
	MinStock int64           `json:"min_stock"`
}

// IsLowStock indica si el producto está en o por debajo de su mínimo.
func (p Product) IsLowStock() bool { return p.StockQty <= p.MinStock }

// NewProduct datos para crear un producto. MinStock nil deja que el servidor
// aplique el default de la categoría.
type NewProduct struct {
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Size     string          `json:"size,omitempty"`
	Price    decimal.Decimal `json:"price"`
	StockQty int64           `json:"stock_qty"`
	MinStock *int64          `json:"min_stock,omitempty"`
}

// ProductUpdate cambios parciales: los campos nil no se tocan.
type ProductUpdate struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	Size     *string          `json:"size,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	StockQty *int64           `json:"stock_qty,omitempty"`
	MinStock *int64           `json:"min_stock,omitempty"`
}

type productMessage struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

// Products lista el catálogo completo.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct da de alta un producto y devuelve el registro con defaults aplicados.
func (c *Client) CreateProduct(ctx context.Context, in NewProduct) (*Product, error) {
	var out productMessage
	if err := c.do(ctx, http.MethodPost, "/products", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// UpdateProduct aplica cambios parciales sobre el producto.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductUpdate) (*Product, error) {
	var out productMessage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// AdjustStock suma delta al stock en el servidor (atómico, sin leer antes).
// Delta negativo descuenta; el servidor rechaza si dejaría el stock negativo.
func (c *Client) AdjustStock(ctx context.Context, id, delta int64) (*Product, error) {
	var out productMessage
	body := map[string]int64{"delta": delta}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/stock", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// DeleteProduct elimina el producto y sus ventas asociadas.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// LowStockProducts lista los productos en alerta de stock.
func (c *Client) LowStockProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products/low-stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LowStockCount devuelve el contador de la insignia de alertas.
func (c *Client) LowStockCount(ctx context.Context) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/low-stock/count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
