package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Category vacía se vuelve "General"; MinStock nil aplica el default por categoría.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	StockQty int64           `json:"stock_qty"`
	MinStock *int64          `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial: nil = sin cambio).
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Size     *string          `json:"size"`
	Price    *decimal.Decimal `json:"price"`
	StockQty *int64           `json:"stock_qty"`
	MinStock *int64           `json:"min_stock"`
}

// AdjustStockRequest incremento (o decremento) de stock aplicado en el servidor.
// Reemplaza el viejo patrón de "leer stock en el cliente y mandar el total por
// PUT", que perdía actualizaciones frente a ventas concurrentes.
type AdjustStockRequest struct {
	Delta int64 `json:"delta"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	StockQty int64           `json:"stock_qty"`
	MinStock int64           `json:"min_stock"`
}

// ProductMessageResponse confirmación con el producto resultante (create/update).
type ProductMessageResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// LowStockCountResponse contador para la insignia de alerta del navbar.
type LowStockCountResponse struct {
	Count int64 `json:"count"`
}
