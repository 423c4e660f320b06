package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory categoría asignada cuando el cliente no envía una.
const DefaultCategory = "General"

// Product representa un producto del inventario de la tienda.
// El stock es global (una sola bodega); MinStock define el umbral de alerta de stock bajo.
type Product struct {
	ID       int64
	Name     string // único en todo el catálogo
	Category string
	Size     string // ej. "60x60", "45x45"; vacío para no-baldosas
	Price    decimal.Decimal
	StockQty int64
	MinStock int64
}

// IsLowStock indica si el producto está en o por debajo de su umbral de alerta.
func (p Product) IsLowStock() bool {
	return p.StockQty <= p.MinStock
}

// DefaultMinStock devuelve el umbral de stock mínimo por defecto según la categoría.
// Las baldosas se venden por cajas, por eso su umbral es mucho más alto.
func DefaultMinStock(category string) int64 {
	switch strings.ToLower(category) {
	case "tiles":
		return 40
	case "sanitary", "taps", "fittings", "accessories":
		return 10
	default:
		return 5
	}
}
