package repository

import (
	"time"

	"github.com/jhoicas/tilestrack-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaleWithProduct venta con el nombre del producto resuelto (join para listados).
type SaleWithProduct struct {
	SaleID      int64
	ProductName string
	Quantity    int64
	TotalPrice  decimal.Decimal
	SaleDate    time.Time
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// Create persiste la venta y asigna su ID.
	Create(sale *entity.Sale) error
	// ListByDateRange lista ventas con producto dentro de [from, to] inclusive.
	ListByDateRange(from, to time.Time) ([]SaleWithProduct, error)
}
