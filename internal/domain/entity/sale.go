package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. TotalPrice se congela al momento de la venta
// (precio del producto × cantidad); cambios posteriores de precio no la afectan.
type Sale struct {
	ID         int64
	ProductID  int64
	Quantity   int64
	TotalPrice decimal.Decimal
	SaleDate   time.Time
}
