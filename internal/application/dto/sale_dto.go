package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// RecordSaleResponse confirmación de la venta registrada.
type RecordSaleResponse struct {
	Message string `json:"message"`
	SaleID  int64  `json:"sale_id"`
}

// SaleResponse una venta individual en el listado histórico.
type SaleResponse struct {
	SaleID      int64           `json:"sale_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SaleDate    string          `json:"sale_date"` // YYYY-MM-DD HH:MM:SS
}
