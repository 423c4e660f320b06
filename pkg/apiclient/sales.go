package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// Sale venta individual del listado histórico.
type Sale struct {
	SaleID      int64           `json:"sale_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SaleDate    string          `json:"sale_date"`
}

type recordSaleRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type recordSaleResponse struct {
	Message string `json:"message"`
	SaleID  int64  `json:"sale_id"`
}

// RecordSale registra una venta; el servidor descuenta el stock en la misma
// transacción. Devuelve el id asignado. Si no hay stock suficiente el error es
// un *APIError con AvailableStock poblado.
func (c *Client) RecordSale(ctx context.Context, productID, quantity int64) (int64, error) {
	var out recordSaleResponse
	in := recordSaleRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPost, "/sales", nil, in, &out); err != nil {
		return 0, err
	}
	return out.SaleID, nil
}

// Sales lista las ventas del rango [from, to] (YYYY-MM-DD, to inclusive).
// Con ambos vacíos el servidor lista el mes en curso.
func (c *Client) Sales(ctx context.Context, from, to string) ([]Sale, error) {
	query := map[string]string{}
	if from != "" {
		query["from"] = from
	}
	if to != "" {
		query["to"] = to
	}
	var out []Sale
	if err := c.do(ctx, http.MethodGet, "/sales", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
