// Package reporting contiene el núcleo puro del reporte de ventas: el contrato
// de filas agregadas que expone GET /sales/report, la construcción de sus query
// parameters y las derivaciones que consumen los tableros (totales, producto
// top y series para gráficas). Ninguna función hace I/O; el servidor agrupa,
// aquí solo se suma y se reordena la forma de los datos.
package reporting

import "github.com/shopspring/decimal"

// SaleReportRow fila del reporte agrupado por producto: una por producto con
// al menos una venta dentro de la ventana filtrada.
type SaleReportRow struct {
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

// DateReportRow fila del reporte agrupado por fecha (group_by=date): una por
// fecha calendario con ventas en la ventana filtrada.
type DateReportRow struct {
	SaleDate     string          `json:"sale_date"` // YYYY-MM-DD
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Filter rango y producto opcionales del reporte. El valor cero de cada campo
// significa "sin restricción": el servidor no aplica ese límite.
type Filter struct {
	From      string // YYYY-MM-DD, vacío = sin límite inferior
	To        string // YYYY-MM-DD, vacío = sin límite superior
	ProductID int64  // 0 = todos los productos
}
