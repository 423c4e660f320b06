package reporting

import "github.com/shopspring/decimal"

// TopProductNone nombre centinela cuando no hay filas para elegir producto top.
const TopProductNone = "N/A"

// Summary totales derivados del reporte agrupado por producto. Se recalcula
// completo en cada fetch exitoso; nunca se persiste ni se cachea entre filtros.
type Summary struct {
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	TopProduct    SaleReportRow
}

// Summarize reduce las filas agrupadas por producto a totales y producto top.
//
// La suma de ingresos se hace en decimal para que los montos con centavos no
// acumulen error binario de coma flotante. El producto top es un left-fold que
// solo reemplaza al mejor actual con cantidad estrictamente mayor: en empate
// gana la fila vista primero (orden del servidor).
func Summarize(rows []SaleReportRow) Summary {
	if len(rows) == 0 {
		return Summary{
			TotalRevenue: decimal.Zero,
			TopProduct:   SaleReportRow{ProductName: TopProductNone, TotalRevenue: decimal.Zero},
		}
	}

	s := Summary{TotalRevenue: decimal.Zero, TopProduct: rows[0]}
	for _, r := range rows {
		s.TotalQuantity += r.TotalQuantitySold
		s.TotalRevenue = s.TotalRevenue.Add(r.TotalRevenue)
	}
	for _, r := range rows[1:] {
		if r.TotalQuantitySold > s.TopProduct.TotalQuantitySold {
			s.TopProduct = r
		}
	}
	return s
}
