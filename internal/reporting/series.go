package reporting

import "github.com/shopspring/decimal"

// Series pares etiqueta/valor listos para una superficie de gráficas.
// Labels y Values siempre tienen el mismo largo; el orden es el de las filas
// recibidas del servidor, los adaptadores no ordenan.
type Series struct {
	Labels []string
	Values []decimal.Decimal
}

// Len cantidad de puntos de la serie.
func (s Series) Len() int { return len(s.Labels) }

// BarSeries adapta filas por producto a la serie de barras cantidad-por-producto.
// Entrada vacía produce serie vacía (la capa de render la muestra como gráfica
// vacía, no como error).
func BarSeries(rows []SaleReportRow) Series {
	s := Series{
		Labels: make([]string, 0, len(rows)),
		Values: make([]decimal.Decimal, 0, len(rows)),
	}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.ProductName)
		s.Values = append(s.Values, decimal.NewFromInt(r.TotalQuantitySold))
	}
	return s
}

// LineSeries adapta filas por fecha a la serie de línea ingresos-por-fecha.
func LineSeries(rows []DateReportRow) Series {
	s := Series{
		Labels: make([]string, 0, len(rows)),
		Values: make([]decimal.Decimal, 0, len(rows)),
	}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.SaleDate)
		s.Values = append(s.Values, r.TotalRevenue)
	}
	return s
}
