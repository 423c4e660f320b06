package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// barWidth ancho máximo de las barras de texto.
const barWidth = 40

// Renderer escribe el panel de ventas en texto plano sobre un io.Writer.
type Renderer struct {
	w io.Writer
}

// NewRenderer construye el renderer.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render pinta el snapshot completo: totales, tabla, barras y tendencia.
func (r *Renderer) Render(snap Snapshot) {
	r.RenderSummary(snap.Summary)
	fmt.Fprintln(r.w)
	r.RenderTable(snap.ByProduct)
	fmt.Fprintln(r.w)
	r.RenderBars(reporting.BarSeries(snap.ByProduct))
	fmt.Fprintln(r.w)
	r.RenderTrend(reporting.LineSeries(snap.ByDate))
}

// RenderSummary pinta el bloque de totales del período.
func (r *Renderer) RenderSummary(s reporting.Summary) {
	fmt.Fprintf(r.w, "Unidades vendidas:  %d\n", s.TotalQuantity)
	fmt.Fprintf(r.w, "Ingresos totales:   $%s\n", s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(r.w, "Producto estrella:  %s\n", s.TopProduct.ProductName)
}

// RenderTable pinta la tabla por producto con su fila TOTAL al final.
func (r *Renderer) RenderTable(rows []reporting.SaleReportRow) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "Sin ventas en el período seleccionado.")
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCTO\tCANTIDAD\tINGRESOS")

	var totalQty int64
	totalRevenue := decimal.Zero
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t$%s\n", row.ProductName, row.TotalQuantitySold, row.TotalRevenue.StringFixed(2))
		totalQty += row.TotalQuantitySold
		totalRevenue = totalRevenue.Add(row.TotalRevenue)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t$%s\n", totalQty, totalRevenue.StringFixed(2))
	_ = tw.Flush()
}

// RenderBars pinta la gráfica de barras (cantidad por producto).
func (r *Renderer) RenderBars(s reporting.Series) {
	if s.Len() == 0 {
		fmt.Fprintln(r.w, "Sin datos para la gráfica de productos.")
		return
	}
	maxVal := maxValue(s.Values)
	labelW := maxLabelWidth(s.Labels)
	for i := range s.Labels {
		bar := strings.Repeat("█", scaled(s.Values[i], maxVal))
		fmt.Fprintf(r.w, "%-*s │%s %s\n", labelW, s.Labels[i], bar, s.Values[i].String())
	}
}

// RenderTrend pinta la tendencia de ingresos por fecha, en orden del servidor.
func (r *Renderer) RenderTrend(s reporting.Series) {
	if s.Len() == 0 {
		fmt.Fprintln(r.w, "Sin datos para la tendencia de ingresos.")
		return
	}
	maxVal := maxValue(s.Values)
	for i := range s.Labels {
		bar := strings.Repeat("▪", scaled(s.Values[i], maxVal))
		fmt.Fprintf(r.w, "%s │%s $%s\n", s.Labels[i], bar, s.Values[i].StringFixed(2))
	}
}

// scaled proyecta el valor al ancho de barra; todo valor positivo pinta al
// menos un bloque para que las ventas chicas no desaparezcan.
func scaled(v, max decimal.Decimal) int {
	if max.IsZero() || v.Sign() <= 0 {
		return 0
	}
	n := int(v.Mul(decimal.NewFromInt(barWidth)).Div(max).IntPart())
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return n
}

func maxValue(values []decimal.Decimal) decimal.Decimal {
	max := decimal.Zero
	for _, v := range values {
		if v.GreaterThan(max) {
			max = v
		}
	}
	return max
}

func maxLabelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w
}
