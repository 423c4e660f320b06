package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del reporte de ventas agregado.
// El servidor agrupa aquí; los clientes solo suman sobre las filas resultantes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GroupByProduct agrupa cantidad e ingresos por producto dentro de la ventana.
// Una fila por producto con al menos una venta; orden estable por id de producto.
func (r *ReportRepo) GroupByProduct(ctx context.Context, q repository.ReportQuery) ([]reporting.SaleReportRow, error) {
	query := `
	SELECT
	    p.id                            AS product_id,
	    p.name                          AS product_name,
	    COALESCE(SUM(s.quantity), 0)    AS total_quantity,
	    COALESCE(SUM(s.total_price), 0) AS total_revenue
	FROM products p
	JOIN sales s ON s.product_id = p.id`
	where, args := reportFilters(q)
	query += where + `
	GROUP BY p.id, p.name
	ORDER BY p.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.GroupByProduct: %w", err)
	}
	defer rows.Close()

	var out []reporting.SaleReportRow
	for rows.Next() {
		var row reporting.SaleReportRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantitySold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("report.GroupByProduct scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GroupByDate agrupa ingresos por fecha calendario, ascendente.
func (r *ReportRepo) GroupByDate(ctx context.Context, q repository.ReportQuery) ([]reporting.DateReportRow, error) {
	query := `
	SELECT
	    DATE(s.sale_date)               AS sale_date,
	    COALESCE(SUM(s.total_price), 0) AS total_revenue
	FROM sales s`
	where, args := reportFilters(q)
	query += where + `
	GROUP BY DATE(s.sale_date)
	ORDER BY DATE(s.sale_date)`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.GroupByDate: %w", err)
	}
	defer rows.Close()

	var out []reporting.DateReportRow
	for rows.Next() {
		var day time.Time
		var row reporting.DateReportRow
		if err := rows.Scan(&day, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("report.GroupByDate scan: %w", err)
		}
		row.SaleDate = day.Format("2006-01-02")
		out = append(out, row)
	}
	return out, rows.Err()
}

// reportFilters arma el WHERE compartido de ambos agrupamientos.
func reportFilters(q repository.ReportQuery) (string, []any) {
	var conds []string
	var args []any
	if q.From != nil {
		args = append(args, *q.From)
		conds = append(conds, fmt.Sprintf("s.sale_date >= $%d", len(args)))
	}
	if q.To != nil {
		args = append(args, *q.To)
		conds = append(conds, fmt.Sprintf("s.sale_date <= $%d", len(args)))
	}
	if q.ProductID > 0 {
		args = append(args, q.ProductID)
		conds = append(conds, fmt.Sprintf("s.product_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), args
}
