package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ReportQuery ventana y producto ya resueltos por el caso de uso: los defaults
// (mes en curso) y la inclusividad del límite superior se deciden antes de
// llegar aquí. Un puntero nil significa "sin límite".
type ReportQuery struct {
	From      *time.Time
	To        *time.Time // inclusive (fin de día ya aplicado)
	ProductID int64      // 0 = todos
}

// ReportRepository consultas de solo lectura del reporte de ventas agregado.
// Las filas salen en la forma del contrato de reporting: el servidor agrupa,
// el cliente solo deriva.
type ReportRepository interface {
	GroupByProduct(ctx context.Context, q ReportQuery) ([]reporting.SaleReportRow, error)
	GroupByDate(ctx context.Context, q ReportQuery) ([]reporting.DateReportRow, error)
}
