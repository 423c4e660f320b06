package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/tilestrack-api/internal/application/dto"
	"github.com/jhoicas/tilestrack-api/internal/domain/repository"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ReportPeriod etiquetas del rango para los archivos exportados.
// Los límites ausentes se etiquetan "Start"/"End", igual que el CSV histórico.
type ReportPeriod struct {
	From string
	To   string
}

// ReportPDFGenerator puerto para la representación PDF del reporte de ventas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, rows []reporting.SaleReportRow, summary reporting.Summary, period ReportPeriod) ([]byte, error)
}

// ReportUseCase materializa el reporte agregado de ventas: filas JSON por
// producto o por fecha, y las variantes de descarga CSV y PDF del mismo filtro.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si la variante
// de exportación PDF no está habilitada.
func NewReportUseCase(repo repository.ReportRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// ByProduct devuelve las filas agrupadas por producto para la ventana filtrada.
// Sin filas el resultado es un slice vacío, no nil: el JSON siempre es un array.
func (uc *ReportUseCase) ByProduct(ctx context.Context, in dto.ReportRequest) ([]reporting.SaleReportRow, error) {
	q, err := resolveReportQuery(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.GroupByProduct(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("reporte por producto: %w", err)
	}
	if rows == nil {
		rows = []reporting.SaleReportRow{}
	}
	return rows, nil
}

// ByDate devuelve las filas agrupadas por fecha (group_by=date) ordenadas ascendente.
func (uc *ReportUseCase) ByDate(ctx context.Context, in dto.ReportRequest) ([]reporting.DateReportRow, error) {
	q, err := resolveReportQuery(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.GroupByDate(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("reporte por fecha: %w", err)
	}
	if rows == nil {
		rows = []reporting.DateReportRow{}
	}
	return rows, nil
}

// CSV genera el archivo de descarga del reporte por producto. Mantiene el
// formato histórico: una fila por producto con el rango repetido en cada línea.
func (uc *ReportUseCase) CSV(ctx context.Context, in dto.ReportRequest) ([]byte, error) {
	rows, err := uc.ByProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	period := periodLabels(in)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Product Name", "Total Quantity", "Total Revenue", "From Date", "To Date"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.ProductName,
			strconv.FormatInt(r.TotalQuantitySold, 10),
			r.TotalRevenue.StringFixed(2),
			period.From,
			period.To,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("escribir CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF genera la representación PDF del reporte por producto con su bloque de totales.
func (uc *ReportUseCase) PDF(ctx context.Context, in dto.ReportRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("exportación PDF no habilitada")
	}
	rows, err := uc.ByProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSalesReportPDF(ctx, rows, reporting.Summarize(rows), periodLabels(in))
}

// resolveReportQuery traduce los parámetros crudos a la ventana efectiva:
// sin from NI to -> mes en curso; con cualquiera de los dos, cada límite se
// aplica por separado y `to` es inclusivo hasta fin de día.
func resolveReportQuery(in dto.ReportRequest) (repository.ReportQuery, error) {
	q := repository.ReportQuery{ProductID: in.ProductID}

	if in.From == "" && in.To == "" {
		from, to := currentMonthWindow(time.Now())
		q.From, q.To = &from, &to
		return q, nil
	}
	if in.From != "" {
		from, err := parseDay(in.From)
		if err != nil {
			return repository.ReportQuery{}, err
		}
		q.From = &from
	}
	if in.To != "" {
		day, err := parseDay(in.To)
		if err != nil {
			return repository.ReportQuery{}, err
		}
		to := endOfDay(day)
		q.To = &to
	}
	return q, nil
}

func periodLabels(in dto.ReportRequest) ReportPeriod {
	p := ReportPeriod{From: "Start", To: "End"}
	if in.From != "" {
		p.From = in.From
	}
	if in.To != "" {
		p.To = in.To
	}
	return p
}
