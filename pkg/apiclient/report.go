package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// Report resultado del fetch emparejado: filas por producto y por fecha del
// MISMO filtro. Se devuelve completo o no se devuelve: si cualquiera de las
// dos consultas falla no hay resultado parcial.
type Report struct {
	ByProduct []reporting.SaleReportRow
	ByDate    []reporting.DateReportRow
}

// ReportByProduct trae las filas agrupadas por producto.
func (c *Client) ReportByProduct(ctx context.Context, f reporting.Filter) ([]reporting.SaleReportRow, error) {
	var out []reporting.SaleReportRow
	if err := c.do(ctx, http.MethodGet, "/sales/report", reporting.BuildParams(f, nil), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReportByDate trae las filas agrupadas por fecha calendario.
func (c *Client) ReportByDate(ctx context.Context, f reporting.Filter) ([]reporting.DateReportRow, error) {
	var out []reporting.DateReportRow
	params := reporting.BuildParams(f, map[string]string{reporting.ParamGroupBy: reporting.GroupByDate})
	if err := c.do(ctx, http.MethodGet, "/sales/report", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchReport lanza ambas consultas del dashboard en paralelo y espera las dos.
// El primer error gana y descarta el par completo: totales y gráficas nunca
// quedan calculados sobre ventanas distintas.
func (c *Client) FetchReport(ctx context.Context, f reporting.Filter) (*Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		byProduct []reporting.SaleReportRow
		byDate    []reporting.DateReportRow
		errProd   error
		errDate   error
		done      = make(chan struct{}, 2)
	)

	go func() {
		byProduct, errProd = c.ReportByProduct(ctx, f)
		done <- struct{}{}
	}()
	go func() {
		byDate, errDate = c.ReportByDate(ctx, f)
		done <- struct{}{}
	}()
	<-done
	<-done

	if errProd != nil {
		return nil, errProd
	}
	if errDate != nil {
		return nil, errDate
	}
	return &Report{ByProduct: byProduct, ByDate: byDate}, nil
}

// ExportCSV descarga el CSV del reporte con el mismo filtro del fetch.
func (c *Client) ExportCSV(ctx context.Context, f reporting.Filter) ([]byte, error) {
	params := reporting.BuildParams(f, map[string]string{reporting.ParamExport: reporting.ExportCSV})
	return c.download(ctx, "/sales/report", params)
}

// ExportPDF descarga la variante PDF del reporte.
func (c *Client) ExportPDF(ctx context.Context, f reporting.Filter) ([]byte, error) {
	params := reporting.BuildParams(f, map[string]string{reporting.ParamExport: reporting.ExportPDF})
	return c.download(ctx, "/sales/report", params)
}

// ExportURL devuelve el link de descarga CSV para compartir o abrir en navegador.
func (c *Client) ExportURL(f reporting.Filter) string {
	return reporting.ExportURL(c.baseURL, f)
}
