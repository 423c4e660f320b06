package reporting

import (
	"net/url"
	"strconv"
)

// Claves de query compartidas por el fetch JSON y el link de exportación.
const (
	ParamFrom      = "from"
	ParamTo        = "to"
	ParamProductID = "product_id"
	ParamGroupBy   = "group_by"
	ParamExport    = "export"

	GroupByDate = "date"
	ExportCSV   = "csv"
	ExportPDF   = "pdf"
)

// BuildParams convierte el filtro en los query parameters del reporte.
// Solo emite las claves presentes en el filtro y mezcla extra (ej. group_by=date
// o export=csv) sin mutar el filtro base. Función pura: mismo filtro, mismo mapa.
func BuildParams(f Filter, extra map[string]string) map[string]string {
	params := make(map[string]string, 3+len(extra))
	if f.From != "" {
		params[ParamFrom] = f.From
	}
	if f.To != "" {
		params[ParamTo] = f.To
	}
	if f.ProductID > 0 {
		params[ParamProductID] = strconv.FormatInt(f.ProductID, 10)
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// ExportURL construye la URL de descarga CSV del reporte: los mismos parámetros
// del filtro más export=csv sobre baseURL + "/sales/report". La descarga en sí
// la realiza quien navegue la URL; aquí es solo construcción de string.
func ExportURL(baseURL string, f Filter) string {
	values := url.Values{}
	for k, v := range BuildParams(f, map[string]string{ParamExport: ExportCSV}) {
		values.Set(k, v)
	}
	return baseURL + "/sales/report?" + values.Encode()
}
