package dto

// ReportRequest parámetros para GET /sales/report.
// Sin from ni to el reporte cubre el mes en curso; to es inclusive (fin de día).
type ReportRequest struct {
	From      string `query:"from"`       // YYYY-MM-DD
	To        string `query:"to"`         // YYYY-MM-DD
	ProductID int64  `query:"product_id"` // 0 = todos
	GroupBy   string `query:"group_by"`   // "" (por producto) | "date"
	Export    string `query:"export"`     // "" (JSON) | "csv" | "pdf"
}

// SalesListRequest parámetros para GET /sales (listado histórico).
// from y to van juntos; sin ellos se lista el mes en curso.
type SalesListRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}
