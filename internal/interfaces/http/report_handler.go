package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tilestrack-api/internal/application/dto"
	"github.com/jhoicas/tilestrack-api/internal/application/usecase"
	"github.com/jhoicas/tilestrack-api/internal/domain"
	"github.com/jhoicas/tilestrack-api/internal/reporting"
)

// ReportHandler sirve el reporte agregado de ventas en sus tres formatos:
// JSON (por producto o por fecha), CSV descargable y PDF descargable.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte agregado de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "YYYY-MM-DD"
// @Param        to          query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        group_by    query  string  false  "date para agrupar por fecha"
// @Param        export      query  string  false  "csv o pdf para descargar"
// @Success      200  {array}  reporting.SaleReportRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /sales/report [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid query parameters"})
	}

	switch in.Export {
	case reporting.ExportCSV:
		data, err := h.uc.CSV(c.Context(), in)
		if err != nil {
			return reportError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=sales_report.csv`)
		return c.Send(data)
	case reporting.ExportPDF:
		data, err := h.uc.PDF(c.Context(), in)
		if err != nil {
			return reportError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=sales_report.pdf`)
		return c.Send(data)
	case "":
		// sigue al formato JSON
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Unsupported export format"})
	}

	if in.GroupBy == reporting.GroupByDate {
		rows, err := h.uc.ByDate(c.Context(), in)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(rows)
	}
	rows, err := h.uc.ByProduct(c.Context(), in)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(rows)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidDate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
