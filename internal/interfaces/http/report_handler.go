package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/internal/domain"
)

// ReportHandler genera los reportes del inventario.
type ReportHandler struct {
	gestor *inventory.Gestor
}

// NewReportHandler construye el handler.
func NewReportHandler(gestor *inventory.Gestor) *ReportHandler {
	return &ReportHandler{gestor: gestor}
}

// Generate godoc
// @Summary      Generar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        tipo  path  string  true  "products | movements | low_stock"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reportes/{tipo} [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	kind := c.Params("tipo")
	items, err := h.gestor.GenerateReport(kind)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReportType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REPORT_TYPE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"tipo":  kind,
		"total": len(items),
		"items": items,
	})
}
